package core

// ID prefixes used for entity identifiers
const (
	PrefixAccount     = "acct"
	PrefixTransaction = "txn"
	PrefixPersona     = "prs"
	PrefixMessage     = "msg"
	PrefixImage       = "img"
	PrefixReservation = "rsv"
	PrefixPayment     = "pay"
)

// IDGenerator creates globally unique, prefix-qualified identifiers
type IDGenerator interface {
	NewID(prefix string) string
}
