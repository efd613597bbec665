package tier

import (
	"fmt"
	"sort"

	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
)

// Threshold maps a lifetime spend to the level it reaches
type Threshold struct {
	Spend int64
	Level int
}

// Table is an ascending threshold table. The zero value is not usable; build one with NewTable.
type Table struct {
	thresholds []Threshold
}

// DefaultThresholds are used for both the level and unlock tables when none are configured
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Spend: 0, Level: 1},
		{Spend: 50, Level: 2},
		{Spend: 150, Level: 3},
		{Spend: 300, Level: 4},
		{Spend: 500, Level: 5},
	}
}

// NewTable validates and copies the thresholds.
// Spends and levels must be strictly ascending and the first spend must be 0.
func NewTable(thresholds []Threshold) (Table, error) {
	if len(thresholds) == 0 {
		return Table{}, errs.NewValidationError("thresholds", "at least one threshold is required")
	}
	if thresholds[0].Spend != 0 {
		return Table{}, errs.NewValidationError("thresholds", "first threshold must start at 0")
	}

	for i := 1; i < len(thresholds); i++ {
		prev, cur := thresholds[i-1], thresholds[i]
		if cur.Spend <= prev.Spend {
			return Table{}, errs.NewValidationError("thresholds",
				fmt.Sprintf("spend %d is not above %d", cur.Spend, prev.Spend))
		}
		if cur.Level <= prev.Level {
			return Table{}, errs.NewValidationError("thresholds",
				fmt.Sprintf("level %d is not above %d", cur.Level, prev.Level))
		}
	}

	copied := make([]Threshold, len(thresholds))
	copy(copied, thresholds)
	return Table{thresholds: copied}, nil
}

// MustTable is NewTable for static tables; it panics on invalid input
func MustTable(thresholds []Threshold) Table {
	t, err := NewTable(thresholds)
	if err != nil {
		panic(err)
	}
	return t
}

// Level returns the highest level whose threshold is at most spend.
// Negative spend is treated as zero.
func (t Table) Level(spend int64) int {
	// index of first threshold above spend
	i := sort.Search(len(t.thresholds), func(i int) bool {
		return t.thresholds[i].Spend > spend
	})
	if i == 0 {
		return t.thresholds[0].Level
	}
	return t.thresholds[i-1].Level
}

// Threshold returns the lifetime spend needed to reach level
func (t Table) Threshold(level int) (int64, bool) {
	for _, th := range t.thresholds {
		if th.Level >= level {
			return th.Spend, true
		}
	}
	return 0, false
}

// Next returns the next threshold above spend, or false at the top level
func (t Table) Next(spend int64) (Threshold, bool) {
	for _, th := range t.thresholds {
		if th.Spend > spend {
			return th, true
		}
	}
	return Threshold{}, false
}

// MaxLevel returns the highest level of the table
func (t Table) MaxLevel() int {
	return t.thresholds[len(t.thresholds)-1].Level
}

// Thresholds returns a copy of the table rows
func (t Table) Thresholds() []Threshold {
	out := make([]Threshold, len(t.thresholds))
	copy(out, t.thresholds)
	return out
}
