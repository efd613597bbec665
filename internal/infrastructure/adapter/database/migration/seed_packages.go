package migration

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/model"
)

// SeedCreditPackages inserts the default catalogue. Existing rows are left
// untouched so operators can edit prices in place.
func SeedCreditPackages(db *gorm.DB) error {
	defaults := entity.DefaultCreditPackages()
	rows := make([]*model.CreditPackage, 0, len(defaults))
	for i := range defaults {
		rows = append(rows, model.FromPackage(&defaults[i]))
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&rows).Error
}
