package migration

import (
	"context"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedTransactionTypes inserts every known transaction type name that is missing.
// Existing rows keep their ids.
func SeedTransactionTypes(ctx context.Context, db *gorm.DB) error {
	for _, literal := range entity.AllTransactionTypes {
		result := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&model.TransactionType{Name: literal.String()})
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
