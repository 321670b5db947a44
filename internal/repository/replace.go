package repository

import (
	"fmt"

	"gorm.io/gorm"
)

const insertBatchSize = 200

// replaceAll clears the table behind model and inserts records, atomically for that table only
func replaceAll[T any](db *gorm.DB, model *T, records []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&records, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
}
