package gorm

import (
	"gorm.io/gorm"

	"github.com/viadata/crashdb/pkg/server/store"
)

// Ensure HealthStore implements store.HealthStore
var _ store.HealthStore = (*HealthStore)(nil)

// HealthStore implements store.HealthStore using GORM
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a new HealthStore
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

// Ping checks if the database is reachable
func (s *HealthStore) Ping() error {
	var result int
	if tx := s.db.Raw("SELECT 1").Scan(&result); tx.Error != nil {
		return translateError(tx.Error)
	}
	return nil
}
