package repository

import "gorm.io/gorm"

// TxManager runs a unit of work. Every mutating service operation executes
// inside exactly one Do call so its reads, checks and writes commit or roll
// back together.
type TxManager interface {
	Do(fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db}
}

func (m *gormTxManager) Do(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
