package repository

import (
	"time"

	"github.com/chigozie9/WareHouse/internal/model"

	"gorm.io/gorm"
)

type TransferLogRepository interface {
	Create(tx *gorm.DB, log *model.TransferLog) error
	FindAll() ([]model.TransferLog, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

// StockMovementData holds moved quantity per day for chart data
type StockMovementData struct {
	Date  string `json:"date"`
	Moved int    `json:"moved"`
}

// DashboardStats holds overview stats
type DashboardStats struct {
	TotalWarehouses  int64 `json:"total_warehouses"`
	TotalItems       int64 `json:"total_items"`
	TotalCapacity    int64 `json:"total_capacity"`
	UsedCapacity     int64 `json:"used_capacity"`
	LowHeadroomCount int64 `json:"low_headroom_count"`
}

type transferLogRepo struct {
	db *gorm.DB
}

func NewTransferLogRepo(db *gorm.DB) TransferLogRepository {
	return &transferLogRepo{db}
}

// Create runs on the tx handle so the log row commits or rolls back together
// with the transfer it records.
func (r *transferLogRepo) Create(tx *gorm.DB, log *model.TransferLog) error {
	return tx.Create(log).Error
}

func (r *transferLogRepo) FindAll() ([]model.TransferLog, error) {
	var logs []model.TransferLog
	err := r.db.Order("created_at DESC").Find(&logs).Error
	return logs, err
}

func (r *transferLogRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.TransferLog{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(quantity), 0) as moved
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Moved); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

func (r *transferLogRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	r.db.Model(&model.Warehouse{}).Count(&stats.TotalWarehouses)
	r.db.Model(&model.InventoryItem{}).Count(&stats.TotalItems)

	r.db.Model(&model.Warehouse{}).Select("COALESCE(SUM(max_capacity), 0)").Scan(&stats.TotalCapacity)
	r.db.Model(&model.Warehouse{}).Select("COALESCE(SUM(current_capacity), 0)").Scan(&stats.UsedCapacity)

	// Warehouses with less than 10 units of headroom left
	r.db.Model(&model.Warehouse{}).Where("max_capacity - current_capacity < ?", 10).Count(&stats.LowHeadroomCount)

	return &stats, nil
}
