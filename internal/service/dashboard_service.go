package service

import (
	"time"

	"github.com/chigozie9/WareHouse/internal/repository"
)

type DashboardService interface {
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	logRepo repository.TransferLogRepository
}

func NewDashboardService(logRepo repository.TransferLogRepository) DashboardService {
	return &dashboardService{logRepo: logRepo}
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.logRepo.GetStockMovement(startDate, endDate)
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.logRepo.GetDashboardStats()
}
