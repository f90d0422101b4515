package service

import (
	"errors"

	"github.com/chigozie9/WareHouse/internal/apperr"
	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseService interface {
	List() ([]model.Warehouse, error)
	Get(id uuid.UUID) (*model.Warehouse, error)
	Create(draft *model.Warehouse, userID string) (*model.Warehouse, error)
	Update(id uuid.UUID, changes *model.Warehouse, userID string) (*model.Warehouse, error)
	Delete(id uuid.UUID, userID string) error
}

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
	itemRepo      repository.ItemRepository
	txManager     repository.TxManager
}

func NewWarehouseService(wRepo repository.WarehouseRepository, iRepo repository.ItemRepository, txm repository.TxManager) WarehouseService {
	return &warehouseService{
		warehouseRepo: wRepo,
		itemRepo:      iRepo,
		txManager:     txm,
	}
}

func (s *warehouseService) List() ([]model.Warehouse, error) {
	return s.warehouseRepo.FindAll()
}

func (s *warehouseService) Get(id uuid.UUID) (*model.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrWarehouseNotFound
		}
		return nil, err
	}
	return warehouse, nil
}

// Create stores a new warehouse. An omitted current capacity means empty; a
// supplied one above max capacity is rejected, never clamped, because a
// clamped value would no longer match the (empty) item set.
func (s *warehouseService) Create(draft *model.Warehouse, userID string) (*model.Warehouse, error) {
	if draft.CurrentCapacity > draft.MaxCapacity {
		return nil, apperr.ErrInvalidCapacity
	}

	// Name uniqueness pre-check; the unique index backs it up under races.
	existing, _ := s.warehouseRepo.FindByName(draft.Name)
	if existing != nil && existing.ID != uuid.Nil {
		return nil, apperr.ErrDuplicateName
	}

	draft.ID = uuid.Nil
	draft.CreatedBy = userID
	draft.UpdatedBy = userID
	if err := s.warehouseRepo.Create(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Update replaces name, location and max capacity. Current capacity is
// derived from item operations and is never settable here. Shrinking max
// capacity below the current load is rejected rather than truncating stock.
func (s *warehouseService) Update(id uuid.UUID, changes *model.Warehouse, userID string) (*model.Warehouse, error) {
	var updated *model.Warehouse
	err := s.txManager.Do(func(tx *gorm.DB) error {
		existing, err := s.warehouseRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrWarehouseNotFound
			}
			return err
		}

		if changes.Name != existing.Name {
			other, _ := s.warehouseRepo.FindByName(changes.Name)
			if other != nil && other.ID != uuid.Nil && other.ID != id {
				return apperr.ErrDuplicateName
			}
		}

		if changes.MaxCapacity < existing.CurrentCapacity {
			return apperr.ErrInvalidCapacity
		}

		existing.Name = changes.Name
		existing.Location = changes.Location
		existing.MaxCapacity = changes.MaxCapacity
		existing.UpdatedBy = userID

		if err := s.warehouseRepo.Save(tx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a warehouse. Blocked while any item still references it.
func (s *warehouseService) Delete(id uuid.UUID, userID string) error {
	return s.txManager.Do(func(tx *gorm.DB) error {
		existing, err := s.warehouseRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrWarehouseNotFound
			}
			return err
		}

		hasItems, err := s.itemRepo.ExistsByWarehouse(existing.ID)
		if err != nil {
			return err
		}
		if hasItems {
			return apperr.ErrWarehouseNotEmpty
		}

		return s.warehouseRepo.Delete(tx, existing.ID)
	})
}
