// Package apperr defines the domain error taxonomy shared by the services
// and mapped to HTTP statuses by the handlers. Anything outside these values
// is an infrastructure failure and must not be shown to clients.
package apperr

import (
	"errors"
	"fmt"
)

// Not-found failures. Always terminate the operation with no state change.
var (
	ErrWarehouseNotFound     = errors.New("warehouse not found")
	ErrItemNotFound          = errors.New("item not found")
	ErrItemWarehouseMismatch = errors.New("item does not belong to this warehouse")
)

// Validation failures. Rejected before any store write.
var (
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrInvalidCapacity  = errors.New("current capacity cannot exceed max capacity")
	ErrDuplicateName    = errors.New("warehouse name already exists")
	ErrDuplicateSKU     = errors.New("SKU already exists in this warehouse")
	ErrSameWarehouse    = errors.New("source and destination warehouse must differ")
	ErrNegativeCapacity = errors.New("capacity cannot become negative")
)

// Precondition failures.
var ErrWarehouseNotEmpty = errors.New("cannot delete a warehouse that still has inventory items")

// InsufficientCapacityError reports the headroom still available in the
// target warehouse so the caller can tell the user how much would fit.
type InsufficientCapacityError struct {
	Available int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("not enough capacity, available: %d", e.Available)
}

// InsufficientStockError reports the quantity actually present in the
// source warehouse.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock in source warehouse, available: %d", e.Available)
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrWarehouseNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrItemWarehouseMismatch)
}

// IsValidation reports whether err is a request validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidCapacity) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrDuplicateSKU) ||
		errors.Is(err, ErrSameWarehouse) ||
		errors.Is(err, ErrNegativeCapacity)
}

// IsConflict reports whether err is a capacity/stock conflict or a failed
// precondition such as deleting a non-empty warehouse.
func IsConflict(err error) bool {
	var capErr *InsufficientCapacityError
	var stockErr *InsufficientStockError
	return errors.As(err, &capErr) ||
		errors.As(err, &stockErr) ||
		errors.Is(err, ErrWarehouseNotEmpty)
}
