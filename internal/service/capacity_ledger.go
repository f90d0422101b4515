package service

import (
	"github.com/chigozie9/WareHouse/internal/apperr"
	"github.com/chigozie9/WareHouse/internal/model"
)

// reserveCapacity decides whether a signed quantity delta fits the warehouse
// and returns the resulting capacity value. It never persists anything; the
// caller commits the returned value in the same transaction as the item
// mutation it accounts for.
func reserveCapacity(w *model.Warehouse, delta int) (int, error) {
	candidate := w.CurrentCapacity + delta
	if delta > 0 && candidate > w.MaxCapacity {
		return 0, &apperr.InsufficientCapacityError{Available: w.Headroom()}
	}
	if candidate < 0 {
		// Callers bound removals by the existing quantity, so this only
		// fires on a corrupted capacity value.
		return 0, apperr.ErrNegativeCapacity
	}
	return candidate, nil
}
