package service

import (
	"errors"
	"testing"

	"github.com/chigozie9/WareHouse/internal/apperr"
	"github.com/chigozie9/WareHouse/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transferReq(sourceID, destID uuid.UUID, sku string, quantity int) *model.TransferRequest {
	return &model.TransferRequest{
		SourceWarehouseID:      sourceID,
		DestinationWarehouseID: destID,
		SKU:                    sku,
		Quantity:               quantity,
	}
}

func TestTransfer_MovesStockBetweenWarehouses(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 60)
	destID := f.warehouses.seed("W2", 50, 0)
	f.items.seed(sourceID, "SKU-A", "Bolts", 60)

	require.NoError(t, f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 30), "tester"))

	sourceItems, _ := f.inventory.ListItems(sourceID)
	require.Len(t, sourceItems, 1)
	assert.Equal(t, 30, sourceItems[0].Quantity)
	assert.Equal(t, 30, f.capacityOf(sourceID))

	destItems, _ := f.inventory.ListItems(destID)
	require.Len(t, destItems, 1)
	assert.Equal(t, "SKU-A", destItems[0].SKU)
	assert.Equal(t, 30, destItems[0].Quantity)
	assert.Equal(t, destID, destItems[0].WarehouseID)
	assert.Equal(t, 30, f.capacityOf(destID))

	// Aggregate stock is conserved
	assert.Equal(t, 60, f.capacityOf(sourceID)+f.capacityOf(destID))

	logs, _ := f.transfers.History()
	require.Len(t, logs, 1)
	assert.Equal(t, 30, logs[0].Quantity)
}

func TestTransfer_AbortsWhenDestinationLacksHeadroom(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 60)
	destID := f.warehouses.seed("W2", 50, 0)
	f.items.seed(sourceID, "SKU-A", "Bolts", 60)

	require.NoError(t, f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 30), "tester"))

	// The second transfer would empty the source item and merge into the
	// destination, but the destination headroom is only 20. The whole
	// operation must abort with both warehouses untouched.
	err := f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 30), "tester")
	var capErr *apperr.InsufficientCapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 20, capErr.Available)

	sourceItems, _ := f.inventory.ListItems(sourceID)
	require.Len(t, sourceItems, 1)
	assert.Equal(t, 30, sourceItems[0].Quantity)
	assert.Equal(t, 30, f.capacityOf(sourceID))

	destItems, _ := f.inventory.ListItems(destID)
	require.Len(t, destItems, 1)
	assert.Equal(t, 30, destItems[0].Quantity)
	assert.Equal(t, 30, f.capacityOf(destID))

	logs, _ := f.transfers.History()
	assert.Len(t, logs, 1)
}

func TestTransfer_EmptiedSourceItemIsDeleted(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 30)
	destID := f.warehouses.seed("W2", 100, 0)
	f.items.seed(sourceID, "SKU-A", "Bolts", 30)

	require.NoError(t, f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 30), "tester"))

	sourceItems, _ := f.inventory.ListItems(sourceID)
	assert.Empty(t, sourceItems)
	assert.Equal(t, 0, f.capacityOf(sourceID))

	destItems, _ := f.inventory.ListItems(destID)
	require.Len(t, destItems, 1)
	assert.Equal(t, 30, destItems[0].Quantity)
}

func TestTransfer_MergesIntoExistingDestinationItem(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 40)
	destID := f.warehouses.seed("W2", 100, 20)
	f.items.seed(sourceID, "SKU-A", "Bolts", 40)
	f.items.seed(destID, "SKU-A", "Bolts", 20)

	require.NoError(t, f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 15), "tester"))

	destItems, _ := f.inventory.ListItems(destID)
	require.Len(t, destItems, 1)
	assert.Equal(t, 35, destItems[0].Quantity)
	assert.Equal(t, 35, f.capacityOf(destID))
	assert.Equal(t, 25, f.capacityOf(sourceID))
}

func TestTransfer_CreatedDestinationItemCopiesMetadata(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 40)
	destID := f.warehouses.seed("W2", 100, 0)
	itemID := f.items.seed(sourceID, "SKU-A", "Bolts", 40)

	// Enrich the source item's descriptive attributes
	item, _ := f.items.FindByID(itemID)
	item.Category = "fasteners"
	item.StorageLocation = "A-3"
	require.NoError(t, f.items.Save(nil, item))

	require.NoError(t, f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 10), "tester"))

	destItems, _ := f.inventory.ListItems(destID)
	require.Len(t, destItems, 1)
	assert.Equal(t, "Bolts", destItems[0].Name)
	assert.Equal(t, "fasteners", destItems[0].Category)
	assert.Equal(t, "A-3", destItems[0].StorageLocation)
	assert.NotEqual(t, itemID, destItems[0].ID)
}

func TestTransfer_SameWarehouse(t *testing.T) {
	f := newFixture()
	id := f.warehouses.seed("W1", 100, 0)

	err := f.transfers.Transfer(transferReq(id, id, "SKU-A", 10), "tester")
	assert.ErrorIs(t, err, apperr.ErrSameWarehouse)
}

func TestTransfer_InvalidQuantity(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 0)
	destID := f.warehouses.seed("W2", 100, 0)

	err := f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 0), "tester")
	assert.ErrorIs(t, err, apperr.ErrInvalidQuantity)
}

func TestTransfer_WarehouseNotFound(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 10)
	f.items.seed(sourceID, "SKU-A", "Bolts", 10)

	err := f.transfers.Transfer(transferReq(sourceID, uuid.New(), "SKU-A", 10), "tester")
	assert.ErrorIs(t, err, apperr.ErrWarehouseNotFound)

	err = f.transfers.Transfer(transferReq(uuid.New(), sourceID, "SKU-A", 10), "tester")
	assert.ErrorIs(t, err, apperr.ErrWarehouseNotFound)
}

func TestTransfer_ItemNotFoundInSource(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 0)
	destID := f.warehouses.seed("W2", 100, 0)

	err := f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 10), "tester")
	assert.ErrorIs(t, err, apperr.ErrItemNotFound)
}

func TestTransfer_InsufficientStockReportsAvailable(t *testing.T) {
	f := newFixture()
	sourceID := f.warehouses.seed("W1", 100, 10)
	destID := f.warehouses.seed("W2", 100, 0)
	f.items.seed(sourceID, "SKU-A", "Bolts", 10)

	err := f.transfers.Transfer(transferReq(sourceID, destID, "SKU-A", 25), "tester")
	var stockErr *apperr.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 10, stockErr.Available)

	assert.Equal(t, 10, f.capacityOf(sourceID))
	assert.Equal(t, 0, f.capacityOf(destID))
}
