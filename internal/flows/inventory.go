package flows

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/models"
)

// UseRequest is the use-item form input. The quantity bounds come from the
// backend's stock policy. Note there is no price field: the unit price is
// read from the fetched catalog, never from the operator.
type UseRequest struct {
	Item     string `validate:"required"`
	Quantity int    `validate:"min=1,max=50"`
}

// UseReceipt confirms a recorded transaction.
type UseReceipt struct {
	TransactionID string
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
}

// Inventory drives the catalog fetch and use-item flows.
type Inventory struct {
	c api.Caller
}

func NewInventory(c api.Caller) Inventory {
	return Inventory{c: c}
}

// Catalog fetches the current sellable items.
func (f Inventory) Catalog() ([]models.Item, error) {
	r := f.c.Call(api.ActionGetInventory, nil)
	if !r.Success {
		return nil, rejected(r, "Unable to load inventory")
	}
	var items []models.Item
	if err := r.Decode("items", &items); err != nil {
		return nil, rejected(api.Failure(""), "Unable to load inventory")
	}
	return items, nil
}

// Use records a transaction against an item from the given catalog, which
// must be the most recently fetched one. The unit price is taken from that
// catalog entry and the total is computed exactly in decimal arithmetic.
func (f Inventory) Use(catalog []models.Item, req UseRequest) (UseReceipt, error) {
	if fault := check(req); fault != nil {
		return UseReceipt{}, fault
	}

	var item *models.Item
	for i := range catalog {
		if catalog[i].Product == req.Item {
			item = &catalog[i]
			break
		}
	}
	if item == nil {
		return UseReceipt{}, invalid("Selected item is not in the current inventory")
	}

	unitPrice := item.SellingPrice
	total := unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))

	r := f.c.Call(api.ActionUseInventory, map[string]any{
		"item":      req.Item,
		"quantity":  req.Quantity,
		"unitPrice": json.Number(unitPrice.String()),
	})
	if !r.Success {
		return UseReceipt{}, rejected(r, "Transaction failed")
	}

	return UseReceipt{
		TransactionID: r.Str("transactionId"),
		UnitPrice:     unitPrice,
		Total:         total,
	}, nil
}
