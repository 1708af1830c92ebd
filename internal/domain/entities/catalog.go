package entities

import "github.com/shopspring/decimal"

// CatalogPart is a purchasable inventory part as exposed by the part catalog
// read contract. Unit values are the catalog's CURRENT prices; allocations
// freeze their own copy at allocation time.
type CatalogPart struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	AvailableQuantity int             `json:"available_quantity"`
}

// FaultType is an establishment-level catalog entry for selectable defect /
// service lines.
type FaultType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Client is the resolved customer reference used by a WorkOrder.
type Client struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
