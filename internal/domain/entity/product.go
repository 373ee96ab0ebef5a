package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-almacén).
// El stock se maneja por almacén en StockRecord.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	UnitMeasure string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
