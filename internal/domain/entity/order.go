package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento de una orden.
const (
	DiscountPorcentual = "Porcentual" // descuento como % del subtotal
	DiscountAbsoluto   = "Absoluto"   // descuento como monto fijo
)

// Order representa una orden de venta con la aritmética de totales resuelta
// en el servidor (descuento, impuesto, crédito aplicado).
// Total siempre es >= 0 y el descuento efectivo nunca excede el subtotal.
type Order struct {
	ID            string
	CompanyID     string
	BranchID      string // sucursal donde se vendió (referencia débil)
	Subtotal      decimal.Decimal
	Descuento     decimal.Decimal
	TipoDescuento string // Porcentual | Absoluto
	ImpuestoPct   decimal.Decimal
	Credito       decimal.Decimal
	Total         decimal.Decimal
	Notas         string
	CreatedBy     string // UserID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
