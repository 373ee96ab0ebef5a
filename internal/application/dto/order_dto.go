package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/orders. El total NO se acepta del
// cliente: siempre lo calcula el servidor.
type CreateOrderRequest struct {
	BranchID      string          `json:"branchId,omitempty" validate:"omitempty,uuid"`
	Subtotal      decimal.Decimal `json:"subtotal" validate:"required"`
	Descuento     decimal.Decimal `json:"descuento"`
	TipoDescuento string          `json:"tipoDescuento" validate:"required,oneof=Porcentual Absoluto"`
	ImpuestoPct   decimal.Decimal `json:"impuestoPct"`
	Credito       decimal.Decimal `json:"credito"`
	Notas         string          `json:"notas,omitempty"`
}

// OrderResponse salida de una orden con el total calculado.
type OrderResponse struct {
	ID            string          `json:"id"`
	BranchID      string          `json:"branchId,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Descuento     decimal.Decimal `json:"descuento"`
	TipoDescuento string          `json:"tipoDescuento"`
	ImpuestoPct   decimal.Decimal `json:"impuestoPct"`
	Credito       decimal.Decimal `json:"credito"`
	Total         decimal.Decimal `json:"total"`
	Notas         string          `json:"notas,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
