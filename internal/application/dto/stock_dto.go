package dto

import "time"

// UpdateStockRequest patch parcial de cubetas para
// PUT /api/stock/{productId}/{warehouseId}. Campos omitidos no cambian.
type UpdateStockRequest struct {
	Actual    *int64 `json:"actual,omitempty" validate:"omitempty,min=0"`
	Reservado *int64 `json:"reservado,omitempty" validate:"omitempty,min=0"`
	Transito  *int64 `json:"transito,omitempty" validate:"omitempty,min=0"`
	RMA       *int64 `json:"rma,omitempty" validate:"omitempty,min=0"`
}

// StockResponse salida del registro de stock con el disponible derivado.
// Disponible puede ser negativo si hay sobre-reserva; se reporta tal cual.
type StockResponse struct {
	ProductID   string    `json:"productId"`
	WarehouseID string    `json:"warehouseId"`
	Actual      int64     `json:"actual"`
	Reservado   int64     `json:"reservado"`
	Transito    int64     `json:"transito"`
	RMA         int64     `json:"rma"`
	Disponible  int64     `json:"disponible"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
