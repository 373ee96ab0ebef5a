package dto

import "time"

// MovementItemRequest línea del movimiento en el request de creación/edición.
type MovementItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Cantidad  int64  `json:"cantidad" validate:"required,min=1"`
	Notas     string `json:"notas,omitempty"`
}

// CreateMovementRequest body para POST /api/movements.
// Los nombres de campo en español son el contrato externo existente.
type CreateMovementRequest struct {
	Origen  string                `json:"origen" validate:"required,uuid"`
	Destino string                `json:"destino" validate:"required,uuid"`
	Items   []MovementItemRequest `json:"items" validate:"required,min=1,dive"`
	Notas   string                `json:"notas,omitempty"`
}

// UpdateMovementStatusRequest body para PUT /api/movements/{id}/status.
type UpdateMovementStatusRequest struct {
	Estatus string `json:"estatus" validate:"required,oneof=Pendiente Aprobado Transito Recibido Anulado"`
	Notas   string `json:"notas,omitempty"`
}

// UpdateMovementItemsRequest body para PUT /api/movements/{id}/items
// (solo permitido mientras el movimiento está en Pendiente).
type UpdateMovementItemsRequest struct {
	Items []MovementItemRequest `json:"items" validate:"required,min=1,dive"`
}

// MovementItemResponse línea del movimiento en respuestas.
type MovementItemResponse struct {
	ProductID string `json:"productId"`
	Cantidad  int64  `json:"cantidad"`
	Notas     string `json:"notas,omitempty"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID            string                 `json:"id"`
	Serial        string                 `json:"serial"`
	Origen        string                 `json:"origen"`
	Destino       string                 `json:"destino"`
	Items         []MovementItemResponse `json:"items"`
	Notas         string                 `json:"notas,omitempty"`
	Estatus       string                 `json:"estatus"`
	ResponsableID string                 `json:"responsableId"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
