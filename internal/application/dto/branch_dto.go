package dto

import "time"

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	Address      string   `json:"address"`
	WarehouseIDs []string `json:"warehouseIds" validate:"dive,uuid"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Address      *string  `json:"address"`
	WarehouseIDs []string `json:"warehouseIds" validate:"dive,uuid"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	WarehouseIDs []string  `json:"warehouseIds"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BranchListResponse lista paginada de sucursales.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
