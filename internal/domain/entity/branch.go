package entity

import "time"

// Branch representa una sucursal: un punto de venta que puede surtirse de
// varios almacenes (distinto de Warehouse, que es el lugar físico de stock).
type Branch struct {
	ID           string
	CompanyID    string
	Name         string
	Address      string
	WarehouseIDs []string // almacenes desde los que se surte la sucursal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
