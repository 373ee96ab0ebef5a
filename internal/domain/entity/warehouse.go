package entity

import "time"

// Warehouse representa un almacén físico donde se guarda inventario.
// No confundir con Branch (sucursal): la sucursal vende, el almacén almacena.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
