package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes de venta.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error)
}
