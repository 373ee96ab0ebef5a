package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// BranchRepository define el puerto de persistencia para sucursales (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error)
	Delete(id string) error
}
