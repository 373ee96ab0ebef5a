package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// MovementQueryUseCase lecturas de movimientos (sin transacción).
type MovementQueryUseCase struct {
	movementRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso de consulta.
func NewMovementQueryUseCase(movementRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo}
}

// GetByID devuelve el movimiento si existe y pertenece a la empresa.
func (uc *MovementQueryUseCase) GetByID(ctx context.Context, companyID, id string) (*entity.Movement, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil || movement.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return movement, nil
}

// List lista los movimientos de la empresa con paginación.
func (uc *MovementQueryUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByCompany(companyID, limit, offset)
}
