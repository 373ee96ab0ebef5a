package inventory

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// UpdateItems reemplaza las líneas de un movimiento. Solo se permite mientras
// el estatus es Pendiente; después de aprobar, las cantidades están
// comprometidas y editar sería inconsistente con los deltas de stock.
// Aplica la misma validación y clamp que la creación.
func (uc *CreateMovementUseCase) UpdateItems(ctx context.Context, companyID, movementID string, in dto.UpdateMovementItemsRequest) (*entity.Movement, error) {
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}

	var result *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		movement, err := movRepo.GetForUpdate(movementID)
		if err != nil {
			return err
		}
		if movement == nil || movement.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if movement.Status != entity.StatusPendiente {
			return domain.ErrConflict
		}

		items, err := clampItems(stockRepo, movement.OriginID, in.Items)
		if err != nil {
			return err
		}
		movement.Items = items
		if err := movRepo.ReplaceItems(movement); err != nil {
			return err
		}
		result = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// validateItems reglas de forma por línea, acumulando violaciones.
func validateItems(items []dto.MovementItemRequest) error {
	verr := domain.NewValidationError()
	addItemViolations(verr, items)
	if verr.HasViolations() {
		return verr
	}
	return nil
}

// addItemViolations acumula las reglas por línea sobre el mismo conjunto de
// violaciones que usa el resto del request.
func addItemViolations(verr *domain.ValidationError, items []dto.MovementItemRequest) {
	if len(items) == 0 {
		verr.Add("items", "se requiere al menos una línea")
	}
	for i, item := range items {
		if item.ProductID == "" {
			verr.Add(fmt.Sprintf("items[%d].productId", i), "producto requerido")
		}
		if item.Cantidad < 1 {
			verr.Add(fmt.Sprintf("items[%d].cantidad", i), "la cantidad debe ser al menos 1")
		}
	}
}
