package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// CreateMovementUseCase crea movimientos entre almacenes: valida el request
// completo (acumulando todas las violaciones), recorta cada cantidad al
// disponible en el almacén origen y persiste de forma transaccional con
// bloqueo de fila sobre el stock leído.
type CreateMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewCreateMovementUseCase construye el caso de uso.
func NewCreateMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *CreateMovementUseCase {
	return &CreateMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create valida y persiste un movimiento nuevo en estatus Pendiente.
// Devuelve *domain.ValidationError con TODAS las violaciones si alguna regla
// de forma falla, domain.ErrNotFound si un almacén o producto referenciado no
// resuelve, y el movimiento persistido (con folio y cantidades ya recortadas)
// en caso de éxito.
func (uc *CreateMovementUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateMovementRequest) (*entity.Movement, error) {
	if err := validateCreateRequest(in); err != nil {
		return nil, err
	}

	// Almacenes: ambos deben existir y pertenecer a la empresa.
	origin, err := uc.warehouseRepo.GetByID(in.Origen)
	if err != nil {
		return nil, err
	}
	dest, err := uc.warehouseRepo.GetByID(in.Destino)
	if err != nil {
		return nil, err
	}
	if origin == nil || dest == nil || origin.CompanyID != companyID || dest.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	// Productos: referencias débiles, pero deben resolver.
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		OriginID:      in.Origen,
		DestinationID: in.Destino,
		Notas:         in.Notas,
		Status:        entity.StatusPendiente,
		ResponsibleID: userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Transacción: bloquea el stock leído para que el clamp y la inserción
	// sean atómicos frente a transiciones concurrentes sobre las mismas claves.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		items, err := clampItems(stockRepo, in.Origen, in.Items)
		if err != nil {
			return err
		}
		movement.Items = items

		serial, err := movRepo.NextSerial()
		if err != nil {
			return err
		}
		movement.Serial = fmt.Sprintf("MOV-%06d", serial)

		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// validateCreateRequest aplica las reglas de forma acumulando violaciones:
// origen y destino presentes y distintos, al menos una línea, producto
// resuelto y cantidad >= 1 por línea.
func validateCreateRequest(in dto.CreateMovementRequest) error {
	verr := domain.NewValidationError()
	if in.Origen == "" {
		verr.Add("origen", "almacén origen requerido")
	}
	if in.Destino == "" {
		verr.Add("destino", "almacén destino requerido")
	}
	if in.Origen != "" && in.Origen == in.Destino {
		verr.Add("destino", "origen y destino deben ser distintos")
	}
	addItemViolations(verr, in.Items)
	if verr.HasViolations() {
		return verr
	}
	return nil
}

// clampItems lee el stock de origen con bloqueo de fila y recorta cada
// cantidad al disponible: pedir más de lo disponible no rechaza, reduce. El
// disponible se descuenta con lo que las líneas anteriores del mismo request
// ya tomaron del mismo producto, para que el total del movimiento nunca
// exceda el disponible. Si no queda disponible legal (< 1) sí se reporta
// violación.
func clampItems(stockRepo repository.StockRepository, originID string, items []dto.MovementItemRequest) ([]entity.MovementItem, error) {
	verr := domain.NewValidationError()
	out := make([]entity.MovementItem, 0, len(items))
	tomado := make(map[string]int64, len(items))
	for i, item := range items {
		stock, err := stockRepo.GetForUpdate(item.ProductID, originID)
		if err != nil {
			return nil, err
		}
		disponible := stock.Disponible() - tomado[item.ProductID]
		cantidad := item.Cantidad
		if disponible < 1 {
			verr.Add(fmt.Sprintf("items[%d].cantidad", i), "sin stock disponible en el almacén de origen")
			continue
		}
		if cantidad > disponible {
			cantidad = disponible
		}
		tomado[item.ProductID] += cantidad
		out = append(out, entity.MovementItem{
			ProductID: item.ProductID,
			Cantidad:  cantidad,
			Notas:     item.Notas,
		})
	}
	if verr.HasViolations() {
		return nil, verr
	}
	return out, nil
}
