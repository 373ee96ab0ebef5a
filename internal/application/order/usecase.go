package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	domainorder "github.com/tu-usuario/almacen-pro/internal/domain/order"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// UseCase crea y consulta órdenes de venta. El total siempre se calcula en el
// servidor con domainorder.ComputeTotal; el valor que mande el cliente se
// ignora.
type UseCase struct {
	orderRepo  repository.OrderRepository
	branchRepo repository.BranchRepository
}

// NewUseCase construye el caso de uso de órdenes.
func NewUseCase(orderRepo repository.OrderRepository, branchRepo repository.BranchRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo, branchRepo: branchRepo}
}

// Create valida el request (acumulando violaciones), calcula el total y
// persiste la orden.
func (uc *UseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateOrderRequest) (*entity.Order, error) {
	verr := domain.NewValidationError()
	if in.Subtotal.LessThan(decimal.Zero) {
		verr.Add("subtotal", "no puede ser negativo")
	}
	if in.Descuento.LessThan(decimal.Zero) {
		verr.Add("descuento", "no puede ser negativo")
	}
	if in.TipoDescuento != entity.DiscountPorcentual && in.TipoDescuento != entity.DiscountAbsoluto {
		verr.Add("tipoDescuento", "debe ser Porcentual o Absoluto")
	}
	if in.ImpuestoPct.LessThan(decimal.Zero) {
		verr.Add("impuestoPct", "no puede ser negativo")
	}
	if in.Credito.LessThan(decimal.Zero) {
		verr.Add("credito", "no puede ser negativo")
	}
	if verr.HasViolations() {
		return nil, verr
	}

	if in.BranchID != "" {
		branch, err := uc.branchRepo.GetByID(in.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil || branch.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	ord := &entity.Order{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		BranchID:      in.BranchID,
		Subtotal:      in.Subtotal,
		Descuento:     in.Descuento,
		TipoDescuento: in.TipoDescuento,
		ImpuestoPct:   in.ImpuestoPct,
		Credito:       in.Credito,
		Total:         domainorder.ComputeTotal(in.Subtotal, in.Descuento, in.TipoDescuento, in.ImpuestoPct, in.Credito),
		Notas:         in.Notas,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.orderRepo.Create(ord); err != nil {
		return nil, err
	}
	return ord, nil
}

// GetByID devuelve la orden si existe y pertenece a la empresa.
func (uc *UseCase) GetByID(ctx context.Context, companyID, id string) (*entity.Order, error) {
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil || ord.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return ord, nil
}

// List lista las órdenes de la empresa con paginación.
func (uc *UseCase) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Order, error) {
	return uc.orderRepo.ListByCompany(companyID, limit, offset)
}
