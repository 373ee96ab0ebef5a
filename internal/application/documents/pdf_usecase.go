package documents

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// PDFUseCase resuelve las entidades referenciadas y delega la generación del
// documento al Generator.
type PDFUseCase struct {
	movementRepo  repository.MovementRepository
	orderRepo     repository.OrderRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	branchRepo    repository.BranchRepository
	generator     Generator
}

// NewPDFUseCase construye el caso de uso de documentos.
func NewPDFUseCase(
	movementRepo repository.MovementRepository,
	orderRepo repository.OrderRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	generator Generator,
) *PDFUseCase {
	return &PDFUseCase{
		movementRepo:  movementRepo,
		orderRepo:     orderRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		branchRepo:    branchRepo,
		generator:     generator,
	}
}

// MovementPDF genera la guía de traslado de un movimiento.
func (uc *PDFUseCase) MovementPDF(ctx context.Context, companyID, movementID string) ([]byte, error) {
	movement, err := uc.movementRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if movement == nil || movement.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	origin, err := uc.warehouseRepo.GetByID(movement.OriginID)
	if err != nil {
		return nil, err
	}
	destination, err := uc.warehouseRepo.GetByID(movement.DestinationID)
	if err != nil {
		return nil, err
	}
	if origin == nil || destination == nil {
		return nil, domain.ErrNotFound
	}
	products := make(map[string]*entity.Product, len(movement.Items))
	for _, item := range movement.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			products[item.ProductID] = product
		}
	}
	return uc.generator.GenerateMovementPDF(ctx, movement, origin, destination, products)
}

// OrderPDF genera el comprobante de una orden.
func (uc *PDFUseCase) OrderPDF(ctx context.Context, companyID, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	var branch *entity.Branch
	if order.BranchID != "" {
		branch, err = uc.branchRepo.GetByID(order.BranchID)
		if err != nil {
			return nil, err
		}
	}
	return uc.generator.GenerateOrderPDF(ctx, order, branch)
}
