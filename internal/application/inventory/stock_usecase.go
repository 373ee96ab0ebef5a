package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// StockUseCase consulta y actualiza el libro de stock por producto+almacén.
// Las escrituras corren en transacción con la fila bloqueada, de modo que dos
// patches concurrentes sobre la misma clave se serialicen.
type StockUseCase struct {
	txRunner      TxRunner
	stockRepo     repository.StockRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:      txRunner,
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
	}
}

// Get devuelve el registro de stock (cubetas en cero si aún no existe fila).
func (uc *StockUseCase) Get(ctx context.Context, companyID, productID, warehouseID string) (*entity.StockRecord, error) {
	if err := uc.resolveRefs(companyID, productID, warehouseID); err != nil {
		return nil, err
	}
	return uc.stockRepo.Get(productID, warehouseID)
}

// Update aplica un patch parcial de cubetas. Rechaza valores negativos con el
// conjunto completo de violaciones; crea el registro con ceros en la primera
// escritura. Devuelve el registro resultante.
func (uc *StockUseCase) Update(ctx context.Context, companyID, productID, warehouseID string, in dto.UpdateStockRequest) (*entity.StockRecord, error) {
	patch := domaininv.StockPatch{
		Actual:    in.Actual,
		Reservado: in.Reservado,
		Transito:  in.Transito,
		RMA:       in.RMA,
	}
	if patch.IsEmpty() {
		verr := domain.NewValidationError()
		verr.Add("body", "el patch no trae ningún campo")
		return nil, verr
	}
	if err := uc.resolveRefs(companyID, productID, warehouseID); err != nil {
		return nil, err
	}

	var result *entity.StockRecord
	err := uc.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		record, err := stockRepo.GetForUpdate(productID, warehouseID)
		if err != nil {
			return err
		}
		if err := domaininv.ApplyPatch(record, patch, time.Now()); err != nil {
			return err
		}
		if err := stockRepo.Upsert(record); err != nil {
			return err
		}
		result = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveRefs verifica que producto y almacén existan y sean de la empresa.
func (uc *StockUseCase) resolveRefs(companyID, productID, warehouseID string) error {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return nil
}
