package inventory_test

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de inventario. No hay concurrencia en
// los tests, así que no llevan locks; GetForUpdate se comporta igual que Get.

type fakeStockRepo struct {
	records map[string]*entity.StockRecord // key productID|warehouseID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{records: make(map[string]*entity.StockRecord)}
}

func (f *fakeStockRepo) key(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (f *fakeStockRepo) seed(productID, warehouseID string, actual, reservado, transito, rma int64) {
	f.records[f.key(productID, warehouseID)] = &entity.StockRecord{
		ProductID: productID, WarehouseID: warehouseID,
		Actual: actual, Reservado: reservado, Transito: transito, RMA: rma,
	}
}

func (f *fakeStockRepo) Get(productID, warehouseID string) (*entity.StockRecord, error) {
	if rec, ok := f.records[f.key(productID, warehouseID)]; ok {
		cp := *rec
		return &cp, nil
	}
	return &entity.StockRecord{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (f *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.StockRecord, error) {
	return f.Get(productID, warehouseID)
}

func (f *fakeStockRepo) Upsert(record *entity.StockRecord) error {
	cp := *record
	f.records[f.key(record.ProductID, record.WarehouseID)] = &cp
	return nil
}

type fakeMovementRepo struct {
	movements map[string]*entity.Movement
	serial    int64
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{movements: make(map[string]*entity.Movement)}
}

func (f *fakeMovementRepo) Create(movement *entity.Movement) error {
	cp := *movement
	f.movements[movement.ID] = &cp
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	if m, ok := f.movements[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeMovementRepo) GetForUpdate(id string) (*entity.Movement, error) {
	return f.GetByID(id)
}

func (f *fakeMovementRepo) UpdateStatus(movement *entity.Movement) error {
	cp := *movement
	f.movements[movement.ID] = &cp
	return nil
}

func (f *fakeMovementRepo) ReplaceItems(movement *entity.Movement) error {
	cp := *movement
	f.movements[movement.ID] = &cp
	return nil
}

func (f *fakeMovementRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.movements {
		if m.CompanyID == companyID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) NextSerial() (int64, error) {
	f.serial++
	return f.serial, nil
}

type fakeTxRunner struct {
	movRepo   repository.MovementRepository
	stockRepo repository.StockRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.StockRepository) error) error {
	return fn(f.movRepo, f.stockRepo)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) seed(id, companyID string) {
	f.products[id] = &entity.Product{ID: id, CompanyID: companyID, SKU: "SKU-" + id, Name: "Producto " + id}
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
}

func (f *fakeWarehouseRepo) seed(id, companyID string) {
	f.warehouses[id] = &entity.Warehouse{ID: id, CompanyID: companyID, Name: "Almacén " + id}
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}

func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }

func (f *fakeWarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}

func (f *fakeWarehouseRepo) Delete(id string) error { delete(f.warehouses, id); return nil }
