package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain"
)

func ptr(v int64) *int64 { return &v }

func newStockFixture() (*inventory.StockUseCase, *fakeStockRepo) {
	stock := newFakeStockRepo()
	movs := newFakeMovementRepo()
	products := newFakeProductRepo()
	warehouses := newFakeWarehouseRepo()
	warehouses.seed(w1, testCompany)
	products.seed(prodA, testCompany)
	tx := &fakeTxRunner{movRepo: movs, stockRepo: stock}
	return inventory.NewStockUseCase(tx, stock, warehouses, products), stock
}

func TestStockGet_ClaveNuncaEscritaDevuelveCeros(t *testing.T) {
	uc, _ := newStockFixture()

	rec, err := uc.Get(context.Background(), testCompany, prodA, w1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.Actual)
	assert.Equal(t, int64(0), rec.Disponible())
}

func TestStockUpdate_PatchParcial(t *testing.T) {
	uc, stock := newStockFixture()
	stock.seed(prodA, w1, 10, 2, 0, 0)

	rec, err := uc.Update(context.Background(), testCompany, prodA, w1, dto.UpdateStockRequest{
		Actual: ptr(20),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), rec.Actual)
	assert.Equal(t, int64(2), rec.Reservado, "el campo omitido no cambia")
	assert.Equal(t, int64(18), rec.Disponible())
}

func TestStockUpdate_PatchVacioEsValidacion(t *testing.T) {
	uc, _ := newStockFixture()

	_, err := uc.Update(context.Background(), testCompany, prodA, w1, dto.UpdateStockRequest{})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestStockUpdate_NegativosAcumulanViolaciones(t *testing.T) {
	uc, stock := newStockFixture()
	stock.seed(prodA, w1, 10, 0, 0, 0)

	_, err := uc.Update(context.Background(), testCompany, prodA, w1, dto.UpdateStockRequest{
		Actual:    ptr(-1),
		Reservado: ptr(-1),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)

	rec, _ := stock.Get(prodA, w1)
	assert.Equal(t, int64(10), rec.Actual, "con violaciones no se aplica nada")
}

func TestStockUpdate_PrimeraEscrituraCreaElRegistro(t *testing.T) {
	uc, stock := newStockFixture()

	rec, err := uc.Update(context.Background(), testCompany, prodA, w1, dto.UpdateStockRequest{
		Actual: ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), rec.Actual)

	persisted, _ := stock.Get(prodA, w1)
	assert.Equal(t, int64(5), persisted.Actual)
}

func TestStock_AlmacenDeOtraEmpresa(t *testing.T) {
	uc, _ := newStockFixture()

	_, err := uc.Get(context.Background(), "otra-empresa", prodA, w1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
