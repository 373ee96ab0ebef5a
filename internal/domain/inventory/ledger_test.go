package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/inventory"
)

func ptr(v int64) *int64 { return &v }

func TestApplyPatch_ActualizaSoloLosCamposPresentes(t *testing.T) {
	now := time.Now()
	rec := &entity.StockRecord{
		ProductID: "p1", WarehouseID: "w1",
		Actual: 10, Reservado: 2, Transito: 1, RMA: 0,
	}
	err := inventory.ApplyPatch(rec, inventory.StockPatch{Actual: ptr(25)}, now)
	require.NoError(t, err)

	assert.Equal(t, int64(25), rec.Actual)
	assert.Equal(t, int64(2), rec.Reservado, "los campos omitidos no cambian")
	assert.Equal(t, int64(1), rec.Transito)
	assert.Equal(t, int64(0), rec.RMA)
	assert.Equal(t, now, rec.UpdatedAt)
}

func TestApplyPatch_NegativoAcumulaTodasLasViolaciones(t *testing.T) {
	rec := &entity.StockRecord{ProductID: "p1", WarehouseID: "w1", Actual: 5, Reservado: 3}
	err := inventory.ApplyPatch(rec, inventory.StockPatch{
		Actual:    ptr(-1),
		Reservado: ptr(-2),
		RMA:       ptr(4),
	}, time.Now())

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2, "devuelve el conjunto completo, no solo la primera")

	// Con violaciones no se aplica nada, ni siquiera los campos válidos.
	assert.Equal(t, int64(5), rec.Actual)
	assert.Equal(t, int64(3), rec.Reservado)
	assert.Equal(t, int64(0), rec.RMA)
}

func TestApplyPatch_CeroEsValido(t *testing.T) {
	rec := &entity.StockRecord{ProductID: "p1", WarehouseID: "w1", Actual: 9}
	err := inventory.ApplyPatch(rec, inventory.StockPatch{Actual: ptr(0)}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.Actual)
}

func TestStockPatch_IsEmpty(t *testing.T) {
	assert.True(t, inventory.StockPatch{}.IsEmpty())
	assert.False(t, inventory.StockPatch{Transito: ptr(0)}.IsEmpty())
}
