package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

type transitionFixture struct {
	uc    *inventory.TransitionMovementUseCase
	stock *fakeStockRepo
	movs  *fakeMovementRepo
}

func newTransitionFixture() *transitionFixture {
	stock := newFakeStockRepo()
	movs := newFakeMovementRepo()
	tx := &fakeTxRunner{movRepo: movs, stockRepo: stock}
	return &transitionFixture{
		uc:    inventory.NewTransitionMovementUseCase(tx),
		stock: stock,
		movs:  movs,
	}
}

func (f *transitionFixture) seedMovement(status string, cantidad int64) *entity.Movement {
	now := time.Now()
	m := &entity.Movement{
		ID:            "mov-1",
		CompanyID:     testCompany,
		Serial:        "MOV-000001",
		OriginID:      w1,
		DestinationID: w2,
		Items:         []entity.MovementItem{{ProductID: prodA, Cantidad: cantidad}},
		Status:        status,
		ResponsibleID: testUser,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	_ = f.movs.Create(m)
	return m
}

func (f *transitionFixture) seedMovementItems(status string, items []entity.MovementItem) *entity.Movement {
	m := f.seedMovement(status, 0)
	m.Items = items
	_ = f.movs.ReplaceItems(m)
	return m
}

func (f *transitionFixture) actual(productID, warehouseID string) int64 {
	rec, _ := f.stock.Get(productID, warehouseID)
	return rec.Actual
}

func (f *transitionFixture) transito(productID, warehouseID string) int64 {
	rec, _ := f.stock.Get(productID, warehouseID)
	return rec.Transito
}

func TestTransition_AprobarNoTocaStock(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusPendiente, 3)
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	m, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusAprobado, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAprobado, m.Status)
	assert.Equal(t, int64(10), f.actual(prodA, w1))
}

func TestTransition_DespacharMueveActualATransito(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusAprobado, 3)
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	m, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusTransito, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusTransito, m.Status)

	// Origen pierde la existencia; el destino la ve llegar como tránsito.
	assert.Equal(t, int64(7), f.actual(prodA, w1))
	assert.Equal(t, int64(3), f.transito(prodA, w2))
	assert.Equal(t, int64(0), f.actual(prodA, w2))
}

func TestTransition_RecibirConvierteTransitoEnActual(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusTransito, 3)
	f.stock.seed(prodA, w1, 7, 0, 0, 0)
	f.stock.seed(prodA, w2, 0, 0, 3, 0)

	m, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusRecibido, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRecibido, m.Status)

	assert.Equal(t, int64(7), f.actual(prodA, w1))
	assert.Equal(t, int64(0), f.transito(prodA, w2))
	assert.Equal(t, int64(3), f.actual(prodA, w2))
}

// Ciclo completo W1 -> W2: la cantidad total se conserva en cada paso.
func TestTransition_CicloCompletoConservaCantidadTotal(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusPendiente, 3)
	f.stock.seed(prodA, w1, 10, 0, 0, 0)
	f.stock.seed(prodA, w2, 1, 0, 0, 0)

	sumTotal := func() int64 {
		o, _ := f.stock.Get(prodA, w1)
		d, _ := f.stock.Get(prodA, w2)
		return o.Actual + o.Transito + d.Actual + d.Transito
	}
	require.Equal(t, int64(11), sumTotal())

	for _, status := range []string{entity.StatusAprobado, entity.StatusTransito, entity.StatusRecibido} {
		_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", status, "")
		require.NoError(t, err)
		assert.Equal(t, int64(11), sumTotal(), "tras pasar a %s", status)
	}

	assert.Equal(t, int64(7), f.actual(prodA, w1))
	assert.Equal(t, int64(4), f.actual(prodA, w2))
}

func TestTransition_AnularDesdeTransitoRestituyeOrigen(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusTransito, 3)
	f.stock.seed(prodA, w1, 7, 0, 0, 0)
	f.stock.seed(prodA, w2, 0, 0, 3, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusAnulado, "")
	require.NoError(t, err)

	assert.Equal(t, int64(10), f.actual(prodA, w1))
	assert.Equal(t, int64(0), f.transito(prodA, w2))
}

func TestTransition_AnularDesdeRecibidoDevuelveAlOrigen(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusRecibido, 3)
	f.stock.seed(prodA, w1, 7, 0, 0, 0)
	f.stock.seed(prodA, w2, 3, 0, 0, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusAnulado, "")
	require.NoError(t, err)

	assert.Equal(t, int64(10), f.actual(prodA, w1))
	assert.Equal(t, int64(0), f.actual(prodA, w2))
}

func TestTransition_AnularDesdePendienteNoTocaStock(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusPendiente, 3)
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusAnulado, "")
	require.NoError(t, err)
	assert.Equal(t, int64(10), f.actual(prodA, w1))
}

// Re-anular es legal y no vuelve a revertir stock: la cancelación es idempotente.
func TestTransition_ReAnularEsIdempotente(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusTransito, 3)
	f.stock.seed(prodA, w1, 7, 0, 0, 0)
	f.stock.seed(prodA, w2, 0, 0, 3, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusAnulado, "")
	require.NoError(t, err)
	require.Equal(t, int64(10), f.actual(prodA, w1))

	// Segunda anulación: mismo estatus final, stock intacto.
	m, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusAnulado, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAnulado, m.Status)
	assert.Equal(t, int64(10), f.actual(prodA, w1))
	assert.Equal(t, int64(0), f.transito(prodA, w2))
}

func TestTransition_IlegalNoTocaStock(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusPendiente, 3)
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusRecibido, "")

	var terr *domain.IllegalTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, entity.StatusPendiente, terr.From)
	assert.Equal(t, entity.StatusRecibido, terr.To)

	assert.Equal(t, int64(10), f.actual(prodA, w1))
	assert.Equal(t, int64(0), f.transito(prodA, w2))

	m, _ := f.movs.GetByID("mov-1")
	assert.Equal(t, entity.StatusPendiente, m.Status, "el estatus tampoco cambia")
}

func TestTransition_EstatusDesconocidoEsValidacion(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusPendiente, 3)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", "Cerrado", "")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestTransition_DespachoSinStockSuficiente(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusAprobado, 5)
	f.stock.seed(prodA, w1, 2, 0, 0, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusTransito, "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada se mutó.
	assert.Equal(t, int64(2), f.actual(prodA, w1))
	assert.Equal(t, int64(0), f.transito(prodA, w2))
	m, _ := f.movs.GetByID("mov-1")
	assert.Equal(t, entity.StatusAprobado, m.Status)
}

func TestTransition_MovimientoDeOtraEmpresa(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusPendiente, 3)

	_, err := f.uc.Transition(context.Background(), "otra-empresa", "mov-1", entity.StatusAprobado, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransition_ReiniciarDesdeAnulado(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovement(entity.StatusAnulado, 3)
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	m, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusPendiente, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendiente, m.Status)
	assert.Equal(t, int64(10), f.actual(prodA, w1), "reiniciar no toca stock")
}

// Varias líneas del mismo producto se aplican como un solo delta: con
// 10 en origen y líneas de 3 y 2, el origen debe quedar en 5, no en 8.
func TestTransition_DespacharConLineasDuplicadasSumaPorProducto(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovementItems(entity.StatusAprobado, []entity.MovementItem{
		{ProductID: prodA, Cantidad: 3},
		{ProductID: prodA, Cantidad: 2},
	})
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusTransito, "")
	require.NoError(t, err)

	assert.Equal(t, int64(5), f.actual(prodA, w1))
	assert.Equal(t, int64(5), f.transito(prodA, w2))
}

func TestTransition_CicloConLineasDuplicadasConservaCantidad(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovementItems(entity.StatusAprobado, []entity.MovementItem{
		{ProductID: prodA, Cantidad: 3},
		{ProductID: prodA, Cantidad: 2},
	})
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusTransito, "")
	require.NoError(t, err)
	_, err = f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusRecibido, "")
	require.NoError(t, err)

	assert.Equal(t, int64(5), f.actual(prodA, w1))
	assert.Equal(t, int64(5), f.actual(prodA, w2))
	assert.Equal(t, int64(0), f.transito(prodA, w2))

	_, err = f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusAnulado, "")
	require.NoError(t, err)

	assert.Equal(t, int64(10), f.actual(prodA, w1))
	assert.Equal(t, int64(0), f.actual(prodA, w2))
}

// La suficiencia se evalúa sobre la suma de las líneas, no línea por línea.
func TestTransition_DespachoInsuficientePorSumaDeLineas(t *testing.T) {
	f := newTransitionFixture()
	f.seedMovementItems(entity.StatusAprobado, []entity.MovementItem{
		{ProductID: prodA, Cantidad: 3},
		{ProductID: prodA, Cantidad: 2},
	})
	f.stock.seed(prodA, w1, 4, 0, 0, 0)

	_, err := f.uc.Transition(context.Background(), testCompany, "mov-1", entity.StatusTransito, "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(4), f.actual(prodA, w1))
	assert.Equal(t, int64(0), f.transito(prodA, w2))

	m, err := f.movs.GetByID("mov-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAprobado, m.Status)
}
