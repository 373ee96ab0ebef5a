package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

const (
	testCompany = "co-1"
	testUser    = "user-1"
	w1          = "w1"
	w2          = "w2"
	prodA       = "prod-a"
	prodB       = "prod-b"
)

type createFixture struct {
	uc       *inventory.CreateMovementUseCase
	stock    *fakeStockRepo
	movs     *fakeMovementRepo
	products *fakeProductRepo
}

func newCreateFixture() *createFixture {
	stock := newFakeStockRepo()
	movs := newFakeMovementRepo()
	products := newFakeProductRepo()
	warehouses := newFakeWarehouseRepo()

	warehouses.seed(w1, testCompany)
	warehouses.seed(w2, testCompany)
	products.seed(prodA, testCompany)
	products.seed(prodB, testCompany)

	tx := &fakeTxRunner{movRepo: movs, stockRepo: stock}
	return &createFixture{
		uc:       inventory.NewCreateMovementUseCase(tx, products, warehouses),
		stock:    stock,
		movs:     movs,
		products: products,
	}
}

func TestCreate_MovimientoValido(t *testing.T) {
	f := newCreateFixture()
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	m, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items:   []dto.MovementItemRequest{{ProductID: prodA, Cantidad: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPendiente, m.Status)
	assert.Equal(t, "MOV-000001", m.Serial)
	assert.Equal(t, testUser, m.ResponsibleID)
	require.Len(t, m.Items, 1)
	assert.Equal(t, int64(3), m.Items[0].Cantidad)

	// Crear no toca stock: los deltas llegan con las transiciones.
	rec, _ := f.stock.Get(prodA, w1)
	assert.Equal(t, int64(10), rec.Actual)
}

func TestCreate_RecortaCantidadAlDisponible(t *testing.T) {
	f := newCreateFixture()
	// disponible = 5 + 0 - 0 = 5; se piden 10 y no se rechaza: se recorta.
	f.stock.seed(prodA, w1, 5, 0, 0, 0)

	m, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items:   []dto.MovementItemRequest{{ProductID: prodA, Cantidad: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), m.Items[0].Cantidad)
}

func TestCreate_DisponibleIncluyeTransitoYDescuentaReservado(t *testing.T) {
	f := newCreateFixture()
	// disponible = 4 + 3 - 2 = 5
	f.stock.seed(prodA, w1, 4, 2, 3, 0)

	m, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items:   []dto.MovementItemRequest{{ProductID: prodA, Cantidad: 9}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), m.Items[0].Cantidad)
}

func TestCreate_SinStockDisponibleEsViolacion(t *testing.T) {
	f := newCreateFixture()
	// disponible = 1 + 0 - 3 = -2: no hay cantidad legal posible.
	f.stock.seed(prodA, w1, 1, 3, 0, 0)

	_, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items:   []dto.MovementItemRequest{{ProductID: prodA, Cantidad: 1}},
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "items[0].cantidad", verr.Violations[0].Field)
}

func TestCreate_AcumulaTodasLasViolacionesDeForma(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  "",
		Destino: "",
		Items: []dto.MovementItemRequest{
			{ProductID: "", Cantidad: 0},
		},
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	// origen requerido, destino requerido, producto requerido, cantidad < 1
	assert.Len(t, verr.Violations, 4, "la validación no se detiene en la primera regla")
}

func TestCreate_OrigenYDestinoIguales(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w1,
		Items:   []dto.MovementItemRequest{{ProductID: prodA, Cantidad: 1}},
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "destino", verr.Violations[0].Field)
}

func TestCreate_AlmacenDeOtraEmpresa(t *testing.T) {
	f := newCreateFixture()
	_, err := f.uc.Create(context.Background(), "otra-empresa", testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items:   []dto.MovementItemRequest{{ProductID: prodA, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ProductoInexistente(t *testing.T) {
	f := newCreateFixture()
	f.stock.seed(prodA, w1, 10, 0, 0, 0)

	_, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items:   []dto.MovementItemRequest{{ProductID: "no-existe", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_FolioConsecutivo(t *testing.T) {
	f := newCreateFixture()
	f.stock.seed(prodA, w1, 100, 0, 0, 0)

	req := dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items:   []dto.MovementItemRequest{{ProductID: prodA, Cantidad: 1}},
	}
	m1, err := f.uc.Create(context.Background(), testCompany, testUser, req)
	require.NoError(t, err)
	m2, err := f.uc.Create(context.Background(), testCompany, testUser, req)
	require.NoError(t, err)

	assert.Equal(t, "MOV-000001", m1.Serial)
	assert.Equal(t, "MOV-000002", m2.Serial)
}

// El recorte descuenta lo que ya tomaron líneas anteriores del mismo
// producto: con 6 disponibles, [5, 5] queda en [5, 1], no en [5, 5].
func TestCreate_LineasDuplicadasNoExcedenElDisponible(t *testing.T) {
	f := newCreateFixture()
	f.stock.seed(prodA, w1, 6, 0, 0, 0)

	m, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items: []dto.MovementItemRequest{
			{ProductID: prodA, Cantidad: 5},
			{ProductID: prodA, Cantidad: 5},
		},
	})
	require.NoError(t, err)
	require.Len(t, m.Items, 2)
	assert.Equal(t, int64(5), m.Items[0].Cantidad)
	assert.Equal(t, int64(1), m.Items[1].Cantidad)
}

func TestCreate_LineaDuplicadaSinRemanenteEsViolacion(t *testing.T) {
	f := newCreateFixture()
	f.stock.seed(prodA, w1, 5, 0, 0, 0)

	_, err := f.uc.Create(context.Background(), testCompany, testUser, dto.CreateMovementRequest{
		Origen:  w1,
		Destino: w2,
		Items: []dto.MovementItemRequest{
			{ProductID: prodA, Cantidad: 5},
			{ProductID: prodA, Cantidad: 3},
		},
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "items[1].cantidad", verr.Violations[0].Field)
}
