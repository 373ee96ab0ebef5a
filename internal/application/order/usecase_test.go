package order_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/order"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

const (
	testCompany = "co-1"
	testUser    = "user-1"
	testBranch  = "branch-1"
)

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.orders[o.ID] = o; return nil }

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CompanyID == companyID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{branches: make(map[string]*entity.Branch)}
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.branches[b.ID] = b; return nil }

func (f *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return f.branches[id], nil
}

func (f *fakeBranchRepo) Update(b *entity.Branch) error { f.branches[b.ID] = b; return nil }

func (f *fakeBranchRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error) {
	return nil, nil
}

func (f *fakeBranchRepo) Delete(id string) error { delete(f.branches, id); return nil }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newOrderUseCase() (*order.UseCase, *fakeOrderRepo) {
	orders := newFakeOrderRepo()
	branches := newFakeBranchRepo()
	branches.branches[testBranch] = &entity.Branch{ID: testBranch, CompanyID: testCompany, Name: "Centro"}
	return order.NewUseCase(orders, branches), orders
}

func TestCreateOrder_CalculaElTotalEnServidor(t *testing.T) {
	uc, _ := newOrderUseCase()

	ord, err := uc.Create(context.Background(), testCompany, testUser, dto.CreateOrderRequest{
		BranchID:      testBranch,
		Subtotal:      d("100"),
		Descuento:     d("10"),
		TipoDescuento: entity.DiscountPorcentual,
		ImpuestoPct:   d("16"),
		Credito:       d("5"),
	})
	require.NoError(t, err)
	assert.True(t, d("99.4").Equal(ord.Total), "total = %s", ord.Total)
	assert.Equal(t, testUser, ord.CreatedBy)
}

func TestCreateOrder_AcumulaViolaciones(t *testing.T) {
	uc, _ := newOrderUseCase()

	_, err := uc.Create(context.Background(), testCompany, testUser, dto.CreateOrderRequest{
		Subtotal:      d("-1"),
		Descuento:     d("-2"),
		TipoDescuento: "Mixto",
		ImpuestoPct:   d("-3"),
		Credito:       d("-4"),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 5)
}

func TestCreateOrder_SucursalInexistente(t *testing.T) {
	uc, _ := newOrderUseCase()

	_, err := uc.Create(context.Background(), testCompany, testUser, dto.CreateOrderRequest{
		BranchID:      "no-existe",
		Subtotal:      d("100"),
		TipoDescuento: entity.DiscountAbsoluto,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_SucursalOpcional(t *testing.T) {
	uc, _ := newOrderUseCase()

	ord, err := uc.Create(context.Background(), testCompany, testUser, dto.CreateOrderRequest{
		Subtotal:      d("100"),
		TipoDescuento: entity.DiscountAbsoluto,
	})
	require.NoError(t, err)
	assert.Empty(t, ord.BranchID)
	assert.True(t, d("100").Equal(ord.Total))
}

func TestGetOrder_DeOtraEmpresa(t *testing.T) {
	uc, orders := newOrderUseCase()
	orders.orders["o1"] = &entity.Order{ID: "o1", CompanyID: "otra"}

	_, err := uc.GetByID(context.Background(), testCompany, "o1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
