package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/usecase"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/memory"
)

func fixedNow() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type env struct {
	store *document.Store
	repos document.Repositories
	tx    *document.TxRunner
}

func newEnv() env {
	store := memory.NewStore(fixedNow)
	return env{
		store: store,
		repos: document.NewRepositories(store, fixedNow),
		tx:    document.NewTxRunner(store, fixedNow),
	}
}

func (e env) products() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(e.repos.Products, e.repos.Settings, e.tx, nil, fixedNow)
}

func (e env) orders() *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(e.repos.Orders, e.repos.Products, e.tx, nil, fixedNow)
}

func (e env) lastActivity(t *testing.T) entity.Activity {
	t.Helper()
	acts, err := e.repos.Activities.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	return acts[0]
}

// ── Productos ────────────────────────────────────────────────────────────────

func TestProductCRUD(t *testing.T) {
	e := newEnv()
	uc := e.products()
	ctx := context.Background()

	created, err := uc.Create(ctx, "Admin User", dto.CreateProductRequest{
		Name: "Cheddar", SKU: "DA-CHD", Category: "Dairy & Eggs", Stock: 15, Unit: "pack",
		Price: decimal.NewFromInt(90), ExpiryDate: "2026-04-30",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "In Stock", created.Status)
	assert.Equal(t, "2026-04-30", created.ExpiryDate)
	assert.Equal(t, `Added new product "Cheddar"`, e.lastActivity(t).Details)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.True(t, decimal.NewFromInt(1350).Equal(got.Value))

	updated, err := uc.Update(ctx, "Admin User", created.ID, dto.UpdateProductRequest{Stock: intPtr(3), ExpiryDate: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Critical", updated.Status)
	assert.Empty(t, updated.ExpiryDate)
	assert.Equal(t, "Cheddar", updated.Name)
	assert.Equal(t, entity.ActivityProductUpdated, e.lastActivity(t).Activity)

	require.NoError(t, uc.Delete(ctx, "Admin User", created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, `Deleted product "Cheddar"`, e.lastActivity(t).Details)
}

func TestProductCreate_Invalido(t *testing.T) {
	e := newEnv()
	uc := e.products()
	ctx := context.Background()
	before, err := e.repos.Activities.List(ctx)
	require.NoError(t, err)

	_, err = uc.Create(ctx, "", dto.CreateProductRequest{Name: "X", SKU: "X", Category: "Toys", Unit: "kg"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "", dto.CreateProductRequest{Name: "X", SKU: "X", Category: "Bakery", Unit: "kg", ExpiryDate: "30/04/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	after, err := e.repos.Activities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "una creación fallida no deja actividad")
}

func TestProductList_EstadosYFiltros(t *testing.T) {
	uc := newEnv().products()
	ctx := context.Background()

	all, err := uc.List(ctx, dto.ProductFilterRequest{})
	require.NoError(t, err)
	require.Equal(t, 6, all.Total)
	status := map[string]string{}
	for _, p := range all.Items {
		status[p.Name] = p.Status
	}
	assert.Equal(t, "In Stock", status["Fresh Apples"])
	assert.Equal(t, "Expiring Soon", status["Chicken Breast"])
	assert.Equal(t, "Expired", status["White Bread"])
	assert.Equal(t, "Out of Stock", status["Mineral Water"])
	assert.Equal(t, "Critical", status["Oil"])

	out, err := uc.List(ctx, dto.ProductFilterRequest{Stock: "out-of-stock"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Mineral Water", out.Items[0].Name)

	_, err = uc.List(ctx, dto.ProductFilterRequest{Stock: "plenty"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductNearExpiry(t *testing.T) {
	uc := newEnv().products()
	list, err := uc.NearExpiry(context.Background(), 0)
	require.NoError(t, err)
	names := []string{}
	for _, p := range list {
		names = append(names, p.Name)
	}
	// Milk (3 días) y Chicken (1 día); Bread ya venció y Apples vence en 10.
	assert.ElementsMatch(t, []string{"Milk", "Chicken Breast"}, names)

	wide, err := uc.NearExpiry(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, wide, 3)
}

// ── Proveedores ──────────────────────────────────────────────────────────────

func TestSupplierCRUD(t *testing.T) {
	e := newEnv()
	uc := usecase.NewSupplierUseCase(e.repos.Suppliers, e.tx)
	ctx := context.Background()

	s, err := uc.Create(ctx, "Admin User", dto.CreateSupplierRequest{Name: "Bake House", Category: "Bakery"})
	require.NoError(t, err)
	assert.Equal(t, 3, s.ID)
	assert.Equal(t, entity.SupplierActive, s.Status)

	s, err = uc.Update(ctx, "Admin User", s.ID, dto.UpdateSupplierRequest{Status: strPtr(entity.SupplierInactive)})
	require.NoError(t, err)
	assert.Equal(t, entity.SupplierInactive, s.Status)
	assert.Equal(t, `Updated supplier "Bake House"`, e.lastActivity(t).Details)

	_, err = uc.Update(ctx, "", s.ID, dto.UpdateSupplierRequest{Status: strPtr("Paused")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx, dto.SupplierFilterRequest{Status: entity.SupplierInactive})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, "", s.ID))
	assert.ErrorIs(t, uc.Delete(ctx, "", s.ID), domain.ErrNotFound)
}

// ── Órdenes ──────────────────────────────────────────────────────────────────

func TestOrderCreate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	o, err := e.orders().Create(ctx, "Admin User", dto.CreateOrderRequest{
		SupplierID: 1,
		Items:      []dto.OrderItemDTO{{ProductID: 1, Quantity: 4, Price: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-10003", o.PONumber)
	assert.Equal(t, "Pending", o.Status)
	assert.Equal(t, "2026-03-10", o.Date)
	assert.Equal(t, "Fresh Farms Produce", o.SupplierName)
	assert.Equal(t, "Fresh Apples", o.Items[0].ProductName)
	assert.True(t, decimal.NewFromInt(400).Equal(o.Total))
	assert.Equal(t, "Created purchase order PO-10003", e.lastActivity(t).Details)

	_, err = e.orders().Create(ctx, "", dto.CreateOrderRequest{SupplierID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.orders().Create(ctx, "", dto.CreateOrderRequest{
		SupplierID: 9, Items: []dto.OrderItemDTO{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_ComoRecibidaAcreditaStock(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	o, err := e.orders().Create(ctx, "", dto.CreateOrderRequest{
		SupplierID: 1, Status: "Received",
		Items: []dto.OrderItemDTO{{ProductID: 5, Quantity: 12, Price: decimal.NewFromInt(15)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Received", o.Status)

	p, err := e.repos.Products.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Stock)
}

func TestOrderUpdate_Transiciones(t *testing.T) {
	e := newEnv()
	uc := e.orders()
	ctx := context.Background()

	o, err := uc.Update(ctx, "Admin User", 2, dto.UpdateOrderRequest{Status: strPtr("Approved")})
	require.NoError(t, err)
	assert.Equal(t, "Approved", o.Status)
	assert.Equal(t, "Order PO-10002 status changed from Pending to Approved", e.lastActivity(t).Details)

	_, err = uc.Update(ctx, "", 2, dto.UpdateOrderRequest{Status: strPtr("Pending")})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	o, err = uc.Update(ctx, "", 2, dto.UpdateOrderRequest{Status: strPtr("Received")})
	require.NoError(t, err)
	assert.Equal(t, "Received", o.Status)
	assert.Equal(t, entity.ActivityOrderReceived, e.lastActivity(t).Activity)

	chicken, err := e.repos.Products.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, chicken.Stock)

	_, err = uc.Update(ctx, "", 2, dto.UpdateOrderRequest{Status: strPtr("Received")})
	assert.ErrorIs(t, err, domain.ErrAlreadyReceived)
	_, err = uc.Update(ctx, "", 2, dto.UpdateOrderRequest{Notes: strPtr("late")})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Update(ctx, "", 2, dto.UpdateOrderRequest{Status: strPtr("Lost")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdate_CamposYCancelacion(t *testing.T) {
	e := newEnv()
	uc := e.orders()
	ctx := context.Background()

	o, err := uc.Update(ctx, "", 2, dto.UpdateOrderRequest{Notes: strPtr("Call before delivery")})
	require.NoError(t, err)
	assert.Equal(t, "Call before delivery", o.Notes)
	assert.Equal(t, "Updated order PO-10002", e.lastActivity(t).Details)

	o, err = uc.Update(ctx, "", 2, dto.UpdateOrderRequest{Status: strPtr("Cancelled")})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", o.Status)

	_, err = uc.Update(ctx, "", 2, dto.UpdateOrderRequest{Status: strPtr("Approved")})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderListYDelete(t *testing.T) {
	e := newEnv()
	uc := e.orders()
	ctx := context.Background()

	list, err := uc.List(ctx, dto.OrderFilterRequest{Search: "dairy"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "PO-10002", list[0].PONumber)

	list, err = uc.List(ctx, dto.OrderFilterRequest{Date: "today", Status: "Received"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.List(ctx, dto.OrderFilterRequest{Date: "decade"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.Delete(ctx, "", 1))
	_, err = uc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Deleted order PO-10001", e.lastActivity(t).Details)
}

// ── Configuración y actividad ────────────────────────────────────────────────

func TestSettingsUpdate(t *testing.T) {
	e := newEnv()
	uc := usecase.NewSettingsUseCase(e.repos.Settings, e.tx, nil, fixedNow)
	ctx := context.Background()

	s, err := uc.Update(ctx, "Admin User", dto.UpdateSettingsRequest{LowStockThreshold: intPtr(20)})
	require.NoError(t, err)
	assert.Equal(t, 20, s.LowStockThreshold)
	assert.Equal(t, "INR", s.Currency)
	assert.Equal(t, entity.ActivitySettingsUpdated, e.lastActivity(t).Activity)

	_, err = uc.Update(ctx, "", dto.UpdateSettingsRequest{CriticalStockThreshold: intPtr(30)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, "", dto.UpdateSettingsRequest{ExpiryDaysThreshold: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActivityRecent(t *testing.T) {
	e := newEnv()
	uc := usecase.NewActivityUseCase(e.repos.Activities)
	ctx := context.Background()

	list, err := uc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = uc.Recent(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalyticsCharts(t *testing.T) {
	e := newEnv()
	uc := usecase.NewAnalyticsUseCase(e.store, fixedNow)

	charts, err := uc.Charts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2026, charts.Year)
	assert.True(t, decimal.NewFromInt(1070).Equal(charts.SalesByMonth.Data[2]))
	assert.True(t, decimal.NewFromInt(1375).Equal(charts.PurchasesByMonth.Data[2]))

	_, err = uc.Charts(context.Background(), 1900)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserList_SinPassword(t *testing.T) {
	e := newEnv()
	users, err := usecase.NewUserUseCase(e.repos.Users).List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
}
