package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/freshstock-api/internal/application/analytics"
	"github.com/jhoicas/freshstock-api/internal/application/auth"
	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/export"
	"github.com/jhoicas/freshstock-api/internal/application/inventory"
	"github.com/jhoicas/freshstock-api/internal/application/ports"
	"github.com/jhoicas/freshstock-api/internal/application/usecase"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/events"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/freshstock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/freshstock-api/internal/interfaces/http"
)

func fixedNow() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

// newAPI arma la API completa sobre un store en memoria sembrado con los datos de demo.
func newAPI() *fiber.App {
	store := memory.NewStore(fixedNow)
	repos := document.NewRepositories(store, fixedNow)
	tx := document.NewTxRunner(store, fixedNow)
	pub := ports.NewNotifier(events.Noop{}, zerolog.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(repos.Users, repos.Activities, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		UserUC:        usecase.NewUserUseCase(repos.Users),
		ProductUC:     usecase.NewProductUseCase(repos.Products, repos.Settings, tx, pub, fixedNow),
		SupplierUC:    usecase.NewSupplierUseCase(repos.Suppliers, tx),
		OrderUC:       usecase.NewOrderUseCase(repos.Orders, repos.Products, tx, pub, fixedNow),
		SettingsUC:    usecase.NewSettingsUseCase(repos.Settings, tx, pub, fixedNow),
		ActivityUC:    usecase.NewActivityUseCase(repos.Activities),
		AnalyticsUC:   usecase.NewAnalyticsUseCase(store, fixedNow),
		DashboardUC:   appanalytics.NewDashboardUseCase(store, fixedNow),
		SalesUC:       inventory.NewSalesUseCase(tx, repos.Sales, repos.Products, pub, fixedNow),
		ReceiveUC:     inventory.NewReceiveOrderUseCase(tx, pub, fixedNow),
		Replenishment: inventory.NewReplenishmentUseCase(store, fixedNow),
		OrderExport:   export.NewOrderExportUseCase(store, infrapdf.NewMarotoPDFGenerator(), xmlexport.NewOrderXMLBuilder()),
		JWTSecret:     testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e.Code
}

func TestLogin(t *testing.T) {
	app := newAPI()

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := login(t, app, "karan", "karan123")
	resp = call(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	decode(t, resp, &me)
	assert.Equal(t, "Inventory Manager", me.Name)
	assert.Equal(t, "manager", me.Role)
}

func TestRutasProtegidas(t *testing.T) {
	app := newAPI()
	resp := call(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	manager := login(t, app, "karan", "karan123")
	resp = call(t, app, http.MethodGet, "/api/users", manager, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodPut, "/api/settings", manager, map[string]any{"company_name": "Otra"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := login(t, app, "admin", "admin123")
	resp = call(t, app, http.MethodPut, "/api/settings", admin, map[string]any{"company_name": "Otra"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var s dto.SettingsResponse
	decode(t, resp, &s)
	assert.Equal(t, "Otra", s.CompanyName)
}

func TestProducts(t *testing.T) {
	app := newAPI()
	token := login(t, app, "admin", "admin123")

	resp := call(t, app, http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	decode(t, resp, &list)
	assert.Equal(t, 6, list.Total)

	resp = call(t, app, http.MethodGet, "/api/products?stock=out-of-stock", token, nil)
	decode(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Mineral Water", list.Items[0].Name)

	resp = call(t, app, http.MethodGet, "/api/products/99", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))

	resp = call(t, app, http.MethodGet, "/api/products/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/products", token, map[string]any{
		"name": "Yogurt", "sku": "DA-YOG", "category": "Dairy & Eggs", "stock": 5, "unit": "pcs", "price": "45",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ProductResponse
	decode(t, resp, &created)
	assert.Equal(t, 7, created.ID)

	resp = call(t, app, http.MethodPost, "/api/products", token, map[string]any{
		"name": "Sin unidad", "sku": "X", "category": "Dairy & Eggs", "unit": "litro",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/products/7", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/products/near-expiry", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/products/replenishment", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var suggestions []dto.ReplenishmentSuggestionDTO
	decode(t, resp, &suggestions)
	assert.NotEmpty(t, suggestions)
}

func TestSales(t *testing.T) {
	app := newAPI()
	token := login(t, app, "admin", "admin123")

	resp := call(t, app, http.MethodPost, "/api/sales", token, dto.RecordSaleRequest{ProductID: 1, Quantity: 100})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, resp))

	resp = call(t, app, http.MethodPost, "/api/sales", token, dto.RecordSaleRequest{ProductID: 1, Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/sales", token, dto.RecordSaleRequest{ProductID: 99, Quantity: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/sales", token, dto.RecordSaleRequest{ProductID: 1, Quantity: 5})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.RecordSaleResponse
	decode(t, resp, &out)
	assert.Equal(t, 20, out.RemainingStock)
	assert.Equal(t, "Retail Customer", out.Sale.Customer)

	resp = call(t, app, http.MethodGet, "/api/sales", token, nil)
	var sales []dto.SaleResponse
	decode(t, resp, &sales)
	assert.Len(t, sales, 5)

	resp = call(t, app, http.MethodGet, "/api/activities?limit=1", token, nil)
	var acts []dto.ActivityResponse
	decode(t, resp, &acts)
	require.Len(t, acts, 1)
	assert.Equal(t, "Sale Recorded", acts[0].Activity)
	assert.Equal(t, "Admin User", acts[0].User)

	resp = call(t, app, http.MethodGet, "/api/activities?limit=1000", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrders(t *testing.T) {
	app := newAPI()
	token := login(t, app, "admin", "admin123")

	resp := call(t, app, http.MethodPost, "/api/orders/2/receive", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var order dto.OrderResponse
	decode(t, resp, &order)
	assert.Equal(t, "Received", order.Status)

	resp = call(t, app, http.MethodPost, "/api/orders/2/receive", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_RECEIVED", errorCode(t, resp))

	resp = call(t, app, http.MethodGet, "/api/products/3", token, nil)
	var chicken dto.ProductResponse
	decode(t, resp, &chicken)
	assert.Equal(t, 20, chicken.Stock)

	resp = call(t, app, http.MethodPut, "/api/orders/1", token, map[string]any{"status": "Pending"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/orders?status=Received", token, nil)
	var orders []dto.OrderResponse
	decode(t, resp, &orders)
	assert.Len(t, orders, 2)

	resp = call(t, app, http.MethodGet, "/api/orders/1/xml", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "PO-10001.xml")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "PO-10001")

	resp = call(t, app, http.MethodGet, "/api/orders/9/pdf", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardYCharts(t *testing.T) {
	app := newAPI()
	token := login(t, app, "admin", "admin123")

	resp := call(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary dto.DashboardSummaryDTO
	decode(t, resp, &summary)
	assert.Equal(t, "2026-03-10", summary.Date)
	assert.Equal(t, 6, summary.TotalProducts)
	assert.Equal(t, 1, summary.PendingOrders)

	resp = call(t, app, http.MethodGet, "/api/analytics/charts?year=1999", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/analytics/charts", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var charts dto.ChartsDTO
	decode(t, resp, &charts)
	assert.Equal(t, 2026, charts.Year)
	assert.Len(t, charts.SalesByMonth.Data, 12)
}
