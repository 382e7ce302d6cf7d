package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/application/analytics"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/memory"
)

func fixedNow() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

func dec(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

func TestGetSummary_DatosIniciales(t *testing.T) {
	store := memory.NewStore(fixedNow)
	uc := analytics.NewDashboardUseCase(store, fixedNow)

	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", s.Date)
	assert.Equal(t, "March 2026", s.DateLabel)
	assert.Equal(t, "INR", s.Currency)

	assert.True(t, dec(420).Equal(s.TodaySales))
	assert.True(t, dec(1070).Equal(s.MonthlySales))
	assert.True(t, dec(100).Equal(s.SalesGrowth), "febrero sin ventas")
	assert.True(t, decimal.RequireFromString("-35.38").Equal(s.SalesTrend))
	assert.Equal(t, "Milk", s.TopProduct.Product)
	assert.Equal(t, 8, s.TopProduct.Sales)

	assert.True(t, dec(1375).Equal(s.TodayPurchases))
	assert.Equal(t, 2, s.NewOrdersToday)
	assert.Equal(t, 1, s.PendingOrders)
	assert.Len(t, s.TodayPurchaseList, 2)

	assert.Equal(t, 6, s.TotalProducts)
	assert.True(t, dec(11528).Equal(s.InventoryValue))
	assert.Equal(t, 2, s.LowStockCount)
	assert.Len(t, s.NearExpiry, 2)
	assert.Len(t, s.RecentActivities, 1)
}

func TestGetSummary_UltimasDiezActividades(t *testing.T) {
	store := memory.NewStore(fixedNow)
	repos := document.NewRepositories(store, fixedNow)
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		require.NoError(t, repos.Activities.Append(ctx, &entity.Activity{Activity: "Test", Details: "x"}))
	}

	s, err := analytics.NewDashboardUseCase(store, fixedNow).GetSummary(ctx)
	require.NoError(t, err)
	require.Len(t, s.RecentActivities, analytics.RecentActivities)
	assert.Equal(t, 16, s.RecentActivities[0].ID)
}
