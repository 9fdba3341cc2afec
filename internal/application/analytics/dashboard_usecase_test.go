package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/analytics"
)

type fakeStatsRepo struct {
	products, categories, lowStock int64
	value                          decimal.Decimal
	err                            error
}

func (f *fakeStatsRepo) CountProducts(context.Context) (int64, error)   { return f.products, f.err }
func (f *fakeStatsRepo) CountCategories(context.Context) (int64, error) { return f.categories, f.err }
func (f *fakeStatsRepo) CountLowStock(context.Context) (int64, error)   { return f.lowStock, f.err }
func (f *fakeStatsRepo) TotalInventoryValue(context.Context) (decimal.Decimal, error) {
	return f.value, f.err
}

func TestGetStats_AgregaLasCuatroMetricas(t *testing.T) {
	repo := &fakeStatsRepo{
		products:   12,
		categories: 3,
		lowStock:   2,
		value:      decimal.NewFromInt(15400),
	}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalProducts)
	assert.Equal(t, int64(3), stats.TotalCategories)
	assert.Equal(t, int64(2), stats.LowStockCount)
	assert.True(t, stats.InventoryValue.Equal(decimal.NewFromInt(15400)))
}

func TestGetStats_PropagaErrorDeConsulta(t *testing.T) {
	repo := &fakeStatsRepo{err: errors.New("conexión perdida")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetStats(context.Background())
	assert.Error(t, err)
}
