// Package analytics contiene el caso de uso del dashboard operativo.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// DashboardUseCase construye los contadores y la valoración del inventario.
//
// Fuente de datos: StatsRepository (consultas read-only e independientes);
// una pequeña inconsistencia entre métricas de una misma respuesta es
// aceptable porque alimentan una pantalla, no una decisión de control.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats ejecuta las cuatro consultas en paralelo y arma el DTO.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type valueResult struct {
		v   decimal.Decimal
		err error
	}

	productsCh := make(chan countResult, 1)
	categoriesCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	valueCh := make(chan valueResult, 1)

	go func() {
		n, err := uc.statsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountCategories(ctx)
		categoriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountLowStock(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.statsRepo.TotalInventoryValue(ctx)
		valueCh <- valueResult{v, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	lowStock := <-lowStockCh
	value := <-valueCh

	for _, err := range []error{products.err, categories.err, lowStock.err, value.err} {
		if err != nil {
			return nil, err
		}
	}

	return &dto.DashboardStatsDTO{
		TotalProducts:   products.n,
		TotalCategories: categories.n,
		LowStockCount:   lowStock.n,
		InventoryValue:  value.v,
	}, nil
}
