package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// salesHistoryDays ventana de ventas usada para priorizar la reposición.
const salesHistoryDays = 90

// ReplenishmentUseCase genera la lista de reposición: productos en o bajo el umbral de
// stock bajo con la cantidad sugerida a pedir.
type ReplenishmentUseCase struct {
	store repository.DocumentStore
	now   func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(store repository.DocumentStore, now func() time.Time) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{store: store, now: now}
}

// GenerateReplenishmentList devuelve los productos no vencidos con stock <= umbral bajo.
// Stock ideal = 1.5 × umbral bajo; el costo unitario es el precio de la última orden
// recibida que incluyó el producto, o el precio de venta si nunca se compró.
// Todo se calcula sobre una sola lectura del documento.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	today := entity.DateOf(uc.now())
	low := doc.Settings.LowThreshold()
	idealStock := (low*3 + 1) / 2
	lastCost := lastPurchaseCost(doc)
	unitsSold := unitsSoldSince(doc, today.AddDays(-salesHistoryDays))

	suggestions := []dto.ReplenishmentSuggestionDTO{}
	for _, p := range doc.Products {
		if p.Stock > low {
			continue
		}
		if p.ExpiryDate != nil && p.ExpiryDate.Before(today) {
			continue
		}
		qty := idealStock - p.Stock
		if qty < 0 {
			qty = 0
		}
		cost, ok := lastCost[p.ID]
		if !ok {
			cost = p.Price
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			SKU:                p.SKU,
			ProductName:        p.Name,
			Unit:               p.Unit,
			CurrentStock:       p.Stock,
			ReorderPoint:       low,
			IdealStock:         idealStock,
			SuggestedOrderQty:  qty,
			UnitCost:           cost,
			EstimatedOrderCost: cost.Mul(decimal.NewFromInt(int64(qty))),
			UnitsSoldRecently:  unitsSold[p.ID],
		})
	}

	// Primero lo que más se vende; a igual volumen, el mayor déficit.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.UnitsSoldRecently != b.UnitsSoldRecently {
			return a.UnitsSoldRecently > b.UnitsSoldRecently
		}
		return a.SuggestedOrderQty > b.SuggestedOrderQty
	})

	// Prioridad 1 = más urgente
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

func lastPurchaseCost(doc *entity.Document) map[int]decimal.Decimal {
	type seen struct {
		date  entity.Date
		price decimal.Decimal
	}
	latest := map[int]seen{}
	for _, o := range doc.Orders {
		if o.Status != entity.OrderReceived {
			continue
		}
		for _, it := range o.Items {
			if cur, ok := latest[it.ProductID]; !ok || !o.Date.Before(cur.date) {
				latest[it.ProductID] = seen{date: o.Date, price: it.Price}
			}
		}
	}
	out := make(map[int]decimal.Decimal, len(latest))
	for id, s := range latest {
		out[id] = s.price
	}
	return out
}

func unitsSoldSince(doc *entity.Document, from entity.Date) map[int]int {
	out := map[int]int{}
	for _, s := range doc.Sales {
		if !s.Date.Before(from) {
			out[s.ProductID] += s.Quantity
		}
	}
	return out
}
