package aggregating

import (
	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/pkg/utils"
)

// Summarize calcula as métricas escalares diretamente sobre as vendas limpas
func Summarize(records []domain.SaleRecord) domain.Summary {
	clients := make(map[string]struct{})
	states := make(map[string]struct{})

	summary := domain.Summary{SaleCount: len(records)}
	for _, record := range records {
		summary.TotalQuantity += record.TotalQuantity
		if record.Client != "" {
			clients[record.Client] = struct{}{}
		}
		states[record.State] = struct{}{}
	}

	summary.DistinctClients = len(clients)
	summary.DistinctStates = len(states)

	if summary.SaleCount > 0 {
		summary.AverageTicket = utils.RoundWithOneDecimalPlace(float64(summary.TotalQuantity) / float64(summary.SaleCount))
	}

	return summary
}

// StateIntensities classifica todas as UFs em cinco faixas de volume para o mapa de calor
func StateIntensities(records []domain.SaleRecord) []domain.StateIntensity {
	states := ByState(records)

	totals := make([]int64, len(states))
	for i, state := range states {
		totals[i] = state.TotalQuantity
	}
	lo, hi := minMax(totals)

	intensities := make([]domain.StateIntensity, len(states))
	for i, state := range states {
		level := TierIndex(state.TotalQuantity, lo, hi, int64(len(IntensityLabels)))
		intensities[i] = domain.StateIntensity{
			State:         state.GroupKey,
			TotalQuantity: state.TotalQuantity,
			Level:         level,
			Label:         labelFor(IntensityLabels, level),
		}
	}

	return intensities
}
