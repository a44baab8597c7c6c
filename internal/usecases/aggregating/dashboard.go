package aggregating

import (
	"fmt"
	"strings"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
)

// Mensagens de aviso exibidas pela camada de apresentação
const (
	WarningEmptyResult   = "O arquivo foi carregado mas não contém linhas válidas"
	WarningNoModelData   = "Dados de modelos não disponíveis"
	WarningNoConsultants = "Dados de consultores não disponíveis"
	warningUnmapped      = "UFs sem região definida: %s"
)

type Options struct {
	TopN     int
	TrendTop int
}

func DefaultOptions() Options {
	return Options{
		TopN:     DefaultTopN,
		TrendTop: DefaultTrendTop,
	}
}

// BuildDashboard executa todos os agrupamentos sobre o resultado da ingestão
func BuildDashboard(result *domain.IngestResult, opts Options) *domain.Dashboard {
	records := result.Records

	regions := ByRegion(records)
	states := ByState(records)

	dashboard := &domain.Dashboard{
		Summary:         Summarize(records),
		Regions:         regions,
		UnmappedStates:  UnmappedStates(records),
		TopStates:       TopN(states, opts.TopN),
		StateIntensity:  StateIntensities(records),
		TopClients:      TopN(ByClient(records), opts.TopN),
		TopConsultants:  TopN(ByConsultant(records), opts.TopN),
		Months:          ByMonth(records),
		MonthlySeries:   MonthlySeries(records),
		Models:          ModelVariants(records, result.QuantityColumns),
		Consultants:     ConsultantPerformance(records, opts.TrendTop),
		QuantityColumns: result.QuantityColumns,
		Stats:           result.Stats,
		Empty:           len(records) == 0,
	}

	if len(regions) > 0 {
		dashboard.Highlights.LeadingRegion = &regions[0]
	}
	if len(states) > 0 {
		dashboard.Highlights.LeadingState = &states[0]
	}

	if dashboard.Empty {
		dashboard.Warnings = append(dashboard.Warnings, WarningEmptyResult)
		return dashboard
	}

	if len(dashboard.UnmappedStates) > 0 {
		dashboard.Warnings = append(dashboard.Warnings, fmt.Sprintf(warningUnmapped, strings.Join(dashboard.UnmappedStates, ", ")))
	}
	if !dashboard.Models.HasData {
		dashboard.Warnings = append(dashboard.Warnings, WarningNoModelData)
	}
	if !dashboard.Consultants.HasData {
		dashboard.Warnings = append(dashboard.Warnings, WarningNoConsultants)
	}

	return dashboard
}
