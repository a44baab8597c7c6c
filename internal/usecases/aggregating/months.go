package aggregating

import (
	"sort"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
)

var monthLabels = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthLabel retorna a abreviação do mês em português
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthLabels[month-1]
}

// MonthlySeries soma as vendas por mês em ordem cronológica
func MonthlySeries(records []domain.SaleRecord) []domain.MonthlyTotal {
	byMonth := make(map[int]*domain.MonthlyTotal)

	for _, record := range records {
		if record.Month < 1 || record.Month > 12 {
			continue
		}

		point, ok := byMonth[record.Month]
		if !ok {
			point = &domain.MonthlyTotal{Month: record.Month, Label: MonthLabel(record.Month)}
			byMonth[record.Month] = point
		}
		point.TotalQuantity += record.TotalQuantity
		point.SaleCount++
	}

	series := make([]domain.MonthlyTotal, 0, len(byMonth))
	for _, point := range byMonth {
		series = append(series, *point)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})

	return series
}
