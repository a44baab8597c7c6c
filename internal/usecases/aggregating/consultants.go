package aggregating

import (
	"math"
	"sort"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/pkg/utils"
)

// DefaultTrendTop é a quantidade de consultores na série mensal
const DefaultTrendTop = 5

type consultantAccumulator struct {
	stats   domain.ConsultantStats
	clients map[string]struct{}
	states  map[string]struct{}
}

// ConsultantPerformance monta o ranking completo de consultores com faixas de performance
// (3 faixas de mesma largura entre o menor e o maior total) e estatísticas da equipe.
// Vendas sem consultor são ignoradas.
func ConsultantPerformance(records []domain.SaleRecord, trendTop int) domain.ConsultantReport {
	report := domain.ConsultantReport{
		Ranking:   make([]domain.ConsultantStats, 0),
		TierCount: make(map[string]int, len(PerformanceTierLabels)),
		Trend:     make([]domain.ConsultantMonth, 0),
	}
	for _, label := range PerformanceTierLabels {
		report.TierCount[label] = 0
	}

	index := make(map[string]int)
	consultants := make([]*consultantAccumulator, 0)
	var attributedTotal int64

	for _, record := range records {
		if record.Consultant == "" {
			continue
		}

		i, ok := index[record.Consultant]
		if !ok {
			i = len(consultants)
			index[record.Consultant] = i
			consultants = append(consultants, &consultantAccumulator{
				stats:   domain.ConsultantStats{Consultant: record.Consultant},
				clients: make(map[string]struct{}),
				states:  make(map[string]struct{}),
			})
		}

		acc := consultants[i]
		acc.stats.TotalQuantity += record.TotalQuantity
		acc.stats.SaleCount++
		if record.Client != "" {
			acc.clients[record.Client] = struct{}{}
		}
		acc.states[record.State] = struct{}{}
		attributedTotal += record.TotalQuantity
	}

	if len(consultants) == 0 {
		return report
	}
	report.HasData = true

	totals := make([]int64, len(consultants))
	for i, acc := range consultants {
		acc.stats.DistinctClients = len(acc.clients)
		acc.stats.DistinctStates = len(acc.states)
		acc.stats.AverageTicket = utils.RoundToInteger(float64(acc.stats.TotalQuantity) / float64(acc.stats.SaleCount))
		report.Ranking = append(report.Ranking, acc.stats)
		totals[i] = acc.stats.TotalQuantity
	}

	sort.SliceStable(report.Ranking, func(i, j int) bool {
		return report.Ranking[i].TotalQuantity > report.Ranking[j].TotalQuantity
	})

	lo, hi := minMax(totals)
	for i := range report.Ranking {
		stats := &report.Ranking[i]
		stats.Rank = i + 1
		stats.Tier = TierIndex(stats.TotalQuantity, lo, hi, int64(len(PerformanceTierLabels)))
		stats.TierLabel = labelFor(PerformanceTierLabels, stats.Tier)
		report.TierCount[stats.TierLabel]++
	}

	report.Team = teamStats(report.Ranking, totals, attributedTotal)
	report.Trend = consultantTrend(records, report.Ranking, trendTop)

	return report
}

func teamStats(ranking []domain.ConsultantStats, totals []int64, attributedTotal int64) domain.TeamStats {
	n := len(ranking)
	team := domain.TeamStats{ConsultantCount: n}

	var sumQuantity int64
	var sumSales int
	for _, stats := range ranking {
		sumQuantity += stats.TotalQuantity
		sumSales += stats.SaleCount
	}

	mean := float64(sumQuantity) / float64(n)
	team.MeanQuantity = utils.RoundWithOneDecimalPlace(mean)
	team.MeanSales = utils.RoundWithOneDecimalPlace(float64(sumSales) / float64(n))
	team.MedianQuantity = median(totals)
	team.StdDevQuantity = utils.RoundWithOneDecimalPlace(sampleStdDev(totals, mean))

	lo, hi := minMax(totals)
	team.RangeQuantity = hi - lo

	top := ranking[0]
	team.TopPerformer = top.Consultant
	team.TopPerformerShare = utils.Percent(top.TotalQuantity, attributedTotal)

	// primeira ocorrência do máximo, seguindo a ordem do ranking
	best := [3]int{}
	for i, stats := range ranking {
		if stats.AverageTicket > ranking[best[0]].AverageTicket {
			best[0] = i
		}
		if stats.DistinctClients > ranking[best[1]].DistinctClients {
			best[1] = i
		}
		if stats.DistinctStates > ranking[best[2]].DistinctStates {
			best[2] = i
		}
	}
	team.HighestAverageTicket = ranking[best[0]].Consultant
	team.MostDistinctClients = ranking[best[1]].Consultant
	team.WidestStateReach = ranking[best[2]].Consultant

	return team
}

// consultantTrend soma as vendas por mês dos trendTop primeiros consultores do ranking
func consultantTrend(records []domain.SaleRecord, ranking []domain.ConsultantStats, trendTop int) []domain.ConsultantMonth {
	if trendTop <= 0 || trendTop > len(ranking) {
		trendTop = len(ranking)
	}

	rankOf := make(map[string]int, trendTop)
	for _, stats := range ranking[:trendTop] {
		rankOf[stats.Consultant] = stats.Rank
	}

	type monthKey struct {
		consultant string
		month      int
	}
	points := make(map[monthKey]*domain.ConsultantMonth)

	for _, record := range records {
		if _, ok := rankOf[record.Consultant]; !ok || record.Month < 1 || record.Month > 12 {
			continue
		}

		key := monthKey{record.Consultant, record.Month}
		point, ok := points[key]
		if !ok {
			point = &domain.ConsultantMonth{
				Consultant: record.Consultant,
				Month:      record.Month,
				Label:      MonthLabel(record.Month),
			}
			points[key] = point
		}
		point.TotalQuantity += record.TotalQuantity
	}

	trend := make([]domain.ConsultantMonth, 0, len(points))
	for _, point := range points {
		trend = append(trend, *point)
	}

	sort.Slice(trend, func(i, j int) bool {
		if trend[i].Month != trend[j].Month {
			return trend[i].Month < trend[j].Month
		}
		return rankOf[trend[i].Consultant] < rankOf[trend[j].Consultant]
	})

	return trend
}

func median(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

// sampleStdDev usa n-1 no denominador; com menos de dois valores retorna 0
func sampleStdDev(values []int64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var sum float64
	for _, v := range values {
		diff := float64(v) - mean
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
