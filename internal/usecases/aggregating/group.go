// Package aggregating calcula os resumos agrupados consumidos pelo painel
package aggregating

import (
	"fmt"
	"sort"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/pkg/utils"
)

// DefaultTopN é o tamanho dos rankings de UFs, clientes e consultores
const DefaultTopN = 10

// KeyFunc extrai a chave de agrupamento. Retornar false exclui a venda do agrupamento.
type KeyFunc func(record domain.SaleRecord) (string, bool)

type groupAccumulator struct {
	row     domain.AggregateRow
	clients map[string]struct{}
}

// GroupBy agrupa as vendas pela chave, calcula totais e percentuais sobre o total agrupado
// e ordena por quantidade decrescente. Empates mantêm a ordem da primeira aparição da chave.
func GroupBy(records []domain.SaleRecord, key KeyFunc) []domain.AggregateRow {
	index := make(map[string]int)
	groups := make([]*groupAccumulator, 0)
	var grandTotal int64

	for _, record := range records {
		groupKey, ok := key(record)
		if !ok {
			continue
		}

		i, exists := index[groupKey]
		if !exists {
			i = len(groups)
			index[groupKey] = i
			groups = append(groups, &groupAccumulator{
				row:     domain.AggregateRow{GroupKey: groupKey},
				clients: make(map[string]struct{}),
			})
		}

		group := groups[i]
		group.row.TotalQuantity += record.TotalQuantity
		group.row.SaleCount++
		if record.Client != "" {
			group.clients[record.Client] = struct{}{}
		}

		grandTotal += record.TotalQuantity
	}

	rows := make([]domain.AggregateRow, len(groups))
	for i, group := range groups {
		group.row.DistinctClients = len(group.clients)
		group.row.PercentOfTotal = utils.Percent(group.row.TotalQuantity, grandTotal)
		rows[i] = group.row
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalQuantity > rows[j].TotalQuantity
	})

	return rows
}

// TopN mantém as n primeiras linhas sem recalcular os percentuais
func TopN(rows []domain.AggregateRow, n int) []domain.AggregateRow {
	if n < 0 || n > len(rows) {
		n = len(rows)
	}

	top := make([]domain.AggregateRow, n)
	copy(top, rows[:n])
	return top
}

func RegionKey(record domain.SaleRecord) (string, bool) {
	if !record.HasRegion() {
		return "", false
	}
	return string(record.Region), true
}

func StateKey(record domain.SaleRecord) (string, bool) {
	return record.State, record.State != ""
}

func ClientKey(record domain.SaleRecord) (string, bool) {
	return record.Client, record.Client != ""
}

func ConsultantKey(record domain.SaleRecord) (string, bool) {
	return record.Consultant, record.Consultant != ""
}

// MonthKey usa o mês com dois dígitos ("01" a "12")
func MonthKey(record domain.SaleRecord) (string, bool) {
	if record.Month < 1 || record.Month > 12 {
		return "", false
	}
	return fmt.Sprintf("%02d", record.Month), true
}

// ByRegion ignora vendas de UFs sem região. Elas continuam nos totais gerais e por UF.
func ByRegion(records []domain.SaleRecord) []domain.AggregateRow {
	return GroupBy(records, RegionKey)
}

func ByState(records []domain.SaleRecord) []domain.AggregateRow {
	return GroupBy(records, StateKey)
}

func ByClient(records []domain.SaleRecord) []domain.AggregateRow {
	return GroupBy(records, ClientKey)
}

// ByConsultant ignora vendas sem consultor
func ByConsultant(records []domain.SaleRecord) []domain.AggregateRow {
	return GroupBy(records, ConsultantKey)
}

func ByMonth(records []domain.SaleRecord) []domain.AggregateRow {
	return GroupBy(records, MonthKey)
}

// UnmappedStates lista as UFs fora da tabela de regiões, na ordem em que aparecem
func UnmappedStates(records []domain.SaleRecord) []string {
	seen := make(map[string]struct{})
	states := make([]string, 0)

	for _, record := range records {
		if record.HasRegion() {
			continue
		}
		if _, ok := seen[record.State]; ok {
			continue
		}
		seen[record.State] = struct{}{}
		states = append(states, record.State)
	}

	return states
}
