package domain

import "time"

// Variantes de modelo de plaqueta, identificadas pelo prefixo da coluna de quantidade
const (
	VariantSixHole   = "6-hole"
	VariantEightHole = "8-hole"
)

// SaleRecord representa uma linha válida da planilha de vendas após a limpeza
type SaleRecord struct {
	Date          time.Time        `json:"date"`
	State         string           `json:"state"`
	Client        string           `json:"client"`
	City          string           `json:"city,omitempty"`
	Consultant    string           `json:"consultant,omitempty"`
	Quantities    map[string]int64 `json:"quantities"`
	TotalQuantity int64            `json:"total_quantity"`
	Month         int              `json:"month"`
	Region        Region           `json:"region,omitempty"`
}

// HasRegion indica se a UF da venda pertence a alguma região conhecida
func (s SaleRecord) HasRegion() bool {
	return s.Region != ""
}

// QuantityColumn é uma coluna de quantidade descoberta no cabeçalho (6F*, 8F*)
type QuantityColumn struct {
	Name    string `json:"name"`
	Index   int    `json:"-"`
	Variant string `json:"variant"`
}

// IngestStats agrega os motivos de descarte e coerção da ingestão
type IngestStats struct {
	RowsRead            int `json:"rows_read"`
	RowsKept            int `json:"rows_kept"`
	DroppedSentinel     int `json:"dropped_sentinel"`
	DroppedMissingField int `json:"dropped_missing_field"`
	DroppedInvalidDate  int `json:"dropped_invalid_date"`
	CoercedCells        int `json:"coerced_cells"`
}

// IngestResult é o resultado completo da ingestão de um arquivo
type IngestResult struct {
	Records         []SaleRecord     `json:"records"`
	QuantityColumns []QuantityColumn `json:"quantity_columns"`
	Stats           IngestStats      `json:"stats"`
}
