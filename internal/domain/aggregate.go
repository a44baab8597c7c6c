package domain

// AggregateRow é o resumo de um agrupamento de vendas (região, UF, cliente, consultor ou mês)
type AggregateRow struct {
	GroupKey        string  `json:"group_key"`
	TotalQuantity   int64   `json:"total_quantity"`
	DistinctClients int     `json:"distinct_clients"`
	SaleCount       int     `json:"sale_count"`
	PercentOfTotal  float64 `json:"percent_of_total"`
}

// VariantTotal é o total de uma família de modelos (6 ou 8 furos)
type VariantTotal struct {
	Variant         string  `json:"variant"`
	Label           string  `json:"label"`
	TotalQuantity   int64   `json:"total_quantity"`
	DistinctClients int     `json:"distinct_clients"`
	SaleCount       int     `json:"sale_count"`
	PercentOfTotal  float64 `json:"percent_of_total"`
}

// ModelSplit é a divisão das vendas entre as duas variantes de modelo
type ModelSplit struct {
	Variants  []VariantTotal `json:"variants"`
	Total     int64          `json:"total"`
	HasData   bool           `json:"has_data"`
	Preferred string         `json:"preferred,omitempty"`
}

// MonthlyTotal é um ponto da série temporal mensal
type MonthlyTotal struct {
	Month         int    `json:"month"`
	Label         string `json:"label"`
	TotalQuantity int64  `json:"total_quantity"`
	SaleCount     int    `json:"sale_count"`
}

// StateIntensity classifica o volume de uma UF em uma das cinco faixas do mapa de calor
type StateIntensity struct {
	State         string `json:"state"`
	TotalQuantity int64  `json:"total_quantity"`
	Level         int    `json:"level"`
	Label         string `json:"label"`
}

// Summary contém as métricas escalares do painel
type Summary struct {
	TotalQuantity   int64   `json:"total_quantity"`
	SaleCount       int     `json:"sale_count"`
	DistinctClients int     `json:"distinct_clients"`
	DistinctStates  int     `json:"distinct_states"`
	AverageTicket   float64 `json:"average_ticket"`
}

// Highlights destaca a região e a UF líderes
type Highlights struct {
	LeadingRegion *AggregateRow `json:"leading_region,omitempty"`
	LeadingState  *AggregateRow `json:"leading_state,omitempty"`
}

// Dashboard reúne tudo o que a camada de apresentação consome
type Dashboard struct {
	Summary         Summary          `json:"summary"`
	Regions         []AggregateRow   `json:"regions"`
	UnmappedStates  []string         `json:"unmapped_states"`
	TopStates       []AggregateRow   `json:"top_states"`
	StateIntensity  []StateIntensity `json:"state_intensity"`
	TopClients      []AggregateRow   `json:"top_clients"`
	TopConsultants  []AggregateRow   `json:"top_consultants"`
	Months          []AggregateRow   `json:"months"`
	MonthlySeries   []MonthlyTotal   `json:"monthly_series"`
	Models          ModelSplit       `json:"models"`
	Consultants     ConsultantReport `json:"consultants"`
	Highlights      Highlights       `json:"highlights"`
	QuantityColumns []QuantityColumn `json:"quantity_columns"`
	Stats           IngestStats      `json:"stats"`
	Empty           bool             `json:"empty"`
	Warnings        []string         `json:"warnings,omitempty"`
}
