package domain

// Faixas de performance dos consultores, em ordem crescente
const (
	TierLow    = "low"
	TierMedium = "medium"
	TierHigh   = "high"
)

// ConsultantStats é a linha do ranking completo de consultores
type ConsultantStats struct {
	Rank            int     `json:"rank"`
	Consultant      string  `json:"consultant"`
	TotalQuantity   int64   `json:"total_quantity"`
	SaleCount       int     `json:"sale_count"`
	AverageTicket   float64 `json:"average_ticket"`
	DistinctClients int     `json:"distinct_clients"`
	DistinctStates  int     `json:"distinct_states"`
	Tier            int     `json:"tier"`
	TierLabel       string  `json:"tier_label"`
}

// TeamStats são as estatísticas gerais da equipe de vendas
type TeamStats struct {
	ConsultantCount      int     `json:"consultant_count"`
	MeanQuantity         float64 `json:"mean_quantity"`
	MeanSales            float64 `json:"mean_sales"`
	MedianQuantity       float64 `json:"median_quantity"`
	StdDevQuantity       float64 `json:"std_dev_quantity"`
	RangeQuantity        int64   `json:"range_quantity"`
	TopPerformer         string  `json:"top_performer,omitempty"`
	TopPerformerShare    float64 `json:"top_performer_share"`
	HighestAverageTicket string  `json:"highest_average_ticket,omitempty"`
	MostDistinctClients  string  `json:"most_distinct_clients,omitempty"`
	WidestStateReach     string  `json:"widest_state_reach,omitempty"`
}

// ConsultantMonth é um ponto da série mensal de um consultor
type ConsultantMonth struct {
	Consultant    string `json:"consultant"`
	Month         int    `json:"month"`
	Label         string `json:"label"`
	TotalQuantity int64  `json:"total_quantity"`
}

// ConsultantReport é a análise detalhada dos consultores
type ConsultantReport struct {
	Ranking   []ConsultantStats `json:"ranking"`
	Team      TeamStats         `json:"team"`
	TierCount map[string]int    `json:"tier_count"`
	Trend     []ConsultantMonth `json:"trend"`
	HasData   bool              `json:"has_data"`
}
