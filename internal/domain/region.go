// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Region representa uma das cinco regiões geográficas do Brasil
type Region string

const (
	RegionNorte       Region = "Norte"
	RegionNordeste    Region = "Nordeste"
	RegionCentroOeste Region = "Centro-Oeste"
	RegionSudeste     Region = "Sudeste"
	RegionSul         Region = "Sul"
)

// regionMap é a tabela fixa de regiões e suas UFs, acessada apenas por RegionOf
var regionMap = map[Region][]string{
	RegionNorte:       {"AC", "AP", "AM", "PA", "RO", "RR", "TO"},
	RegionNordeste:    {"AL", "BA", "CE", "MA", "PB", "PE", "PI", "RN", "SE"},
	RegionCentroOeste: {"DF", "GO", "MT", "MS"},
	RegionSudeste:     {"ES", "MG", "RJ", "SP"},
	RegionSul:         {"PR", "RS", "SC"},
}

var regionOrder = [...]Region{RegionNorte, RegionNordeste, RegionCentroOeste, RegionSudeste, RegionSul}

var stateToRegion = buildStateIndex()

func buildStateIndex() map[string]Region {
	index := make(map[string]Region, 27)
	for _, region := range regionOrder {
		for _, state := range regionMap[region] {
			index[state] = region
		}
	}
	return index
}

// RegionOf retorna a região de uma UF. O segundo retorno é falso para UFs desconhecidas.
func RegionOf(state string) (Region, bool) {
	region, ok := stateToRegion[state]
	return region, ok
}
