package ingesting

import (
	"fmt"
	"strings"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
)

// Nomes de coluna esperados na planilha
const (
	ColumnDate       = "DATA"
	ColumnState      = "UF"
	ColumnClient     = "CLIENTE"
	ColumnCity       = "CIDADE"
	ColumnConsultant = "CONSULTOR"

	prefixSixHole   = "6F"
	prefixEightHole = "8F"
)

const missingColumn = -1

// Schema guarda a posição das colunas, resolvida uma única vez a partir do cabeçalho
type Schema struct {
	Date            int
	State           int
	Client          int
	City            int
	Consultant      int
	QuantityColumns []domain.QuantityColumn
}

// DiscoverSchema valida o cabeçalho e enumera as colunas de quantidade (6F*, 8F*).
// Retorna *SchemaError quando DATA ou UF não existem.
func DiscoverSchema(header []string) (*Schema, error) {
	schema := &Schema{
		Date:       missingColumn,
		State:      missingColumn,
		Client:     missingColumn,
		City:       missingColumn,
		Consultant: missingColumn,
	}

	seenNames := make(map[string]int)

	for i, raw := range header {
		key := normalizeKey(raw)

		switch key {
		case ColumnDate:
			setOnce(&schema.Date, i)
			continue
		case ColumnState:
			setOnce(&schema.State, i)
			continue
		case ColumnClient:
			setOnce(&schema.Client, i)
			continue
		case ColumnCity:
			setOnce(&schema.City, i)
			continue
		case ColumnConsultant:
			setOnce(&schema.Consultant, i)
			continue
		}

		variant, ok := variantOf(key)
		if !ok {
			continue
		}

		schema.QuantityColumns = append(schema.QuantityColumns, domain.QuantityColumn{
			Name:    uniqueName(strings.TrimSpace(raw), seenNames),
			Index:   i,
			Variant: variant,
		})
	}

	var missing []string
	if schema.Date == missingColumn {
		missing = append(missing, ColumnDate)
	}
	if schema.State == missingColumn {
		missing = append(missing, ColumnState)
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	return schema, nil
}

// HasClient indica se a coluna CLIENTE está presente
func (s *Schema) HasClient() bool {
	return s.Client != missingColumn
}

func variantOf(key string) (string, bool) {
	switch {
	case strings.HasPrefix(key, prefixSixHole):
		return domain.VariantSixHole, true
	case strings.HasPrefix(key, prefixEightHole):
		return domain.VariantEightHole, true
	default:
		return "", false
	}
}

// setOnce mantém a primeira ocorrência de colunas repetidas
func setOnce(target *int, index int) {
	if *target == missingColumn {
		*target = index
	}
}

// uniqueName diferencia colunas de quantidade com o mesmo nome (6F, 6F.1, 6F.2)
func uniqueName(name string, seen map[string]int) string {
	count, exists := seen[name]
	seen[name] = count + 1
	if !exists {
		return name
	}
	return fmt.Sprintf("%s.%d", name, count)
}

// cell devolve o valor da coluna ou vazio quando a linha é mais curta que o cabeçalho
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
