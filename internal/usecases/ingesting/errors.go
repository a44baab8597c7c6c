package ingesting

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidFile indica um arquivo que não pôde ser interpretado como tabela
var ErrInvalidFile = errors.New("arquivo inválido")

// SchemaError indica que colunas obrigatórias não existem no cabeçalho.
// É o único erro que interrompe o processamento sem resultado parcial.
type SchemaError struct {
	Missing []string
}

// Error implementa a interface error
func (e *SchemaError) Error() string {
	return fmt.Sprintf("colunas obrigatórias ausentes: %s", strings.Join(e.Missing, ", "))
}

// IsSchemaError verifica se o erro (ou algum erro encadeado) é um SchemaError
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}
