package dashboarding

import "errors"

var (
	ErrSessionNotFound = errors.New("sessão não encontrada ou expirada")
	ErrUnknownGrouping = errors.New("agrupamento desconhecido")
)
