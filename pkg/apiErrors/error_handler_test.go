package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrInvalidSchema, http.StatusBadRequest},
		{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{ErrSessionNotFound, http.StatusNotFound},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{"DESCONHECIDO", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]any{"missing": []string{"UF"}})

			assert.Equal(t, tt.expected, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.NotNil(t, body.Details)
		})
	}
}
