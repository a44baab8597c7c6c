package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSentinel(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"JANEIRO", true},
		{"fevereiro", true},
		{"MARÇO", true},
		{"MARCO", true},
		{" Abril ", true},
		{"MAIO", true},
		{"JUNHO", true},
		{"JULHO", false},
		{"05/01/2025", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSentinel(tt.value))
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "CIDADE", normalizeKey(" cidade "))
	assert.Equal(t, "SAO PAULO", normalizeKey("São Paulo"))
	assert.Equal(t, "MARCO", normalizeKey("março"))
}
