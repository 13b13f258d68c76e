package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		name             string
		raw              string
		expectedMonth    string
		expectedFallback bool
	}{
		{name: "Data ISO", raw: "2024-01-05", expectedMonth: "2024-01"},
		{name: "Mesmo mês, outro dia", raw: "2024-01-28", expectedMonth: "2024-01"},
		{name: "Data com horário", raw: "2024-02-10 08:30:00", expectedMonth: "2024-02"},
		{name: "Formato americano", raw: "03/15/2024", expectedMonth: "2024-03"},
		{name: "Data com barras", raw: "2024/04/01", expectedMonth: "2024-04"},
		{name: "Data e hora com fuso numérico", raw: "2024-01-05 10:00:00+00:00", expectedMonth: "2024-01"},
		{name: "Data e hora com fuso nomeado", raw: "2024-06-30 22:00:00 UTC", expectedMonth: "2024-06"},
		{name: "RFC3339 com segundos fracionários", raw: "2024-07-01T00:00:00.250Z", expectedMonth: "2024-07"},
		{name: "Texto desconhecido usa o prefixo", raw: "2024-13-99", expectedMonth: "2024-13", expectedFallback: true},
		{name: "Texto curto é usado inteiro", raw: "jan", expectedMonth: "jan", expectedFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, fallback := MonthKey(tt.raw)
			assert.Equal(t, tt.expectedMonth, month)
			assert.Equal(t, tt.expectedFallback, fallback)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("Vazio retorna nil sem erro", func(t *testing.T) {
		ts, err := ParseTimestamp("")
		assert.NoError(t, err)
		assert.Nil(t, ts)
	})

	t.Run("RFC3339 com fuso", func(t *testing.T) {
		ts, err := ParseTimestamp("2024-01-31T23:30:00-03:00")
		assert.NoError(t, err)
		if assert.NotNil(t, ts) {
			assert.Equal(t, "2024-01", ts.Format(MonthLayout))
		}
	})

	t.Run("Data e hora sem fuso", func(t *testing.T) {
		ts, err := ParseTimestamp("2024-02-01 10:00:00")
		assert.NoError(t, err)
		if assert.NotNil(t, ts) {
			assert.Equal(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), *ts)
		}
	})

	t.Run("Fuso nomeado UTC", func(t *testing.T) {
		ts, err := ParseTimestamp("2024-01-05 10:00:00 UTC")
		assert.NoError(t, err)
		if assert.NotNil(t, ts) {
			assert.True(t, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC).Equal(*ts))
		}
	})

	t.Run("Fuso numérico sem T", func(t *testing.T) {
		ts, err := ParseTimestamp("2024-01-05 10:00:00+00:00")
		assert.NoError(t, err)
		if assert.NotNil(t, ts) {
			assert.Equal(t, "2024-01", ts.Format(MonthLayout))
		}
	})

	t.Run("Apenas data", func(t *testing.T) {
		ts, err := ParseTimestamp("2024-03-09")
		assert.NoError(t, err)
		if assert.NotNil(t, ts) {
			assert.Equal(t, "2024-03", ts.Format(MonthLayout))
		}
	})

	t.Run("Texto inválido", func(t *testing.T) {
		_, err := ParseTimestamp("ontem")
		assert.Error(t, err)
	})
}
