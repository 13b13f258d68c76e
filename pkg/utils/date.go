package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const MonthLayout = "2006-01"

// layouts aceitos tanto para timestamps de pedidos quanto para datas de
// início de anúncios. Segundos fracionários são aceitos por time.Parse mesmo
// sem constarem no layout.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 Z07:00",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02T15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
	"01/02/2006",
	"2006/01/02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ParseTimestamp aceita os formatos ISO mais comuns, com fuso numérico ou
// nomeado (UTC). Valor vazio retorna nil.
func ParseTimestamp(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	if ts, ok := parseTime(s); ok {
		return &ts, nil
	}

	return nil, errors.Errorf("timestamp inválido %q", raw)
}

// MonthKey deriva a chave yyyy-mm de uma data textual. Quando nenhum formato
// conhecido funciona, usa os 7 primeiros caracteres e retorna fallback=true.
func MonthKey(raw string) (key string, fallback bool) {
	s := strings.TrimSpace(raw)

	if date, ok := parseTime(s); ok {
		return date.Format(MonthLayout), false
	}

	runes := []rune(s)
	if len(runes) > 7 {
		runes = runes[:7]
	}

	return string(runes), true
}
