package controller

import (
	"testing"
	"time"
)

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		upperBound bool
		want       time.Time
	}{
		{
			"instante RFC3339",
			"2026-08-30T10:15:00Z", false,
			time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC),
		},
		{
			"RFC3339 no limite superior não é ajustado",
			"2026-08-30T00:00:00Z", true,
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			"somente data no limite inferior",
			"2026-08-30", false,
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			// O limite superior é exclusivo; a data avança um dia para
			// incluir as vendas do próprio dia
			"somente data no limite superior",
			"2026-08-30", true,
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateParam(tt.value, tt.upperBound)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDateParam(%q, %v) = %v, esperado %v", tt.value, tt.upperBound, got, tt.want)
			}
		})
	}
}

func TestParseDateParamInvalid(t *testing.T) {
	for _, value := range []string{"", "30/08/2026", "2026-13-01", "ontem"} {
		if _, err := parseDateParam(value, false); err == nil {
			t.Errorf("parseDateParam(%q) não retornou erro", value)
		}
	}
}
