package dashboard

import (
	"testing"
	"time"
)

func TestWindow(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		r         Range
		wantStart time.Time
	}{
		{RangeToday, time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)},
		{RangeWeek, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
		{RangeMonth, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			start, end := tt.r.Window(now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("início = %v, esperado %v", start, tt.wantStart)
			}
			if !end.Equal(now) {
				t.Errorf("fim = %v, esperado %v", end, now)
			}
		})
	}
}

func TestPreviousWindowAdjoins(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC)

	for _, r := range []Range{RangeToday, RangeWeek, RangeMonth} {
		start, _ := r.Window(now)
		prevStart, prevEnd := r.Previous(now)
		if !prevEnd.Equal(start) {
			t.Errorf("%s: janela anterior termina em %v, esperado %v", r, prevEnd, start)
		}
		if !prevStart.Before(prevEnd) {
			t.Errorf("%s: janela anterior vazia: %v .. %v", r, prevStart, prevEnd)
		}
	}
}

func TestValidRange(t *testing.T) {
	for _, valid := range []string{"today", "week", "month"} {
		if !ValidRange(valid) {
			t.Errorf("ValidRange(%q) = false, esperado true", valid)
		}
	}
	for _, invalid := range []string{"", "year", "Today"} {
		if ValidRange(invalid) {
			t.Errorf("ValidRange(%q) = true, esperado false", invalid)
		}
	}
}

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"crescimento", 150, 100, 50},
		{"queda", 50, 100, -50},
		{"sem base e sem vendas", 0, 0, 0},
		{"sem base com vendas", 100, 0, 100},
		{"estável", 80, 80, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangePercent(tt.current, tt.previous); got != tt.want {
				t.Errorf("ChangePercent(%v, %v) = %v, esperado %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}
