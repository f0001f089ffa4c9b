package dto

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
		want Pagination
	}{
		{"valores informados", 3, 25, Pagination{Page: 3, Size: 25}},
		{"página zero usa a primeira", 0, 10, Pagination{Page: 1, Size: 10}},
		{"página negativa usa a primeira", -2, 10, Pagination{Page: 1, Size: 10}},
		{"tamanho zero usa o padrão", 1, 0, Pagination{Page: 1, Size: 10}},
		{"tamanho acima do teto é limitado", 1, 500, Pagination{Page: 1, Size: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPagination(tt.page, tt.size); got != tt.want {
				t.Errorf("NewPagination(%d, %d) = %+v, esperado %+v", tt.page, tt.size, got, tt.want)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	tests := []struct {
		page int
		size int
		want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{4, 25, 75},
	}

	for _, tt := range tests {
		p := Pagination{Page: tt.page, Size: tt.size}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset() página %d tamanho %d = %d, esperado %d", tt.page, tt.size, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int
		size  int
		want  int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 25, 4},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := totalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("totalPages(%d, %d) = %d, esperado %d", tt.total, tt.size, got, tt.want)
		}
	}
}
