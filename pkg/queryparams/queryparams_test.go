package queryparams

import "testing"

func TestValidateClampsRanges(t *testing.T) {
	tests := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{"zero values", ListParams{}, ListParams{Page: 1, PerPage: 20, OrderBy: "desc"}},
		{"negative page", ListParams{Page: -3, PerPage: 10, OrderBy: "asc"}, ListParams{Page: 1, PerPage: 10, OrderBy: "asc"}},
		{"per page over cap", ListParams{Page: 2, PerPage: 500}, ListParams{Page: 2, PerPage: 100, OrderBy: "desc"}},
		{"bogus order", ListParams{Page: 1, PerPage: 20, OrderBy: "sideways"}, ListParams{Page: 1, PerPage: 20, OrderBy: "desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Validate()
			if p != tt.want {
				t.Errorf("Validate() = %+v, want %+v", p, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 0, 0},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}
