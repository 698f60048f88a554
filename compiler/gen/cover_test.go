package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type footprinted struct {
	name  string
	paths []string
}

func footprintOf(f footprinted) []string { return f.paths }

func names(items []footprinted) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func TestFindCover(t *testing.T) {
	tests := []struct {
		name  string
		items []footprinted
		want  []string
	}{
		{
			name: "empty",
			want: []string{},
		},
		{
			name: "strict subset is dropped",
			items: []footprinted{
				{"a", []string{"x"}},
				{"b", []string{"x", "y"}},
			},
			want: []string{"b"},
		},
		{
			name: "first of equal footprints wins",
			items: []footprinted{
				{"a", []string{"x", "y"}},
				{"b", []string{"y", "x"}},
				{"c", []string{"x", "y"}},
			},
			want: []string{"a"},
		},
		{
			name: "incomparable footprints are kept in order",
			items: []footprinted{
				{"a", []string{"x", "z"}},
				{"b", []string{"x"}},
				{"c", []string{"x", "y"}},
				{"d", []string{"z"}},
			},
			want: []string{"a", "c"},
		},
		{
			name: "equal footprints dominated by a later one",
			items: []footprinted{
				{"a", []string{"x"}},
				{"b", []string{"x"}},
				{"c", []string{"x", "y", "z"}},
			},
			want: []string{"c"},
		},
		{
			name: "duplicate paths within a footprint",
			items: []footprinted{
				{"a", []string{"x", "x", "y"}},
				{"b", []string{"x", "y"}},
			},
			want: []string{"a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(FindCover(tt.items, footprintOf))
			assert.Equal(t, tt.want, got)
		})
	}
}
