package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	data := seq(20)

	tests := []struct {
		name     string
		page     int
		perPage  int
		want     []int
		wantNext *int
	}{
		{name: "Primeira página", page: 1, perPage: 5, want: []int{1, 2, 3, 4, 5}, wantNext: intPtr(2)},
		{name: "Página intermediária", page: 3, perPage: 5, want: []int{11, 12, 13, 14, 15}, wantNext: intPtr(4)},
		{name: "Última página", page: 4, perPage: 5, want: []int{16, 17, 18, 19, 20}, wantNext: nil},
		{name: "Além do fim", page: 5, perPage: 5, want: []int{}, wantNext: nil},
		{name: "Muito além do fim", page: 1000, perPage: 5, want: []int{}, wantNext: nil},
		{name: "Página parcial", page: 3, perPage: 8, want: []int{17, 18, 19, 20}, wantNext: nil},
		{name: "Página gigante não estoura", page: math.MaxInt/5 + 2, perPage: 5, want: []int{}, wantNext: nil},
		{name: "Última página possível", page: math.MaxInt, perPage: 5, want: []int{}, wantNext: nil},
		{name: "Página zero vira 1", page: 0, perPage: 5, want: []int{1, 2, 3, 4, 5}, wantNext: intPtr(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(data, tt.page, tt.perPage)
			require.NotNil(t, got.Items)
			assert.Equal(t, tt.want, got.Items)
			assert.Equal(t, tt.wantNext, got.NextPage)
		})
	}
}

func TestPaginate_Properties(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 19, 20, 21} {
		data := seq(n)
		for perPage := 1; perPage <= 7; perPage++ {
			for page := 1; page <= n+2; page++ {
				got := Paginate(data, page, perPage)
				assert.LessOrEqual(t, len(got.Items), perPage)

				consumed := (page-1)*perPage + len(got.Items)
				remaining := consumed < n && len(got.Items) > 0
				assert.Equal(t, remaining, got.NextPage != nil, "n=%d perPage=%d page=%d", n, perPage, page)
				if got.NextPage != nil {
					assert.Equal(t, page+1, *got.NextPage)
				}
			}
		}
	}
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	data := seq(10)
	got := Paginate(data, 1, 5)
	got.Items[0] = 99
	assert.Equal(t, 1, data[0])
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"1":   1,
		"4":   4,
		" 2 ": 2,
		"abc": 1,
		"0":   1,
		"-3":  1,
		"2.5": 1,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParsePage(raw), "raw=%q", raw)
	}
}

func intPtr(i int) *int { return &i }

func TestPaginate_EmptySequence(t *testing.T) {
	got := Paginate([]int{}, 1, 5)
	require.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.Nil(t, got.NextPage)
}
