// Package pagination calcula janelas de página e o cursor da próxima página
// sobre uma sequência ordenada.
package pagination

import (
	"strconv"
	"strings"
)

// DefaultPerPage é o tamanho de página usado com o dataset de 20 itens.
const DefaultPerPage = 5

// Page é o resultado de uma paginação. NextPage é nil na última página.
type Page[T any] struct {
	Items    []T  `json:"items"`
	NextPage *int `json:"nextPage"`
}

// Paginate devolve os elementos em [start, end) limitados aos bordos da sequência.
// Página fora do intervalo gera slice vazio, nunca erro.
func Paginate[T any](seq []T, page, perPage int) Page[T] {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	result := Page[T]{Items: []T{}}

	// Compara o índice da página antes de multiplicar: páginas enormes estourariam int.
	pages := len(seq) / perPage
	if len(seq)%perPage != 0 {
		pages++
	}
	if page-1 >= pages {
		return result
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(seq))
	result.Items = append(result.Items, seq[start:end]...)

	if page < pages {
		next := page + 1
		result.NextPage = &next
	}
	return result
}

// ParsePage converte o query param "page". Ausente, não numérico ou menor que 1
// vira 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
