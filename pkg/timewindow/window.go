// Package timewindow gera pares início/fim deslocados de "agora" por uma duração fixa.
package timewindow

import "time"

// DefaultOffset é a duração da janela do endpoint /event.
const DefaultOffset = time.Hour

// TimestampLayout serializa sempre em UTC com sufixo Z e microssegundos.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Window é um intervalo [Start, End] em UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// Generator produz janelas a partir do relógio injetado.
type Generator struct {
	Offset time.Duration
	Now    func() time.Time
}

// NewGenerator usa time.Now como relógio. Offset <= 0 vira DefaultOffset.
func NewGenerator(offset time.Duration) *Generator {
	if offset <= 0 {
		offset = DefaultOffset
	}
	return &Generator{Offset: offset, Now: time.Now}
}

// Current devolve a janela que começa no instante da chamada.
func (g *Generator) Current() Window {
	now := g.Now
	if now == nil {
		now = time.Now
	}
	start := now().UTC()
	return Window{Start: start, End: start.Add(g.Offset)}
}

// FormatTimestamp formata t em ISO-8601 UTC com sufixo Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
