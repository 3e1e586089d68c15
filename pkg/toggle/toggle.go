// Package toggle simula um endpoint instável que alterna entre falha e sucesso
// a cada chamada, para exercitar a lógica de retry dos clientes.
//
// Regra de paridade: contagem ímpar falha, contagem par tem sucesso. A primeira
// chamada de um contador novo é sempre Failure.
package toggle

import (
	"context"
)

// Outcome é o resultado de uma chamada ao endpoint instável.
type Outcome int

const (
	Failure Outcome = iota
	Success
)

// FirstOutcome é o resultado da primeira chamada de um contador zerado.
const FirstOutcome = Failure

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Toggle é o dono exclusivo do contador compartilhado.
type Toggle struct {
	counter Counter
}

// New cria um Toggle. Com counter nil usa um MemoryCounter.
func New(counter Counter) *Toggle {
	if counter == nil {
		counter = NewMemoryCounter()
	}
	return &Toggle{counter: counter}
}

// Next incrementa o contador e deduz o resultado pela paridade do novo valor.
func (t *Toggle) Next(ctx context.Context) (Outcome, error) {
	n, err := t.counter.Incr(ctx)
	if err != nil {
		return Failure, err
	}
	return outcomeFor(n), nil
}

func outcomeFor(n int64) Outcome {
	if n%2 == 1 {
		return Failure
	}
	return Success
}
