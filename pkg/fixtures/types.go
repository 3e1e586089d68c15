package fixtures

import (
	"errors"
	"strconv"
)

// Erros sentinela usados pelo roteador para escolher o status HTTP.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")
)

// Company é a empresa associada a um usuário.
type Company struct {
	Name string `json:"name"`
}

// User é um usuário imutável do dataset de exemplo.
type User struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Company Company `json:"company"`
}

// Price é um valor monetário serializado sempre com duas casas decimais.
type Price float64

// MarshalJSON escreve o preço com escala fixa (40.10, nunca 40.1).
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', 2, 64)), nil
}

// Item é um produto da listagem paginada. O preço é sorteado uma única vez no boot.
type Item struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price Price   `json:"price"`
}

// OrderStatus representa o estado de um pedido.
type OrderStatus string

const (
	StatusConfirmed OrderStatus = "confirmed"
	StatusPending   OrderStatus = "pending"
)

// Order é um pedido indexado por ID na tabela de lookup.
type Order struct {
	ID       int         `json:"id"`
	Amount   int         `json:"amount"`
	Currency string      `json:"currency"`
	Status   OrderStatus `json:"status"`
}
