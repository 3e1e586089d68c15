package fixtures

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

const (
	DefaultItemCount  = 20
	DefaultOrderCount = 10

	minPrice  = 1.00
	maxPrice  = 100.00
	minAmount = 50
	maxAmount = 500
)

// Options controla a materialização do dataset.
// Seed 0 usa o relógio como semente (valores diferentes a cada processo).
type Options struct {
	Seed       int64
	ItemCount  int
	OrderCount int
}

// Store mantém os datasets em memória. Nada aqui é alterado depois de NewStore,
// por isso as leituras não precisam de lock.
type Store struct {
	users  []User
	items  []Item
	orders map[int]Order
}

// NewStore gera os fixtures uma única vez usando uma fonte aleatória própria.
func NewStore(opts Options) *Store {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.ItemCount <= 0 {
		opts.ItemCount = DefaultItemCount
	}
	if opts.OrderCount <= 0 {
		opts.OrderCount = DefaultOrderCount
	}

	rng := rand.New(rand.NewSource(seed))

	return &Store{
		users:  defaultUsers(),
		items:  generateItems(rng, opts.ItemCount),
		orders: generateOrders(rng, opts.OrderCount),
	}
}

func defaultUsers() []User {
	return []User{
		{ID: 1, Name: "Alice", Company: Company{Name: "OpenAI"}},
		{ID: 2, Name: "Bob", Company: Company{Name: "OpenAI"}},
		{ID: 3, Name: "Charlie", Company: Company{Name: "Google"}},
	}
}

func generateItems(rng *rand.Rand, n int) []Item {
	items := make([]Item, 0, n)
	for i := 1; i <= n; i++ {
		price := minPrice + rng.Float64()*(maxPrice-minPrice)
		items = append(items, Item{
			ID:    i,
			Name:  fmt.Sprintf("Item %d", i),
			Price: Price(math.Round(price*100) / 100),
		})
	}
	return items
}

func generateOrders(rng *rand.Rand, n int) map[int]Order {
	statuses := []OrderStatus{StatusConfirmed, StatusPending}
	orders := make(map[int]Order, n)
	for i := 1; i <= n; i++ {
		orders[i] = Order{
			ID:       i,
			Amount:   minAmount + rng.Intn(maxAmount-minAmount+1),
			Currency: "USD",
			Status:   statuses[rng.Intn(len(statuses))],
		}
	}
	return orders
}

// ListUsers retorna os usuários na ordem de inserção.
func (s *Store) ListUsers() []User {
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// SortedUsers retorna os usuários em ordem decrescente de ID.
func (s *Store) SortedUsers() []User {
	out := s.ListUsers()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	return out
}

// FindUser busca um usuário pelo ID.
func (s *Store) FindUser(id int) (User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
}

// ListItems retorna todos os itens ordenados por ID.
func (s *Store) ListItems() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// FindOrder busca um pedido na tabela de lookup.
func (s *Store) FindOrder(id int) (Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return Order{}, fmt.Errorf("order %d: %w", id, ErrOrderNotFound)
	}
	return o, nil
}
