package auth

import (
	"time"
)

// DefaultToken é o segredo compartilhado devolvido por /login.
const DefaultToken = "abc123"

// DefaultExpiresIn é apenas informativo: a expiração nunca é verificada.
const DefaultExpiresIn = 60 * time.Second

// TokenResponse é o corpo devolvido pelo login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // Tempo em segundos
}

// Guard emite e confere o token fixo. Não há criptografia nem estado.
type Guard struct {
	token     string
	expiresIn time.Duration
}

// NewGuard cria um Guard. Valores vazios usam os padrões.
func NewGuard(token string, expiresIn time.Duration) *Guard {
	if token == "" {
		token = DefaultToken
	}
	if expiresIn <= 0 {
		expiresIn = DefaultExpiresIn
	}
	return &Guard{token: token, expiresIn: expiresIn}
}

// Issue devolve sempre o mesmo token.
func (g *Guard) Issue() TokenResponse {
	return TokenResponse{
		Token:     g.token,
		ExpiresIn: int(g.expiresIn / time.Second),
	}
}

// Authorized compara o header Authorization com "Bearer <token>", byte a byte.
func (g *Guard) Authorized(header string) bool {
	return header == g.BearerValue()
}

// BearerValue é o valor exato esperado no header Authorization.
func (g *Guard) BearerValue() string {
	return "Bearer " + g.token
}
