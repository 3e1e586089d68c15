package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/raywall/api-playground/pkg/auth"
	"github.com/raywall/api-playground/pkg/fixtures"
	"github.com/raywall/api-playground/pkg/metrics"
	"github.com/raywall/api-playground/pkg/pagination"
	"github.com/raywall/api-playground/pkg/timewindow"
	"github.com/raywall/api-playground/pkg/toggle"
	"github.com/rs/zerolog/log"
)

// Dependencies são os componentes injetados no roteador. O roteador em si não
// guarda estado: o único estado mutável vive dentro do Toggle.
type Dependencies struct {
	Store     *fixtures.Store
	Toggle    *toggle.Toggle
	Events    *timewindow.Generator
	Guard     *auth.Guard
	Metrics   *metrics.Recorder
	PerPage   int
	EventName string

	// Opcionais (testes injetam valores determinísticos)
	Now        func() time.Time
	RandomID   func() int
	maxBodyLen int64
}

func (d *Dependencies) applyDefaults() {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.RandomID == nil {
		d.RandomID = func() int { return 1000 + rand.IntN(9000) }
	}
	if d.PerPage <= 0 {
		d.PerPage = pagination.DefaultPerPage
	}
	if d.Store == nil {
		d.Store = fixtures.NewStore(fixtures.Options{})
	}
	if d.Guard == nil {
		d.Guard = auth.NewGuard("", 0)
	}
	if d.Toggle == nil {
		d.Toggle = toggle.New(nil)
	}
	if d.Events == nil {
		d.Events = timewindow.NewGenerator(timewindow.DefaultOffset)
	}
	if d.maxBodyLen == 0 {
		d.maxBodyLen = 1 << 20
	}
}

type handlers struct {
	deps Dependencies
}

// --- Autenticação ---

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, r, http.StatusOK, h.deps.Guard.Issue())
}

func (h *handlers) protected(w http.ResponseWriter, r *http.Request) {
	if !h.deps.Guard.Authorized(r.Header.Get("Authorization")) {
		sendError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sendResponse(w, r, http.StatusOK, MessageBody{Message: "This is protected"})
}

type registerResponse struct {
	ID        int         `json:"id"`
	Username  interface{} `json:"username"`
	Email     interface{} `json:"email"`
	CreatedAt string      `json:"createdAt"`
}

// register ecoa username/email sem validação. Corpo ausente ou inválido vira null.
func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.deps.maxBodyLen))
	if err == nil && len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Ctx(r.Context()).Debug().Err(err).Msg("corpo de registro ignorado")
			payload = map[string]interface{}{}
		}
	}

	sendResponse(w, r, http.StatusOK, registerResponse{
		ID:        h.deps.RandomID(),
		Username:  payload["username"],
		Email:     payload["email"],
		CreatedAt: timewindow.FormatTimestamp(h.deps.Now()),
	})
}

// --- Recursos ---

type profileResponse struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// userProfile aceita qualquer id numérico, sem consultar o dataset.
func (h *handlers) userProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sendResponse(w, r, http.StatusOK, profileResponse{
		ID:       id,
		Username: fmt.Sprintf("user%d", id),
		Email:    fmt.Sprintf("user%d@mail.com", id),
		Roles:    []string{"admin", "editor"},
	})
}

func (h *handlers) userWithCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := h.deps.Store.FindUser(id)
	if errors.Is(err, fixtures.ErrUserNotFound) {
		sendError(w, r, http.StatusNotFound, "User not found")
		return
	}
	sendResponse(w, r, http.StatusOK, user)
}

type bookResponse struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Published bool     `json:"published"`
}

func (h *handlers) book(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sendResponse(w, r, http.StatusOK, bookResponse{
		ID:        id,
		Title:     "API Testing with Postman",
		Authors:   []string{"Jane Doe", "John Smith"},
		Published: true,
	})
}

// order mantém o status 200 no "não encontrado" por compatibilidade com os clientes existentes.
func (h *handlers) order(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := h.deps.Store.FindOrder(id)
	if errors.Is(err, fixtures.ErrOrderNotFound) {
		sendError(w, r, http.StatusOK, "Order not found")
		return
	}
	sendResponse(w, r, http.StatusOK, order)
}

type usersResponse struct {
	Users []fixtures.User `json:"users"`
}

func (h *handlers) sortedUsers(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, r, http.StatusOK, usersResponse{Users: h.deps.Store.SortedUsers()})
}

// --- Simulação ---

func (h *handlers) items(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get("page"))
	sendResponse(w, r, http.StatusOK, pagination.Paginate(h.deps.Store.ListItems(), page, h.deps.PerPage))
}

func (h *handlers) unstable(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.deps.Toggle.Next(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("falha ao avançar o contador instável")
		sendError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.deps.Metrics.RecordOutcome(outcome.String())
	log.Ctx(r.Context()).Debug().Str("outcome", outcome.String()).Msg("unstable")

	if outcome == toggle.Failure {
		sendError(w, r, http.StatusInternalServerError, "Temporary failure")
		return
	}
	sendResponse(w, r, http.StatusOK, MessageBody{Message: "Success after retry"})
}

type eventResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Name  string `json:"name,omitempty"`
}

func (h *handlers) event(w http.ResponseWriter, r *http.Request) {
	win := h.deps.Events.Current()
	sendResponse(w, r, http.StatusOK, eventResponse{
		Start: timewindow.FormatTimestamp(win.Start),
		End:   timewindow.FormatTimestamp(win.End),
		Name:  h.deps.EventName,
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	sendError(w, r, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	sendError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}

// pathID lê {id}. A rota já restringe a dígitos; só overflow chega aqui como erro.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w, r)
		return 0, false
	}
	return id, true
}
