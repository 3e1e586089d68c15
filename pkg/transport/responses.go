package transport

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorBody é o formato padrão de erro: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody é o formato padrão de mensagem: {"message": "..."}.
type MessageBody struct {
	Message string `json:"message"`
}

func sendResponse(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("erro ao serializar resposta")
	}
}

func sendError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	sendResponse(w, r, status, ErrorBody{Error: msg})
}
