package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"xiangqi/internal/obslog"
	"xiangqi/internal/session"
	"xiangqi/internal/xiangqi"
)

// Handler 把 /api/* 请求转给 session.Manager
type Handler struct {
	games *session.Manager
}

func NewHandler(games *session.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	snap, err := h.games.Create(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(snap))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, err := h.games.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(snap))
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	moves, err := h.games.LegalMoves(r.Context(), req.GameID, req.Square)
	if err != nil {
		writeError(w, err)
		return
	}
	if moves == nil {
		moves = []xiangqi.Square{}
	}
	writeJSON(w, http.StatusOK, LegalMovesResponse{Square: req.Square, Moves: moves})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.games.Play(r.Context(), req.GameID, req.Move.move())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PlayResponse{
		StateResponse: stateResponse(&res.Snapshot),
		Move:          moveToDTO(res.Move),
		Captured:      capturedName(res.Captured),
	})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, err := h.games.Reset(r.Context(), req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(snap))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad json: " + err.Error()})
		return false
	}
	return true
}

type errorBody struct {
	Error string `json:"error"`
}

// statusFor 把领域错误映射成 HTTP 状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, xiangqi.ErrInvalidSquare):
		return http.StatusBadRequest
	case errors.Is(err, xiangqi.ErrGameOver),
		errors.Is(err, xiangqi.ErrNotYourTurn),
		errors.Is(err, xiangqi.ErrIllegalMove),
		errors.Is(err, xiangqi.ErrNoPieceAtOrigin):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		obslog.L().Error("http_error", zap.Error(err))
		msg = "internal error"
	}
	writeJSON(w, code, errorBody{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obslog.L().Warn("write_json_error", zap.Error(err))
	}
}
