package httpserver

import (
	"xiangqi/internal/session"
	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构，格子用 ICCS 坐标（"h2"）
type MoveDTO struct {
	From xiangqi.Square `json:"from"`
	To   xiangqi.Square `json:"to"`
}

func (m MoveDTO) move() xiangqi.Move {
	return xiangqi.Move{From: m.From, To: m.To}
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{From: m.From, To: m.To}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// 大部分请求只带 game_id
type GameRequest struct {
	GameID string `json:"game_id"`
}

type LegalMovesRequest struct {
	GameID string         `json:"game_id"`
	Square xiangqi.Square `json:"square"`
}

type LegalMovesResponse struct {
	Square xiangqi.Square   `json:"square"`
	Moves  []xiangqi.Square `json:"moves"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// StateResponse 是 new_game / state / reset / ws 推送共用的盘面结构
type StateResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"` // FEN
	ToMove     string    `json:"to_move"`  // "red" / "black"
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"` // "ongoing" / "over"
	Winner     string    `json:"winner,omitempty"`
	Check      bool      `json:"check"`
	History    []string  `json:"history"`
}

type PlayResponse struct {
	StateResponse
	Move     MoveDTO `json:"move"`
	Captured string  `json:"captured,omitempty"`
}

// WSMessage 是 /api/ws 推送的一条消息
type WSMessage struct {
	Kind     string        `json:"kind"`
	State    StateResponse `json:"state"`
	Move     *MoveDTO      `json:"move,omitempty"`
	Captured string        `json:"captured,omitempty"`
}

const (
	statusOngoing = "ongoing"
	statusOver    = "over"
)

func stateResponse(snap *session.Snapshot) StateResponse {
	st := snap.State
	resp := StateResponse{
		GameID:     snap.Record.ID,
		Position:   st.Encode(),
		ToMove:     st.Turn().String(),
		LegalMoves: []MoveDTO{},
		Status:     statusOngoing,
		History:    append([]string{}, snap.Record.History...),
	}
	if st.Over() {
		resp.Status = statusOver
		resp.Winner = st.Winner().String()
		return resp
	}
	resp.LegalMoves = movesToDTO(st.Moves())
	resp.Check = st.InCheck(st.Turn())
	return resp
}

func capturedName(p xiangqi.Piece) string {
	if p.IsEmpty() {
		return ""
	}
	return p.String()
}

func eventMessage(ev session.Event) WSMessage {
	msg := WSMessage{Kind: string(ev.Kind), State: stateResponse(&ev.Snapshot)}
	if ev.Kind == session.EventMove {
		mv := moveToDTO(ev.Move)
		msg.Move = &mv
		msg.Captured = capturedName(ev.Captured)
	}
	return msg
}
