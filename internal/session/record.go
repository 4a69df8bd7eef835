package session

import (
	"time"

	"xiangqi/internal/xiangqi"
)

// Record 是一局棋的持久化形态：局面存 FEN，走法存 ICCS 字符串。
type Record struct {
	ID        string    `json:"id"`
	FEN       string    `json:"fen"`
	Strict    bool      `json:"strict,omitempty"`
	History   []string  `json:"history"`
	Over      bool      `json:"over"`
	Winner    string    `json:"winner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newRecord(id string, strict bool, now time.Time) *Record {
	return &Record{
		ID:        id,
		FEN:       xiangqi.NewGame().Encode(),
		Strict:    strict,
		History:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// State 还原出引擎局面。
func (r *Record) State() (*xiangqi.State, error) {
	return xiangqi.DecodeState(r.FEN, xiangqi.WithStrict(r.Strict))
}

func (r *Record) clone() *Record {
	cp := *r
	cp.History = append([]string(nil), r.History...)
	return &cp
}

func (r *Record) applyOutcome(out *xiangqi.Outcome, now time.Time) {
	r.FEN = out.State.Encode()
	r.History = append(r.History, out.Move.String())
	r.Over = out.State.Over()
	r.Winner = ""
	if r.Over {
		r.Winner = out.State.Winner().String()
	}
	r.UpdatedAt = now
}

func (r *Record) reset(now time.Time) {
	r.FEN = xiangqi.NewGame().Encode()
	r.History = []string{}
	r.Over = false
	r.Winner = ""
	r.UpdatedAt = now
}
