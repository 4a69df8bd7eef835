package session

import (
	"go.uber.org/zap"

	"xiangqi/internal/obslog"
	"xiangqi/internal/xiangqi"
)

type EventKind string

const (
	EventMove  EventKind = "move"
	EventReset EventKind = "reset"
)

type Event struct {
	Kind     EventKind
	Snapshot Snapshot
	Move     xiangqi.Move
	Captured xiangqi.Piece
}

const subscriptionBuffer = 16

// Subscription 订阅某一局的事件。消费太慢时丢事件，不阻塞走子。
type Subscription struct {
	GameID string
	C      <-chan Event

	ch chan Event
	m  *Manager
}

func (m *Manager) Subscribe(gameID string) *Subscription {
	ch := make(chan Event, subscriptionBuffer)
	sub := &Subscription{GameID: gameID, C: ch, ch: ch, m: m}

	m.mu.Lock()
	set, ok := m.subs[gameID]
	if !ok {
		set = make(map[*Subscription]struct{})
		m.subs[gameID] = set
	}
	set[sub] = struct{}{}
	m.mu.Unlock()
	return sub
}

// Close 取消订阅并关闭通道，可重复调用。
func (s *Subscription) Close() {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	set, ok := s.m.subs[s.GameID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(s.m.subs, s.GameID)
	}
	close(s.ch)
}

func (m *Manager) publish(ev Event) {
	id := ev.Snapshot.Record.ID
	m.mu.Lock()
	defer m.mu.Unlock()
	for sub := range m.subs[id] {
		select {
		case sub.ch <- ev:
		default:
			obslog.L().Warn("event_dropped", zap.String("game_id", id), zap.String("kind", string(ev.Kind)))
		}
	}
}
