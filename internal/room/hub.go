package room

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrNotJoined is returned for sessions that are not in any room.
var ErrNotJoined = errors.New("room: session not joined")

type membership struct {
	room   string
	member Member
	handle SessionHandle
}

// Hub tracks rooms and fans score events out to their members.
// Safe for concurrent use.
type Hub struct {
	logger *log.Logger

	mu       sync.RWMutex
	sessions map[SessionID]*membership
	rooms    map[string]map[SessionID]*membership
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		logger:   logger,
		sessions: make(map[SessionID]*membership),
		rooms:    make(map[string]map[SessionID]*membership),
	}
}

// NormalizeCode trims and lowercases a room code. Empty becomes DefaultRoom.
func NormalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultRoom
	}
	return code
}

// Join adds the session to a room, leaving any room it was in before.
// Members of both rooms are notified. It returns the normalized room code.
func (h *Hub) Join(code, player string, handle SessionHandle) string {
	code = NormalizeCode(code)
	m := &membership{
		room:   code,
		member: Member{Session: handle.ID(), Player: player},
		handle: handle,
	}

	h.mu.Lock()
	prev, prevPeers := h.leaveLocked(handle.ID())
	if h.rooms[code] == nil {
		h.rooms[code] = make(map[SessionID]*membership)
	}
	h.rooms[code][handle.ID()] = m
	h.sessions[handle.ID()] = m
	peers := h.peersLocked(code, handle.ID())
	h.mu.Unlock()

	if prev != nil {
		h.notifyLeft(prev, prevPeers)
	}
	h.logger.Debug("room joined", "room", code, "player", player, "members", len(peers)+1)
	for _, p := range peers {
		p.Send(MemberJoinedEvent{Room: code, Member: m.member})
	}
	return code
}

// Leave removes the session from its room. Unknown sessions are ignored.
func (h *Hub) Leave(id SessionID) {
	h.mu.Lock()
	m, peers := h.leaveLocked(id)
	h.mu.Unlock()

	if m != nil {
		h.notifyLeft(m, peers)
	}
}

// leaveLocked drops the session and returns its membership and the peers it
// left behind, or nil for unknown sessions.
func (h *Hub) leaveLocked(id SessionID) (*membership, []SessionHandle) {
	m, ok := h.sessions[id]
	if !ok {
		return nil, nil
	}
	delete(h.sessions, id)
	delete(h.rooms[m.room], id)
	if len(h.rooms[m.room]) == 0 {
		delete(h.rooms, m.room)
	}
	return m, h.peersLocked(m.room, id)
}

func (h *Hub) notifyLeft(m *membership, peers []SessionHandle) {
	h.logger.Debug("room left", "room", m.room, "player", m.member.Player)
	for _, p := range peers {
		p.Send(MemberLeftEvent{Room: m.room, Member: m.member})
	}
}

// Publish sends a score to every other member of the session's room.
func (h *Hub) Publish(id SessionID, score int, final bool) error {
	h.mu.RLock()
	m, ok := h.sessions[id]
	if !ok {
		h.mu.RUnlock()
		return ErrNotJoined
	}
	peers := h.peersLocked(m.room, id)
	h.mu.RUnlock()

	evt := ScoreEvent{
		Room:    m.room,
		Session: id,
		Player:  m.member.Player,
		Score:   score,
		Final:   final,
	}
	for _, p := range peers {
		p.Send(evt)
	}
	return nil
}

// Members returns the members of a room sorted by player name.
func (h *Hub) Members(code string) []Member {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room := h.rooms[NormalizeCode(code)]
	out := make([]Member, 0, len(room))
	for _, m := range room {
		out = append(out, m.member)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].Session < out[j].Session
	})
	return out
}

// RoomCount returns the number of non-empty rooms.
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

func (h *Hub) peersLocked(code string, except SessionID) []SessionHandle {
	room := h.rooms[code]
	peers := make([]SessionHandle, 0, len(room))
	for sid, m := range room {
		if sid != except {
			peers = append(peers, m.handle)
		}
	}
	return peers
}

// Relay publishes a game session's scores to its room. It satisfies the
// game's score reporter. Live scores are sent every Every ticks; the final
// score is always sent.
type Relay struct {
	Hub     *Hub
	Session SessionID
	Every   int
}

// ReportScore publishes a live score.
func (r Relay) ReportScore(score int) {
	if r.Hub == nil {
		return
	}
	if r.Every > 1 && score%r.Every != 0 {
		return
	}
	_ = r.Hub.Publish(r.Session, score, false)
}

// ReportTermination publishes the final score.
func (r Relay) ReportTermination(score int) {
	if r.Hub == nil {
		return
	}
	if err := r.Hub.Publish(r.Session, score, true); err != nil {
		r.Hub.logger.Warn("final score not relayed", "session", r.Session, "err", err)
	}
}
