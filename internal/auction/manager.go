package auction

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cricbid/auction-engine/internal/catalog"
)

// Manager owns the live auction session: the catalog snapshot and the
// sale log. It is the only mutable state in the service; everything it
// hands out is a copy, so engine calls always work over immutable
// snapshots.
type Manager struct {
	mu      sync.RWMutex
	players []catalog.Player
	sales   []Sale
	version uint64
	log     *logrus.Logger
}

// Snapshot is a consistent view of the auction at one log position.
type Snapshot struct {
	Version uint64
	Teams   map[string]*TeamState
	Pool    []catalog.Player
	Sales   []Sale
}

func NewManager(players []catalog.Player, log *logrus.Logger) *Manager {
	return &Manager{players: players, log: log}
}

// Version identifies the current log position. It increments on every
// sale and undo, and keys service-level response caches.
func (m *Manager) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// Snapshot folds the current log into team states and the remaining
// pool.
func (m *Manager) Snapshot() (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	teams, pool, err := Fold(m.players, m.sales)
	if err != nil {
		return nil, err
	}

	sales := make([]Sale, len(m.sales))
	copy(sales, m.sales)

	return &Snapshot{Version: m.version, Teams: teams, Pool: pool, Sales: sales}, nil
}

// RecordSale appends a sale to the log after validating it against the
// folded state. The validation mirrors Fold so an accepted sale can
// never make the log unreplayable.
func (m *Manager) RecordSale(sale Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, _, err := Fold(m.players, append(m.sales, sale)); err != nil {
		return fmt.Errorf("sale rejected: %w", err)
	}

	m.sales = append(m.sales, sale)
	m.version++

	m.log.WithFields(logrus.Fields{
		"player_id":       sale.PlayerID,
		"team":            sale.Team,
		"price":           sale.Price,
		"auction_version": m.version,
	}).Info("Sale recorded")
	return nil
}

// UndoLast removes the most recent sale and returns it.
func (m *Manager) UndoLast() (*Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sales) == 0 {
		return nil, fmt.Errorf("auction log is empty")
	}

	last := m.sales[len(m.sales)-1]
	m.sales = m.sales[:len(m.sales)-1]
	m.version++

	m.log.WithFields(logrus.Fields{
		"player_id":       last.PlayerID,
		"team":            last.Team,
		"auction_version": m.version,
	}).Info("Last sale undone")
	return &last, nil
}

// UpdateRatings edits a player's ratings and recomputes the derived
// role, overall and tier. The version advances so cached advice over
// the old ratings is invalidated.
func (m *Manager) UpdateRatings(id, batting, bowling, fielding int) (catalog.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.players {
		if m.players[i].ID != id {
			continue
		}

		m.players[i].Batting = batting
		m.players[i].Bowling = bowling
		m.players[i].Fielding = fielding
		m.players[i].Recompute()
		m.version++

		m.log.WithFields(logrus.Fields{
			"player_id":       id,
			"overall":         m.players[i].Overall,
			"auction_version": m.version,
		}).Info("Player ratings updated")
		return m.players[i], nil
	}
	return catalog.Player{}, fmt.Errorf("player %d not found", id)
}

// Player looks up a catalog player by id.
func (m *Manager) Player(id int) (catalog.Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.players {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Player{}, false
}
