package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
)

// SlotInfo summarizes one occupied save slot.
type SlotInfo struct {
	Slot      byte
	Block     engine.SaveBlock
	UpdatedAt time.Time
}

// SlotLister is implemented by save stores that can enumerate their slots.
type SlotLister interface {
	Slots() ([]SlotInfo, error)
}

// slotNames lists the save slots in display order.
var slotNames = []byte("123456789T")

// SQLiteSaveStore keeps save blocks in the saves table, one row per slot.
type SQLiteSaveStore struct {
	db     *sql.DB
	gameID string
}

var (
	_ engine.SaveStore = (*SQLiteSaveStore)(nil)
	_ SlotLister       = (*SQLiteSaveStore)(nil)
)

// SaveStore returns the save slots of a game.
func (s *Store) SaveStore(gameID string) *SQLiteSaveStore {
	return &SQLiteSaveStore{db: s.db, gameID: gameID}
}

// Save writes a block to a slot, replacing what was there.
func (s *SQLiteSaveStore) Save(slot byte, b engine.SaveBlock) error {
	data, err := b.MarshalBinary()
	if err != nil {
		return fmt.Errorf("storage: encode slot %q: %w", slot, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO saves (game_id, slot, data, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (game_id, slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.gameID, string(slot), data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %q: %w", slot, err)
	}
	return nil
}

// Load reads a slot. An empty slot returns engine.ErrSaveNotFound.
func (s *SQLiteSaveStore) Load(slot byte) (engine.SaveBlock, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM saves WHERE game_id = ? AND slot = ?",
		s.gameID, string(slot),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.SaveBlock{}, engine.ErrSaveNotFound
	}
	if err != nil {
		return engine.SaveBlock{}, fmt.Errorf("storage: cannot load slot %q: %w", slot, err)
	}

	var b engine.SaveBlock
	if err := b.UnmarshalBinary(data); err != nil {
		return engine.SaveBlock{}, fmt.Errorf("storage: slot %q: %w", slot, err)
	}
	return b, nil
}

// Slots lists the occupied slots in slot order, the temporary slot last.
func (s *SQLiteSaveStore) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		"SELECT slot, data, updated_at FROM saves WHERE game_id = ?",
		s.gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	found := make(map[byte]SlotInfo)
	for rows.Next() {
		var (
			slot      string
			data      []byte
			updatedAt any
		)
		if err := rows.Scan(&slot, &data, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if len(slot) != 1 {
			continue
		}
		info := SlotInfo{Slot: slot[0], UpdatedAt: parseTime(updatedAt)}
		if err := info.Block.UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("storage: slot %q: %w", slot, err)
		}
		found[info.Slot] = info
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return orderSlots(found), nil
}

func orderSlots(found map[byte]SlotInfo) []SlotInfo {
	var out []SlotInfo
	for _, name := range slotNames {
		if info, ok := found[name]; ok {
			out = append(out, info)
		}
	}
	return out
}
