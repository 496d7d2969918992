package engine

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrSaveNotFound is returned when a slot has never been written.
	ErrSaveNotFound = errors.New("save slot is empty")
	// ErrSaveTampered is returned when a save block fails its checksum.
	ErrSaveTampered = errors.New("save block checksum mismatch")
	// ErrBadSlot is returned for slot names other than '1'..'9' and 'T'.
	ErrBadSlot = errors.New("save slot must be 1-9 or T")
)

// TempSlot holds the automatic save taken at every level start. A death
// restores from it.
const TempSlot byte = 'T'

// SaveBlockSize is the encoded size of a SaveBlock.
const SaveBlockSize = 24

// SaveBlock is the state that survives a level switch or a saved game.
type SaveBlock struct {
	Health          int
	Score           uint32
	Stars           uint32
	LevelNum        int
	Bombs           int
	MaxHealth       int
	UsedCheat       bool
	SawBombHint     bool
	PounceHintState PounceHint
	SawHealthHint   bool
	Checksum        uint16
}

// Sum computes the checksum of the block. Stars count only in their low
// sixteen bits, as they are stored.
func (b SaveBlock) Sum() uint16 {
	return uint16(b.Health) + uint16(b.Stars) + uint16(b.LevelNum) + uint16(b.Bombs) + uint16(b.MaxHealth)
}

// Valid reports whether the stored checksum matches the contents.
func (b SaveBlock) Valid() bool {
	return b.Checksum == b.Sum()
}

// MarshalBinary encodes the block as little-endian words, with the score
// as a 32-bit value.
func (b SaveBlock) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, SaveBlockSize)
	le := binary.LittleEndian
	buf = le.AppendUint16(buf, uint16(b.Health))
	buf = le.AppendUint32(buf, b.Score)
	buf = le.AppendUint16(buf, uint16(b.Stars))
	buf = le.AppendUint16(buf, uint16(b.LevelNum))
	buf = le.AppendUint16(buf, uint16(b.Bombs))
	buf = le.AppendUint16(buf, uint16(b.MaxHealth))
	buf = le.AppendUint16(buf, uint16(boolInt(b.UsedCheat)))
	buf = le.AppendUint16(buf, uint16(boolInt(b.SawBombHint)))
	buf = le.AppendUint16(buf, uint16(b.PounceHintState))
	buf = le.AppendUint16(buf, uint16(boolInt(b.SawHealthHint)))
	buf = le.AppendUint16(buf, b.Checksum)
	return buf, nil
}

// UnmarshalBinary decodes a block written by MarshalBinary. It does not
// check the checksum.
func (b *SaveBlock) UnmarshalBinary(data []byte) error {
	if len(data) < SaveBlockSize {
		return fmt.Errorf("engine: decode save block: %d bytes, want %d", len(data), SaveBlockSize)
	}
	le := binary.LittleEndian
	word := func(off int) int { return int(le.Uint16(data[off:])) }

	*b = SaveBlock{
		Health:          word(0),
		Score:           le.Uint32(data[2:]),
		Stars:           uint32(le.Uint16(data[6:])),
		LevelNum:        word(8),
		Bombs:           word(10),
		MaxHealth:       word(12),
		UsedCheat:       word(14) != 0,
		SawBombHint:     word(16) != 0,
		PounceHintState: PounceHint(word(18)),
		SawHealthHint:   word(20) != 0,
		Checksum:        le.Uint16(data[22:]),
	}
	return nil
}

// SaveStore persists save blocks by slot.
type SaveStore interface {
	Save(slot byte, b SaveBlock) error
	// Load returns ErrSaveNotFound for an empty slot.
	Load(slot byte) (SaveBlock, error)
}

// ValidSlot reports whether slot names a save slot.
func ValidSlot(slot byte) bool {
	return slot == TempSlot || (slot >= '1' && slot <= '9')
}

// MemorySaveStore keeps save blocks in memory. It is safe for concurrent
// use.
type MemorySaveStore struct {
	mu    sync.Mutex
	slots map[byte]SaveBlock
}

// NewMemorySaveStore returns an empty in-memory store.
func NewMemorySaveStore() *MemorySaveStore {
	return &MemorySaveStore{slots: make(map[byte]SaveBlock)}
}

func (s *MemorySaveStore) Save(slot byte, b SaveBlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = b
	return nil
}

func (s *MemorySaveStore) Load(slot byte) (SaveBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.slots[slot]
	if !ok {
		return SaveBlock{}, ErrSaveNotFound
	}
	return b, nil
}

// SaveGameState writes the persistent player state to a slot. Saved games
// always record the bomb, pounce and health hints as seen.
func (w *World) SaveGameState(slot byte) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("engine: save slot %q: %w", slot, ErrBadSlot)
	}

	p := &w.Player
	b := SaveBlock{
		Health:          p.Health,
		Score:           w.Score,
		Stars:           w.Stars,
		LevelNum:        w.Num,
		Bombs:           p.Bombs,
		MaxHealth:       p.MaxHealth,
		UsedCheat:       w.Hints.UsedCheat,
		SawBombHint:     true,
		PounceHintState: PounceHintSeen,
		SawHealthHint:   true,
	}
	b.Checksum = b.Sum()

	if err := w.saves.Save(slot, b); err != nil {
		return fmt.Errorf("engine: save slot %q: %w", slot, err)
	}
	w.logger.Debug("game saved", "slot", string(slot), "level", b.LevelNum, "score", b.Score)
	return nil
}

// LoadGameState restores the persistent player state from a slot. A block
// that fails its checksum is rejected with ErrSaveTampered and nothing is
// restored.
func (w *World) LoadGameState(slot byte) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("engine: load slot %q: %w", slot, ErrBadSlot)
	}

	b, err := w.saves.Load(slot)
	if err != nil {
		return fmt.Errorf("engine: load slot %q: %w", slot, err)
	}
	if !b.Valid() {
		return fmt.Errorf("engine: load slot %q: %w", slot, ErrSaveTampered)
	}

	p := &w.Player
	p.Health = b.Health
	w.Score = b.Score
	w.Stars = b.Stars
	w.Num = b.LevelNum
	p.Bombs = b.Bombs
	p.MaxHealth = b.MaxHealth
	w.Hints.UsedCheat = b.UsedCheat
	w.Hints.SawBombHint = b.SawBombHint
	w.Hints.Pounce = b.PounceHintState
	w.Hints.SawHealthHint = b.SawHealthHint

	w.logger.Debug("game loaded", "slot", string(slot), "level", b.LevelNum)
	return nil
}
