package storage

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
)

// savesObject is the gdata object holding one property per slot.
const savesObject = "saves"

// GdataSaveStore keeps save blocks in the platform's application data
// directory through gdata.
type GdataSaveStore struct {
	m *gdata.Manager
}

var (
	_ engine.SaveStore = (*GdataSaveStore)(nil)
	_ SlotLister       = (*GdataSaveStore)(nil)
)

// OpenGdata opens the data directory of the named application.
func OpenGdata(appName string) (*GdataSaveStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata %q: %w", appName, err)
	}
	return &GdataSaveStore{m: m}, nil
}

func slotProp(slot byte) string {
	return "slot_" + string(slot)
}

// Save writes a block to a slot.
func (s *GdataSaveStore) Save(slot byte, b engine.SaveBlock) error {
	data, err := b.MarshalBinary()
	if err != nil {
		return fmt.Errorf("storage: encode slot %q: %w", slot, err)
	}
	if err := s.m.SaveObjectProp(savesObject, slotProp(slot), data); err != nil {
		return fmt.Errorf("storage: cannot save slot %q: %w", slot, err)
	}
	return nil
}

// Load reads a slot. An empty slot returns engine.ErrSaveNotFound.
func (s *GdataSaveStore) Load(slot byte) (engine.SaveBlock, error) {
	if !s.m.ObjectPropExists(savesObject, slotProp(slot)) {
		return engine.SaveBlock{}, engine.ErrSaveNotFound
	}
	data, err := s.m.LoadObjectProp(savesObject, slotProp(slot))
	if err != nil {
		return engine.SaveBlock{}, fmt.Errorf("storage: cannot load slot %q: %w", slot, err)
	}

	var b engine.SaveBlock
	if err := b.UnmarshalBinary(data); err != nil {
		return engine.SaveBlock{}, fmt.Errorf("storage: slot %q: %w", slot, err)
	}
	return b, nil
}

// Slots lists the occupied slots. gdata keeps no timestamps, so UpdatedAt
// is zero.
func (s *GdataSaveStore) Slots() ([]SlotInfo, error) {
	found := make(map[byte]SlotInfo)
	for _, slot := range slotNames {
		b, err := s.Load(slot)
		if errors.Is(err, engine.ErrSaveNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		found[slot] = SlotInfo{Slot: slot, Block: b}
	}
	return orderSlots(found), nil
}
