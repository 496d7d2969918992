package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
)

func sampleBlock(level int) engine.SaveBlock {
	b := engine.SaveBlock{
		Health:          3,
		Score:           123456,
		Stars:           42,
		LevelNum:        level,
		Bombs:           2,
		MaxHealth:       4,
		SawBombHint:     true,
		PounceHintState: engine.PounceHintSeen,
		SawHealthHint:   true,
	}
	b.Checksum = b.Sum()
	return b
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteSaveStoreRoundTrip(t *testing.T) {
	saves := openTestStore(t).SaveStore("cosmo")

	_, err := saves.Load('1')
	require.ErrorIs(t, err, engine.ErrSaveNotFound)

	want := sampleBlock(5)
	require.NoError(t, saves.Save('1', want))

	got, err := saves.Load('1')
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Valid())

	// Saving again replaces the slot.
	require.NoError(t, saves.Save('1', sampleBlock(9)))
	got, err = saves.Load('1')
	require.NoError(t, err)
	assert.Equal(t, 9, got.LevelNum)
}

func TestSQLiteSaveStoreSeparatesGames(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveStore("cosmo").Save('2', sampleBlock(1)))

	_, err := store.SaveStore("other").Load('2')
	assert.ErrorIs(t, err, engine.ErrSaveNotFound)
}

func TestSQLiteSaveStoreSlots(t *testing.T) {
	saves := openTestStore(t).SaveStore("cosmo")

	for _, slot := range []byte{engine.TempSlot, '7', '3'} {
		require.NoError(t, saves.Save(slot, sampleBlock(int(slot-'0'))))
	}

	slots, err := saves.Slots()
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, byte('3'), slots[0].Slot)
	assert.Equal(t, byte('7'), slots[1].Slot)
	assert.Equal(t, engine.TempSlot, slots[2].Slot)
	assert.Equal(t, 7, slots[1].Block.LevelNum)
	assert.WithinDuration(t, time.Now().UTC(), slots[0].UpdatedAt, 24*time.Hour)
}

func TestSQLiteSaveStoreDrivesWorld(t *testing.T) {
	saves := openTestStore(t).SaveStore("cosmo")
	w := engine.NewWorld(engine.Options{Saves: saves})
	w.Score = 9000
	w.Player.Bombs = 4

	require.NoError(t, w.SaveGameState('4'))

	w.Score, w.Player.Bombs = 0, 0
	require.NoError(t, w.LoadGameState('4'))
	assert.Equal(t, uint32(9000), w.Score)
	assert.Equal(t, 4, w.Player.Bombs)
}

func openTestGdata(t *testing.T) *GdataSaveStore {
	t.Helper()
	appName := fmt.Sprintf("cosmo_arcade_test_%d", time.Now().UnixNano())
	store, err := OpenGdata(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return store
}

func TestGdataSaveStoreRoundTrip(t *testing.T) {
	saves := openTestGdata(t)

	_, err := saves.Load('5')
	require.ErrorIs(t, err, engine.ErrSaveNotFound)

	want := sampleBlock(13)
	require.NoError(t, saves.Save('5', want))
	got, err := saves.Load('5')
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, saves.Save(engine.TempSlot, sampleBlock(2)))
	slots, err := saves.Slots()
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, byte('5'), slots[0].Slot)
	assert.Equal(t, engine.TempSlot, slots[1].Slot)
}
