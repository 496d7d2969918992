package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBlockEncoding(t *testing.T) {
	b := SaveBlock{
		Health:          3,
		Score:           123456,
		Stars:           42,
		LevelNum:        9,
		Bombs:           2,
		MaxHealth:       4,
		UsedCheat:       true,
		SawBombHint:     true,
		PounceHintState: PounceHintSeen,
	}
	b.Checksum = b.Sum()

	data, err := b.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, SaveBlockSize)
	assert.Equal(t, []byte{0x40, 0xe2, 0x01, 0x00}, data[2:6], "score is a 32-bit word")

	var got SaveBlock
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, b, got)
	assert.True(t, got.Valid())

	assert.Error(t, got.UnmarshalBinary(data[:10]))
}

func TestSaveBlockChecksum(t *testing.T) {
	b := SaveBlock{Health: 3, Stars: 10, LevelNum: 5, Bombs: 1, MaxHealth: 3}
	assert.Equal(t, uint16(22), b.Sum())

	b.Score = 999999
	b.UsedCheat = true
	assert.Equal(t, uint16(22), b.Sum(), "score and flags are not summed")

	b.Stars = 0x10005
	assert.Equal(t, uint16(17), b.Sum(), "stars count in their low word")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	w := newTestWorld(t)
	w.Score = 5000
	w.Stars = 12
	w.Num = 6
	w.Player.Health = 2
	w.Player.Bombs = 5
	w.Player.MaxHealth = 4
	w.Hints.UsedCheat = true

	require.NoError(t, w.SaveGameState('3'))

	w.Score, w.Stars, w.Num = 0, 0, 0
	w.Player.Health, w.Player.Bombs, w.Player.MaxHealth = 9, 9, 9
	w.Hints = Hints{}

	require.NoError(t, w.LoadGameState('3'))
	assert.Equal(t, uint32(5000), w.Score)
	assert.Equal(t, uint32(12), w.Stars)
	assert.Equal(t, 6, w.Num)
	assert.Equal(t, 2, w.Player.Health)
	assert.Equal(t, 5, w.Player.Bombs)
	assert.Equal(t, 4, w.Player.MaxHealth)
	assert.True(t, w.Hints.UsedCheat)

	// Saving marks the one-shot hints as seen.
	assert.True(t, w.Hints.SawBombHint)
	assert.True(t, w.Hints.SawHealthHint)
	assert.Equal(t, PounceHintSeen, w.Hints.Pounce)
}

func TestLoadRejectsTamperedBlock(t *testing.T) {
	store := NewMemorySaveStore()
	w := NewWorld(Options{Sprites: NewSpriteTable(), Saves: store})
	w.Score = 700

	b := SaveBlock{Health: 3, Score: 99999, LevelNum: 2, MaxHealth: 3}
	b.Checksum = b.Sum() + 1
	require.NoError(t, store.Save('1', b))

	err := w.LoadGameState('1')
	require.ErrorIs(t, err, ErrSaveTampered)
	assert.Equal(t, uint32(700), w.Score, "nothing restored")
}

func TestLoadErrors(t *testing.T) {
	w := newTestWorld(t)

	assert.ErrorIs(t, w.LoadGameState('5'), ErrSaveNotFound)
	assert.ErrorIs(t, w.LoadGameState('X'), ErrBadSlot)
	assert.ErrorIs(t, w.SaveGameState('0'), ErrBadSlot)
}

func TestValidSlot(t *testing.T) {
	for _, s := range []byte("123456789T") {
		assert.True(t, ValidSlot(s), "slot %q", s)
	}
	for _, s := range []byte("0aXt ") {
		assert.False(t, ValidSlot(s), "slot %q", s)
	}
}
