package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossRisesThenHovers(t *testing.T) {
	w := newTestWorld(t)
	audio := &recordingAudio{}
	w.SetAudio(audio)
	groundPlayer(w, 10, Dir4East)
	boss := &Boss{}
	a := placeActor(w, SprBoss, 20, 40, boss)

	tickActor(w, a, 6)
	assert.Equal(t, 28, a.Y)
	assert.Equal(t, 1, boss.State)
	assert.True(t, w.Hints.SawBoss)
	assert.Equal(t, []int{MusicBoss}, audio.music, "boss music starts once")
	require.Equal(t, 2, w.NumActors())
	assert.Equal(t, ActSpeechWhoa, w.Actor(1).Kind)

	tickActor(w, a, 6)
	assert.Equal(t, 1, boss.State)

	tickActor(w, a, 1)
	assert.Equal(t, 2, boss.State)
	assert.Equal(t, 28, a.Y)
}

func TestBossPounced(t *testing.T) {
	w := newTestWorld(t)
	boss := &Boss{State: 1, Hits: 3}
	a := placeActor(w, SprBoss, 20, 19, boss)

	boss.pounced(w, a)

	assert.Equal(t, 4, boss.Hits)
	assert.Equal(t, 10, boss.Flash)
	assert.Equal(t, 7, a.DamageCooldown)
	assert.Equal(t, 2, boss.State)
	assert.Equal(t, 31, boss.Clock)
	assert.True(t, boss.East)
	assert.Equal(t, 1, liveShards(w), "the head flies off")
}

func TestBossDefeat(t *testing.T) {
	w := newTestWorld(t)
	w.ScrollY = 9
	w.Hints.SawBoss = true
	boss := &Boss{Hits: BossHits}
	a := placeActor(w, SprBoss, 20, 17, boss)

	tickActor(w, a, 2)
	require.Equal(t, 19, a.Y, "sinks to the floor")
	require.Equal(t, 80, boss.Defeat)

	tickActor(w, a, 40)
	assert.Equal(t, 19, a.Y)
	assert.False(t, w.WinLevel)

	for i := 0; !w.WinLevel; i++ {
		require.Less(t, i, 40, "never won")
		tickActor(w, a, 1)
	}
	assert.Less(t, a.Y, 19, "rose before leaving")
	assert.Equal(t, uint32(100000), w.Score)
}
