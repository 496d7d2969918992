package engine

// Snapshot is a flat copy of the observable world state, used for the
// status line and for determinism checks.
type Snapshot struct {
	Tick      int
	Level     int
	Score     uint32
	Stars     uint32
	Health    int
	MaxHealth int
	Bombs     int

	PlayerX, PlayerY int
	PlayerFrame      int
	ScrollX, ScrollY int

	// Each live actor is 4 ints: Kind, X, Y, Frame.
	ActorCount int
	ActorData  []int

	Shards      int
	Explosions  int
	Spawners    int
	Decorations int

	RandStep int
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	p := &w.Player
	snap := Snapshot{
		Tick:        w.TickCount,
		Level:       w.Num,
		Score:       w.Score,
		Stars:       w.Stars,
		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		Bombs:       p.Bombs,
		PlayerX:     p.X,
		PlayerY:     p.Y,
		PlayerFrame: p.BaseFrame + p.Frame,
		ScrollX:     w.ScrollX,
		ScrollY:     w.ScrollY,
		RandStep:    w.randStep,
	}

	for i := range w.numActors {
		a := &w.actors[i]
		if a.Dead {
			continue
		}
		snap.ActorCount++
		snap.ActorData = append(snap.ActorData, int(a.Kind), a.X, a.Y, a.Frame)
	}

	for _, sh := range w.shards {
		if sh.Age != 0 {
			snap.Shards++
		}
	}
	for _, ex := range w.explosions {
		if ex.Age != 0 {
			snap.Explosions++
		}
	}
	for _, sp := range w.spawners {
		if sp.Kind != ActBasketNull {
			snap.Spawners++
		}
	}
	for _, d := range w.decorations {
		if d.Alive {
			snap.Decorations++
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stars)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxHealth)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bombs)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerFrame) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScrollX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScrollY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActorCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shards)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Explosions)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spawners)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Decorations) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RandStep)    //#nosec G115 -- hash computation

	for _, v := range snap.ActorData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
