package engine

// HeartPlant snaps at a player standing right above it.
type HeartPlant struct {
	Biting bool
	Clock  int
}

func (h *HeartPlant) Tick(w *World, a *Actor) {
	p := &w.Player
	if !h.Biting && a.Y > p.Y && a.X == p.X {
		h.Biting = true
	}
	if !h.Biting {
		return
	}

	h.Clock++
	if h.Clock != 2 {
		return
	}
	h.Clock = 0
	a.Frame++

	switch a.Frame {
	case 3:
		h.Biting = false
		a.Frame = 0
	case 1:
		a.X--
		w.startSound(SndPlantMouthOpen)
	case 2:
		a.X++
	}
}

// ClamPlant opens and closes on a fixed cycle. Ceiling clams are drawn
// flipped through Mode.
type ClamPlant struct {
	Mode  DrawMode
	Timer int
	State int // 0 shut, 1 opening, 2 closing
}

func (c *ClamPlant) Tick(w *World, a *Actor) {
	w.nextDrawMode = c.Mode

	switch c.State {
	case 1:
		a.Frame++
		if a.Frame == 1 {
			w.startSound(SndPlantMouthOpen)
		}
		if a.Frame == 4 {
			c.State = 2
		}

	case 2:
		a.Frame--
		if a.Frame == 1 {
			c.State = 0
			c.Timer = 1
		}

	default:
		if c.Timer < 16 {
			c.Timer++
		} else {
			c.Timer = 0
		}
		if c.Timer == 0 {
			c.State = 1
		} else {
			a.Frame = 0
		}
	}
}

// EyePlant watches the player and blinks now and then.
type EyePlant struct {
	Mode DrawMode
}

func (e *EyePlant) Tick(w *World, a *Actor) {
	w.nextDrawMode = e.Mode

	blink := 0
	if w.random(40) > 37 {
		blink = 3
	}

	p := &w.Player
	switch {
	case a.X-2 > p.X:
		a.Frame = blink
	case a.X+1 < p.X:
		a.Frame = blink + 2
	default:
		a.Frame = blink + 1
	}
}

// SpittingWallPlant spits a projectile every fifty frames.
type SpittingWallPlant struct {
	East  bool
	Clock int
}

func (s *SpittingWallPlant) Tick(w *World, a *Actor) {
	s.Clock++

	switch s.Clock {
	case 50:
		s.Clock = 0
		a.Frame = 0
	case 42:
		a.Frame = 1
	case 45:
		a.Frame = 2
		if s.East {
			w.NewActor(ActProjectileE, a.X+4, a.Y-1)
		} else {
			w.NewActor(ActProjectileW, a.X-1, a.Y-1)
		}
	}
}

// IvyPlant rises out of the floor, waves, and sinks back when bombed.
type IvyPlant struct {
	Wait     int
	Dropping bool
	Count    int
	Rise     int
}

func (iv *IvyPlant) Tick(w *World, a *Actor) {
	switch {
	case iv.Dropping:
		a.Y++
		iv.Rise++
		if iv.Rise == 7 {
			iv.Dropping = false
			iv.Count = 0
			iv.Wait = 12
		}

	case iv.Count < iv.Wait:
		iv.Count++

	default:
		a.Frame++
		if a.Frame == 4 {
			a.Frame = 0
		}

		if iv.Rise != 0 {
			if iv.Rise == 7 {
				w.startSound(SndIvyPlantRise)
			}
			iv.Rise--
			a.Y--
		}

		if w.IsNearExplosion(SprIvyPlant, 0, a.X, a.Y) {
			iv.Dropping = true
		}
	}
}

// ExitMonsterW is a wall mouth that opens when the player comes near and
// swallows a player walking into it.
type ExitMonsterW struct {
	Open    bool
	Count   int
	Tongue  int
	Swallow int
	Mouth   int
}

var exitMonsterTongue = [...]int{2, 3, 4, 3}

func (e *ExitMonsterW) Tick(w *World, a *Actor) {
	if !e.Open {
		e.Count++
	}

	if e.Count == 10 {
		e.Open = true
		e.Count = 11
		a.Frame = 1
		e.Mouth = 1
		w.startSound(SndExitMonsterOpen)
	}

	if a.Frame != 0 {
		w.drawSprite(SprExitMonsterW, exitMonsterTongue[e.Tongue%4], a.X+6-e.Mouth, a.Y-3, DrawNormal)
		e.Tongue++
	}

	if !w.IsSpriteVisible(SprExitMonsterW, 1, a.X, a.Y) {
		a.Frame = 0
		e.Count = 0
		e.Open = false
		e.Mouth = 0
	}

	w.nextDrawMode = DrawHidden

	w.drawSprite(a.Sprite, 1, a.X, a.Y, DrawNormal)
	if e.Mouth != 0 && e.Mouth < 4 {
		e.Mouth++
	}
	w.drawSprite(a.Sprite, 0, a.X, a.Y-1-e.Mouth, DrawNormal)
}

// ExitMonsterN is a floor mouth that closes on the player from below.
type ExitMonsterN struct {
	Count int
}

func (ExitMonsterN) Tick(*World, *Actor) {}

// ExitPlant waves its tongue and swallows a player falling into it, which
// wins the level.
type ExitPlant struct {
	Tongue  int
	Delay   int
	Swallow int
}

var (
	exitPlantTongue  = [...]int{5, 6, 7, 8}
	exitPlantSwallow = [...]int{1, 1, 1, 1, 1, 1, 1, 2, 3, 4, 1, 1, 1, 1, 1, 1}
)

func (e *ExitPlant) Tick(w *World, a *Actor) {
	if e.Delay != 0 {
		e.Delay--
		a.Frame = 1
		if e.Delay != 0 {
			return
		}
		a.Frame = 0
	}

	if a.Frame == 0 && e.Swallow == 0 {
		w.drawSprite(SprExitPlant, exitPlantTongue[e.Tongue%4], a.X+2, a.Y-3, DrawNormal)
		e.Tongue++
	}

	if e.Swallow != 0 {
		a.Frame = exitPlantSwallow[e.Swallow-1]
		if e.Swallow == 16 {
			w.WinLevel = true
		} else {
			e.Swallow++
		}
	}

	if !w.IsSpriteVisible(SprExitPlant, 1, a.X, a.Y) {
		e.Delay = 30
		e.Swallow = 0
		a.Frame = 1
	}
}

// BearTrap snaps shut on a player stepping into it and holds them for a
// moment. Explosions destroy it.
type BearTrap struct {
	Closed bool
	Step   int
}

var bearTrapFrames = [...]int{
	0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 0,
}

func (b *BearTrap) Tick(w *World, a *Actor) {
	p := &w.Player

	if b.Closed {
		if b.Step == 1 {
			w.startSound(SndBearTrapClose)
		}
		a.Frame = bearTrapFrames[b.Step]

		b.Step++
		if b.Step >= 24 {
			p.BlockMovementCmds = false
		}
		if b.Step == 27 {
			b.Step = 0
			b.Closed = false
			p.BlockMovementCmds = false
		}
	}

	if w.IsNearExplosion(a.Sprite, a.Frame, a.X, a.Y) {
		w.AddScore(250)
		w.NewShard(a.Sprite, a.Frame, a.X, a.Y)
		a.Dead = true
		if b.Closed {
			p.BlockMovementCmds = false
		}
	}
}

// TulipLauncher fires parachute balls and can swallow a falling player,
// spitting them back out high into the air. Two bomb hits destroy it.
type TulipLauncher struct {
	Step     int
	Rest     int
	Flash    int
	Hits     int
	Launched bool
	Ingest   int
}

var tulipLaunchFrames = [...]int{0, 2, 1, 0, 1}

func (t *TulipLauncher) Tick(w *World, a *Actor) {
	if t.Ingest > 0 && t.Ingest < 7 {
		return
	}

	if t.Flash != 0 {
		t.Flash--
		if t.Flash%2 != 0 {
			w.nextDrawMode = DrawWhite
		}
		return
	}

	if w.IsNearExplosion(a.Sprite, a.Frame, a.X, a.Y) {
		t.Flash = 15
		t.Hits++
		if t.Hits == 2 {
			a.Dead = true
			for _, f := range [...]int{0, 2, 4, 9, 3} {
				w.NewShard(SprParachuteBall, f, a.X+2, a.Y-5)
			}
			w.NewShard(a.Sprite, a.Frame, a.X, a.Y)
			return
		}
	}

	if t.Rest != 0 {
		a.Frame = 1
		t.Rest--
		return
	}

	a.Frame = tulipLaunchFrames[t.Step]
	t.Step++
	if t.Step == 2 && !t.Launched {
		w.NewSpawner(ActParachuteBall, a.X+2, a.Y-5)
		w.startSound(SndTulipLaunch)
	}
	if t.Step == 5 {
		t.Rest = 100
		t.Step = 0
		t.Launched = false
	}
}
