package engine

// Static is the behavior of actors that never change on their own, such as
// pickups and decorations that only react in TouchPlayer.
type Static struct{}

func (Static) Tick(*World, *Actor) {}

// Hidden keeps an actor invisible. Pipe corners use it to steer the player.
type Hidden struct{}

func (Hidden) Tick(w *World, _ *Actor) { w.nextDrawMode = DrawHidden }

// FootSwitch is a four-stage floor switch driven by pounces and explosions.
// The fourth stage applies Target.
type FootSwitch struct {
	Target      ActorKind
	Placed      bool
	Presses     int
	PressedOnce bool
	TileOffset  Tile
	Pending     bool
}

func (s *FootSwitch) press() {
	s.Presses++
	if !s.PressedOnce {
		s.TileOffset = 64
		s.PressedOnce = true
	} else {
		s.TileOffset = 0
	}
	s.Pending = true
}

func (s *FootSwitch) Tick(w *World, a *Actor) {
	m := w.Map
	if !s.Placed {
		s.Placed = true
		m.SetTile4(TileSwitchBlock1, TileSwitchBlock2, TileSwitchBlock3, TileSwitchBlock4, a.X, a.Y)
	}

	if s.Pending {
		s.Pending = false
		free := TileSwitchFree1L - s.TileOffset
		m.SetTile4(free, free+8, free+16, free+24, a.X, a.Y)
		a.Y++
		m.SetTile4(TileSwitchBlock1, TileSwitchBlock2, TileSwitchBlock3, TileSwitchBlock4, a.X, a.Y)

		if s.Presses == 4 {
			w.startSound(SndFootSwitchOn)
			switch s.Target {
			case ActSwitchPlatforms:
				w.PlatformsActive = true
			case ActSwitchMysteryWall:
				w.MysteryWallTime = 4
				w.bubbleOnce(&w.Hints.SawMysteryWall, ActSpeechWhoa)
			case ActSwitchLights:
				w.LightsActive = true
			case ActSwitchForceField:
				w.ForceFieldsActive = false
			}
		} else {
			w.startSound(SndFootSwitchMove)
		}
	}

	if s.Presses < 4 && !s.Pending && w.IsNearExplosion(SprFootSwitch, 0, a.X, a.Y) {
		s.press()
	}
}

// HeadSwitch opens the door of its color after being hit from below twice.
type HeadSwitch struct {
	Hits int
	Door Sprite
}

func (s *HeadSwitch) Tick(w *World, a *Actor) {
	if a.Frame != 1 {
		return
	}
	if s.Hits < 3 {
		s.Hits++
	}
	w.updateDoors(s.Door, s.Hits)
}

// updateDoors applies a head switch at the given hit count to every door of
// the matching sprite. The first hit restores the tiles under the door, the
// second removes the door.
func (w *World) updateDoors(door Sprite, hits int) {
	for i := 0; i < w.numActors; i++ {
		a := &w.actors[i]
		if a.Sprite != door {
			continue
		}
		switch hits {
		case 2:
			a.Dead = true
			w.startSound(SndDoorUnlock)
			w.NewDecoration(door, 1, a.X, a.Y, Dir8South, 5)
		case 1:
			d, ok := a.Behavior.(*Door)
			if !ok {
				continue
			}
			for y, t := range d.Saved {
				w.Map.SetTile(t, a.X+1, a.Y-y)
			}
		}
	}
}

// Door blocks a column with door tiles, remembering what was there.
type Door struct {
	Placed bool
	Saved  [5]Tile
}

func (d *Door) Tick(w *World, a *Actor) {
	if d.Placed {
		return
	}
	d.Placed = true
	for y := range d.Saved {
		d.Saved[y] = w.Map.Tile(a.X+1, a.Y-y)
		w.Map.SetTile(TileDoorBlock, a.X+1, a.Y-y)
	}
}

// JumpPad launches the player. Ceiling pads swap between two resting rows.
type JumpPad struct {
	Pressed  int
	Ceiling  bool
	RestY    int
	PressedY int
}

func (j *JumpPad) Tick(w *World, a *Actor) {
	if j.Pressed > 0 {
		a.Frame = 1
		j.Pressed--
	} else {
		a.Frame = 0
	}

	if j.Ceiling {
		w.nextDrawMode = DrawFlipped
		if a.Frame == 0 {
			a.Y = j.RestY
		} else {
			a.Y = j.PressedY
		}
	}
}

// ArrowPiston thrusts out of a wall every 32 frames.
type ArrowPiston struct {
	Step int
	Dir  Dir2
}

func (p *ArrowPiston) Tick(w *World, a *Actor) {
	if p.Step < 31 {
		p.Step++
	} else {
		p.Step = 0
	}

	if (p.Step == 29 || p.Step == 26) && w.IsSpriteVisible(a.Sprite, 0, a.X, a.Y) {
		w.startSound(SndSpikesMove)
	}

	out := 1
	if p.Dir == Dir2East {
		out = -1
	}
	if p.Step > 28 {
		a.X += out
	} else if p.Step > 25 {
		a.X -= out
	}
}

// Fireball waits inside its launcher then flies until it hits a wall.
type Fireball struct {
	Step         int
	HomeX, HomeY int
	Dir          Dir2
}

func (f *Fireball) reset(a *Actor) {
	f.Step = 0
	a.X = f.HomeX
	a.Y = f.HomeY
}

func (f *Fireball) Tick(w *World, a *Actor) {
	if f.Step == 29 {
		w.startSound(SndFireballLaunch)
	}

	if f.Step < 30 {
		f.Step++
	} else if f.Dir == Dir2West {
		a.X--
		a.WestOK = w.TestSpriteMove(Dir4West, a.Sprite, 0, a.X, a.Y) == MoveFree
		if !a.WestOK {
			w.NewDecoration(SprSmoke, 6, a.X+1, a.Y, Dir8North, 1)
			f.reset(a)
			w.startSound(SndBigObjectHit)
		}
	} else {
		a.X++
		a.EastOK = w.TestSpriteMove(Dir4East, a.Sprite, 0, a.X, a.Y) == MoveFree
		if !a.EastOK {
			w.NewDecoration(SprSmoke, 6, a.X-2, a.Y, Dir8North, 1)
			f.reset(a)
			w.startSound(SndBigObjectHit)
		}
	}

	if !w.IsSpriteVisible(a.Sprite, a.Frame, a.X, a.Y) {
		f.reset(a)
	}

	a.Frame = toggle(a.Frame)
}

// ReciprocatingSpikes retract into the floor or wall and come back out on a
// twenty-frame cycle. Frame 2 is fully retracted.
type ReciprocatingSpikes struct {
	Rising bool
	Timer  int
}

func (s *ReciprocatingSpikes) Tick(w *World, a *Actor) {
	s.Timer++
	if s.Timer == 20 {
		s.Timer = 0
	}

	switch {
	case a.Frame == 0 && s.Timer == 0:
		s.Rising = false
		w.startSound(SndSpikesMove)
	case a.Frame == 2 && s.Timer == 0:
		s.Rising = true
		w.startSound(SndSpikesMove)
		w.nextDrawMode = DrawHidden
	case s.Rising:
		if a.Frame > 0 {
			a.Frame--
		}
	case a.Frame < 2:
		a.Frame++
	}

	if a.Frame == 2 {
		w.nextDrawMode = DrawHidden
	}
}

// ReciprocatingSpear pokes up out of the floor on a 31-frame cycle.
type ReciprocatingSpear struct {
	Step int
}

func (s *ReciprocatingSpear) Tick(_ *World, a *Actor) {
	if s.Step < 30 {
		s.Step++
	} else {
		s.Step = 0
	}

	if s.Step > 22 {
		a.Y--
	} else if s.Step > 14 {
		a.Y++
	}
}

// MysteryWall rises out of the floor once a mystery wall switch fires,
// laying solid blocks behind it.
type MysteryWall struct {
	Step int
}

func (m *MysteryWall) Tick(w *World, a *Actor) {
	if w.MysteryWallTime != 0 {
		m.Step = 1
		a.ForceActive = true
	}
	if m.Step == 0 {
		return
	}

	tm := w.Map
	if m.Step%2 != 0 {
		tm.SetTile(TileMysteryBlockNW, a.X, a.Y-1)
		tm.SetTile(TileMysteryBlockNE, a.X+1, a.Y-1)
		tm.SetTile(TileMysteryBlockSW, a.X, a.Y)
		tm.SetTile(TileMysteryBlockSE, a.X+1, a.Y)
	}

	if w.TestSpriteMove(Dir4North, a.Sprite, 0, a.X, a.Y-1) != MoveFree {
		if m.Step%2 == 0 {
			tm.SetTile(TileMysteryBlockSW, a.X, a.Y-1)
			tm.SetTile(TileMysteryBlockSE, a.X+1, a.Y-1)
		}
		a.Dead = true
		return
	}

	if m.Step%2 == 0 {
		w.NewDecoration(SprSparkleShort, 4, a.X-1, a.Y-1, Dir8Stationary, 1)
	}
	m.Step++
	a.Y--
}

// PipeEnd is where the player enters (Inlet) or leaves a pipe. Inlets
// draw a pulsing arrow below them.
type PipeEnd struct {
	Puff  int
	Inlet bool
	Flash int
}

func (p *PipeEnd) Tick(w *World, a *Actor) {
	if !p.Inlet {
		return
	}

	p.Puff++
	p.Flash++
	if p.Flash%2 != 0 {
		a.Frame = 4
	} else {
		a.Frame = 0
	}
	if p.Puff == 4 {
		p.Puff = 1
	}

	w.drawSprite(SprPipeEnd, p.Puff, a.X, a.Y+3, DrawNormal)
}

// Transporter beams the player to the transporter with a different ID, or
// ends the level when the exit transporter is used.
type Transporter struct {
	ID int
}

// ExitTransporterID marks the transporter that ends the level.
const ExitTransporterID = 3

func (t *Transporter) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden

	if w.TransporterTimeLeft != 0 && w.random(2) != 0 {
		w.drawSprite(SprTransporterGlow, 0, a.X, a.Y, DrawWhite)
	} else {
		w.drawSprite(SprTransporterGlow, 0, a.X, a.Y, DrawNormal)
	}

	if w.GameRand()%2 != 0 {
		w.drawSprite(SprTransporterGlow, w.random(2)+1, a.X, a.Y, DrawNormal)
	}

	p := &w.Player
	if w.TransporterTimeLeft == 15 {
		w.NewDecoration(SprSparkleShort, 4, p.X-1, p.Y, Dir8Stationary, 1)
		w.NewDecoration(SprSparkleShort, 4, p.X+1, p.Y, Dir8Stationary, 1)
		w.NewDecoration(SprSparkleShort, 4, p.X-1, p.Y-3, Dir8Stationary, 2)
		w.NewDecoration(SprSparkleShort, 4, p.X, p.Y-2, Dir8Stationary, 3)
		w.NewDecoration(SprSparkleShort, 4, p.X+1, p.Y-3, Dir8Stationary, 3)
		w.startSound(SndTransporterOn)
	}

	switch {
	case w.TransporterTimeLeft > 1:
		w.TransporterTimeLeft--
	case w.ActiveTransporter == ExitTransporterID:
		w.WinLevel = true
	case w.ActiveTransporter != 0 && t.ID != w.ActiveTransporter && t.ID != ExitTransporterID:
		p.X = a.X + 1
		p.Y = a.Y

		switch {
		case p.X-14 < 0:
			w.ScrollX = 0
		case p.X-14 > w.mapWidth()-ScrollW:
			w.ScrollX = w.mapWidth() - ScrollW
		default:
			w.ScrollX = p.X - 14
		}

		switch {
		case p.Y-12 < 0:
			w.ScrollY = 0
		case p.Y-12 > w.mapHeight():
			w.ScrollY = w.mapHeight()
		default:
			w.ScrollY = p.Y - 12
		}

		w.ActiveTransporter = 0
		w.TransporterTimeLeft = 0
		p.Recoiling = false
		w.bubbleOnce(&w.Hints.SawTransporter, ActSpeechWhoa)
	}
}

// ForceField is a beam that hurts on contact until its switch is thrown.
// It runs north (or east when Horizontal) until a blocking tile.
type ForceField struct {
	Horizontal bool
	Length     int
	Flicker    int
}

func (f *ForceField) Tick(w *World, a *Actor) {
	f.Length = 0
	f.Flicker++
	if f.Flicker == 3 {
		f.Flicker = 0
	}

	w.nextDrawMode = DrawHidden

	if !w.ForceFieldsActive {
		a.Dead = true
		return
	}

	for ; ; f.Length++ {
		x, y := a.X, a.Y-f.Length
		if f.Horizontal {
			x, y = a.X+f.Length, a.Y
		}

		if w.IsTouchingPlayer(a.Sprite, 0, x, y) {
			w.HurtPlayer()
			break
		}
		if f.Horizontal && w.Map.blockEast(x, y) || !f.Horizontal && w.Map.blockNorth(x, y) {
			break
		}
		w.drawSprite(a.Sprite, f.Flicker, x, y, DrawNormal)
	}
}

// HintGlobe shows hint N when the player stands under it and looks up. The
// first globe of a game opens on its own.
type HintGlobe struct {
	N     int
	Orbit int
	Base  int
	Slow  bool
}

var hintOrbFrames = [...]int{0, 4, 5, 6, 5, 4}

func (h *HintGlobe) Tick(w *World, a *Actor) {
	h.Slow = !h.Slow
	if h.Slow {
		h.Orbit++
	}

	w.drawSprite(SprHintGlobe, hintOrbFrames[h.Orbit%6], a.X, a.Y-2, DrawNormal)

	h.Base++
	if h.Base == 4 {
		h.Base = 1
	}
	w.drawSprite(SprHintGlobe, h.Base, a.X, a.Y, DrawNormal)

	w.nextDrawMode = DrawHidden

	if !w.IsTouchingPlayer(SprHintGlobe, 0, a.X, a.Y-2) {
		return
	}

	w.Player.NearHintGlobe = true
	if w.Demo.Mode != DemoNone {
		w.Hints.SawAutoHintGlobe = true
	}
	if (w.Cmd.North && w.Player.Scooter == 0) || !w.Hints.SawAutoHintGlobe {
		w.startSound(SndHintDialogAlert)
		w.notify(EventHintGlobe, h.N)
	}
	w.Hints.SawAutoHintGlobe = true
}

// ExitLine ends the level when the player crosses it. A vertical line
// triggers west of the player; a horizontal one triggers above the player,
// or below the player with EndsGame.
type ExitLine struct {
	Vertical bool
	EndsGame bool
}

func (e *ExitLine) Tick(w *World, a *Actor) {
	p := &w.Player
	switch {
	case e.Vertical:
		if a.X <= p.X+3 {
			w.WinLevel = true
		}
	case a.Y <= p.Y && !e.EndsGame:
		w.WinLevel = true
	case a.Y >= p.Y && e.EndsGame:
		w.WinGame = true
	}
	w.nextDrawMode = DrawHidden
}

// EpisodeEnd shows one page of the end-of-episode story when the player
// passes through it.
type EpisodeEnd struct {
	Page ActorKind
	Seen bool
}

func (e *EpisodeEnd) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden
	p := &w.Player
	if !e.Seen && a.Y <= p.Y && a.Y >= p.Y-4 {
		w.notify(EventEpisodeEnd, int(e.Page-ActEpisode1End1)+1)
		e.Seen = true
	}
}

// SplittingPlatform is a four-tile ledge that splits in two shortly after
// the player lands on it, then reforms.
type SplittingPlatform struct {
	State int
	Step  int
	clock int
}

func (s *SplittingPlatform) Tick(w *World, a *Actor) {
	p := &w.Player
	s.clock++

	switch {
	case s.State == 0:
		s.State = 1
		w.Map.SetTileRepeat(TileBluePlatform, 4, a.X, a.Y-1)

	case s.State == 1 && a.Y-2 == p.Y:
		if (a.X <= p.X && a.X+3 >= p.X) || (a.X <= p.X+2 && a.X+3 >= p.X+2) {
			s.State = 2
			s.Step = 0
			w.ClearPlayerDizzy()
		}

	case s.State == 2:
		if s.clock%2 != 0 {
			s.Step++
		}
		if s.Step == 5 {
			w.Map.SetTileRepeat(TileEmpty, 4, a.X, a.Y-1)
		}
		if s.Step >= 5 && s.Step < 8 {
			w.nextDrawMode = DrawHidden
			w.drawSprite(SprSplittingPlatform, 1, a.X-(s.Step-5), a.Y, DrawNormal)
			w.drawSprite(SprSplittingPlatform, 2, a.X+s.Step-3, a.Y, DrawNormal)
		}
		if s.Step == 7 {
			s.State = 3
			s.Step = 0
		}
	}

	if s.State == 3 {
		w.nextDrawMode = DrawHidden
		w.drawSprite(SprSplittingPlatform, 1, a.X+s.Step-2, a.Y, DrawNormal)
		w.drawSprite(SprSplittingPlatform, 2, a.X+4-s.Step, a.Y, DrawNormal)

		if s.clock%2 != 0 {
			s.Step++
		}
		if s.Step == 3 {
			w.nextDrawMode = DrawNormal
			w.Map.SetTileRepeat(TileEmpty, 4, a.X, a.Y-1)
			s.State = 0
		}
	}
}

// FallingFloor holds as a platform until stood on, then drops and shatters.
type FallingFloor struct {
	Placed    bool
	Countdown int
	Saved     [2]Tile
}

func (f *FallingFloor) Tick(w *World, a *Actor) {
	if w.TestSpriteMove(Dir4South, SprFallingFloor, 0, a.X, a.Y+1) != MoveFree {
		a.Dead = true
		w.NewShard(SprFallingFloor, 1, a.X, a.Y)
		w.NewShard(SprFallingFloor, 2, a.X, a.Y)
		w.startSound(SndDestroySolid)
		w.nextDrawMode = DrawWhite
		return
	}

	m := w.Map
	if !f.Placed {
		f.Saved[0] = m.Tile(a.X, a.Y-1)
		f.Saved[1] = m.Tile(a.X+1, a.Y-1)
		m.SetTile(TileStripedPlatform, a.X, a.Y-1)
		m.SetTile(TileStripedPlatform, a.X+1, a.Y-1)
		f.Placed = true
	}

	p := &w.Player
	if a.Y-2 == p.Y && a.X <= p.X+2 && a.X+1 >= p.X {
		f.Countdown = 7
	}

	if f.Countdown != 0 {
		f.Countdown--
		if f.Countdown == 0 {
			a.Weighted = true
			m.SetTile(f.Saved[0], a.X, a.Y-1)
			m.SetTile(f.Saved[1], a.X+1, a.Y-1)
		}
	}
}

// Pedestal is a stack of column pieces topped by a platform. Each explosion
// knocks one piece out until only the base remains.
type Pedestal struct {
	Height int
	Fuse   int
}

func (pd *Pedestal) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden

	i := 0
	for ; pd.Height > i; i++ {
		w.drawSprite(SprPedestal, 1, a.X, a.Y-i, DrawNormal)
	}
	w.drawSprite(SprPedestal, 0, a.X-2, a.Y-i, DrawNormal)
	w.Map.SetTileRepeat(TileInvisiblePlatform, 5, a.X-2, a.Y-i)

	if pd.Fuse == 0 && w.IsNearExplosion(SprPedestal, 1, a.X, a.Y) {
		pd.Fuse = 3
	}
	if pd.Fuse > 1 {
		pd.Fuse--
	}
	if pd.Fuse != 1 {
		return
	}

	pd.Fuse = 3
	w.Map.SetTileRepeat(TileEmpty, 5, a.X-2, a.Y-i)
	pd.Height--
	if pd.Height == 1 {
		a.Dead = true
		w.NewShard(SprPedestal, 0, a.X, a.Y)
	} else {
		w.NewShard(SprPedestal, 1, a.X, a.Y)
		w.NewDecoration(SprSmoke, 6, a.X-1, a.Y+1, Dir8North, 1)
	}
}

// FlamePulse bursts out of a wall vent every 46 frames.
type FlamePulse struct {
	Rest   int
	Step   int
	SmokeX int
}

var flamePulseFrames = [...]int{0, 1, 0, 1, 0, 1, 0, 1, 2, 3, 2, 3, 2, 3, 1, 0}

func (f *FlamePulse) Tick(w *World, a *Actor) {
	if f.Rest != 0 {
		f.Rest--
		w.nextDrawMode = DrawHidden
		return
	}

	a.Frame = flamePulseFrames[f.Step]
	if a.Frame == 2 {
		w.NewDecoration(SprSmoke, 6, a.X-f.SmokeX, a.Y-3, Dir8North, 1)
		w.startSound(SndFlamePulse)
	}

	f.Step++
	if f.Step == 16 {
		f.Rest = 30
		f.Step = 0
	}
}

// SmokeEmitter puffs smoke at random.
type SmokeEmitter struct {
	Small bool
}

func (s *SmokeEmitter) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden
	if w.GameRand()%32 != 0 {
		return
	}
	if s.Small {
		w.NewDecoration(SprSmoke, 6, a.X-1, a.Y, Dir8North, 1)
	} else {
		w.NewDecoration(SprSmokeLarge, 6, a.X-2, a.Y, Dir8North, 1)
	}
}

// SmallFlame flickers through six frames.
type SmallFlame struct{}

func (SmallFlame) Tick(_ *World, a *Actor) {
	a.Frame++
	if a.Frame == 6 {
		a.Frame = 0
	}
}
