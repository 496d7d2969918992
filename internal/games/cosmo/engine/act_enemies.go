package engine

// damageable is implemented by enemies that take more than one pounce.
type damageable interface {
	hitPoints() *int
}

// HorizontalMover walks back and forth along a floor, pausing for Pause
// frames at each turn. Frames counts the walk animation frames minus one.
type HorizontalMover struct {
	Pause    int
	Dir      Dir2
	Cooldown int
	Frames   int
	odd      bool
}

func (h *HorizontalMover) Tick(w *World, a *Actor) {
	h.odd = !h.odd

	if a.Sprite == SprSawBlade {
		h.odd = true
		if w.IsSpriteVisible(a.Sprite, 0, a.X, a.Y) {
			w.startSound(SndSawBladeMove)
		}
	}

	if h.Cooldown != 0 {
		h.Cooldown--
	}
	if !h.odd {
		return
	}

	if h.Cooldown == 0 {
		if h.Dir != Dir2West {
			a.X++
			w.AdjustActorMove(a, Dir4East)
			if !a.EastOK {
				h.Dir = Dir2West
				h.Cooldown = h.Pause
			}
		} else {
			a.X--
			w.AdjustActorMove(a, Dir4West)
			if !a.WestOK {
				h.Dir = Dir2East
				h.Cooldown = h.Pause
			}
		}
	}

	a.Frame++
	if a.Frame > h.Frames {
		a.Frame = 0
	}
}

// VerticalMover runs up and down between ceiling and floor.
type VerticalMover struct {
	Dir Dir2
}

func (v *VerticalMover) Tick(w *World, a *Actor) {
	a.Frame = toggle(a.Frame)

	if w.IsSpriteVisible(a.Sprite, 0, a.X, a.Y) {
		w.startSound(SndSawBladeMove)
	}

	if v.Dir != Dir2South {
		if w.TestSpriteMove(Dir4North, a.Sprite, 0, a.X, a.Y-1) != MoveFree {
			v.Dir = Dir2South
		} else {
			a.Y--
		}
		return
	}
	if w.TestSpriteMove(Dir4South, a.Sprite, 0, a.X, a.Y+1) != MoveFree {
		v.Dir = Dir2North
	} else {
		a.Y++
	}
}

// JumpPadRobot patrols a floor and bounces the player who lands on it.
type JumpPadRobot struct {
	Pressed int
	Dir     Dir2
}

func (j *JumpPadRobot) Tick(w *World, a *Actor) {
	if j.Pressed > 0 {
		a.Frame = 2
		j.Pressed--
	} else {
		a.Frame = toggle(a.Frame)
		if j.Dir != Dir2West {
			a.X++
			w.AdjustActorMove(a, Dir4East)
			if !a.EastOK {
				j.Dir = Dir2West
			}
		} else {
			a.X--
			w.AdjustActorMove(a, Dir4West)
			if !a.WestOK {
				j.Dir = Dir2East
			}
		}
	}

	if !w.IsSpriteVisible(SprJumpPadRobot, 2, a.X, a.Y) {
		a.Frame = 0
	}
}

// Cabbage hops toward the player in three-frame arcs, resting ten frames
// between hops.
type Cabbage struct {
	Health int
	Rest   int
	Hop    int
	East   bool
}

var cabbageHop = [...]int{-1, -1, 0}

func (c *Cabbage) hitPoints() *int { return &c.Health }

func (c *Cabbage) face(w *World, a *Actor) {
	c.East = a.X <= w.Player.X
	a.Frame = 0
	if c.East {
		a.Frame = 2
	}
}

func (c *Cabbage) Tick(w *World, a *Actor) {
	grounded := w.TestSpriteMove(Dir4South, SprCabbage, 0, a.X, a.Y+1) != MoveFree

	switch {
	case c.Rest == 10 && c.Hop == 3 && !grounded:
		if c.East {
			a.Frame = 3
		} else {
			a.Frame = 1
		}

	case c.Rest < 10 && grounded:
		c.Rest++
		c.face(w, a)

	case c.Hop < 3:
		a.Y += cabbageHop[c.Hop]
		if c.East {
			a.X++
			w.AdjustActorMove(a, Dir4East)
		} else {
			a.X--
			w.AdjustActorMove(a, Dir4West)
		}

		c.Hop++
		if c.East {
			a.Frame = 3
		} else {
			a.Frame = 1
		}

	default:
		c.Rest = 0
		c.Hop = 0
		c.face(w, a)
	}
}

// Slime throbs on a ceiling. A dripping slime lets a drop fall from Home
// every fifteen frames.
type Slime struct {
	Drips   bool
	HomeY   int
	Step    int
	Falling bool
}

var slimeThrob = [...]int{0, 1, 2, 3, 2, 1, 0}

func (s *Slime) Tick(w *World, a *Actor) {
	if !s.Drips {
		a.Frame = slimeThrob[s.Step]
		s.Step++
		if s.Step == 6 {
			s.Step = 0
		}
		return
	}

	switch {
	case !s.Falling:
		a.Frame = slimeThrob[s.Step%6]
		s.Step++
		if s.Step == 15 {
			s.Falling = true
			s.Step = 0
			a.Frame = 4
			if w.IsSpriteVisible(SprGreenSlime, 6, a.X, s.HomeY) {
				w.startSound(SndDrip)
			}
		}

	case a.Frame < 6:
		a.Frame++

	default:
		a.Y++
		if !w.IsSpriteVisible(SprGreenSlime, 6, a.X, a.Y) {
			s.reset(a)
		}
	}
}

func (s *Slime) reset(a *Actor) {
	a.Y = s.HomeY
	s.Falling = false
	a.Frame = 0
}

// FlyingWisp bobs up and down on a 64-frame cycle.
type FlyingWisp struct {
	Step int
}

func (f *FlyingWisp) Tick(w *World, a *Actor) {
	a.Frame = toggle(a.Frame)

	if f.Step < 63 {
		f.Step++
	} else {
		f.Step = 0
	}

	switch {
	case f.Step > 50:
		a.Y += 2
		if f.Step < 55 {
			a.Y--
		}
		w.nextDrawMode = DrawFlipped
	case f.Step > 34:
		if f.Step < 47 {
			a.Y--
		}
		if f.Step < 45 {
			a.Y--
		}
	}
}

// TwoTonsCrusher drops a weight every twenty frames and winds it back up.
type TwoTonsCrusher struct {
	Timer int
	Phase int
}

func (c *TwoTonsCrusher) Tick(w *World, a *Actor) {
	if c.Timer < 20 {
		c.Timer++
	}
	if c.Timer == 19 {
		c.Phase = 1
	}

	if c.Phase == 1 {
		if a.Frame < 3 {
			a.Frame++
			a.Y += [...]int{0, 1, 2, 4}[a.Frame]
		} else {
			c.Phase = 2
			if w.IsSpriteVisible(SprTwoTonsCrusher, 4, a.X-1, a.Y+3) {
				w.startSound(SndObjectHit)
			}
		}
	}

	if c.Phase == 2 {
		if a.Frame > 0 {
			a.Frame--
			a.Y -= [...]int{1, 2, 4}[a.Frame]
		} else {
			c.Phase = 0
			c.Timer = 0
		}
	}

	if w.IsTouchingPlayer(SprTwoTonsCrusher, 4, a.X-1, a.Y+3) {
		w.HurtPlayer()
	}
	w.drawSprite(SprTwoTonsCrusher, 4, a.X-1, a.Y+3, DrawNormal)
}

// JumpingBullet bounces back and forth in sixteen-frame arcs.
type JumpingBullet struct {
	Dir  Dir2
	Step int
}

var bulletArc = [...]int{-2, -2, -2, -2, -1, -1, -1, 0, 0, 1, 1, 1, 2, 2, 2, 2}

func (b *JumpingBullet) Tick(w *World, a *Actor) {
	if b.Dir == Dir2West {
		a.X--
	} else {
		a.X++
	}

	a.Y += bulletArc[b.Step]
	b.Step++
	if b.Step == 16 {
		b.Dir = b.Dir.Flip()
		if w.IsSpriteVisible(SprJumpingBullet, 0, a.X, a.Y) {
			w.startSound(SndObjectHit)
		}
		b.Step = 0
	}
}

// StoneHeadCrusher slams down when the player passes beneath it and creeps
// back up to HomeY.
type StoneHeadCrusher struct {
	State int
	HomeY int
	slow  bool
}

func (s *StoneHeadCrusher) Tick(w *World, a *Actor) {
	p := &w.Player
	s.slow = !s.slow

	switch s.State {
	case 0:
		if a.Y < p.Y && a.X <= p.X+6 && a.X+7 > p.X {
			s.State = 1
			s.HomeY = a.Y
			a.Frame = 1
		} else {
			a.Frame = 0
		}

	case 1:
		a.Frame = 1
		a.Y++
		if w.TestSpriteMove(Dir4South, SprStoneHeadCrusher, 0, a.X, a.Y) != MoveFree {
			s.State = 2
			if w.IsSpriteVisible(SprStoneHeadCrusher, 0, a.X, a.Y) {
				s.land(w, a)
			}
			a.Y--
			return
		}

		a.Y++
		if w.TestSpriteMove(Dir4South, SprStoneHeadCrusher, 0, a.X, a.Y) != MoveFree {
			s.State = 2
			s.land(w, a)
			a.Y--
		}

	case 2:
		a.Frame = 0
		if a.Y == s.HomeY {
			s.State = 0
		} else if s.slow {
			a.Y--
		}
	}
}

func (s *StoneHeadCrusher) land(w *World, a *Actor) {
	w.startSound(SndObjectHit)
	w.NewDecoration(SprSmoke, 6, a.X+1, a.Y, Dir8NorthEast, 1)
	w.NewDecoration(SprSmoke, 6, a.X, a.Y, Dir8NorthWest, 1)
}

// Pyramid is a spike that either sits on a floor (Floor) or hangs from a
// ceiling and falls when the player walks beneath it.
type Pyramid struct {
	Floor     bool
	Triggered bool
	Fuse      int
}

func (py *Pyramid) Tick(w *World, a *Actor) {
	p := &w.Player
	switch {
	case py.Floor:
		w.nextDrawMode = DrawFlipped

	case !py.Triggered:
		if a.Y < p.Y && a.X <= p.X+6 && a.X+5 > p.X {
			py.Triggered = true
			a.Weighted = true
		}

	case w.TestSpriteMove(Dir4South, a.Sprite, 0, a.X, a.Y+1) != MoveFree:
		a.Dead = true
		w.NewDecoration(SprSmoke, 6, a.X, a.Y, Dir8North, 3)
		w.startSound(SndBigObjectHit)
		w.nextDrawMode = DrawHidden
	}

	if a.Dead {
		return
	}

	if w.IsNearExplosion(a.Sprite, a.Frame, a.X, a.Y) {
		py.Fuse = 3
	}
	if py.Fuse == 0 {
		return
	}
	py.Fuse--
	if py.Fuse == 0 {
		w.NewExplosion(a.X-1, a.Y+1)
		a.Dead = true
		w.AddScore(200)
		w.NewShard(a.Sprite, 0, a.X, a.Y)
	}
}

// Ghost drifts toward the player while the player faces away, and freezes
// when watched.
type Ghost struct {
	Phase  int
	Clock  int
	Health int
}

func (g *Ghost) hitPoints() *int { return &g.Health }

func (g *Ghost) approach(w *World, a *Actor, dx int) {
	if g.Phase != 0 {
		return
	}
	a.X += dx
	p := &w.Player
	if a.Y < p.Y {
		a.Y++
	} else if a.Y > p.Y {
		a.Y--
	}
}

func (g *Ghost) Tick(w *World, a *Actor) {
	g.Clock++
	if g.Clock%3 == 0 {
		g.Phase++
	}
	if g.Phase == 4 {
		g.Phase = 0
	}

	p := &w.Player
	peek := func(base, odds int) int {
		if w.random(35) == 0 {
			return base + odds
		}
		return base
	}

	if p.BaseFrame == PlayerBaseWest {
		switch {
		case a.X > p.X+2 && p.ClingDir == Dir4West && w.Cmd.East:
			a.Frame = peek(2, 4)
		case a.X > p.X:
			a.Frame = g.Phase % 2
			g.approach(w, a, -1)
		default:
			a.Frame = peek(5, 2)
		}
		return
	}

	switch {
	case a.X < p.X && p.ClingDir == Dir4East && w.Cmd.West:
		a.Frame = peek(5, 2)
	case a.X < p.X:
		a.Frame = g.Phase%2 + 3
		g.approach(w, a, 1)
	default:
		a.Frame = peek(2, 4)
	}
}

// Moon turns to watch the player.
type Moon struct {
	Step   int
	Health int
	skip   bool
}

func (m *Moon) hitPoints() *int { return &m.Health }

func (m *Moon) Tick(w *World, a *Actor) {
	m.skip = !m.skip
	if m.skip {
		return
	}
	m.Step++
	if a.X < w.Player.X {
		a.Frame = m.Step%2 + 2
	} else {
		a.Frame = m.Step % 2
	}
}

// BabyGhost hops along the floor.
type BabyGhost struct {
	Dir    Dir2
	Rise   int
	Landed bool
	Wait   int
	Hover  int
}

func (b *BabyGhost) Tick(w *World, a *Actor) {
	switch {
	case b.Wait != 0:
		b.Wait--

	case b.Dir == Dir2South:
		switch {
		case w.TestSpriteMove(Dir4South, SprBabyGhost, 0, a.X, a.Y+1) != MoveFree:
			a.Weighted = false
			b.Dir = Dir2North
			b.Wait = 3
			b.Rise = 4
			a.Frame = 1
			b.Landed = true
			if w.IsSpriteVisible(SprBabyGhost, 0, a.X, a.Y) {
				w.startSound(SndBabyGhostLand)
			}
		case b.Hover == 0:
			a.Frame = 1
			if !b.Landed {
				b.Wait++
			}
		default:
			b.Hover--
		}

	case b.Dir == Dir2North:
		a.Y--
		a.Frame = 0
		if b.Rise == 4 && w.IsSpriteVisible(SprBabyGhost, 0, a.X, a.Y) {
			w.startSound(SndBabyGhostJump)
		}
		b.Rise--
		if b.Rise == 0 {
			b.Dir = Dir2South
			b.Hover = 3
			a.Weighted = true
		}
	}
}

// BabyGhostEgg wobbles at random and hatches when the player comes close
// (Proximity) or pounces on it.
type BabyGhostEgg struct {
	Proximity bool
	Triggered bool
	Hatch     int
	Wobble    int
}

func (e *BabyGhostEgg) Tick(w *World, a *Actor) {
	switch {
	case e.Hatch != 0:
		a.Frame = 2
	case w.GameRand()%70 == 0 && e.Wobble == 0:
		e.Wobble = 2
	default:
		a.Frame = 0
	}

	if e.Wobble != 0 {
		e.Wobble--
		a.Frame = 1
	}

	p := &w.Player
	if e.Proximity && !e.Triggered && a.Y <= p.Y && a.X-6 < p.X && a.X+4 > p.X {
		e.Triggered = true
		e.Hatch = 20
		w.startSound(SndBghostEggCrack)
	}

	switch {
	case e.Hatch > 1:
		e.Hatch--
	case e.Hatch == 1:
		a.Dead = true
		w.nextDrawMode = DrawHidden
		w.NewActor(ActBabyGhost, a.X, a.Y)
		w.NewDecoration(SprBabyGhostEggShard1, 1, a.X, a.Y-1, Dir8NorthWest, 5)
		w.NewDecoration(SprBabyGhostEggShard2, 1, a.X+1, a.Y-1, Dir8NorthEast, 5)
		w.NewDecoration(SprBabyGhostEggShard3, 1, a.X, a.Y, Dir8East, 5)
		w.NewDecoration(SprBabyGhostEggShard4, 1, a.X+1, a.Y, Dir8West, 5)
		w.startSound(SndBghostEggHatch)
	}
}

// Projectile flies in a straight line until it leaves the screen.
type Projectile struct {
	Dir      Dir8
	Launched bool
}

func (pr *Projectile) Tick(w *World, a *Actor) {
	if !w.IsSpriteVisible(SprProjectile, 0, a.X, a.Y) {
		a.Dead = true
		return
	}

	if !pr.Launched {
		pr.Launched = true
		w.startSound(SndProjectileLaunch)
	}

	a.Frame = toggle(a.Frame)
	a.X += Dir8X[pr.Dir]
	a.Y += Dir8Y[pr.Dir]
}

// RoamerSlug crawls in a straight line until blocked, then picks a random
// new direction. Each pounce shakes a prize out of it.
type RoamerSlug struct {
	Dir    Dir4
	Health int
	Base   int
	Stuck  bool
	wiggle bool
}

func (r *RoamerSlug) hitPoints() *int { return &r.Health }

func (r *RoamerSlug) probe(w *World, a *Actor, dir Dir4) Move {
	switch dir {
	case Dir4North:
		return w.TestSpriteMove(Dir4North, SprRoamerSlug, 0, a.X, a.Y-1)
	case Dir4South:
		return w.TestSpriteMove(Dir4South, SprRoamerSlug, 0, a.X, a.Y+1)
	case Dir4West:
		return w.TestSpriteMove(Dir4West, SprRoamerSlug, 0, a.X-1, a.Y)
	default:
		return w.TestSpriteMove(Dir4East, SprRoamerSlug, 0, a.X+1, a.Y)
	}
}

var roamerBase = map[Dir4]int{Dir4North: 0, Dir4South: 4, Dir4West: 6, Dir4East: 2}

func (r *RoamerSlug) Tick(w *World, a *Actor) {
	if !r.Stuck {
		if r.Dir != Dir4None {
			if r.probe(w, a, r.Dir) != MoveFree {
				r.Stuck = true
			} else {
				switch r.Dir {
				case Dir4North:
					a.Y--
				case Dir4South:
					a.Y++
				case Dir4West:
					a.X--
				case Dir4East:
					a.X++
				}
			}
			r.Base = roamerBase[r.Dir]
		}
	} else {
		dir := Dir4(w.GameRand() % 4)
		if dir != Dir4None && r.probe(w, a, dir) == MoveFree {
			r.Stuck = false
			r.Dir = dir
		}
	}

	r.wiggle = !r.wiggle
	a.Frame = r.Base + boolInt(r.wiggle)
}

// SharpRobot clings to a ceiling and patrols it, turning at walls and at
// the end of the ceiling.
type SharpRobot struct {
	Dir   Dir2
	Pause int
	odd   bool
}

func (s *SharpRobot) Tick(w *World, a *Actor) {
	s.odd = !s.odd
	if !s.odd {
		return
	}

	switch {
	case s.Pause != 0:
		s.Pause--
	case s.Dir == Dir2East:
		if w.TestSpriteMove(Dir4East, SprSharpRobotCeil, 0, a.X+1, a.Y) != MoveFree ||
			w.TestSpriteMove(Dir4East, SprSharpRobotCeil, 0, a.X+1, a.Y-1) == MoveFree {
			s.Pause = 4
			s.Dir = Dir2West
		} else {
			a.X++
		}
	default:
		if w.TestSpriteMove(Dir4West, SprSharpRobotCeil, 0, a.X-1, a.Y) != MoveFree ||
			w.TestSpriteMove(Dir4West, SprSharpRobotCeil, 0, a.X-1, a.Y-1) == MoveFree {
			s.Pause = 4
			s.Dir = Dir2East
		} else {
			a.X--
		}
	}

	a.Frame = toggle(a.Frame)
}

// ParachuteBall bounces in place and now and then rolls at the player.
// It drifts down under a parachute when spawned in the air.
type ParachuteBall struct {
	Roll   int // 0 idle, 1 west, 2 east
	Step   int
	Delay  int
	Health int
}

func (pb *ParachuteBall) hitPoints() *int { return &pb.Health }

var (
	parachuteIdle  = [...]int{2, 2, 2, 0, 3, 3, 3, 0, 0, 2, 2, 0, 0, 1, 1, 0, 1, 3, 3, 3, 0, 1, 1, 0, 1, 1, 1}
	parachuteWest  = [...]int{7, 6, 5, 4}
	parachuteEast  = [...]int{4, 5, 6, 7}
	parachuteRolls = [...]int{0, 16, 12}
)

func (pb *ParachuteBall) Tick(w *World, a *Actor) {
	if a.FallSpeed != 0 {
		pb.Roll = 0
		pb.Step = 20

		switch {
		case a.FallSpeed < 2:
		case a.FallSpeed <= 4:
			w.drawSprite(SprParachuteBall, 8, a.X, a.Y-2, DrawNormal)
		default:
			a.Y--
			w.drawSprite(SprParachuteBall, 9, a.X, a.Y-2, DrawNormal)
		}
		a.Frame = 10
		return
	}

	p := &w.Player
	if pb.Roll == 0 {
		pb.Step++
		a.Frame = parachuteIdle[pb.Step]

		if pb.Step == 26 {
			pb.Step = 0
			if a.Y == p.Y || w.GameRand()%2 == 0 {
				if a.X >= p.X+2 {
					pb.Roll, pb.Step, pb.Delay = 1, 0, 6
					a.Frame = 2
				} else if a.X+2 <= p.X {
					pb.Roll, pb.Step, pb.Delay = 2, 0, 6
					a.Frame = 3
				}
			}
		}
	}

	if pb.Delay != 0 {
		pb.Delay--
		return
	}

	switch pb.Roll {
	case 1:
		a.X--
		w.AdjustActorMove(a, Dir4West)
		pb.roll(a, a.WestOK, parachuteWest[pb.Step%4])
	case 2:
		a.X++
		w.AdjustActorMove(a, Dir4East)
		pb.roll(a, a.EastOK, parachuteEast[pb.Step%4])
	}
}

func (pb *ParachuteBall) roll(a *Actor, ok bool, frame int) {
	if !ok {
		pb.Roll, pb.Step = 0, 0
		a.Frame = 0
		return
	}
	a.Frame = frame
	pb.Step++
	if pb.Step == parachuteRolls[pb.Roll] {
		pb.Roll, pb.Step = 0, 0
	}
}

// BeamRobot patrols a floor with a vertical laser beam above it. Blowing it
// up scatters stars along the beam.
type BeamRobot struct {
	West     bool
	Beam     int
	Step     int
	Blink    bool
	Exploded bool
}

func (b *BeamRobot) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden

	if b.Exploded {
		for i := 0; b.Beam > i; i += 4 {
			w.NewExplosion(a.X, a.Y-i)
			w.NewActor(ActStarFloat, a.X, a.Y-i)
		}
		a.Dead = true
		return
	}

	b.Blink = !b.Blink
	b.Step++

	if b.West {
		if b.Step%2 != 0 {
			a.X--
		}
		w.AdjustActorMove(a, Dir4West)
		if !a.WestOK {
			b.West = false
		}
	} else {
		if b.Step%2 != 0 {
			a.X++
		}
		w.AdjustActorMove(a, Dir4East)
		if !a.EastOK {
			b.West = true
		}
	}

	blink := boolInt(b.Blink)
	w.drawSprite(SprBeamRobot, blink, a.X, a.Y, DrawNormal)
	if w.IsTouchingPlayer(SprBeamRobot, 0, a.X, a.Y) {
		w.HurtPlayer()
	}

	w.beamFrame++

	i := 2
	for ; i < 21; i++ {
		if w.TestSpriteMove(Dir4North, SprBeamRobot, 2, a.X+1, a.Y-i) != MoveFree {
			break
		}
		w.drawSprite(SprBeamRobot, w.beamFrame%4+4, a.X+1, a.Y-i, DrawNormal)
		if w.IsTouchingPlayer(SprBeamRobot, 4, a.X+1, a.Y-i) {
			w.HurtPlayer()
		}
	}

	w.drawSprite(SprBeamRobot, blink+2, a.X+1, a.Y-i+1, DrawNormal)

	if w.IsTouchingPlayer(SprBeamRobot, 0, a.X, a.Y+1) {
		w.HurtPlayer()
	}

	if w.IsNearExplosion(a.Sprite, a.Frame, a.X, a.Y) {
		b.Beam = i
		b.Exploded = true
	}
}

// Spark crawls around the edges of solid blocks, keeping the wall on its
// left.
type Spark struct {
	Dir   Dir4
	Clock int
}

func (s *Spark) Tick(w *World, a *Actor) {
	s.Clock++
	a.Frame = toggle(a.Frame)
	if s.Clock%2 != 0 {
		return
	}

	free := func(dir Dir4, x, y int) bool {
		return w.TestSpriteMove(dir, a.Sprite, 0, x, y) == MoveFree
	}

	switch s.Dir {
	case Dir4West:
		a.X--
		if !free(Dir4West, a.X-1, a.Y) {
			s.Dir = Dir4North
		} else if free(Dir4South, a.X, a.Y+1) {
			s.Dir = Dir4South
		}
	case Dir4East:
		a.X++
		if !free(Dir4East, a.X+1, a.Y) {
			s.Dir = Dir4South
		} else if free(Dir4North, a.X, a.Y-1) {
			s.Dir = Dir4North
		}
	case Dir4North:
		a.Y--
		if !free(Dir4North, a.X, a.Y-1) {
			s.Dir = Dir4East
		} else if free(Dir4West, a.X-1, a.Y) {
			s.Dir = Dir4West
		}
	case Dir4South:
		a.Y++
		if !free(Dir4South, a.X, a.Y+1) {
			s.Dir = Dir4West
		} else if free(Dir4East, a.X+1, a.Y) {
			s.Dir = Dir4East
		}
	}
}

// RedJumper crouches, then leaps toward the player along a fixed arc.
type RedJumper struct {
	Facing int // frame offset: 0 west, 3 east
	Step   int
	Health int
}

// redJumperArc holds pairs of (y change, frame) per step.
var redJumperArc = [...]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, -2, 2,
	-2, 2, -2, 2, -2, 2, -1, 2, -1, 2, -1, 2, 0, 2, 0, 2, 1, 1, 1, 1, 1, 1,
}

func (r *RedJumper) hitPoints() *int { return &r.Health }

func (r *RedJumper) free(w *World, dir Dir4, x, y int) bool {
	return w.TestSpriteMove(dir, SprRedJumper, 0, x, y) == MoveFree
}

func (r *RedJumper) Tick(w *World, a *Actor) {
	p := &w.Player

	switch {
	case r.Step < 5:
		if a.X > p.X {
			r.Facing = 0
		} else {
			r.Facing = 3
		}
	case r.Step == 14 && w.IsSpriteVisible(SprRedJumper, 0, a.X, a.Y):
		w.startSound(SndRedJumperJump)
	case r.Step > 16 && r.Step < 39:
		if r.Facing == 0 && r.free(w, Dir4West, a.X-1, a.Y) {
			a.X--
		} else if r.Facing == 3 && r.free(w, Dir4East, a.X+1, a.Y) {
			a.X++
		}
	}

	if r.Step > 39 {
		if r.free(w, Dir4South, a.X, a.Y+1) {
			a.Y++
			if r.free(w, Dir4South, a.X, a.Y+1) {
				a.Y++
				a.Frame = r.Facing + redJumperArc[r.Step+1]
				return
			}
		}
		r.Step = 0
		if w.IsSpriteVisible(SprRedJumper, 0, a.X, a.Y) {
			w.startSound(SndRedJumperLand)
		}
		return
	}

	switch redJumperArc[r.Step] {
	case -1:
		if r.free(w, Dir4North, a.X, a.Y-1) {
			a.Y--
		} else {
			r.Step = 34
		}
	case -2:
		for range 2 {
			if r.free(w, Dir4North, a.X, a.Y-1) {
				a.Y--
			} else {
				r.Step = 34
			}
		}
	case 1:
		if r.free(w, Dir4South, a.X, a.Y+1) {
			a.Y++
		}
	case 2:
		landed := true
		if r.free(w, Dir4South, a.X, a.Y-1) {
			a.Y++
			if r.free(w, Dir4South, a.X, a.Y-1) {
				a.Y++
				landed = false
			}
		}
		if landed {
			r.Step = 0
			return
		}
	}

	a.Frame = r.Facing + redJumperArc[r.Step+1]
	if r.Step < 39 {
		r.Step += 2
	}
}

// SuctionWalker walks along floors and ceilings, flipping between them when
// there is a surface close enough.
type SuctionWalker struct {
	Dir   Dir2
	State int // 0 floor, 1 ceiling, 2 rising, 3 falling
	Step  bool
	Slow  bool
}

// canFlip reports whether a surface lies within reach above or below. The
// upward scan tests west-blocking tiles, which is how ceilings have always
// been found.
func (s *SuctionWalker) canFlip(w *World, a *Actor, dir Dir4) bool {
	if w.GameRand()%2 == 0 {
		return false
	}

	m := w.Map
	for y := 0; y < 15; y++ {
		switch dir {
		case Dir4North:
			if m.blockWest(a.X, a.Y-y-4) && m.blockWest(a.X+2, a.Y-y-4) {
				return true
			}
		case Dir4South:
			if m.blockSouth(a.X, a.Y+y) && m.blockSouth(a.X+2, a.Y+y) {
				return true
			}
		}
	}
	return false
}

func (s *SuctionWalker) Tick(w *World, a *Actor) {
	s.Slow = !s.Slow
	m := w.Map

	var dx, aheadX, frameBase, flipFrame int
	var probe Dir4
	if s.Dir == Dir2West {
		dx, aheadX, probe, flipFrame = -1, a.X-1, Dir4West, 9
	} else {
		dx, aheadX, probe, flipFrame = 1, a.X+3, Dir4East, 8
	}

	switch s.State {
	case 0:
		frameBase = 0
		if s.Dir == Dir2East {
			frameBase = 2
		}
		if s.Slow {
			s.Step = !s.Step
			a.Frame = boolInt(s.Step) + frameBase
		}

		move := w.TestSpriteMove(probe, SprSuctionWalker, 0, a.X+dx, a.Y)
		ledge := !m.blockSouth(aheadX, a.Y+1)
		switch {
		case move != MoveFree || ledge || w.GameRand()%50 == 0:
			if s.canFlip(w, a, Dir4North) {
				s.State = 2
				a.Frame = flipFrame
			} else {
				s.Dir = s.Dir.Flip()
				s.State = 0
			}
		case s.Slow:
			a.X += dx
		}

	case 1:
		frameBase = 4
		if s.Dir == Dir2East {
			frameBase = 6
		}
		if s.Slow {
			s.Step = !s.Step
			a.Frame = boolInt(s.Step) + frameBase
		}

		move := w.TestSpriteMove(probe, SprSuctionWalker, 0, a.X+dx, a.Y)
		ledge := !m.blockWest(aheadX, a.Y-4)
		switch {
		case s.Dir == Dir2West && move == MoveSloped && s.Slow:
			a.Y--
			a.X--
		case move != MoveFree || ledge || w.GameRand()%50 == 0:
			if s.canFlip(w, a, Dir4South) {
				s.State = 3
				a.Frame = flipFrame
			} else {
				s.Dir = s.Dir.Flip()
				s.State = 1
			}
		case s.Slow:
			a.X += dx
		}

	case 2:
		for range 2 {
			if w.TestSpriteMove(Dir4North, SprSuctionWalker, 0, a.X, a.Y-1) != MoveFree {
				s.State = 1
			} else {
				a.Y--
			}
		}

	case 3:
		for range 2 {
			if w.TestSpriteMove(Dir4South, SprSuctionWalker, 0, a.X, a.Y+1) != MoveFree {
				s.State = 0
			} else {
				a.Y++
			}
		}
	}
}

// SpittingTurret aims at the player, opens over two steps and spits one shot
// in the aimed direction, then cools down for 27 frames.
type SpittingTurret struct {
	Volley int
	Timer  int
	HomeX  int
	Health int
}

func (t *SpittingTurret) hitPoints() *int { return &t.Health }

func (t *SpittingTurret) Tick(w *World, a *Actor) {
	t.Timer--
	if t.Timer == 0 {
		t.Volley++
		t.Timer = 3

		if t.Volley != 3 {
			a.Frame++
			switch a.Frame {
			case 2:
				w.NewActor(ActProjectileW, a.X-1, a.Y-1)
			case 5:
				w.NewActor(ActProjectileSw, a.X-1, a.Y+1)
			case 8:
				w.NewActor(ActProjectileS, a.X+1, a.Y+1)
			case 11:
				w.NewActor(ActProjectileSe, a.X+5, a.Y+1)
			case 14:
				w.NewActor(ActProjectileE, a.X+5, a.Y-1)
			}
		}
	}

	p := &w.Player
	if t.Volley == 0 {
		if a.Y >= p.Y-2 {
			if a.X+1 > p.X {
				a.Frame = 0
				a.X = t.HomeX
			} else if a.X+2 <= p.X {
				a.Frame = 12
				a.X = t.HomeX + 1
			}
		} else {
			switch {
			case a.X-2 > p.X:
				a.Frame = 3
				a.X = t.HomeX
			case a.X+3 < p.X:
				a.Frame = 9
				a.X = t.HomeX + 1
			case a.X-2 < p.X && a.X+3 >= p.X:
				a.Frame = 6
				a.X = t.HomeX + 1
			}
			if a.X-2 == p.X {
				a.Frame = 6
				a.X = t.HomeX + 1
			}
		}
	}

	if t.Volley == 3 {
		t.Timer = 27
		t.Volley = 0
	}

	if a.Frame > 14 {
		a.Frame = 14
	}
}

// RedChomper wanders back and forth, now and then stopping to yawn or look
// around.
type RedChomper struct {
	Dir   Dir2
	Chew  bool
	Walk  bool
	Slow  bool
	Pause int // 1..10 yawning, 11..16 searching
}

var (
	chomperSearchWest = [...]int{8, 9, 10, 10, 9, 8}
	chomperSearchEast = [...]int{10, 9, 8, 8, 9, 10}
)

func (c *RedChomper) Tick(w *World, a *Actor) {
	c.Slow = !c.Slow

	if w.GameRand()%95 == 0 {
		c.Pause = 10
	} else if w.GameRand()%100 == 0 {
		c.Pause = 11
	}

	switch {
	case c.Pause < 11 && c.Pause != 0:
		c.Pause--
		switch {
		case c.Pause > 8:
			a.Frame = 6
		case c.Pause == 8:
			a.Frame = 5
		default:
			c.Chew = !c.Chew
			a.Frame = boolInt(c.Chew) + 6
		}

		if c.Pause == 0 && w.GameRand()%2 != 0 {
			if a.X >= w.Player.X {
				c.Dir = Dir2West
			} else {
				c.Dir = Dir2East
			}
		}

	case c.Pause > 10:
		if c.Dir == Dir2West {
			a.Frame = chomperSearchWest[c.Pause-11]
		} else {
			a.Frame = chomperSearchEast[c.Pause-11]
		}
		c.Pause++
		if c.Pause == 17 {
			c.Pause = 0
		}

	case !c.Slow:

	case c.Dir == Dir2West:
		a.Frame = toggle(a.Frame)
		a.X--
		w.AdjustActorMove(a, Dir4West)
		if !a.WestOK {
			c.Dir = Dir2East
			a.Frame = 4
		}

	default:
		c.Walk = !c.Walk
		a.Frame = boolInt(c.Walk) + 2
		a.X++
		w.AdjustActorMove(a, Dir4East)
		if !a.EastOK {
			c.Dir = Dir2West
			a.Frame = 4
		}
	}
}

// PinkWorm inches along the floor at half speed, pausing at random to look
// around.
type PinkWorm struct {
	Dir  Dir2
	Inch bool
	Look int
	skip bool
}

func (pw *PinkWorm) Tick(w *World, a *Actor) {
	pw.skip = !pw.skip
	if pw.skip {
		return
	}

	if w.random(40) > 37 && pw.Look == 0 && !pw.Inch {
		pw.Look = 4
	}

	switch {
	case pw.Look != 0:
		pw.Look--
		switch {
		case pw.Look == 2:
			if pw.Dir == Dir2West {
				a.Frame = 2
			} else if !pw.Inch {
				a.Frame = 5
			}
		case pw.Dir == Dir2West:
			a.Frame = 0
		default:
			a.Frame = 3
		}

	case pw.Dir == Dir2West:
		a.Frame = toggle(a.Frame)
		if a.Frame != 0 {
			a.X--
			w.AdjustActorMove(a, Dir4West)
			if !a.WestOK {
				pw.Dir = Dir2East
			}
		}

	default:
		pw.Inch = !pw.Inch
		if !pw.Inch {
			a.X++
			a.Frame = 1
			w.AdjustActorMove(a, Dir4East)
			if !a.EastOK {
				pw.Dir = Dir2West
			}
		}
		a.Frame = boolInt(pw.Inch) + 3
	}
}

// PinkWormSlime is what is left of a pounced pink worm. It oozes in place
// and hurts on contact.
type PinkWormSlime struct {
	Delay int
}

func (s *PinkWormSlime) Tick(_ *World, a *Actor) {
	if s.Delay != 0 {
		s.Delay--
		return
	}
	if a.Frame == 8 {
		a.Frame = 1
	}
	a.Frame++
}

// PusherRobot patrols a floor and shoves the player away on contact.
type PusherRobot struct {
	Dir      Dir2
	Recoil   int
	Step     bool
	Cooldown int
	Health   int
}

func (pr *PusherRobot) hitPoints() *int { return &pr.Health }

func (pr *PusherRobot) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawTranslucent
	if pr.Health == 1 {
		w.nextDrawMode = DrawNormal
	}

	if pr.Recoil != 0 {
		pr.Recoil--
		w.nextDrawMode = DrawNormal
		return
	}

	if pr.Cooldown != 0 {
		pr.Cooldown--
	}

	pr.Step = !pr.Step
	p := &w.Player

	if pr.Dir == Dir2West {
		switch {
		case a.Y == p.Y && a.X-3 == p.X && pr.Cooldown == 0:
			a.Frame = 2
			pr.shove(w, Dir8West, PlayerBaseEast)
		case pr.Step:
			a.X--
			w.AdjustActorMove(a, Dir4West)
			if !a.WestOK {
				pr.Dir = Dir2East
				a.Frame = a.X%2 + 3
			} else {
				a.Frame = toggle(a.Frame)
			}
		}
		return
	}

	switch {
	case a.Y == p.Y && a.X+4 == p.X && pr.Cooldown == 0:
		a.Frame = 5
		pr.shove(w, Dir8East, PlayerBaseWest)
	case pr.Step:
		a.X++
		w.AdjustActorMove(a, Dir4East)
		if !a.EastOK {
			a.Frame = toggle(a.Frame)
			pr.Dir = Dir2West
		} else {
			a.Frame = a.X%2 + 3
		}
	}
}

func (pr *PusherRobot) shove(w *World, dir Dir8, base int) {
	pr.Recoil = 8
	w.SetPlayerPush(dir, 5, 2, base+PlayerPushed, false, true)
	w.startSound(SndPushPlayer)
	w.Player.BaseFrame = base
	pr.Cooldown = 3
	w.nextDrawMode = DrawNormal
	w.bubbleOnce(&w.Hints.SawPusherRobot, ActSpeechUmph)
}

// SentryRobot patrols and, while the lights are on, turns and fires at the
// player now and then. It can only be pounced on in the dark.
type SentryRobot struct {
	Dir    Dir2
	Blink  bool
	Firing int
	skip   bool
}

func (s *SentryRobot) Tick(w *World, a *Actor) {
	if a.DamageCooldown != 0 {
		return
	}

	s.skip = !s.skip
	if s.skip {
		return
	}

	if w.LightsActive && w.GameRand()%50 > 48 && s.Firing == 0 {
		s.Firing = 10
	}

	if s.Firing != 0 {
		s.Blink = !s.Blink
		s.Firing--

		if s.Firing == 1 {
			if a.X+1 > w.Player.X {
				s.Dir = Dir2West
			} else {
				s.Dir = Dir2East
			}
			if s.Dir != Dir2West {
				w.NewActor(ActProjectileE, a.X+3, a.Y-1)
			} else {
				w.NewActor(ActProjectileW, a.X-1, a.Y-1)
			}
		}

		switch {
		case s.Dir != Dir2West && s.Blink:
			a.Frame = 5
		case s.Dir != Dir2West:
			a.Frame = 0
		case s.Blink:
			a.Frame = 6
		default:
			a.Frame = 2
		}
		return
	}

	if s.Dir == Dir2West {
		a.X--
		w.AdjustActorMove(a, Dir4West)
		if !a.WestOK {
			s.Dir = Dir2East
			a.Frame = 4
		} else {
			s.Blink = !s.Blink
			a.Frame = boolInt(s.Blink) + 2
		}
		return
	}

	a.X++
	w.AdjustActorMove(a, Dir4East)
	if !a.EastOK {
		s.Dir = Dir2West
		a.Frame = 4
	} else {
		a.Frame = toggle(a.Frame)
	}
}

// Dragonfly flies back and forth between walls.
type Dragonfly struct {
	Dir  Dir2
	Flap bool
}

func (d *Dragonfly) Tick(w *World, a *Actor) {
	if d.Dir != Dir2West {
		if w.TestSpriteMove(Dir4East, SprDragonfly, 0, a.X+1, a.Y) != MoveFree {
			d.Dir = Dir2West
		} else {
			a.X++
			d.Flap = !d.Flap
			a.Frame = boolInt(d.Flap) + 2
		}
		return
	}

	if w.TestSpriteMove(Dir4West, SprDragonfly, 0, a.X-1, a.Y) != MoveFree {
		d.Dir = Dir2East
	} else {
		a.X--
		a.Frame = toggle(a.Frame)
	}
}

// Bird perches, rises, and swoops at the player in a shallow arc.
type Bird struct {
	State int // 0 perched, 1 hovering, 2 swooping
	Pose  int
	Step  int
	Dir   Dir2
}

var birdSwoop = [...]int{2, 2, 2, 1, 1, 1, 0, 0, 0, -1, -1, -1, -2, -2, -2}

func (b *Bird) Tick(w *World, a *Actor) {
	p := &w.Player
	west := a.X+1 > p.X

	switch b.State {
	case 0:
		if west {
			b.Pose = 0
		} else {
			b.Pose = 4
		}
		if w.random(10) == 0 {
			b.Pose++
		}
		a.Frame = b.Pose

		b.Step++
		if b.Step == 30 {
			b.State = 1
			b.Step = 0
		}

	case 1:
		b.Step++
		if b.Step == 20 {
			b.Step = 0
			b.State = 2
			if west {
				b.Dir = Dir2West
			} else {
				b.Dir = Dir2East
			}
		} else if b.Step%2 != 0 && b.Step < 10 {
			a.Y--
		}

		if west {
			a.Frame = b.Step%2 + 2
		} else {
			a.Frame = b.Step%2 + 6
		}

	case 2:
		b.Step++
		if b.Dir == Dir2West {
			a.Frame = b.Step%2 + 2
			a.X--
		} else {
			a.Frame = b.Step%2 + 6
			a.X++
		}

		a.Y += birdSwoop[b.Step-1]

		if b.Step == 15 {
			b.State = 1
			b.Step = 10
		}
	}
}
