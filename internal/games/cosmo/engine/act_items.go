package engine

// Barrel is a breakable container holding one actor of kind Contents.
type Barrel struct {
	Contents ActorKind
	Shards   Sprite
}

func (b *Barrel) Tick(w *World, a *Actor) {
	if w.IsNearExplosion(SprBarrel, 0, a.X, a.Y) {
		w.DestroyBarrel(a)
		w.AddScore(1600)
		w.NewActor(ActScoreEffect1600, a.X, a.Y)
	}
}

// Prize animates a pickup through Frames frames, at half speed when Slow.
// Single-frame prizes sparkle at random inside a SparkleW x SparkleH box,
// and any prize with a sparkle box is drawn flipped.
type Prize struct {
	SparkleW, SparkleH int
	Slow               bool
	Frames             int
	half               bool
}

func (pz *Prize) Tick(w *World, a *Actor) {
	if pz.SparkleW != 0 {
		w.nextDrawMode = DrawFlipped
	}

	if !pz.Slow {
		a.Frame++
	} else {
		pz.half = !pz.half
		if pz.half {
			a.Frame++
		}
	}

	if a.Frame == pz.Frames {
		a.Frame = 0
	}

	if pz.Frames == 1 && a.Sprite != SprThrusterJet && !pz.Slow && w.random(64) == 0 {
		w.NewDecoration(SprSparkleLong, 8,
			w.random(pz.SparkleW)+a.X, w.random(pz.SparkleH)+a.Y, Dir8Stationary, 1)
	}
}

// BombArmed is a lit bomb. It counts through its fuse frames, flashes on
// the last one and explodes.
type BombArmed struct {
	Step int
	Fuse int
}

func (b *BombArmed) Tick(w *World, a *Actor) {
	if a.Frame == 3 {
		b.Fuse++
		b.Step++
		if b.Step%2 != 0 {
			w.nextDrawMode = DrawWhite
		}

		if b.Fuse == 10 {
			a.Dead = true
			w.NewPounceDecoration(a.X-2, a.Y+2)
			w.nextDrawMode = DrawHidden
			w.NewExplosion(a.X-2, a.Y)
			if b.Step%2 != 0 {
				w.drawSprite(SprBombArmed, a.Frame, a.X, a.Y, DrawWhite)
			}
		}
	} else {
		b.Step++
		if b.Step == 5 {
			b.Step = 0
			a.Frame++
		}
	}

	if w.TestSpriteMove(Dir4South, SprBombArmed, 0, a.X, a.Y) != MoveFree {
		a.Y--
	}
}

// BombIdle is a bomb pickup. A nearby explosion sets it off two frames
// later.
type BombIdle struct {
	Fuse int
}

func (b *BombIdle) Tick(w *World, a *Actor) {
	if b.Fuse == 2 {
		w.NewExplosion(a.X-2, a.Y)
		a.Dead = true
		return
	}

	if b.Fuse != 0 {
		b.Fuse++
	}
	if b.Fuse == 0 && w.IsNearExplosion(SprBombIdle, 0, a.X, a.Y) {
		b.Fuse = 1
	}
}

// ScoreEffect is a floating point-value label. It rises, sways, and
// expires after 100 frames or when off screen.
type ScoreEffect struct {
	Age int
}

var scoreSway = [...]int{-2, -1, 0, 1, 2, 2, 1, 0, -1, -2}

func (s *ScoreEffect) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden

	s.Age++
	a.Frame = toggle(a.Frame)

	if s.Age > 31 {
		a.Y--
		a.X += scoreSway[(s.Age-32)%10]
	}
	if s.Age < 4 {
		a.Y--
	}

	if s.Age == 100 || !w.IsSpriteVisible(a.Sprite, a.Frame, a.X, a.Y) {
		a.Dead = true
		w.nextDrawMode = DrawHidden
	}

	w.drawSprite(a.Sprite, a.Frame, a.X, a.Y, DrawInFront)
}

// SpeechBubble floats over the player's head for 20 frames. The "Wow"
// bubble is worth 50,000 points.
type SpeechBubble struct {
	Age int
}

func (s *SpeechBubble) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden

	if s.Age == 0 {
		w.startSound(SndSpeechBubble)
		if a.Sprite == SprSpeechWow50K {
			w.AddScore(50000)
		}
	}

	s.Age++
	if s.Age == 20 {
		a.Dead = true
		return
	}
	w.drawSprite(a.Sprite, 0, w.Player.X-1, w.Player.Y-5, DrawInFront)
}

// InvincibilityBubble follows the player and keeps them invincible for 240
// frames, blinking over the last 40.
type InvincibilityBubble struct {
	Age int
}

var bubbleFrames = [...]int{0, 1, 2, 1}

func (b *InvincibilityBubble) Tick(w *World, a *Actor) {
	p := &w.Player
	p.Invincible = true

	b.Age++
	a.Frame = bubbleFrames[b.Age%4]

	if b.Age > 200 && b.Age%2 != 0 {
		w.nextDrawMode = DrawHidden
	}

	if b.Age == 240 {
		a.Dead = true
		w.nextDrawMode = DrawHidden
		p.Invincible = false
		return
	}
	a.X = p.X - 1
	a.Y = p.Y + 1
}

// Scooter hovers in place until mounted, then rides under the player.
type Scooter struct {
	Bob int
}

func (s *Scooter) Tick(w *World, a *Actor) {
	a.Frame = (a.Frame + 1) & 3

	p := &w.Player
	if p.Scooter != 0 {
		a.X = p.X
		a.Y = p.Y + 1
		return
	}

	s.Bob++
	if s.Bob%10 != 0 {
		return
	}
	if w.TestSpriteMove(Dir4South, SprScooter, 0, a.X, a.Y+1) != MoveFree {
		a.Y--
		return
	}
	a.Y++
	if w.TestSpriteMove(Dir4South, SprScooter, 0, a.X, a.Y+1) != MoveFree {
		a.Y--
	}
}

// Rocket sits smoking until an explosion lights it, then climbs carrying
// anyone standing on its nose and blows up against the ceiling.
type Rocket struct {
	Countdown int
	Burn      int
	Flame     bool
	Crashed   bool
}

func (r *Rocket) Tick(w *World, a *Actor) {
	if r.Countdown != 0 {
		r.Countdown--
		if r.Countdown < 30 {
			if r.Countdown%2 != 0 {
				w.NewDecoration(SprSmoke, 6, a.X-1, a.Y+1, Dir8NorthWest, 1)
			} else {
				w.NewDecoration(SprSmoke, 6, a.X+1, a.Y+1, Dir8NorthEast, 1)
			}
		}
		return
	}

	if r.Burn != 0 {
		r.climb(w, a)
	}

	if r.Crashed {
		a.Dead = true
		w.NewShard(SprRocket, 1, a.X, a.Y)
		w.NewShard(SprRocket, 2, a.X+1, a.Y)
		w.NewShard(SprRocket, 3, a.X+2, a.Y)
		w.NewExplosion(a.X-4, a.Y)
		w.NewExplosion(a.X+1, a.Y)
		w.nextDrawMode = DrawWhite
	}
}

func (r *Rocket) rise(w *World, a *Actor) {
	if w.TestSpriteMove(Dir4North, SprRocket, 0, a.X, a.Y-1) == MoveFree {
		a.Y--
	} else {
		r.Crashed = true
	}
}

func (r *Rocket) climb(w *World, a *Actor) {
	if r.Burn > 7 {
		w.NewDecoration(SprSmoke, 6, a.X-1, a.Y+1, Dir8West, 1)
		w.NewDecoration(SprSmoke, 6, a.X+1, a.Y+1, Dir8East, 1)
		w.startSound(SndRocketBurn)
	}

	if r.Burn > 1 {
		r.Burn--
	}

	if r.Burn < 10 {
		r.rise(w, a)
		if w.IsSpriteVisible(a.Sprite, 0, a.X, a.Y) {
			w.startSound(SndRocketBurn)
		}
	}

	if r.Burn < 5 {
		r.rise(w, a)

		r.Flame = !r.Flame
		w.drawSprite(SprRocket, boolInt(r.Flame)+4, a.X, a.Y+6, DrawNormal)
		if w.IsTouchingPlayer(SprRocket, 4, a.X, a.Y+6) {
			w.HurtPlayer()
		}
		if r.Flame {
			w.NewDecoration(SprSmoke, 6, a.X, a.Y+6, Dir8South, 1)
		}
	}

	p := &w.Player
	if a.X == p.X && a.Y-7 <= p.Y && a.Y-4 >= p.Y {
		p.MomentumNorth = 16
		p.Recoiling = true
		w.ClearPlayerDizzy()
		p.LongJumping = false
		if a.Y-7 == p.Y {
			p.Y++
		}
		if a.Y-6 == p.Y {
			p.Y++
		}
		if a.Y-4 == p.Y {
			p.Y--
		}
	}

	if r.Burn > 4 && r.Burn%2 != 0 {
		w.NewDecoration(SprSmoke, 6, a.X, a.Y+2, Dir8South, 1)
	}
}

// Satellite takes two explosions: the first makes it flash, the second
// scatters it and drops a hamburger.
type Satellite struct {
	Hit   bool
	Flash int
}

func (s *Satellite) Tick(w *World, a *Actor) {
	if s.Flash != 0 {
		s.Flash--
		if s.Flash != 0 {
			if s.Flash%2 != 0 {
				w.nextDrawMode = DrawWhite
			}
			return
		}
	}

	if !w.IsNearExplosion(SprSatellite, 0, a.X, a.Y) {
		return
	}
	if !s.Hit {
		s.Hit = true
		s.Flash = 15
		return
	}

	a.Dead = true
	w.nextDrawMode = DrawWhite
	w.startSound(SndDestroySatellite)

	for dir := Dir8North; dir <= Dir8NorthWest; dir++ {
		w.NewDecoration(SprSmoke, 6, a.X+3, a.Y-3, dir, 3)
	}

	w.NewPounceDecoration(a.X, a.Y+5)
	w.NewShard(SprSatelliteShards, 0, a.X, a.Y-2)
	w.NewShard(SprSatelliteShards, 1, a.X+1, a.Y-2)
	w.NewShard(SprSatelliteShards, 2, a.X+7, a.Y+2)
	w.NewShard(SprSatelliteShards, 3, a.X+3, a.Y-2)
	w.NewShard(SprSatelliteShards, 4, a.X-1, a.Y-8)
	w.NewShard(SprSatelliteShards, 5, a.X+2, a.Y+3)
	w.NewShard(SprSatelliteShards, 6, a.X+6, a.Y-2)
	w.NewShard(SprSatelliteShards, 7, a.X-4, a.Y+1)
	w.NewSpawner(ActHamburger, a.X+4, a.Y)
}

// WormCrate rests as a platform and hatches a pink worm after Fuse frames
// on screen, or at once when caught in an explosion.
type WormCrate struct {
	Placed   bool
	Fuse     int
	Exploded bool
}

func (c *WormCrate) Tick(w *World, a *Actor) {
	m := w.Map
	switch {
	case !c.Placed:
		m.SetTileRepeat(TileStripedPlatform, 4, a.X, a.Y-2)
		c.Placed = true

	case w.TestSpriteMove(Dir4South, SprWormCrate, 0, a.X, a.Y+1) == MoveFree:
		m.SetTileRepeat(TileEmpty, 4, a.X, a.Y-2)
		a.Y++
		if w.TestSpriteMove(Dir4South, SprWormCrate, 0, a.X, a.Y+1) != MoveFree {
			m.SetTileRepeat(TileStripedPlatform, 4, a.X, a.Y-2)
		}

	case w.IsSpriteVisible(SprWormCrate, 0, a.X, a.Y):
		if w.IsNearExplosion(a.Sprite, a.Frame, a.X, a.Y) {
			c.Fuse = 1
			c.Exploded = true
		}

		if c.Fuse != 0 {
			c.Fuse--
			return
		}

		a.Dead = true
		if c.Exploded {
			w.NewExplosion(a.X-1, a.Y-1)
		}
		m.SetTileRepeat(TileEmpty, 4, a.X, a.Y-2)
		w.NewActor(ActPinkWorm, a.X, a.Y)
		w.nextDrawMode = DrawWhite
		w.NewShard(SprWormCrateShards, 0, a.X-1, a.Y+3)
		w.NewShard(SprWormCrateShards, 1, a.X, a.Y-1)
		w.NewShard(SprWormCrateShards, 2, a.X+1, a.Y)
		w.NewShard(SprWormCrateShards, 3, a.X, a.Y)
		w.NewShard(SprWormCrateShards, 4, a.X+3, a.Y+2)
		w.NewShard(SprWormCrateShards, 5, a.X, a.Y)
		w.NewShard(SprWormCrateShards, 6, a.X+5, a.Y+5)
		w.startSound(SndDestroySolid)
	}
}

// Monument is a statue that blocks the way. Three explosions topple it.
type Monument struct {
	Placed bool
	Flash  int
	Broken bool
}

func (mn *Monument) Tick(w *World, a *Actor) {
	if mn.Broken {
		a.Dead = true
		w.nextDrawMode = DrawHidden
		w.NewShard(SprMonument, 3, a.X, a.Y-8)
		w.NewShard(SprMonument, 3, a.X, a.Y-7)
		w.NewShard(SprMonument, 3, a.X, a.Y-6)
		w.NewShard(SprMonument, 3, a.X, a.Y)
		w.NewShard(SprMonument, 3, a.X+1, a.Y)
		w.NewShard(SprMonument, 3, a.X+2, a.Y)
		w.NewDecoration(SprSmoke, 6, a.X, a.Y, Dir8North, 2)
		w.NewDecoration(SprSmoke, 6, a.X, a.Y, Dir8NorthEast, 2)
		w.NewDecoration(SprSmoke, 6, a.X, a.Y, Dir8NorthWest, 2)
		w.NewDecoration(SprSmoke, 6, a.X, a.Y-4, Dir8North, 3)
		w.AddScore(25600)
		w.NewActor(ActScoreEffect12800, a.X-2, a.Y-9)
		w.NewActor(ActScoreEffect12800, a.X+2, a.Y-9)
		w.startSound(SndDestroySolid)
		return
	}

	if !mn.Placed {
		mn.Placed = true
		for i := 0; i < 9; i++ {
			w.Map.SetTile(TileSwitchBlock1, a.X+1, a.Y-i)
		}
	}

	if mn.Flash != 0 {
		mn.Flash--
		if mn.Flash%2 != 0 {
			w.nextDrawMode = DrawWhite
		}
	}

	if mn.Flash == 0 && w.IsNearExplosion(SprMonument, 0, a.X, a.Y) {
		mn.Flash = 10
		a.Frame++
		if a.Frame == 3 {
			a.Frame = 2
			mn.Broken = true
			for i := 0; i < 9; i++ {
				w.Map.SetTile(TileEmpty, a.X+1, a.Y-i)
			}
		}
	}
}
