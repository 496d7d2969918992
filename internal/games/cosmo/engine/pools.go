package engine

// Shard is a piece of debris thrown in an arc. Age 0 marks a free slot.
type Shard struct {
	Sprite      Sprite
	Frame       int
	X, Y        int
	Age         int
	Inclination int
	Bounced     bool
}

// Explosion is a short blast that hurts the player and destroys explodable
// actors it overlaps. Age 0 marks a free slot.
type Explosion struct {
	Age  int
	X, Y int
}

// Spawner lifts a new actor out of a destroyed container before it
// materializes. Kind ActBasketNull marks a free slot.
type Spawner struct {
	Kind ActorKind
	X, Y int
	Age  int
}

// Decoration is a purely cosmetic animation that drifts in a direction and
// repeats a number of times (0 repeats forever while visible).
type Decoration struct {
	Alive     bool
	Sprite    Sprite
	NumFrames int
	Frame     int
	X, Y      int
	Dir       Dir8
	NumTimes  int
}

func (w *World) clearShards() {
	for i := range w.shards {
		w.shards[i].Age = 0
	}
}

// NewShard throws a piece of debris from x,y. The arc cycles through five
// inclinations across calls. No-op when every slot is busy.
func (w *World) NewShard(s Sprite, frame, x, y int) {
	w.shardIncline++
	if w.shardIncline == 5 {
		w.shardIncline = 0
	}

	for i := range w.shards {
		sh := &w.shards[i]
		if sh.Age != 0 {
			continue
		}
		*sh = Shard{
			Sprite:      s,
			Frame:       frame,
			X:           x,
			Y:           y,
			Age:         1,
			Inclination: w.shardIncline,
		}
		return
	}
}

// MoveAndDrawShards advances every live shard one frame.
func (w *World) MoveAndDrawShards() {
	for i := range w.shards {
		sh := &w.shards[i]
		if sh.Age == 0 {
			continue
		}

		switch sh.Inclination {
		case 0, 3:
			if w.TestSpriteMove(Dir4East, sh.Sprite, sh.Frame, sh.X+1, sh.Y+1) == MoveFree {
				sh.X++
				if sh.Inclination == 3 {
					sh.X++
				}
			}
		case 1, 4:
			if w.TestSpriteMove(Dir4West, sh.Sprite, sh.Frame, sh.X-1, sh.Y+1) == MoveFree {
				sh.X--
				if sh.Inclination == 4 {
					sh.X--
				}
			}
		}

		if !w.arcShard(sh) {
			sh.Age = 0
			continue
		}

		if sh.Age == 1 {
			w.drawSprite(sh.Sprite, sh.Frame, sh.X, sh.Y, DrawWhite)
		} else {
			w.drawSprite(sh.Sprite, sh.Frame, sh.X, sh.Y, DrawFlipped)
		}

		sh.Age++
		if sh.Age > 40 {
			sh.Age = 0
		}
	}
}

// arcShard applies the vertical part of a shard's flight. Landing rewinds
// the age so the shard hops again; the first landing after age 8 is the only
// bounce. It returns false once the shard has left the screen.
func (w *World) arcShard(sh *Shard) bool {
	for {
		if sh.Age < 5 {
			sh.Y -= 2
		}

		if sh.Age == 5 {
			sh.Y--
		} else if sh.Age == 8 {
			if w.TestSpriteMove(Dir4South, sh.Sprite, sh.Frame, sh.X, sh.Y+1) != MoveFree {
				sh.Age = 3
				sh.Y += 2
				continue
			}
			sh.Y++
		}

		if sh.Age < 9 {
			return true
		}

		if sh.Age > 16 && !w.IsSpriteVisible(sh.Sprite, sh.Frame, sh.X, sh.Y) {
			return false
		}

		if w.bounceShard(sh) {
			continue
		}
		sh.Y++
		if w.bounceShard(sh) {
			continue
		}
		sh.Y++
		return true
	}
}

func (w *World) bounceShard(sh *Shard) bool {
	if sh.Bounced || w.TestSpriteMove(Dir4South, sh.Sprite, sh.Frame, sh.X, sh.Y+1) == MoveFree {
		return false
	}
	sh.Age = 3
	sh.Bounced = true
	w.startSound(SndShardBounce)
	return true
}

func (w *World) clearExplosions() {
	for i := range w.explosions {
		w.explosions[i].Age = 0
	}
}

// NewExplosion starts a blast whose sprite bottom sits two rows below y.
// No-op when every slot is busy.
func (w *World) NewExplosion(x, y int) {
	for i := range w.explosions {
		ex := &w.explosions[i]
		if ex.Age != 0 {
			continue
		}
		*ex = Explosion{Age: 1, X: x, Y: y + 2}
		w.startSound(SndExplosion)
		return
	}
}

var explosionFlash = [...]Color{
	ColorWhite, ColorYellow, ColorWhite, ColorBlack, ColorYellow,
	ColorWhite, ColorYellow, ColorBlack, ColorBlack,
}

// DrawExplosions advances every live explosion one frame. An explosion lives
// for eight steps and leaves a puff of smoke behind.
func (w *World) DrawExplosions() {
	for i := range w.explosions {
		ex := &w.explosions[i]
		if ex.Age == 0 {
			continue
		}

		if w.PaletteAnim == PaletteExplosions {
			w.PaletteKey = explosionFlash[ex.Age-1]
		}

		if ex.Age == 1 {
			w.NewDecoration(SprSparkleLong, 8, ex.X+2, ex.Y-2, Dir8Stationary, 1)
		}

		frame := (ex.Age - 1) % 4
		w.drawSprite(SprExplosion, frame, ex.X, ex.Y, DrawNormal)
		if w.IsTouchingPlayer(SprExplosion, frame, ex.X, ex.Y) {
			w.HurtPlayer()
		}

		ex.Age++
		if ex.Age == 9 {
			ex.Age = 0
			w.NewDecoration(SprSmokeLarge, 6, ex.X+1, ex.Y-1, Dir8North, 1)
		}
	}
}

// IsNearExplosion reports whether any live explosion overlaps the sprite.
func (w *World) IsNearExplosion(s Sprite, frame, x, y int) bool {
	for i := range w.explosions {
		ex := &w.explosions[i]
		if ex.Age == 0 {
			continue
		}
		if w.IsIntersecting(SprExplosion, 0, ex.X, ex.Y, s, frame, x, y) {
			return true
		}
	}
	return false
}

func (w *World) clearSpawners() {
	for i := range w.spawners {
		w.spawners[i].Kind = ActBasketNull
	}
}

// NewSpawner starts lifting an actor of the given kind out of x,y.
// No-op when every slot is busy.
func (w *World) NewSpawner(kind ActorKind, x, y int) {
	for i := range w.spawners {
		sp := &w.spawners[i]
		if sp.Kind != ActBasketNull {
			continue
		}
		*sp = Spawner{Kind: kind, X: x, Y: y}
		return
	}
}

// MoveAndDrawSpawners raises each spawner two rows per frame (one after
// age 8) until it hits a ceiling or reaches age 11, then creates the actor.
func (w *World) MoveAndDrawSpawners() {
	for i := range w.spawners {
		sp := &w.spawners[i]
		if sp.Kind == ActBasketNull {
			continue
		}

		s := archetypes[sp.Kind].sprite
		sp.Age++

		sp.Y--
		blocked := w.TestSpriteMove(Dir4North, s, 0, sp.X, sp.Y) != MoveFree
		if !blocked && sp.Age < 9 {
			sp.Y--
			blocked = w.TestSpriteMove(Dir4North, s, 0, sp.X, sp.Y) != MoveFree
		}

		switch {
		case blocked:
			w.NewActor(sp.Kind, sp.X, sp.Y+1)
			w.drawSprite(s, 0, sp.X, sp.Y+1, DrawNormal)
			sp.Kind = ActBasketNull
		case sp.Age == 11:
			w.NewActor(sp.Kind, sp.X, sp.Y)
			w.drawSprite(s, 0, sp.X, sp.Y, DrawFlipped)
			sp.Kind = ActBasketNull
		default:
			w.drawSprite(s, 0, sp.X, sp.Y, DrawFlipped)
		}
	}
}

func (w *World) clearDecorations() {
	for i := range w.decorations {
		w.decorations[i].Alive = false
	}
}

// NewDecoration starts a cosmetic animation. No-op when every slot is busy.
func (w *World) NewDecoration(s Sprite, numFrames, x, y int, dir Dir8, numTimes int) {
	for i := range w.decorations {
		dec := &w.decorations[i]
		if dec.Alive {
			continue
		}
		*dec = Decoration{
			Alive:     true,
			Sprite:    s,
			NumFrames: numFrames,
			X:         x,
			Y:         y,
			Dir:       dir,
			NumTimes:  numTimes,
		}
		return
	}
}

// MoveAndDrawDecorations advances every live decoration one frame. A
// decoration that leaves the screen is freed. The visibility probe uses the
// frame count as the frame number, which only matters for sprites whose
// frames differ in size.
func (w *World) MoveAndDrawDecorations() {
	for i := range w.decorations {
		dec := &w.decorations[i]
		if !dec.Alive {
			continue
		}

		if !w.IsSpriteVisible(dec.Sprite, dec.NumFrames, dec.X, dec.Y) {
			dec.Alive = false
			continue
		}

		mode := DrawNormal
		if dec.Sprite == SprSparkleSlippery {
			mode = DrawInFront
		}
		w.drawSprite(dec.Sprite, dec.Frame, dec.X, dec.Y, mode)

		if dec.Sprite == SprRaindrop {
			dec.X--
			dec.Y += w.random(3)
		}

		dec.X += Dir8X[dec.Dir]
		dec.Y += Dir8Y[dec.Dir]

		dec.Frame++
		if dec.Frame == dec.NumFrames {
			dec.Frame = 0
			if dec.NumTimes != 0 {
				dec.NumTimes--
				if dec.NumTimes == 0 {
					dec.Alive = false
				}
			}
		}
	}
}

// Shards, Explosions, Spawners and Decorations expose the pools for
// inspection.
func (w *World) Shards() []Shard           { return w.shards[:] }
func (w *World) Explosions() []Explosion   { return w.explosions[:] }
func (w *World) Spawners() []Spawner       { return w.spawners[:] }
func (w *World) Decorations() []Decoration { return w.decorations[:] }
