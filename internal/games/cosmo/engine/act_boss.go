package engine

// BossHits is how many pounces bring the boss down.
const BossHits = 12

// Boss hops around the arena, rams walls, and body-slams toward the player.
// Its head flies off after four hits; after BossHits it sinks to the floor,
// then rises off the screen, which wins the level.
type Boss struct {
	State  int // 0 rising, 1 hovering, 2 hopping, 3 slamming, 4 recovering
	Clock  int
	Step   int
	East   bool
	Hits   int
	Flash  int
	Defeat int
}

var bossHop = [...]int{2, 2, 1, 0, -1, -2, -2, -2, -2, -1, 0, 1, 2, 2}

func (b *Boss) drawBody(w *World, a *Actor, head int, white bool) {
	mode := DrawNormal
	if white {
		mode = DrawWhite
	}
	w.drawSprite(SprBoss, 0, a.X, a.Y, mode)
	w.drawSprite(SprBoss, head, a.X, a.Y-4, mode)
}

func (b *Boss) smoke(w *World, a *Actor) {
	w.NewDecoration(SprSmoke, 6, a.X, a.Y, Dir8NorthWest, 1)
	w.NewDecoration(SprSmoke, 6, a.X+3, a.Y, Dir8NorthEast, 1)
}

func (b *Boss) free(w *World, dir Dir4, x, y int) bool {
	return w.TestSpriteMove(dir, SprBoss, 0, x, y) == MoveFree
}

func (b *Boss) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden

	if !w.Hints.SawBoss {
		w.bubbleOnce(&w.Hints.SawBoss, ActSpeechWhoa)
		w.audio.StartMusic(MusicBoss)
	}

	if b.Defeat > 0 {
		b.tickDefeat(w, a)
		return
	}

	if b.Hits == BossHits {
		if b.free(w, Dir4South, a.X, a.Y+1) {
			a.Y++
			b.drawBody(w, a, 5, a.Y%2 != 0)
		}
		if !b.free(w, Dir4South, a.X, a.Y+1) {
			b.Defeat = 80
		}
		return
	}

	if b.Flash != 0 {
		head := 1
		if b.Hits > 3 {
			head = 5
		}
		b.Flash--
		b.drawBody(w, a, head, b.Flash%2 != 0)
	}

	switch b.State {
	case 0:
		a.Y -= 2
		b.Clock++
		if b.Clock == 6 {
			b.State = 1
		}

	case 1:
		if b.Clock != 0 {
			b.Clock--
		} else {
			b.State = 2
		}

	case 2:
		b.hop(w, a)

	case 3:
		b.slam(w, a)

	case 4:
		a.Weighted = false
		a.FallSpeed = 0
		a.Y--
		b.Clock++
		if b.Clock == 6 {
			b.State = 2
			b.Step = 0
			b.Clock = 0
		}
	}

	if b.Flash != 0 {
		return
	}

	w.drawSprite(SprBoss, 0, a.X, a.Y, DrawNormal)
	p := &w.Player
	switch {
	case b.Hits < 4:
		w.drawSprite(SprBoss, 1, a.X, a.Y-4, DrawNormal)
	case a.X+1 > p.X:
		w.drawSprite(SprBoss, 2, a.X+1, a.Y-4, DrawNormal)
	case a.X+2 < p.X:
		w.drawSprite(SprBoss, 4, a.X+1, a.Y-4, DrawNormal)
	default:
		w.drawSprite(SprBoss, 3, a.X+1, a.Y-4, DrawNormal)
	}
}

func (b *Boss) tickDefeat(w *World, a *Actor) {
	b.Defeat--
	if b.Defeat < 40 {
		a.Y--
	}

	a.Weighted = false
	a.FallSpeed = 0

	if b.Defeat == 1 || a.Y == 0 ||
		(!w.IsSpriteVisible(SprBoss, 0, a.X, a.Y) && b.Defeat < 30) {
		w.WinLevel = true
		w.AddScore(100000)
	}

	if b.Defeat < 40 && b.Defeat != 0 && b.Defeat%3 == 0 {
		b.smoke(w, a)
		w.startSound(SndBossMove)
	}

	if b.Defeat%2 != 0 {
		b.drawBody(w, a, 5, true)
		if b.Defeat > 39 {
			b.smoke(w, a)
		}
		return
	}
	b.drawBody(w, a, 5, false)
}

func (b *Boss) hop(w *World, a *Actor) {
	dy := bossHop[b.Step%14]
	if !b.free(w, Dir4South, a.X, a.Y+dy) && dy == 2 {
		a.Y -= 2
	}
	if !b.free(w, Dir4South, a.X, a.Y+dy) && dy == 1 {
		a.Y--
	} else {
		a.Y += dy
	}

	b.Step++
	if b.Step%14 == 1 {
		w.startSound(SndBossMove)
	}

	b.Clock++
	switch {
	case b.Clock > 30 && b.Clock < 201:
		switch {
		case b.East:
			if !b.free(w, Dir4East, a.X+1, a.Y) {
				b.East = false
				w.startSound(SndObjectHit)
				w.NewDecoration(SprSmoke, 6, a.X+3, a.Y-2, Dir8South, 1)
			} else {
				a.X++
			}
		case b.free(w, Dir4West, a.X-1, a.Y):
			a.X--
		default:
			b.East = true
			w.startSound(SndObjectHit)
			w.NewDecoration(SprSmoke, 6, a.X, a.Y-2, Dir8South, 1)
		}

	case b.Clock > 199:
		b.State = 3
		b.Clock = 0
		b.Step = 8
	}
}

func (b *Boss) slam(w *World, a *Actor) {
	b.Clock++
	p := &w.Player

	switch {
	case b.Step < 6:
		b.Step++
		a.Y -= 2

	case b.Clock < 102:
		a.Weighted = true
		switch {
		case !b.free(w, Dir4South, a.X, a.Y+1):
			b.Step = 0
			a.Weighted = false
			a.FallSpeed = 0
			w.startSound(SndSmash)
			b.smoke(w, a)
		case a.X+1 > p.X:
			if b.free(w, Dir4West, a.X-1, a.Y) {
				a.X--
			}
		case a.X+3 < p.X && b.free(w, Dir4East, a.X+1, a.Y):
			a.X++
		}

	case !b.free(w, Dir4South, a.X, a.Y+1) || !b.free(w, Dir4South, a.X, a.Y):
		b.State = 4
		b.Clock = 0
		b.Step = 0
		a.Weighted = false
		a.FallSpeed = 0
		w.startSound(SndObjectHit)
		b.smoke(w, a)

	default:
		a.Y++
	}
}

// pounced applies one pounce hit. It knocks the boss into its hopping
// state and sends its head flying on the fourth hit.
func (b *Boss) pounced(w *World, a *Actor) {
	w.startSound(SndPlayerPounce)
	b.Hits++
	b.Flash = 10
	a.DamageCooldown = 7

	if b.State != 2 {
		b.State = 2
		b.Clock = 31
		b.Step = 0
		b.East = true
		a.Weighted = false
		a.FallSpeed = 0
	}

	if b.Hits == 4 {
		w.NewShard(SprBoss, 1, a.X, a.Y-4)
		w.startSound(SndBossDamage)
	}

	b.smoke(w, a)
}

// FrozenDuke is a friend trapped in ice. A bomb frees him; he thanks the
// player, drops a hamburger, and flies off.
type FrozenDuke struct {
	State int
	Clock int
	Flame int
}

func (d *FrozenDuke) flame(w *World, a *Actor) {
	w.drawSprite(SprFrozenDuke, d.Flame%2+4, a.X, a.Y+5, DrawNormal)
	d.Flame++
}

func (d *FrozenDuke) Tick(w *World, a *Actor) {
	w.nextDrawMode = DrawHidden

	switch d.State {
	case 0:
		if !w.IsNearExplosion(SprFrozenDuke, 0, a.X, a.Y) {
			w.drawSprite(SprFrozenDuke, 0, a.X, a.Y, DrawNormal)
			return
		}
		w.NewShard(SprFrozenDuke, 6, a.X, a.Y-6)
		w.NewShard(SprFrozenDuke, 7, a.X+4, a.Y)
		w.NewShard(SprFrozenDuke, 8, a.X, a.Y-5)
		w.NewShard(SprFrozenDuke, 9, a.X, a.Y-4)
		w.NewShard(SprFrozenDuke, 10, a.X+5, a.Y-6)
		w.NewShard(SprFrozenDuke, 11, a.X+5, a.Y-4)
		w.startSound(SndSmash)
		d.State = 1
		a.X++

	case 1:
		d.Clock++
		if d.Clock%2 != 0 {
			a.Y--
		}
		d.flame(w, a)
		w.drawSprite(SprFrozenDuke, 2, a.X, a.Y, DrawNormal)
		w.NewDecoration(SprSmoke, 6, a.X, a.Y+6, Dir8South, 1)
		if d.Clock == 10 {
			d.State = 2
			d.Clock = 0
		}

	case 2:
		d.flame(w, a)
		w.drawSprite(SprFrozenDuke, 1, a.X, a.Y, DrawNormal)
		d.Clock++
		if d.Clock == 30 {
			w.notify(EventRescuedDuke, 0)
			d.State = 3
			d.Clock = 0
		}

	case 3:
		d.Clock++
		d.flame(w, a)
		if d.Clock < 10 {
			w.drawSprite(SprFrozenDuke, 1, a.X, a.Y, DrawNormal)
		} else {
			w.drawSprite(SprFrozenDuke, 2, a.X, a.Y, DrawNormal)
			w.NewDecoration(SprSmoke, 6, a.X, a.Y+6, Dir8South, 1)
		}
		if d.Clock == 15 {
			d.State = 4
			d.Clock = 0
		}

	case 4:
		d.Clock++
		if d.Clock == 1 {
			w.NewSpawner(ActHamburger, a.X, a.Y)
		}
		a.Y--
		if d.Clock > 50 || !w.IsSpriteVisible(SprFrozenDuke, 2, a.X, a.Y) {
			a.Dead = true
			return
		}
		d.flame(w, a)
		w.drawSprite(SprFrozenDuke, 2, a.X, a.Y, DrawNormal)
		w.NewDecoration(SprSmoke, 6, a.X, a.Y+6, Dir8South, 1)
		w.startSound(SndRocketBurn)
	}
}
