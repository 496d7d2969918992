package engine

// Platform is a five-tile moving platform. It steers by the direction
// command stored under its center tile and keeps the tiles it covers in
// Stash so they can be put back after it moves on.
type Platform struct {
	X, Y  int
	Stash [5]Tile
}

// Fountain is a column of water that rises and falls, carrying whatever
// stands on its cap.
type Fountain struct {
	X, Y      int
	Dir       Dir4
	StepCount int
	Height    int
	StepMax   int
	DelayLeft int
}

// LightSide picks the shape of the top tile of a light cone.
type LightSide int

const (
	LightWest LightSide = iota
	LightMiddle
	LightEast
)

// Light is the top of one column of a light cone.
type Light struct {
	Side LightSide
	X, Y int
}

// AddPlatform registers a platform centered at x,y. No-op when full.
func (w *World) AddPlatform(x, y int) {
	if len(w.platforms) == MaxPlatforms {
		return
	}
	w.platforms = append(w.platforms, Platform{X: x, Y: y})
}

// AddFountain registers a fountain whose cap sits one tile up and left of
// x,y. size scales how far it travels before turning around.
func (w *World) AddFountain(x, y, size int) {
	if len(w.fountains) == MaxFountains {
		return
	}
	w.fountains = append(w.fountains, Fountain{
		X:       x - 1,
		Y:       y - 1,
		Dir:     Dir4North,
		StepMax: size * 3,
	})
}

// AddLight registers one light column. The last slot is never used.
func (w *World) AddLight(side LightSide, x, y int) {
	if len(w.lights) == MaxLights-1 {
		return
	}
	w.lights = append(w.lights, Light{Side: side, X: x, Y: y})
}

// stashPlatforms records the tiles under each platform once the map is in
// place.
func (w *World) stashPlatforms() {
	for i := range w.platforms {
		plat := &w.platforms[i]
		for j := range plat.Stash {
			plat.Stash[j] = w.Map.Tile(plat.X+j-2, plat.Y)
		}
	}
}

// Platforms, Fountains and Lights expose the level movers for inspection.
func (w *World) Platforms() []Platform { return w.platforms }
func (w *World) Fountains() []Fountain { return w.fountains }
func (w *World) Lights() []Light       { return w.lights }

// movePlayerPlatform carries the player when standing on a span from xWest
// to xEast, following the scroll window along.
func (w *World) movePlayerPlatform(xWest, xEast int, xDir, yDir Dir8) {
	p := &w.Player
	if p.Scooter != 0 {
		return
	}

	x2 := p.X + PlayerWidth - 1

	if p.ClingDir != Dir4None && w.TestPlayerMove(Dir4South, p.X, p.Y+1) != MoveFree {
		p.ClingDir = Dir4None
	}

	if (p.X < xWest || p.X > xEast) && (x2 < xWest || x2 > xEast) {
		return
	}

	p.X += Dir8X[xDir]
	p.Y += Dir8Y[yDir]

	cmd := &w.Cmd
	if (cmd.North || cmd.South) && !cmd.West && !cmd.East {
		if cmd.North && w.ScrollY > 0 && p.Y-w.ScrollY < ScrollH-1 {
			w.ScrollY--
		}
		if cmd.South && (w.ScrollY+4 < p.Y || (Dir8Y[yDir] == 1 && w.ScrollY+3 < p.Y)) {
			w.ScrollY++
		}
	}

	if p.Y-w.ScrollY > ScrollH-1 {
		w.ScrollY++
	} else if p.Y-w.ScrollY < 3 {
		w.ScrollY--
	}

	if p.X-w.ScrollX > 23 && w.mapWidth()-ScrollW > w.ScrollX {
		w.ScrollX++
	} else if p.X-w.ScrollX < 12 && w.ScrollX > 0 {
		w.ScrollX--
	}

	if Dir8Y[yDir] == 1 && p.Y-w.ScrollY > 14 {
		w.ScrollY++
	}
	if Dir8Y[yDir] == -1 && p.Y-w.ScrollY < 3 {
		w.ScrollY--
	}
}

// MovePlatforms moves every platform one step along its track while
// platforms are switched on.
func (w *World) MovePlatforms() {
	m := w.Map
	for i := range w.platforms {
		plat := &w.platforms[i]

		for j, t := range plat.Stash {
			m.SetTile(t, plat.X+j-2, plat.Y)
		}

		dir := Dir8(m.Tile(plat.X, plat.Y) / 8)
		if dir > Dir8NorthWest {
			dir = Dir8Stationary
		}

		if w.Player.DeadTime == 0 && plat.Y-1 == w.Player.Y && w.PlatformsActive {
			w.movePlayerPlatform(plat.X-2, plat.X+2, dir, dir)
		}

		if w.PlatformsActive {
			plat.X += Dir8X[dir]
			plat.Y += Dir8Y[dir]
		}

		for j := range plat.Stash {
			plat.Stash[j] = m.Tile(plat.X+j-2, plat.Y)
		}
		for j := range plat.Stash {
			m.SetTile(TileBluePlatform+Tile(j*8), plat.X+j-2, plat.Y)
		}
	}
}

// MoveFountains raises or lowers every fountain one step, pausing for ten
// frames at each end of its travel.
func (w *World) MoveFountains() {
	m := w.Map
	for i := range w.fountains {
		f := &w.fountains[i]

		if f.DelayLeft != 0 {
			f.DelayLeft--
			continue
		}

		f.StepCount++
		if f.StepCount == f.StepMax {
			f.StepCount = 0
			if f.Dir == Dir4North {
				f.Dir = Dir4None
			} else {
				f.Dir = Dir4North
			}
			f.DelayLeft = 10
			continue
		}

		m.SetTile(TileEmpty, f.X, f.Y)
		m.SetTile(TileEmpty, f.X+2, f.Y)

		if w.Player.DeadTime == 0 && f.Y-1 == w.Player.Y {
			if f.Dir != Dir4North {
				w.movePlayerPlatform(f.X, f.X+2, Dir8Stationary, Dir8South)
			} else {
				w.movePlayerPlatform(f.X, f.X+2, Dir8Stationary, Dir8North)
			}
		}

		if f.Dir != Dir4North {
			f.Y++
			f.Height--
		} else {
			f.Y--
			f.Height++
		}

		m.SetTile(TileInvisiblePlatform, f.X, f.Y)
		m.SetTile(TileInvisiblePlatform, f.X+2, f.Y)
	}
}

// DrawFountains draws each fountain cap and stream. Touching a stream hurts.
func (w *World) DrawFountains() {
	w.fountainFast++
	if w.fountainFast%2 != 0 {
		w.fountainSlow++
	}
	phase := w.fountainSlow % 2

	for i := range w.fountains {
		f := &w.fountains[i]
		w.drawSprite(SprFountain, phase, f.X, f.Y+1, DrawNormal)

		for y := 0; f.Height+1 > y; y++ {
			w.drawSprite(SprFountain, phase+2, f.X+1, f.Y+y+1, DrawNormal)
			if w.IsTouchingPlayer(SprFountain, 2, f.X+1, f.Y+y+1) {
				w.HurtPlayer()
			}
		}
	}
}

// DrawLights lightens every visible tile of every light cone. A cone runs
// down from its top tile until a south-blocking tile or the cast distance.
func (w *World) DrawLights() {
	if !w.LightsActive {
		return
	}

	visible := func(x, y int) bool {
		return x >= w.ScrollX && w.ScrollX+ScrollW > x &&
			y >= w.ScrollY && w.ScrollY+ScrollH-1 >= y
	}

	for _, l := range w.lights {
		if visible(l.X, l.Y) {
			w.renderer.DrawLight(l.Side, l.X, l.Y)
		}
		for y := l.Y + 1; l.Y+LightCastDistance > y; y++ {
			if w.Map.blockSouth(l.X, y) {
				break
			}
			if visible(l.X, y) {
				w.renderer.DrawLight(LightMiddle, l.X, y)
			}
		}
	}
}
