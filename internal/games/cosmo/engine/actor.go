package engine

// Behavior is the per-kind tick of an actor. Tick runs once per frame while
// the actor is active and may set w.nextDrawMode to change how the actor's
// sprite is drawn afterwards.
type Behavior interface {
	Tick(w *World, a *Actor)
}

// Actor is one slot of the actor arena. Behavior carries the kind-specific
// state; everything else is shared by the generic passes.
type Actor struct {
	Kind        ActorKind
	Sprite      Sprite
	Frame       int
	X, Y        int
	ForceActive bool
	StayActive  bool
	Weighted    bool
	Acrophile   bool
	Dead        bool
	FallSpeed   int

	DamageCooldown int

	// WestOK and EastOK record the outcome of the last AdjustActorMove in
	// each direction.
	WestOK, EastOK bool

	Behavior Behavior
}

type actorFlags uint8

const (
	fForce actorFlags = 1 << iota
	fStay
	fWeighted
	fAcrophile
)

type spawnFunc func(w *World, x, y int) Behavior

// archetype is one row of the actor construction table. dx,dy shift the map
// position; spawn builds the behavior at the shifted position.
type archetype struct {
	sprite Sprite
	dx, dy int
	flags  actorFlags
	spawn  spawnFunc
}

// NewActorAtIndex builds an actor of the given kind in slot i. It reports
// false for kinds with no archetype, leaving the slot untouched.
func (w *World) NewActorAtIndex(i int, kind ActorKind, x, y int) bool {
	if !kind.Valid() {
		return false
	}
	at := archetypes[kind]
	if at.spawn == nil {
		return false
	}

	x += at.dx
	y += at.dy
	b := at.spawn(w, x, y)

	if br, ok := b.(*Barrel); ok && (br.Shards == SprBarrelShards || br.Shards == SprBasketShards) {
		w.NumBarrels++
	}

	w.actors[i] = Actor{
		Kind:        kind,
		Sprite:      at.sprite,
		X:           x,
		Y:           y,
		ForceActive: at.flags&fForce != 0,
		StayActive:  at.flags&fStay != 0,
		Weighted:    at.flags&fWeighted != 0,
		Acrophile:   at.flags&fAcrophile != 0,
		Behavior:    b,
	}

	switch kind {
	case ActSwitchPlatforms:
		w.PlatformsActive = false
	case ActSwitchMysteryWall:
		w.MysteryWallTime = 0
	case ActSwitchLights:
		w.LightsActive = false
		w.HasLightSwitch = true
	case ActEyePlantFloor:
		if w.NumEyePlants < 15 {
			w.NumEyePlants++
		}
	}
	return true
}

// NewActor places an actor in the first dead slot, or appends one while the
// arena has room. It is a no-op when the arena is full.
func (w *World) NewActor(kind ActorKind, x, y int) {
	for i := 0; i < w.numActors; i++ {
		a := &w.actors[i]
		if !a.Dead {
			continue
		}
		w.NewActorAtIndex(i, kind, x, y)
		if kind == ActParachuteBall {
			a.ForceActive = true
		}
		return
	}

	if w.numActors < MaxActors-2 {
		a := &w.actors[w.numActors]
		w.NewActorAtIndex(w.numActors, kind, x, y)
		if kind == ActParachuteBall {
			a.ForceActive = true
		}
		w.numActors++
	}
}

// AdjustActorMove settles an actor that has already stepped one column west
// or east. It climbs slopes, follows descending slopes, and undoes the step
// when the actor walked into a wall or (unless it is an acrophile) off a
// ledge. The outcome lands in WestOK or EastOK.
func (w *World) AdjustActorMove(a *Actor, dir Dir4) {
	width, _ := w.Sprites.Size(a.Sprite, 0)
	m := w.Map

	if dir == Dir4West {
		result := w.TestSpriteMove(Dir4West, a.Sprite, a.Frame, a.X, a.Y)
		a.WestOK = result == MoveFree

		switch {
		case result == MoveBlocked:
			a.X++
			return
		case result == MoveSloped:
			a.WestOK = true
			a.Y--
			return
		}

		switch {
		case w.TestSpriteMove(Dir4South, a.Sprite, a.Frame, a.X, a.Y+1) != MoveFree:
			a.WestOK = true
		case m.sloped(a.X+width, a.Y+1) && m.sloped(a.X+width-1, a.Y+2):
			if !m.blockSouth(a.X+width-1, a.Y+1) {
				a.WestOK = true
				if !m.sloped(a.X+width-1, a.Y+1) {
					a.Y++
				}
			}
		case !a.Acrophile &&
			w.TestSpriteMove(Dir4West, a.Sprite, a.Frame, a.X, a.Y+1) == MoveFree &&
			!m.sloped(a.X+width-1, a.Y+1):
			a.X++
			a.WestOK = false
		}
		return
	}

	result := w.TestSpriteMove(Dir4East, a.Sprite, a.Frame, a.X, a.Y)
	a.EastOK = result == MoveFree

	switch {
	case result == MoveBlocked:
		a.X--
		return
	case result == MoveSloped:
		a.EastOK = true
		a.Y--
		return
	}

	switch {
	case w.TestSpriteMove(Dir4South, a.Sprite, a.Frame, a.X, a.Y+1) != MoveFree:
		a.EastOK = true
	case m.sloped(a.X-1, a.Y+1) && m.sloped(a.X, a.Y+2):
		if !m.blockSouth(a.X, a.Y+1) {
			a.EastOK = true
			if !m.sloped(a.X, a.Y+1) {
				a.Y++
			}
		}
	case !a.Acrophile &&
		w.TestSpriteMove(Dir4East, a.Sprite, a.Frame, a.X, a.Y+1) == MoveFree &&
		!m.sloped(a.X, a.Y+1):
		a.X--
		a.EastOK = false
	}
}
