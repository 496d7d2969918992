package engine

// fallActor applies gravity to a weighted actor. Fall speed ramps up over
// five frames; from the second frame on the actor drops a row, and two rows
// at full speed.
func (w *World) fallActor(a *Actor) {
	if w.TestSpriteMove(Dir4South, a.Sprite, 0, a.X, a.Y) != MoveFree {
		a.Y--
		a.FallSpeed = 0
	}

	if w.TestSpriteMove(Dir4South, a.Sprite, 0, a.X, a.Y+1) != MoveFree {
		a.FallSpeed = 0
		return
	}

	if a.FallSpeed < 5 {
		a.FallSpeed++
	}
	if a.FallSpeed > 1 && a.FallSpeed < 6 {
		a.Y++
	}
	if a.FallSpeed == 5 {
		if w.TestSpriteMove(Dir4South, a.Sprite, 0, a.X, a.Y+1) != MoveFree {
			a.FallSpeed = 0
		} else {
			a.Y++
		}
	}
}

// ProcessActor runs one actor through its frame: culling, gravity, its
// tick, explosion damage, player contact and drawing.
func (w *World) ProcessActor(a *Actor) {
	if a.Dead {
		return
	}

	if a.Y > w.mapHeight()+ScrollH+3 {
		a.Dead = true
		return
	}

	w.nextDrawMode = DrawNormal

	if a.DamageCooldown != 0 {
		a.DamageCooldown--
	}

	switch {
	case w.IsSpriteVisible(a.Sprite, a.Frame, a.X, a.Y):
		if a.StayActive {
			a.ForceActive = true
		}
	case !a.ForceActive:
		return
	default:
		w.nextDrawMode = DrawHidden
	}

	if a.Weighted {
		w.fallActor(a)
	}

	if w.IsSpriteVisible(a.Sprite, a.Frame, a.X, a.Y) {
		w.nextDrawMode = DrawNormal
	}

	a.Behavior.Tick(w, a)
	if a.Dead {
		return
	}

	if w.IsNearExplosion(a.Sprite, a.Frame, a.X, a.Y) &&
		w.CanBeExploded(a.Sprite, a.Frame, a.X, a.Y) {
		a.Dead = true
		return
	}

	if !w.TouchPlayer(a) && w.nextDrawMode != DrawHidden {
		w.drawSprite(a.Sprite, a.Frame, a.X, a.Y, w.nextDrawMode)
	}
}

// MoveAndDrawActors processes every actor slot in order. Actors spawned
// during the pass run in the same frame when they land past the cursor.
func (w *World) MoveAndDrawActors() {
	w.Player.NearHintGlobe = false

	for i := 0; i < w.numActors; i++ {
		w.ProcessActor(&w.actors[i])
	}

	w.MysteryWallTime = 0
}
