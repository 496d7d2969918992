package engine

// AddScore adds points to the player's score.
func (w *World) AddScore(points uint32) {
	w.Score += points
}

// spriteScores is the award for pouncing or blowing up each kind of sprite.
var spriteScores = map[Sprite]uint32{
	SprStar: 200,

	SprArrowPistonW:     250,
	SprArrowPistonE:     250,
	SprSpikesFloor:      250,
	SprSpikesFloorRecip: 250,
	SprSpikesE:          250,
	SprSpikesERecip:     250,
	SprSpikesW:          250,
	SprSawBlade:         250,
	SprSpear:            250,

	SprCabbage:          400,
	SprHeartPlant:       400,
	SprBabyGhost:        400,
	SprBabyGhostEgg:     400,
	SprClamPlant:        400,
	SprPinkWormSlime:    400,
	SprSpitWallPlantE:   400,
	SprSpitWallPlantW:   400,
	SprJumpingBullet:    400,
	SprParachuteBall:    400,
	SprPinkWorm:         400,
	SprDragonfly:        400,
	SprBird:             400,
	SprSuctionWalker:    800,
	SprSpark:            800,
	SprRoamerSlug:       800,
	SprRedChomper:       800,
	SprSharpRobotFloor:  800,
	SprSharpRobotCeil:   800,
	SprGhost:            1600,
	SprMoon:             1600,
	SprSpittingTurret:   1600,
	SprPusherRobot:      1600,
	SprSentryRobot:      1600,
	SprStoneHeadCrusher: 1600,
	SprRocket:           1600,
	SprRedJumper:        3200,
	SprEyePlant:         3200,
	SprHintGlobe:        12800,
}

// AddScoreForSprite awards the fixed score for destroying a sprite. Sprites
// without an entry award nothing.
func (w *World) AddScoreForSprite(s Sprite) {
	w.AddScore(spriteScores[s])
}

// bubbleOnce shows a speech bubble over the player the first time a hint
// flag is raised.
func (w *World) bubbleOnce(seen *bool, kind ActorKind) {
	if *seen {
		return
	}
	*seen = true
	w.NewActor(kind, w.Player.X-1, w.Player.Y-5)
}

// sparkle marks a collected pickup.
func (w *World) sparkle(a *Actor) {
	w.NewDecoration(SprSparkleShort, 4, a.X, a.Y, Dir8Stationary, 3)
}

// collect kills a pickup and awards points with a matching score effect.
func (w *World) collect(a *Actor, points uint32, effect ActorKind) {
	a.Dead = true
	w.sparkle(a)
	w.AddScore(points)
	w.NewActor(effect, a.X, a.Y)
	w.startSound(SndPrize)
}

// DestroyBarrel breaks a barrel or basket into four shards and releases its
// contents. Breaking the last one on the level earns a bubble.
func (w *World) DestroyBarrel(a *Actor) {
	b, ok := a.Behavior.(*Barrel)
	if !ok {
		return
	}
	a.Dead = true

	w.NewShard(b.Shards, 0, a.X-1, a.Y)
	w.NewShard(b.Shards, 1, a.X+1, a.Y-1)
	w.NewShard(b.Shards, 2, a.X+3, a.Y)
	w.NewShard(b.Shards, 3, a.X+2, a.Y+2)

	if w.GameRand()%2 != 0 {
		w.startSound(SndBarrelDestroy1)
	} else {
		w.startSound(SndBarrelDestroy2)
	}

	w.NewSpawner(b.Contents, a.X+1, a.Y)

	if w.NumBarrels == 1 {
		w.NewActor(ActSpeechWow50K, w.Player.X-1, w.Player.Y-5)
	}
	w.NumBarrels--
}

// explodable lists the sprites an explosion destroys.
var explodable = map[Sprite]bool{
	SprArrowPistonW:     true,
	SprArrowPistonE:     true,
	SprSpikesFloor:      true,
	SprSpikesFloorRecip: true,
	SprSawBlade:         true,
	SprCabbage:          true,
	SprSpear:            true,
	SprJumpingBullet:    true,
	SprStoneHeadCrusher: true,
	SprGhost:            true,
	SprMoon:             true,
	SprHeartPlant:       true,
	SprBabyGhost:        true,
	SprRoamerSlug:       true,
	SprBabyGhostEgg:     true,
	SprSharpRobotFloor:  true,
	SprSharpRobotCeil:   true,
	SprClamPlant:        true,
	SprParachuteBall:    true,
	SprSpikesE:          true,
	SprSpikesERecip:     true,
	SprSpikesW:          true,
	SprSpark:            true,
	SprEyePlant:         true,
	SprRedJumper:        true,
	SprSuctionWalker:    true,
	SprSpitWallPlantE:   true,
	SprSpitWallPlantW:   true,
	SprSpittingTurret:   true,
	SprRedChomper:       true,
	SprPinkWorm:         true,
	SprHintGlobe:        true,
	SprPusherRobot:      true,
	SprSentryRobot:      true,
	SprPinkWormSlime:    true,
	SprDragonfly:        true,
	SprBird:             true,
	SprRocket:           true,
}

// CanBeExploded reports whether an explosion destroys the given sprite frame
// at x,y. When it does, it throws a shard and awards the score. Retracted
// reciprocating spikes survive.
func (w *World) CanBeExploded(s Sprite, frame, x, y int) bool {
	if !explodable[s] {
		return false
	}

	if s == SprHintGlobe {
		w.NewActor(ActScoreEffect12800, x, y)
	}

	if (s == SprSpikesFloorRecip || s == SprSpikesERecip) && frame == 2 {
		return false
	}

	w.NewShard(s, frame, x, y)
	w.AddScoreForSprite(s)

	if s == SprEyePlant {
		if w.NumEyePlants == 1 {
			w.NewActor(ActSpeechWow50K, w.Player.X-1, w.Player.Y-5)
		}
		w.NewDecoration(SprSparkleLong, 8, x, y, Dir8Stationary, 1)
		w.NewSpawner(ActBombIdle, x, y)
		w.NumEyePlants--
	}

	return true
}

// pounceDamage takes one hit point from a damageable actor and reports
// whether it is used up.
func pounceDamage(a *Actor) bool {
	d, ok := a.Behavior.(damageable)
	if !ok {
		return true
	}
	hp := d.hitPoints()
	*hp--
	return *hp == 0
}

// TouchPlayer resolves contact between the player and an actor: pounces,
// damage, pickups and devices. It reports true when the actor must not be
// drawn this frame, either because it is gone or because it drew itself.
func (w *World) TouchPlayer(a *Actor) bool {
	if !w.IsSpriteVisible(a.Sprite, a.Frame, a.X, a.Y) {
		return true
	}

	p := &w.Player
	width, height := w.Sprites.Size(a.Sprite, a.Frame)

	p.PounceReady = false
	if a.Sprite == SprBoss {
		height = 7
		p.PounceReady = a.Y-height+5 >= p.Y && a.Y-height <= p.Y &&
			p.X+2 >= a.X && a.X+width-1 >= p.X
	} else {
		p.PounceReady = boolInt(p.FallTime > 3)+a.Y-height+1 >= p.Y && a.Y-height <= p.Y &&
			p.X+2 >= a.X && a.X+width-1 >= p.X && p.Scooter == 0
	}

	if handled, hide := w.pounceContact(a); handled {
		return hide
	}

	if !w.IsTouchingPlayer(a.Sprite, a.Frame, a.X, a.Y) {
		return false
	}
	return w.bodyContact(a)
}

// pounceContact handles the actors that react to being landed on. handled
// is false when the actor has no pounce reaction and body contact applies.
func (w *World) pounceContact(a *Actor) (handled, hide bool) {
	p := &w.Player
	touching := func() bool {
		return w.IsTouchingPlayer(a.Sprite, a.Frame, a.X, a.Y)
	}
	ready := func(recoil int) bool {
		return a.DamageCooldown == 0 && w.PounceHelper(recoil)
	}
	hurtOnTouch := func() {
		if a.DamageCooldown == 0 && touching() {
			w.HurtPlayer()
		}
	}

	switch b := a.Behavior.(type) {
	case *JumpPad:
		if b.Ceiling {
			return false, false
		}
		if ready(40) {
			w.startSound(SndPlayerPounce)
			w.bubbleOnce(&w.Hints.SawJumpPad, ActSpeechWhoa)
			b.Pressed = 3
		}
		return true, false

	case *JumpPadRobot:
		if ready(20) {
			w.startSound(SndJumpPadRobot)
			b.Pressed = 3
		}
		return true, false

	case *Cabbage:
		if ready(7) {
			a.DamageCooldown = 5
			w.startSound(SndPlayerPounce)
			w.nextDrawMode = DrawWhite
			if pounceDamage(a) {
				a.Dead = true
				w.AddScoreForSprite(SprCabbage)
				w.NewPounceDecoration(a.X, a.Y)
				return true, true
			}
		} else {
			hurtOnTouch()
		}
		return true, false

	case *Barrel:
		if ready(5) {
			w.DestroyBarrel(a)
			w.AddScore(100)
			w.NewActor(ActScoreEffect100, a.X, a.Y)
			return true, true
		}
		return true, false

	case *Ghost, *Moon:
		if ready(7) {
			a.DamageCooldown = 3
			w.startSound(SndPlayerPounce)
			w.nextDrawMode = DrawWhite
			if pounceDamage(a) {
				a.Dead = true
				if a.Sprite == SprGhost {
					w.NewActor(ActBabyGhost, a.X, a.Y)
				}
				w.NewPounceDecoration(a.X-1, a.Y+1)
				w.AddScoreForSprite(SprGhost)
				return true, true
			}
		} else {
			hurtOnTouch()
		}
		return true, false

	case *BabyGhost, *SuctionWalker, *Bird:
		if ready(7) {
			w.startSound(SndPlayerPounce)
			a.Dead = true
			w.NewPounceDecoration(a.X, a.Y)
			w.AddScoreForSprite(a.Sprite)
			return true, true
		}
		if touching() {
			w.HurtPlayer()
		}
		return true, false

	case *BabyGhostEgg:
		if ready(7) {
			w.startSound(SndBghostEggCrack)
			if b.Hatch == 0 {
				b.Hatch = 10
			} else {
				b.Hatch = 1
			}
		}
		return true, false

	case *ParachuteBall:
		if ready(7) {
			w.startSound(SndPlayerPounce)
			b.Delay = 0
			a.DamageCooldown = 3
			b.Health--
			if b.Roll != 0 || a.FallSpeed != 0 {
				b.Health = 0
			}
			if b.Health == 0 {
				w.NewPounceDecoration(a.X, a.Y)
				a.Dead = true
				switch {
				case b.Roll > 0:
					w.AddScore(3200)
					w.NewActor(ActScoreEffect3200, a.X, a.Y)
				case a.FallSpeed != 0:
					w.AddScore(12800)
					w.NewActor(ActScoreEffect12800, a.X, a.Y)
				default:
					w.AddScore(800)
				}
			} else {
				w.nextDrawMode = DrawWhite
				if b.Roll == 0 {
					b.Step = 0
					b.Roll = w.GameRand()%2 + 1
				}
			}
			return true, false
		}
		hurtOnTouch()
		return true, false

	case *RedJumper:
		if ready(15) {
			w.startSound(SndPlayerPounce)
			a.DamageCooldown = 6
			if pounceDamage(a) {
				w.NewActor(ActStarFloat, a.X, a.Y)
				w.NewPounceDecoration(a.X, a.Y)
				a.Dead = true
				return true, true
			}
			w.nextDrawMode = DrawWhite
		} else {
			hurtOnTouch()
		}
		return true, false

	case *SpittingTurret, *RedChomper, *PusherRobot:
		if ready(7) {
			a.DamageCooldown = 3
			w.startSound(SndPlayerPounce)
			w.nextDrawMode = DrawWhite
			dead := true
			if a.Sprite != SprRedChomper {
				dead = pounceDamage(a)
			}
			if dead {
				a.Dead = true
				w.AddScoreForSprite(a.Sprite)
				w.NewPounceDecoration(a.X, a.Y)
				return true, true
			}
		} else {
			hurtOnTouch()
		}
		return true, false

	case *PinkWorm:
		if ready(7) {
			w.AddScoreForSprite(SprPinkWorm)
			w.startSound(SndPlayerPounce)
			w.NewPounceDecoration(a.X, a.Y)
			a.Dead = true
			w.NewActor(ActPinkWormSlime, a.X, a.Y)
			return true, true
		}
		return true, false

	case *SentryRobot:
		dark := (!w.LightsActive && w.HasLightSwitch) || (w.LightsActive && !w.HasLightSwitch)
		if dark && ready(15) {
			a.DamageCooldown = 3
			w.startSound(SndPlayerPounce)
			if b.Dir != Dir2West {
				a.Frame = 7
			} else {
				a.Frame = 8
			}
		} else {
			hurtOnTouch()
		}
		return true, false

	case *Dragonfly, *IvyPlant:
		if ready(7) {
			p.PounceStreak = 0
			w.startSound(SndPlayerPounce)
			a.DamageCooldown = 5
		} else {
			hurtOnTouch()
		}
		return true, false

	case *Rocket:
		if a.X == p.X && ready(5) {
			w.startSound(SndPlayerPounce)
		}
		return true, false

	case *TulipLauncher:
		w.tulipContact(a, b)
		return true, false

	case *Boss:
		if b.Defeat == 0 && b.Hits != BossHits {
			if ready(7) {
				b.pounced(w, a)
			} else {
				hurtOnTouch()
			}
		}
		return true, true
	}

	return false, false
}

func (w *World) tulipContact(a *Actor, t *TulipLauncher) {
	p := &w.Player

	if t.Ingest != 0 {
		t.Ingest--
		if t.Ingest != 0 {
			return
		}
		p.Falling = true
		p.PounceReady = true
		if a.DamageCooldown == 0 {
			w.PounceHelper(20)
		}
		w.startSound(SndPlayerPounce)
		p.BlockMovementCmds = false
		p.BlockActionCmds = false
		p.FallTime = 0
		t.Launched = true
		t.Rest = 0
		t.Step = 1
		p.Y -= 2
		w.bubbleOnce(&w.Hints.SawTulipLauncher, ActSpeechWhoa)
		return
	}

	if !t.Launched && a.X+1 <= p.X && a.X+5 >= p.X+2 &&
		(a.Y-1 == p.Y || a.Y-2 == p.Y) && p.Falling {
		t.Ingest = 20
		p.PounceReady = false
		p.MomentumNorth = 0
		p.Falling = false
		p.BlockMovementCmds = true
		p.BlockActionCmds = true
		t.Launched = true
		t.Rest = 0
		t.Step = 1
		w.startSound(SndTulipIngest)
	}
}

var roamerGifts = [...]ActorKind{ActRedGourd, ActRedTomato, ActClrDiamond, ActGrnEmerald}

// bodyContact handles an actor overlapping the player.
func (w *World) bodyContact(a *Actor) bool {
	p := &w.Player

	switch b := a.Behavior.(type) {
	case *Slime:
		if b.Drips {
			a.Y = b.HomeY
			b.Falling = false
			if a.Y > p.Y-4 || a.Frame == 6 {
				w.HurtPlayer()
			}
			a.Frame = 0
			return false
		}
		if a.Y > p.Y-4 {
			w.HurtPlayer()
		}
		return false

	case *HeartPlant:
		b.Biting = true
		w.HurtPlayer()
		return false

	case *FootSwitch:
		if b.Presses < 4 && !b.Pending {
			p.Falling = true
			w.ClearPlayerDizzy()
			w.PounceHelper(3)
			b.press()
		}
		return false

	case *RoamerSlug:
		i := w.GameRand() % 4
		if a.DamageCooldown != 0 {
			return false
		}
		a.DamageCooldown = 10
		if w.PounceHelper(7) {
			w.startSound(SndPlayerPounce)
		} else {
			p.ClingDir = Dir4None
		}
		w.NewSpawner(roamerGifts[i], a.X, a.Y+1)
		w.startSound(SndRoamerGift)
		w.nextDrawMode = DrawWhite
		if pounceDamage(a) {
			a.Dead = true
			w.NewPounceDecoration(a.X-1, a.Y+1)
		}
		return false

	case *PipeEnd:
		if !b.Inlet && (a.Y+3 == p.Y || a.Y+2 == p.Y) {
			if p.Pushed {
				p.X = a.X
				p.QueueDizzy = true
				p.InPipe = false
				w.ClearPlayerPush()
				w.bubbleOnce(&w.Hints.SawPipe, ActSpeechWhoa)
			}
		} else if (!p.Falling || p.Recoiling) && (w.Cmd.Jump || p.Recoiling) &&
			a.X == p.X && (a.Y+3 == p.Y || a.Y+2 == p.Y) {
			p.InPipe = true
		}
		return false

	case *Transporter:
		if w.TransporterTimeLeft == 0 {
			if a.X <= p.X && a.X+4 >= p.X+2 && a.Y == p.Y {
				if w.Cmd.North {
					w.ActiveTransporter = b.ID
					w.TransporterTimeLeft = 15
					p.Falling = false
				}
				p.NearTransporter = true
			} else {
				p.NearTransporter = false
			}
		}
		return true

	case *Scooter:
		if p.Falling && (a.Y == p.Y || a.Y+1 == p.Y) {
			p.Scooter = 4
			w.startSound(SndPlayerLand)
			w.ClearPlayerPush()
			p.Falling = false
			p.FallTime = 0
			p.Recoiling = false
			p.PounceReady = false
			p.MomentumNorth = 0
			p.PounceStreak = 0
			w.bubbleOnce(&w.Hints.SawScooter, ActSpeechWhoa)
		}
		return false

	case *ExitMonsterW:
		if b.Swallow != 0 {
			b.Swallow--
			a.Frame = 0
			if b.Swallow == 0 {
				w.WinLevel = true
				return false
			}
		} else if b.Open && a.Y == p.Y && a.X <= p.X {
			a.Frame = 0
			b.Mouth = 0
			b.Swallow = 5
			p.BlockActionCmds = true
			p.BlockMovementCmds = true
			w.startSound(SndExitMonsterIngest)
		}
		return true

	case *BearTrap:
		if !b.Closed && a.X == p.X && a.Y == p.Y {
			b.Closed = true
			p.BlockMovementCmds = true
			w.bubbleOnce(&w.Hints.SawBearTrap, ActSpeechUmph)
			return false
		}
		w.swallowContact(a, nil)
		return false

	case *ExitPlant:
		w.swallowContact(a, b)
		return false

	case *Monument:
		w.bubbleOnce(&w.Hints.SawMonument, ActSpeechUmph)
		if a.X == p.X+2 {
			w.SetPlayerPush(Dir8West, 5, 2, PlayerBaseEast+PlayerPushed, false, true)
			w.startSound(SndPushPlayer)
		} else if a.X+2 == p.X {
			w.SetPlayerPush(Dir8East, 5, 2, PlayerBaseWest+PlayerPushed, false, true)
			w.startSound(SndPushPlayer)
		}
		return false

	case *JumpPad:
		if b.Ceiling && a.DamageCooldown == 0 && p.Scooter == 0 && (!p.Falling || p.Recoiling) {
			a.DamageCooldown = 2
			w.startSound(SndPlayerPounce)
			b.Pressed = 3
			p.MomentumNorth = 0
			p.Recoiling = false
			p.Falling = true
			p.FallTime = 4
			p.JumpTime = 0
		}
		return false

	case *ExitMonsterN:
		p.BlockActionCmds = true
		p.BlockMovementCmds = true
		b.Count++
		if a.Frame != 0 {
			w.WinLevel = true
		} else if b.Count == 3 {
			a.Frame++
		}
		if b.Count > 1 {
			p.Y = a.Y
			p.Falling = false
		}
		return false
	}

	return w.spriteContact(a)
}

// swallowContact lets an exit plant close over a player falling into it.
// A bear trap that is already shut is tested the same way, with nothing to
// record the swallow in.
func (w *World) swallowContact(a *Actor, plant *ExitPlant) {
	p := &w.Player
	if a.Frame == 0 && a.X < p.X && a.X+5 > p.X &&
		a.Y-2 > p.Y && a.Y-5 < p.Y && p.Falling {
		if plant != nil {
			plant.Swallow = 1
		}
		p.BlockMovementCmds = true
		p.BlockActionCmds = true
		a.Frame = 1
		w.startSound(SndExitMonsterIngest)
	}
}

var pipeCornerDirs = map[Sprite]Dir8{
	SprPipeCornerN: Dir8North,
	SprPipeCornerS: Dir8South,
	SprPipeCornerW: Dir8West,
	SprPipeCornerE: Dir8East,
}

// spriteContact covers the stateless actors, which are told apart by the
// sprite they wear.
func (w *World) spriteContact(a *Actor) bool {
	p := &w.Player

	switch a.Sprite {
	case SprStar:
		w.NewDecoration(SprSparkleLong, 8, a.X, a.Y, Dir8Stationary, 1)
		w.Stars++
		a.Dead = true
		w.startSound(SndBigPrize)
		w.AddScoreForSprite(SprStar)
		w.NewActor(ActScoreEffect200, a.X, a.Y)
		return true

	case SprArrowPistonW, SprArrowPistonE, SprFireball, SprSawBlade, SprSpear,
		SprFlyingWisp, SprTwoTonsCrusher, SprJumpingBullet, SprStoneHeadCrusher,
		SprPyramid, SprProjectile, SprSharpRobotFloor, SprSharpRobotCeil,
		SprSpark, SprSmallFlame:
		w.HurtPlayer()
		if a.Sprite == SprProjectile {
			a.Dead = true
		}
		return false

	case SprFlamePulseW, SprFlamePulseE:
		if a.Frame > 1 {
			w.HurtPlayer()
		}
		return false

	case SprClamPlant:
		if a.Frame != 0 {
			w.HurtPlayer()
		}
		return false

	case SprHeadSwitchBlue, SprHeadSwitchRed, SprHeadSwitchGreen, SprHeadSwitchYellow:
		if a.Frame == 0 {
			a.Y--
			a.Frame = 1
		}
		return false

	case SprSpikesFloor, SprSpikesFloorRecip, SprSpikesE, SprSpikesERecip, SprSpikesW:
		if a.Frame > 1 {
			return true
		}
		w.HurtPlayer()
		return false

	case SprPowerUp:
		a.Dead = true
		w.startSound(SndBigPrize)
		w.sparkle(a)
		if !w.Hints.SawHealthHint {
			w.Hints.SawHealthHint = true
			w.notify(EventHealthHint, 0)
		}
		if p.Health <= p.MaxHealth {
			p.Health++
			w.AddScore(100)
			w.NewActor(ActScoreEffect100, a.X, a.Y)
		} else {
			w.AddScore(12800)
			w.NewActor(ActScoreEffect12800, a.X, a.Y)
		}
		return true

	case SprGrnTomato, SprRedTomato, SprYelPear, SprOnion:
		w.collect(a, 200, ActScoreEffect200)
		return true

	case SprYelFruitVine, SprBananas, SprGrapes, SprRedBerries:
		w.collect(a, 800, ActScoreEffect800)
		return true

	case SprDancingMushroom, SprBottleDrink, SprGrnGourd, SprBluSpheres, SprPod,
		SprPeaPile, SprLumpyFruit, SprHorn, SprHeaddress, SprRoot, SprRedGrnBerries,
		SprRedGourd, SprRedLeafy, SprBrnPear, SprCandyCorn:
		w.collect(a, 400, ActScoreEffect400)
		return true

	case SprHamburger:
		a.Dead = true
		w.AddScore(12800)
		w.sparkle(a)
		w.startSound(SndPrize)
		if p.MaxHealth < 5 {
			p.MaxHealth++
		}
		w.bubbleOnce(&w.Hints.SawHamburger, ActSpeechWhoa)
		return true

	case SprExitSign:
		w.WinLevel = true
		return false

	case SprBombIdle:
		if p.Bombs > 8 {
			return false
		}
		a.Dead = true
		p.Bombs++
		w.Hints.SawBombHint = true
		w.AddScore(100)
		w.NewActor(ActScoreEffect100, a.X, a.Y)
		w.sparkle(a)
		w.startSound(SndPrize)
		return true

	case SprPipeCornerN, SprPipeCornerS, SprPipeCornerW, SprPipeCornerE:
		if p.InPipe {
			w.SetPlayerPush(pipeCornerDirs[a.Sprite], 100, 2, PlayerHidden, false, false)
			w.startSound(SndPipeCornerHit)
		}
		return true

	case SprSpikesFloorBent, SprSpitWallPlantE, SprSpitWallPlantW, SprPinkWormSlime, SprThrusterJet:
		w.HurtPlayer()
		return false

	case SprRotatingOrnament, SprGrnEmerald, SprClrDiamond:
		w.collect(a, 3200, ActScoreEffect3200)
		return true

	case SprBluCrystal, SprRedCrystal:
		w.collect(a, 1600, ActScoreEffect1600)
		return true

	case SprCyaDiamond, SprRedDiamond, SprGryOctahedron, SprBluEmerald, SprHeadphones:
		w.collect(a, 800, ActScoreEffect800)
		return true

	case SprInvincibilityCube:
		a.Dead = true
		w.NewActor(ActInvincibilityBubble, p.X-1, p.Y+1)
		w.NewDecoration(SprSparkleLong, 8, a.X, a.Y, Dir8Stationary, 1)
		w.NewActor(ActScoreEffect12800, a.X, a.Y)
		w.startSound(SndBigPrize)
		return true
	}

	return false
}
