package engine

// PlayerWidth is the width of the player box in tiles; it is five tiles tall.
const PlayerWidth = 3

// Player animation frames. A facing adds PlayerBaseWest or PlayerBaseEast
// to the frames below PlayerBaseEast.
const (
	PlayerWalk1 = iota
	PlayerWalk2
	PlayerWalk3
	PlayerWalk4
	PlayerStand
	PlayerStandBlink
	PlayerCrouch
	PlayerLookNorth
	PlayerLookSouth
	PlayerJump
	PlayerJumpLong
	PlayerFall
	PlayerFallLong
	PlayerFallSevere
	PlayerCling
	PlayerClingOpposite
	PlayerClingNorth
	PlayerClingSouth
	PlayerShake1
	PlayerShake2
	PlayerShake3
	PlayerPain
	PlayerPushed
)

const (
	PlayerBaseWest = 0
	PlayerBaseEast = 23
	PlayerDead1    = 46
	PlayerDead2    = 47
	// PlayerHidden as a forced frame keeps the player off screen.
	PlayerHidden = 0xff
)

// PounceHint tracks whether the game still needs to explain pouncing.
type PounceHint int

const (
	PounceHintUnseen PounceHint = iota
	PounceHintQueued
	PounceHintSeen
)

// Hints holds the one-shot tutorial flags. The speech bubble flags reset on
// every level; the rest persist in the save block.
type Hints struct {
	SawAutoHintGlobe bool
	SawJumpPad       bool
	SawMonument      bool
	SawScooter       bool
	SawTransporter   bool
	SawPipe          bool
	SawBoss          bool
	SawPusherRobot   bool
	SawBearTrap      bool
	SawMysteryWall   bool
	SawTulipLauncher bool
	SawHamburger     bool
	SawHurtBubble    bool

	UsedCheat     bool
	SawBombHint   bool
	SawHealthHint bool
	Pounce        PounceHint
}

// Player is the kinematic and vital state of the player.
type Player struct {
	X, Y       int
	FaceDir    Dir4
	BombDir    Dir4
	BaseFrame  int
	Frame      int
	ForceFrame int
	ClingDir   Dir4
	CanCling   bool

	SlidingEast bool
	SlidingWest bool

	Falling       bool
	FallTime      int
	JumpTime      int
	MomentumNorth int
	MomentumSaved int
	LongJumping   bool
	Recoiling     bool
	PounceReady   bool
	PounceStreak  int

	DeadTime     int
	FallDeadTime int
	HurtCooldown int
	Invincible   bool

	Health    int
	MaxHealth int
	Bombs     int

	Pushed         bool
	PushDir        Dir8
	PushMaxTime    int
	PushTime       int
	PushSpeed      int
	PushCanCancel  bool
	PushStopAtWall bool

	QueueDizzy bool
	DizzyLeft  int

	// Scooter is nonzero while riding. It counts down from 4 to 1 right
	// after mounting, lifting the player off the ground.
	Scooter int
	InPipe  bool

	NearHintGlobe   bool
	NearTransporter bool

	JumpLatch         bool
	BlockMovementCmds bool
	BlockActionCmds   bool

	idleCount       int
	moveCount       int
	bombCooldown    int
	scooterCooldown int
}

var jumpTable = [...]int{-2, -1, -1, -1, -1, -1, -1, 0, 0, 0}

var shakeFrames = [...]int{
	PlayerShake1, PlayerShake2, PlayerShake3, PlayerShake2,
	PlayerShake1, PlayerShake2, PlayerShake3, PlayerShake2,
	PlayerShake1,
}

// ClearPlayerDizzy cancels a queued or running head shake.
func (w *World) ClearPlayerDizzy() {
	w.Player.QueueDizzy = false
	w.Player.DizzyLeft = 0
}

// PounceHelper tries to bounce the player off whatever it landed on with the
// given recoil strength. It reports whether the bounce happened.
func (w *World) PounceHelper(recoil int) bool {
	p := &w.Player
	if p.DeadTime != 0 || p.DizzyLeft != 0 {
		return false
	}

	if (!p.Recoiling || p.MomentumNorth < 2) &&
		((p.Falling && p.FallTime >= 0) || p.JumpTime > 6) && p.PounceReady {
		p.MomentumNorth = recoil + 1
		p.MomentumSaved = p.MomentumNorth
		p.Recoiling = true
		w.ClearPlayerDizzy()
		p.LongJumping = recoil > 18
		w.Hints.Pounce = PounceHintSeen

		if recoil == 7 {
			p.PounceStreak++
			if p.PounceStreak == 10 {
				p.PounceStreak = 0
				w.NewActor(ActSpeechWow50K, p.X-1, p.Y-5)
			}
		} else {
			p.PounceStreak = 0
		}
		return true
	}

	// Unsigned as in the counters this mirrors: a saved momentum below two
	// never passes.
	if uint16(p.MomentumSaved-2) < uint16(p.MomentumNorth) && p.PounceReady && p.Recoiling {
		w.ClearPlayerDizzy()
		p.LongJumping = p.MomentumNorth > 18
		w.Hints.Pounce = PounceHintSeen
		return true
	}

	return false
}

// HurtPlayer takes one unit of health unless the player is protected. The
// first hurt of a level shows a speech bubble and queues the pounce hint.
func (w *World) HurtPlayer() {
	p := &w.Player
	if p.DeadTime != 0 || w.GodMode || p.BlockActionCmds || w.ActiveTransporter != 0 ||
		p.Invincible || p.InPipe || p.HurtCooldown != 0 {
		return
	}

	p.ClingDir = Dir4None

	if !w.Hints.SawHurtBubble {
		w.Hints.SawHurtBubble = true
		w.NewActor(ActSpeechOuch, p.X-1, p.Y-5)
		if w.Hints.Pounce == PounceHintUnseen {
			w.Hints.Pounce = PounceHintQueued
		}
	}

	p.Health--
	if p.Health <= 0 {
		p.Health = 0
		p.DeadTime = 1
		p.Scooter = 0
		return
	}
	p.HurtCooldown = 44
	w.startSound(SndPlayerHurt)
}

// NewPounceDecoration bursts six pieces of debris outward around x,y.
func (w *World) NewPounceDecoration(x, y int) {
	w.NewDecoration(SprPounceDebris, 6, x+1, y, Dir8SouthWest, 2)
	w.NewDecoration(SprPounceDebris, 6, x+3, y, Dir8SouthEast, 2)
	w.NewDecoration(SprPounceDebris, 6, x+4, y-2, Dir8East, 2)
	w.NewDecoration(SprPounceDebris, 6, x+3, y-4, Dir8NorthEast, 2)
	w.NewDecoration(SprPounceDebris, 6, x+1, y-4, Dir8NorthWest, 2)
	w.NewDecoration(SprPounceDebris, 6, x, y-2, Dir8West, 2)
}

// ClearPlayerPush ends any push and drops the player into a fall.
func (w *World) ClearPlayerPush() {
	p := &w.Player
	p.Pushed = false
	p.PushDir = Dir8Stationary
	p.PushMaxTime = 0
	p.PushTime = 0
	p.PushSpeed = 0
	p.ForceFrame = PlayerWalk1
	p.Recoiling = false
	p.MomentumNorth = 0
	p.PushCanCancel = false
	p.Falling = true
	p.FallTime = 0
}

// SetPlayerPush moves the player in dir for up to maxTime frames at speed
// tiles per frame, drawn with forceFrame.
func (w *World) SetPlayerPush(dir Dir8, maxTime, speed, forceFrame int, canCancel, stopAtWall bool) {
	p := &w.Player
	p.PushDir = dir
	p.PushMaxTime = maxTime
	p.PushTime = 0
	p.PushSpeed = speed
	p.ForceFrame = forceFrame
	p.PushCanCancel = canCancel
	p.Pushed = true
	p.Scooter = 0
	p.PushStopAtWall = stopAtWall
	p.Recoiling = false
	p.MomentumNorth = 0
	w.ClearPlayerDizzy()
}

// MovePlayerPush advances an active push one frame. The push ends at a wall
// (when enabled) or once it expires.
func (w *World) MovePlayerPush() {
	p := &w.Player
	if !p.Pushed {
		return
	}

	if w.Cmd.Jump && p.PushCanCancel {
		p.Pushed = false
		return
	}

	dx, dy := Dir8X[p.PushDir], Dir8Y[p.PushDir]
	wallHit := false

	for range p.PushSpeed {
		if dx+p.X > 0 && dx+p.X+2 < w.mapWidth() {
			p.X += dx
		}
		p.Y += dy

		if dx+w.ScrollX > 0 && dx+w.ScrollX < w.mapWidth()-(ScrollW-1) {
			w.ScrollX += dx
		}
		if dy+w.ScrollY > 2 {
			w.ScrollY += dy
		}

		if p.PushStopAtWall && (w.TestPlayerMove(Dir4West, p.X, p.Y) != MoveFree ||
			w.TestPlayerMove(Dir4East, p.X, p.Y) != MoveFree ||
			w.TestPlayerMove(Dir4North, p.X, p.Y) != MoveFree ||
			w.TestPlayerMove(Dir4South, p.X, p.Y) != MoveFree) {
			wallHit = true
			break
		}
	}

	if wallHit {
		p.X -= dx
		p.Y -= dy
		w.ScrollX -= dx
		w.ScrollY -= dy
		w.ClearPlayerPush()
		return
	}

	p.PushTime++
	if p.PushTime >= p.PushMaxTime {
		w.ClearPlayerPush()
	}
}

// MovePlayer runs one frame of on-foot movement: clinging, bombs, sliding,
// walking, jumping, recoiling, falling, frame selection and scroll follow.
func (w *World) MovePlayer() {
	p := &w.Player
	cmd := &w.Cmd

	p.CanCling = false

	if p.DeadTime != 0 || w.ActiveTransporter != 0 || p.Scooter != 0 ||
		p.DizzyLeft != 0 || p.BlockActionCmds {
		return
	}

	p.moveCount++

	w.MovePlayerPush()
	if p.Pushed {
		p.ClingDir = Dir4None
		return
	}

	clingSlip := w.updateCling()

	if p.ClingDir == Dir4None {
		w.placeBomb()
	}

	if p.JumpTime == 0 && cmd.Bomb && !p.Falling && p.ClingDir == Dir4None &&
		(!cmd.Jump || p.JumpLatch) {
		switch {
		case cmd.West:
			p.FaceDir = Dir4West
			p.BombDir = Dir4West
			p.BaseFrame = PlayerBaseWest
		case cmd.East:
			p.FaceDir = Dir4East
			p.BombDir = Dir4East
			p.BaseFrame = PlayerBaseEast
		case p.FaceDir == Dir4West:
			p.BombDir = Dir4West
		case p.FaceDir == Dir4East:
			p.BombDir = Dir4East
		}
	} else {
		p.BombDir = Dir4None
		w.slidePlayer()
		if cmd.West && p.ClingDir == Dir4None && !cmd.East {
			w.walkPlayer(Dir4West)
		}
		if cmd.East && p.ClingDir == Dir4None && !cmd.West {
			w.walkPlayer(Dir4East)
		}
		if p.ClingDir != Dir4None && p.JumpLatch && !cmd.Jump {
			p.JumpLatch = false
		}
		if p.MomentumNorth != 0 ||
			(cmd.Jump && !p.Falling && !p.JumpLatch) ||
			(p.ClingDir != Dir4None && cmd.Jump && !p.JumpLatch) {
			w.jumpPlayer()
		}
		if p.ClingDir == Dir4None {
			w.fallPlayer()
		}
	}

	if w.selectPlayerFrame(clingSlip) {
		return
	}
	w.followPlayer(clingSlip)
}

// updateCling lets a clinging player slip down slippery walls and drops the
// cling once the wall runs out. It reports whether the player slipped.
func (w *World) updateCling() bool {
	p := &w.Player
	if p.ClingDir == Dir4None {
		return false
	}

	target := func() Tile {
		if p.ClingDir == Dir4West {
			return w.Map.Tile(p.X-1, p.Y-2)
		}
		return w.Map.Tile(p.X+3, p.Y-2)
	}

	m := w.Map
	t := target()
	switch {
	case m.Attr(t)&AttrSlippery != 0 && m.Attr(t)&AttrCanCling != 0:
		if w.TestPlayerMove(Dir4South, p.X, p.Y+1) != MoveFree {
			p.ClingDir = Dir4None
			return false
		}
		p.Y++
		t = target()
		if m.Attr(t)&AttrSlippery == 0 && m.Attr(t)&AttrCanCling == 0 {
			p.ClingDir = Dir4None
			return false
		}
		return true
	case m.Attr(t)&AttrCanCling == 0:
		p.ClingDir = Dir4None
	}
	return false
}

// placeBomb drops a bomb two tiles ahead of the player on the frame after
// the bomb key goes down, given room and bombs to spare.
func (w *World) placeBomb() {
	p := &w.Player
	cmd := &w.Cmd

	if !cmd.Bomb {
		p.bombCooldown = 0
	}
	if cmd.Bomb && p.bombCooldown == 0 {
		p.bombCooldown = 2
	}

	if p.bombCooldown == 0 || p.bombCooldown == 1 {
		cmd.Bomb = false
		return
	}

	p.bombCooldown--
	if p.bombCooldown != 1 {
		return
	}

	m := w.Map
	if p.BaseFrame == PlayerBaseWest {
		near := m.blockWest(p.X-1, p.Y-2)
		far := m.blockWest(p.X-2, p.Y-2)
		switch {
		case p.Bombs == 0 && !w.Hints.SawBombHint:
			w.Hints.SawBombHint = true
			w.notify(EventBombHint, 0)
		case !near && !far && p.Bombs > 0:
			w.NewActor(ActBombArmed, p.X-2, p.Y-2)
			p.Bombs--
			w.startSound(SndPlaceBomb)
		default:
			w.startSound(SndNoBombs)
		}
		return
	}

	near := m.blockEast(p.X+3, p.Y-2)
	far := m.blockEast(p.X+4, p.Y-2)
	if p.Bombs == 0 && !w.Hints.SawBombHint {
		w.Hints.SawBombHint = true
		w.notify(EventBombHint, 0)
	}
	// East, unlike west, still tries to place after showing the hint.
	if !near && !far && p.Bombs > 0 {
		w.NewActor(ActBombArmed, p.X+3, p.Y-2)
		p.Bombs--
		w.startSound(SndPlaceBomb)
	} else {
		w.startSound(SndNoBombs)
	}
}

// slidePlayer moves the player down slippery slopes.
func (w *World) slidePlayer() {
	p := &w.Player
	w.TestPlayerMove(Dir4South, p.X, p.Y+1)
	if p.SlidingEast && p.SlidingWest {
		return
	}

	if p.SlidingWest {
		if p.ClingDir == Dir4None {
			p.X--
		}
		if w.TestPlayerMove(Dir4South, p.X, p.Y+1) == MoveFree && p.ClingDir == Dir4None {
			p.Y++
		}
		if p.Y-w.ScrollY > 14 {
			w.ScrollY++
		}
		if p.X-w.ScrollX < 12 && w.ScrollX > 0 {
			w.ScrollX--
		}
		p.ClingDir = Dir4None
	}

	if p.SlidingEast {
		if p.ClingDir == Dir4None {
			p.X++
		}
		if w.TestPlayerMove(Dir4South, p.X, p.Y+1) == MoveFree && p.ClingDir == Dir4None {
			p.Y++
		}
		if p.Y-w.ScrollY > 14 {
			w.ScrollY++
		}
		if p.X-w.ScrollX > 23 && w.mapWidth()-ScrollW > w.ScrollX {
			w.ScrollX++
		}
		p.ClingDir = Dir4None
	}
}

// walkPlayer steps the player one tile west or east. The first press only
// turns the player around. Walking into a clingable wall in mid-air grabs it.
func (w *World) walkPlayer(dir Dir4) {
	p := &w.Player
	step, base := -1, PlayerBaseWest
	if dir == Dir4East {
		step, base = 1, PlayerBaseEast
	}

	south := w.TestPlayerMove(Dir4South, p.X, p.Y+1)
	if p.FaceDir == dir {
		p.X += step
	} else {
		p.FaceDir = dir
	}
	p.BaseFrame = base

	horiz := MoveFree
	atEdge := p.X < 1
	if dir == Dir4East {
		atEdge = w.mapWidth()-4 < p.X
	}

	if atEdge {
		p.X -= step
	} else {
		horiz = w.TestPlayerMove(dir, p.X, p.Y)
		if horiz == MoveBlocked {
			p.X -= step
			if w.TestPlayerMove(Dir4South, p.X, p.Y+1) == MoveFree && p.CanCling {
				p.ClingDir = dir
				p.Recoiling = false
				p.MomentumNorth = 0
				w.startSound(SndPlayerCling)
				p.Falling = false
				p.JumpTime = 0
				p.FallTime = 0
				p.JumpLatch = w.Cmd.Jump
			}
		}
	}

	if horiz == MoveSloped {
		p.Y--
	} else if south == MoveSloped && w.TestPlayerMove(Dir4South, p.X, p.Y+1) == MoveFree {
		p.Falling = false
		// Walking west resets the jump, walking east the fall.
		if dir == Dir4West {
			p.JumpTime = 0
		} else {
			p.FallTime = 0
		}
		p.Y++
	}
}

// jumpPlayer runs the upward part of a jump or a pounce recoil.
func (w *World) jumpPlayer() {
	p := &w.Player
	cmd := &w.Cmd
	newJump := false

	if p.Recoiling && p.MomentumNorth > 0 {
		p.MomentumNorth--
		if p.MomentumNorth < 10 {
			p.LongJumping = false
		}
		if p.MomentumNorth > 1 {
			p.Y--
		}
		if p.MomentumNorth > 13 {
			p.MomentumNorth--
			if w.TestPlayerMove(Dir4North, p.X, p.Y) == MoveFree {
				p.Y--
			} else {
				p.LongJumping = false
			}
		}
		if p.MomentumNorth == 0 {
			p.JumpTime = 0
			p.Recoiling = false
			p.FallTime = 0
			p.LongJumping = false
			p.JumpLatch = true
		}
	} else {
		if p.ClingDir == Dir4West {
			if cmd.West {
				p.ClingDir = Dir4None
			} else if cmd.East {
				p.BaseFrame = PlayerBaseEast
			}
		}
		if p.ClingDir == Dir4East {
			if cmd.East {
				p.ClingDir = Dir4None
			} else if cmd.West {
				p.BaseFrame = PlayerBaseWest
			}
		}
		if p.ClingDir == Dir4None && p.JumpTime < len(jumpTable) {
			p.Y += jumpTable[p.JumpTime]
		}
		if p.JumpTime == 0 && w.TestPlayerMove(Dir4North, p.X, p.Y+1) != MoveFree {
			p.Y++
		}
		p.Recoiling = false
		newJump = true
	}

	p.ClingDir = Dir4None

	if w.TestPlayerMove(Dir4North, p.X, p.Y) != MoveFree {
		if p.JumpTime > 0 || p.Recoiling {
			w.startSound(SndPlayerHitHead)
		}
		p.MomentumNorth = 0
		p.Recoiling = false
		if w.TestPlayerMove(Dir4North, p.X, p.Y+1) != MoveFree {
			p.Y++
		}
		p.Y++
		p.Falling = true
		if cmd.Jump {
			p.JumpLatch = true
		}
		p.FallTime = 0
		p.LongJumping = false
	} else if newJump && p.JumpTime == 0 {
		w.startSound(SndPlayerJump)
	}

	if !p.Recoiling {
		jt := p.JumpTime
		p.JumpTime++
		if jt > 6 {
			p.Falling = true
			if cmd.Jump {
				p.JumpLatch = true
			}
			p.FallTime = 0
		}
	}
}

// land stops a fall on solid ground.
func (w *World) land() {
	p := &w.Player
	p.Falling = false
	p.Y--
	p.JumpTime = 0
	p.JumpLatch = w.Cmd.Jump
	p.FallTime = 0
}

// fallPlayer applies gravity. Falls longer than three frames drop two rows
// per frame.
func (w *World) fallPlayer() {
	p := &w.Player
	cmd := &w.Cmd

	if p.Falling && cmd.Jump {
		p.JumpLatch = true
	}
	if (!cmd.Jump || p.JumpLatch) && !p.Falling {
		p.Falling = true
		p.FallTime = 0
	}

	if p.Falling && !p.Recoiling {
		p.Y++
		if w.TestPlayerMove(Dir4South, p.X, p.Y) != MoveFree {
			if p.FallTime != 0 {
				w.startSound(SndPlayerLand)
			}
			w.land()
		}
		if p.FallTime > 3 {
			p.Y++
			w.ScrollY++
			if w.TestPlayerMove(Dir4South, p.X, p.Y) != MoveFree {
				w.startSound(SndPlayerLand)
				w.land()
				w.ScrollY--
			}
		}
		if p.FallTime < 25 {
			p.FallTime++
		}
	}

	if p.Falling && p.FallTime == 1 && !p.Recoiling {
		p.Y--
	}
}

// selectPlayerFrame picks the animation frame for this frame. It reports
// true when the player is looking up or down, which skips scroll follow.
func (w *World) selectPlayerFrame(clingSlip bool) bool {
	p := &w.Player
	cmd := &w.Cmd

	switch {
	case p.BombDir != Dir4None:
		p.idleCount = 0
		p.Frame = PlayerCrouch

	case (cmd.North || cmd.South) && !cmd.West && !cmd.East && !p.Falling && !cmd.Jump:
		p.idleCount = 0
		if cmd.North && !p.NearTransporter && !p.NearHintGlobe {
			if w.ScrollY > 0 && p.Y-w.ScrollY < ScrollH-1 {
				w.ScrollY--
			}
			if clingSlip {
				w.ScrollY++
			}
			if p.ClingDir != Dir4None {
				p.Frame = PlayerClingNorth
			} else {
				p.Frame = PlayerLookNorth
			}
		} else if cmd.South {
			if w.ScrollY+3 < p.Y {
				w.ScrollY++
				if (clingSlip || p.SlidingEast || p.SlidingWest) && w.ScrollY+3 < p.Y {
					w.ScrollY++
				}
			}
			if p.ClingDir != Dir4None {
				p.Frame = PlayerClingSouth
			} else {
				p.Frame = PlayerLookSouth
			}
		}
		return true

	case p.ClingDir == Dir4West:
		p.idleCount = 0
		if cmd.East {
			p.Frame = PlayerClingOpposite
		} else {
			p.Frame = PlayerCling
		}

	case p.ClingDir == Dir4East:
		p.idleCount = 0
		if cmd.West {
			p.Frame = PlayerClingOpposite
		} else {
			p.Frame = PlayerCling
		}

	case (p.Falling && !p.Recoiling) || (p.JumpTime > 6 && !p.Falling):
		p.idleCount = 0
		switch {
		case !p.Recoiling && !p.Falling && p.JumpTime > 6:
			p.Frame = PlayerFall
		case p.FallTime >= 10 && p.FallTime < 25:
			p.Frame = PlayerFallLong
		case p.FallTime == 25:
			p.Frame = PlayerFallSevere
			p.QueueDizzy = true
		case !p.Falling:
			p.Frame = PlayerJump
		default:
			p.Frame = PlayerFall
		}

	case (cmd.Jump && !p.JumpLatch) || p.Recoiling:
		p.idleCount = 0
		p.Frame = PlayerJump
		if p.Recoiling && p.LongJumping {
			p.Frame = PlayerJumpLong
		}
		if p.MomentumNorth < 3 && p.Recoiling {
			p.Frame = PlayerFall
		}

	case cmd.West == cmd.East:
		rnd := w.random(50)
		p.Frame = PlayerStand
		if !cmd.West && !cmd.East && !p.Falling {
			p.idleCount++
			switch c := p.idleCount; {
			case c > 100 && c < 110:
				p.Frame = PlayerLookNorth
			case c > 139 && c < 150:
				p.Frame = PlayerLookSouth
			case c == 180, c == 184:
				p.Frame = PlayerShake1
			case c == 181, c == 183:
				p.Frame = PlayerShake2
			case c == 182:
				p.Frame = PlayerShake3
			case c == 185:
				p.idleCount = 0
			}
		}
		if p.Frame != PlayerLookNorth && p.Frame != PlayerLookSouth && (rnd == 0 || rnd == 31) {
			p.Frame = PlayerStandBlink
		}

	case !p.Falling:
		p.idleCount = 0
		if p.moveCount%2 != 0 {
			if p.Frame%2 != 0 {
				w.startSound(SndPlayerFootstep)
			}
			p.Frame++
		}
		if p.Frame > PlayerWalk4 {
			p.Frame = PlayerWalk1
		}
	}

	return false
}

// followPlayer scrolls the window to keep the player inside its margins.
func (w *World) followPlayer(clingSlip bool) {
	p := &w.Player

	if p.Y-w.ScrollY > 14 {
		w.ScrollY++
	}
	if clingSlip && p.Y-w.ScrollY > 14 {
		w.ScrollY++
	} else {
		if p.MomentumNorth > 10 && p.Y-w.ScrollY < 7 && w.ScrollY > 0 {
			w.ScrollY--
		}
		if p.Y-w.ScrollY < 7 && w.ScrollY > 0 {
			w.ScrollY--
		}
	}

	if p.X-w.ScrollX > 23 && w.mapWidth()-ScrollW > w.ScrollX && w.Map.YPower > 5 {
		w.ScrollX++
	} else if p.X-w.ScrollX < 12 && w.ScrollX > 0 {
		w.ScrollX--
	}
}

// MovePlayerScooter runs one frame of movement while riding the scooter,
// which flies freely in all four directions.
func (w *World) MovePlayerScooter() {
	p := &w.Player
	cmd := &w.Cmd

	w.ClearPlayerDizzy()
	p.PounceReady = false
	p.MomentumNorth = 0
	p.Falling = false

	if p.DeadTime != 0 {
		return
	}

	if p.Scooter > 1 {
		cmd.North = true
		p.Scooter--
	} else if cmd.Jump {
		p.JumpLatch = true
		p.Scooter = 0
		p.Falling = true
		p.FallTime = 1
		p.Recoiling = false
		p.PounceReady = true
		w.PounceHelper(9)
		p.MomentumNorth -= 2
		w.startSound(SndPlayerJump)
		return
	}

	if cmd.West && !cmd.East {
		if p.BaseFrame == PlayerBaseWest {
			p.X--
		}
		p.BaseFrame = PlayerBaseWest
		p.Frame = PlayerStand
		if p.X < 1 {
			p.X++
		}
		if w.TestPlayerMove(Dir4West, p.X, p.Y) != MoveFree ||
			w.TestPlayerMove(Dir4West, p.X, p.Y+1) != MoveFree {
			p.X++
		}
		if p.X%2 != 0 {
			w.NewDecoration(SprScooterExhaust, 4, p.X+3, p.Y+1, Dir8East, 1)
			w.startSound(SndScooterPutt)
		}
	}

	if cmd.East && !cmd.West {
		if p.BaseFrame != PlayerBaseWest {
			p.X++
		}
		p.BaseFrame = PlayerBaseEast
		p.Frame = PlayerStand
		if w.mapWidth()-4 < p.X {
			p.X--
		}
		if w.TestPlayerMove(Dir4East, p.X, p.Y) != MoveFree ||
			w.TestPlayerMove(Dir4East, p.X, p.Y+1) != MoveFree {
			p.X--
		}
		if p.X%2 != 0 {
			w.NewDecoration(SprScooterExhaust, 4, p.X-1, p.Y+1, Dir8West, 1)
			w.startSound(SndScooterPutt)
		}
	}

	switch {
	case cmd.North && !cmd.South:
		p.Frame = PlayerLookNorth
		if p.Y > 4 {
			p.Y--
		}
		if w.TestPlayerMove(Dir4North, p.X, p.Y) != MoveFree {
			p.Y++
		}
		if p.Y%2 != 0 {
			w.NewDecoration(SprScooterExhaust, 4, p.X+1, p.Y+1, Dir8South, 1)
			w.startSound(SndScooterPutt)
		}
	case cmd.South && !cmd.North:
		p.Frame = PlayerLookSouth
		if w.mapHeight()+17 > p.Y {
			p.Y++
		}
		if w.TestPlayerMove(Dir4South, p.X, p.Y+1) != MoveFree {
			p.Y--
		}
	default:
		p.Frame = PlayerStand
	}

	if !cmd.Bomb {
		p.scooterCooldown = 0
	}
	if cmd.Bomb && p.scooterCooldown == 0 {
		p.scooterCooldown = 1
		p.Frame = PlayerCrouch
	}

	if p.scooterCooldown == 1 {
		p.Frame = PlayerCrouch
		p.scooterCooldown = 2

		m := w.Map
		if p.BaseFrame == PlayerBaseWest {
			if !m.blockWest(p.X-1, p.Y-2) && !m.blockWest(p.X-2, p.Y-2) && p.Bombs > 0 {
				w.NewActor(ActBombArmed, p.X-2, p.Y-2)
				p.Bombs--
				w.startSound(SndPlaceBomb)
			} else {
				w.startSound(SndNoBombs)
			}
		} else {
			if !m.blockEast(p.X+3, p.Y-2) && !m.blockEast(p.X+4, p.Y-2) && p.Bombs > 0 {
				w.NewActor(ActBombArmed, p.X+3, p.Y-2)
				p.Bombs--
				w.startSound(SndPlaceBomb)
			} else {
				w.startSound(SndNoBombs)
			}
		}
	} else {
		cmd.Bomb = false
	}

	if p.Y-w.ScrollY > 14 {
		w.ScrollY++
	} else {
		if p.MomentumNorth > 10 && p.Y-w.ScrollY < 7 && w.ScrollY > 0 {
			w.ScrollY--
		}
		if p.Y-w.ScrollY < 7 && w.ScrollY > 0 {
			w.ScrollY--
		}
	}

	if p.X-w.ScrollX > 23 && w.mapWidth()-ScrollW > w.ScrollX {
		w.ScrollX++
	} else if p.X-w.ScrollX < 12 && w.ScrollX > 0 {
		w.ScrollX--
	}
}

// ProcessPlayerDizzy starts a queued head shake once the player is on the
// ground and plays it out.
func (w *World) ProcessPlayerDizzy() {
	p := &w.Player

	if p.ClingDir != Dir4None {
		p.QueueDizzy = false
		p.DizzyLeft = 0
	}

	if p.QueueDizzy && w.TestPlayerMove(Dir4South, p.X, p.Y+1) != MoveFree {
		p.QueueDizzy = false
		p.DizzyLeft = 8
		w.startSound(SndPlayerLand)
	}

	if p.DizzyLeft != 0 {
		p.Frame = shakeFrames[p.DizzyLeft]
		p.DizzyLeft--
		p.Falling = false
	}
}

// DrawPlayerHelper draws the player, including hurt flashing and the two
// death sequences. It reports true once a death has restarted the level.
func (w *World) DrawPlayerHelper() bool {
	p := &w.Player

	if w.mapHeight()+ScrollH+3 < p.Y && p.DeadTime == 0 {
		p.FallDeadTime = 1
		p.DeadTime = 1
		if w.mapHeight()+ScrollH+4 == p.Y {
			p.Y++
		}
		w.deathSpeech++
		if w.deathSpeech == 5 {
			w.deathSpeech = 0
		}
	}

	switch {
	case p.FallDeadTime != 0:
		p.FallDeadTime++
		if p.FallDeadTime == 2 {
			w.startSound(SndPlayerHurt)
		}
		if p.FallDeadTime < 12 {
			p.FallDeadTime = 12
		}
		if p.FallDeadTime == 13 {
			w.startSound(SndPlayerDeath)
		}
		if p.FallDeadTime > 12 && p.FallDeadTime < 19 {
			w.drawSprite(SprSpeechMulti, w.deathSpeech, p.X-1, (p.Y-p.FallDeadTime)+13, DrawInFront)
		}
		if p.FallDeadTime > 18 {
			w.drawSprite(SprSpeechMulti, w.deathSpeech, p.X-1, p.Y-6, DrawInFront)
		}
		if p.FallDeadTime > 30 {
			w.restartLevel()
			return true
		}

	case p.DeadTime == 0:
		if p.HurtCooldown == 44 {
			w.drawPlayer(p.BaseFrame+PlayerPain, p.X, p.Y, DrawWhite)
		} else if p.HurtCooldown > 40 {
			w.drawPlayer(p.BaseFrame+PlayerPain, p.X, p.Y, DrawNormal)
		}
		if p.HurtCooldown != 0 {
			p.HurtCooldown--
		}
		if p.HurtCooldown < 41 {
			if !p.Pushed {
				w.drawPlayer(p.BaseFrame+p.Frame, p.X, p.Y, DrawNormal)
			} else {
				w.drawPlayer(p.ForceFrame, p.X, p.Y, DrawNormal)
			}
		}

	case p.DeadTime < 10:
		if p.DeadTime == 1 {
			w.startSound(SndPlayerHurt)
		}
		p.DeadTime++
		w.drawPlayer(p.DeadTime%2+PlayerDead1, p.X-1, p.Y, DrawInFront)

	default:
		if w.ScrollY > 0 && p.DeadTime < 12 {
			w.ScrollY--
		}
		if p.DeadTime == 10 {
			w.startSound(SndPlayerDeath)
		}
		p.Y--
		p.DeadTime++
		w.drawPlayer(p.DeadTime%2+PlayerDead1, p.X-1, p.Y, DrawInFront)
		if p.DeadTime > 36 {
			w.restartLevel()
			return true
		}
	}

	return false
}
