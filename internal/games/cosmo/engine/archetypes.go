package engine

func static(*World, int, int) Behavior { return Static{} }

func hidden(*World, int, int) Behavior { return Hidden{} }

func with(b func() Behavior) spawnFunc {
	return func(*World, int, int) Behavior { return b() }
}

func barrel(contents ActorKind) spawnFunc {
	return func(*World, int, int) Behavior {
		return &Barrel{Contents: contents, Shards: SprBarrelShards}
	}
}

func basket(contents ActorKind) spawnFunc {
	return func(*World, int, int) Behavior {
		return &Barrel{Contents: contents, Shards: SprBasketShards}
	}
}

func prize(frames int) spawnFunc {
	return func(*World, int, int) Behavior { return &Prize{Frames: frames} }
}

func slowPrize(frames int) spawnFunc {
	return func(*World, int, int) Behavior { return &Prize{Frames: frames, Slow: true} }
}

func sparkler(w, h int) spawnFunc {
	return func(*World, int, int) Behavior {
		return &Prize{SparkleW: w, SparkleH: h, Frames: 1}
	}
}

func footSwitch(target ActorKind) spawnFunc {
	return func(*World, int, int) Behavior { return &FootSwitch{Target: target} }
}

func headSwitch(door Sprite) spawnFunc {
	return func(*World, int, int) Behavior { return &HeadSwitch{Door: door} }
}

func hintGlobe(n int) spawnFunc {
	return func(*World, int, int) Behavior { return &HintGlobe{N: n} }
}

func projectile(dir Dir8) spawnFunc {
	return func(*World, int, int) Behavior { return &Projectile{Dir: dir} }
}

func transporter(id int) spawnFunc {
	return func(*World, int, int) Behavior { return &Transporter{ID: id} }
}

func pedestal(height int) spawnFunc {
	return func(*World, int, int) Behavior { return &Pedestal{Height: height} }
}

func episodeEnd(page ActorKind) spawnFunc {
	return func(*World, int, int) Behavior { return &EpisodeEnd{Page: page} }
}

func slime(drips bool) spawnFunc {
	return func(_ *World, _, y int) Behavior { return &Slime{Drips: drips, HomeY: y} }
}

const (
	fNone    actorFlags = 0
	fPickup             = fForce | fWeighted
	fLanding            = fStay | fWeighted
)

var archetypes [actorKindCount]archetype

func init() {
	t := &archetypes
	set := func(k ActorKind, s Sprite, dx, dy int, f actorFlags, fn spawnFunc) {
		t[k] = archetype{sprite: s, dx: dx, dy: dy, flags: f, spawn: fn}
	}

	set(ActBasketNull, SprBasket, 0, 0, fPickup, basket(ActBasketNull))
	set(ActStarFloat, SprStar, 0, 0, fNone, prize(4))
	set(ActStar, SprStar, 0, 0, fLanding, prize(4))
	set(ActJumpPadFloor, SprJumpPad, 0, 0, fLanding, with(func() Behavior { return &JumpPad{} }))
	set(ActJumpPadCeil, SprJumpPad, 0, 0, fForce, func(_ *World, _, y int) Behavior {
		return &JumpPad{Ceiling: true, RestY: y + 1, PressedY: y + 3}
	})

	set(ActArrowPistonW, SprArrowPistonW, 0, 0, fStay, with(func() Behavior { return &ArrowPiston{Dir: Dir2West} }))
	set(ActArrowPistonE, SprArrowPistonE, -4, 0, fStay, with(func() Behavior { return &ArrowPiston{Dir: Dir2East} }))
	set(ActFireballW, SprFireball, 0, 0, fForce, func(_ *World, x, y int) Behavior {
		return &Fireball{HomeX: x, HomeY: y, Dir: Dir2West}
	})
	set(ActFireballE, SprFireball, -1, 0, fForce, func(_ *World, x, y int) Behavior {
		return &Fireball{HomeX: x, HomeY: y, Dir: Dir2East}
	})

	set(ActHeadSwitchBlue, SprHeadSwitchBlue, 0, 1, fNone, headSwitch(SprDoorBlue))
	set(ActHeadSwitchRed, SprHeadSwitchRed, 0, 1, fNone, headSwitch(SprDoorRed))
	set(ActHeadSwitchGreen, SprHeadSwitchGreen, 0, 1, fNone, headSwitch(SprDoorGreen))
	set(ActHeadSwitchYellow, SprHeadSwitchYellow, 0, 1, fNone, headSwitch(SprDoorYellow))
	for k, s := range map[ActorKind]Sprite{
		ActDoorBlue:   SprDoorBlue,
		ActDoorRed:    SprDoorRed,
		ActDoorGreen:  SprDoorGreen,
		ActDoorYellow: SprDoorYellow,
	} {
		set(k, s, 0, 0, fNone, with(func() Behavior { return &Door{} }))
	}

	set(ActJumpPadRobot, SprJumpPadRobot, 0, 0, fForce, with(func() Behavior { return &JumpPadRobot{Dir: Dir2West} }))

	// Scenery and hazards that only act through contact.
	set(ActSpikesFloor, SprSpikesFloor, 0, 0, fNone, static)
	set(ActSpikesFloorBent, SprSpikesFloorBent, 0, 0, fNone, static)
	set(ActSpikesE, SprSpikesE, 0, 0, fNone, static)
	set(ActSpikesW, SprSpikesW, -3, 0, fNone, static)
	set(ActSpear, SprSpear, 0, 0, fNone, static)
	set(ActPyramidCeil, SprPyramid, 0, 1, fNone, static)
	set(ActExitSign, SprExitSign, 0, 0, fNone, static)
	set(ActExitMonsterN, SprExitMonsterN, 0, 0, fNone, with(func() Behavior { return &ExitMonsterN{} }))

	set(ActSpikesFloorRecip, SprSpikesFloorRecip, 0, 0, fNone, with(func() Behavior { return &ReciprocatingSpikes{Rising: true} }))
	set(ActSpikesERecip, SprSpikesERecip, 0, 0, fNone, with(func() Behavior { return &ReciprocatingSpikes{Rising: true} }))
	set(ActSpearRecip, SprSpear, 0, 0, fNone, with(func() Behavior { return &ReciprocatingSpear{} }))

	// Fruit and trinkets.
	for k, s := range map[ActorKind]Sprite{
		ActGrnTomato:     SprGrnTomato,
		ActRedTomato:     SprRedTomato,
		ActYelPear:       SprYelPear,
		ActOnion:         SprOnion,
		ActHamburger:     SprHamburger,
		ActBottleDrink:   SprBottleDrink,
		ActGrnGourd:      SprGrnGourd,
		ActBluSpheres:    SprBluSpheres,
		ActPod:           SprPod,
		ActPeaPile:       SprPeaPile,
		ActLumpyFruit:    SprLumpyFruit,
		ActHorn:          SprHorn,
		ActHeaddress:     SprHeaddress,
		ActRoot:          SprRoot,
		ActRedGrnBerries: SprRedGrnBerries,
		ActRedGourd:      SprRedGourd,
		ActHeadphones:    SprHeadphones,
		ActRedLeafy:      SprRedLeafy,
		ActBrnPear:       SprBrnPear,
		ActCandyCorn:     SprCandyCorn,
	} {
		set(k, s, 0, 0, fPickup, static)
	}
	for k, s := range map[ActorKind]Sprite{
		ActGrnTomatoFloat:  SprGrnTomato,
		ActRedTomatoFloat:  SprRedTomato,
		ActYelPearFloat:    SprYelPear,
		ActHeadphonesFloat: SprHeadphones,
		ActRedLeafyFloat:   SprRedLeafy,
		ActBrnPearFloat:    SprBrnPear,
		ActCandyCornFloat:  SprCandyCorn,
	} {
		set(k, s, 0, 0, fNone, static)
	}
	set(ActGrapes, SprGrapes, 0, 2, fNone, static)
	set(ActRedBerries, SprRedBerries, 0, 2, fNone, static)
	set(ActBananas, SprBananas, 0, 1, fNone, static)
	set(ActYelFruitVine, SprYelFruitVine, 0, 2, fForce, static)

	// Barrels and baskets.
	for k, c := range map[ActorKind]ActorKind{
		ActBarrelPowerUp:          ActPowerUpFloat,
		ActBarrelYelPear:          ActYelPear,
		ActBarrelOnion:            ActOnion,
		ActBarrelBomb:             ActBombIdle,
		ActBarrelCabbageHarder:    ActCabbageHarder,
		ActBarrelBottleDrink:      ActBottleDrink,
		ActBarrelHorn:             ActHorn,
		ActBarrelRotatingOrnament: ActRotatingOrnament,
		ActBarrelBluCrystal:       ActBluCrystal,
		ActBarrelRedCrystal:       ActRedCrystalFloor,
		ActBarrelGrnEmerald:       ActGrnEmerald,
		ActBarrelClrDiamond:       ActClrDiamond,
		ActBarrelCyaDiamond:       ActCyaDiamond,
		ActBarrelRedDiamond:       ActRedDiamond,
		ActBarrelGryOctahedron:    ActGryOctahedron,
		ActBarrelBluEmerald:       ActBluEmerald,
		ActBarrelHeadphones:       ActHeadphones,
	} {
		set(k, SprBarrel, 0, 0, fPickup, barrel(c))
	}
	set(ActBarrelJumpPadFloor, SprBarrel, 0, 0, fPickup|fAcrophile, barrel(ActJumpPadFloor))
	for k, c := range map[ActorKind]ActorKind{
		ActBasketGrnTomato:       ActGrnTomato,
		ActBasketRedTomato:       ActRedTomato,
		ActBasketHamburger:       ActHamburger,
		ActBasketDancingMushroom: ActDancingMushroom,
		ActBasketGrnGourd:        ActGrnGourd,
		ActBasketBluSpheres:      ActBluSpheres,
		ActBasketPod:             ActPod,
		ActBasketPeaPile:         ActPeaPile,
		ActBasketHeaddress:       ActHeaddress,
		ActBasketRoot:            ActRoot,
		ActBasketRedGrnBerries:   ActRedGrnBerries,
		ActBasketRedGourd:        ActRedGourd,
		ActBasketRedLeafy:        ActRedLeafy,
		ActBasketBrnPear:         ActBrnPear,
		ActBasketCandyCorn:       ActCandyCorn,
	} {
		set(k, SprBasket, 0, 0, fPickup, basket(c))
	}
	set(ActBasketLumpyFruit, SprBasket, 0, 0, fForce, basket(ActLumpyFruit))

	// Prizes.
	set(ActPowerUpFloat, SprPowerUp, 0, 0, fPickup, slowPrize(6))
	set(ActPowerUp, SprPowerUp, 0, 0, fLanding, slowPrize(6))
	set(ActDancingMushroom, SprDancingMushroom, 0, 0, fPickup, slowPrize(2))
	set(ActRotatingOrnament, SprRotatingOrnament, 0, 0, fPickup, prize(4))
	set(ActBluCrystal, SprBluCrystal, 0, 0, fPickup, prize(5))
	set(ActRedCrystalFloor, SprRedCrystal, 0, 0, fPickup, prize(6))
	set(ActGrnEmerald, SprGrnEmerald, 0, 0, fPickup, prize(5))
	set(ActClrDiamond, SprClrDiamond, 0, 0, fPickup, prize(4))
	set(ActRedCrystalCeil, SprRedCrystal, 0, 1, fNone, func(*World, int, int) Behavior {
		return &Prize{SparkleW: 1, Frames: 6}
	})
	set(ActCyaDiamond, SprCyaDiamond, 0, 0, fPickup, sparkler(3, 2))
	set(ActRedDiamond, SprRedDiamond, 0, 0, fPickup, sparkler(2, 2))
	set(ActGryOctahedron, SprGryOctahedron, 0, 0, fPickup, sparkler(2, 2))
	set(ActBluEmerald, SprBluEmerald, 0, 0, fPickup, sparkler(2, 2))
	set(ActCyaDiamondFloat, SprCyaDiamond, 0, 0, fNone, sparkler(3, 2))
	set(ActRedDiamondFloat, SprRedDiamond, 0, 0, fNone, sparkler(2, 2))
	set(ActGryOctahedronFloat, SprGryOctahedron, 0, 0, fNone, sparkler(2, 2))
	set(ActBluEmeraldFloat, SprBluEmerald, 0, 0, fNone, sparkler(2, 2))
	set(ActInvincibilityCube, SprInvincibilityCube, 0, 0, fNone, prize(4))
	set(ActThrusterJet, SprThrusterJet, 0, 2, fNone, prize(4))

	set(ActSawBladeVert, SprSawBlade, 0, 0, fStay|fAcrophile, with(func() Behavior { return &VerticalMover{} }))
	set(ActSawBladeHoriz, SprSawBlade, 0, 0, fForce|fAcrophile, with(func() Behavior { return &HorizontalMover{Frames: 1} }))
	set(ActSharpRobotFloor, SprSharpRobotFloor, 0, 0, fStay, with(func() Behavior { return &HorizontalMover{Pause: 8, Frames: 1} }))
	set(ActSharpRobotCeil, SprSharpRobotCeil, 0, 2, fStay, with(func() Behavior { return &SharpRobot{Dir: Dir2West} }))

	set(ActBombArmed, SprBombArmed, 0, 0, fPickup|fAcrophile, with(func() Behavior { return &BombArmed{} }))
	set(ActBombIdle, SprBombIdle, 0, 0, fPickup, with(func() Behavior { return &BombIdle{} }))

	set(ActCabbage, SprCabbage, 0, 0, fLanding|fAcrophile, with(func() Behavior { return &Cabbage{Health: 1} }))
	set(ActCabbageHarder, SprCabbage, 0, 0, fPickup|fAcrophile, with(func() Behavior { return &Cabbage{Health: 2} }))

	set(ActGrnSlimeThrob, SprGreenSlime, 0, 1, fNone, slime(false))
	set(ActGrnSlimeDrip, SprGreenSlime, 0, 1, fStay, slime(true))
	set(ActRedSlimeThrob, SprRedSlime, 0, 1, fNone, slime(false))
	set(ActRedSlimeDrip, SprRedSlime, 0, 1, fStay, slime(true))

	set(ActFlyingWisp, SprFlyingWisp, 0, 0, fForce, with(func() Behavior { return &FlyingWisp{} }))
	set(ActTwoTonsCrusher, SprTwoTonsCrusher, 0, 0, fStay, with(func() Behavior { return &TwoTonsCrusher{} }))
	set(ActJumpingBullet, SprJumpingBullet, 0, 0, fStay, with(func() Behavior { return &JumpingBullet{Dir: Dir2West} }))
	set(ActStoneHeadCrusher, SprStoneHeadCrusher, 0, 0, fStay, with(func() Behavior { return &StoneHeadCrusher{} }))
	set(ActPyramidFalling, SprPyramid, 0, 1, fStay|fAcrophile, with(func() Behavior { return &Pyramid{} }))
	set(ActPyramidFloor, SprPyramid, 0, 0, fNone, with(func() Behavior { return &Pyramid{Floor: true} }))

	set(ActGhost, SprGhost, 0, 0, fStay, with(func() Behavior { return &Ghost{Health: 4} }))
	set(ActMoon, SprMoon, 0, 0, fAcrophile, with(func() Behavior { return &Moon{Health: 4} }))
	set(ActHeartPlant, SprHeartPlant, 0, 0, fNone, with(func() Behavior { return &HeartPlant{} }))

	set(ActSwitchPlatforms, SprFootSwitch, 0, 0, fNone, footSwitch(ActSwitchPlatforms))
	set(ActSwitchMysteryWall, SprFootSwitch, 0, 0, fNone, footSwitch(ActSwitchMysteryWall))
	set(ActSwitchLights, SprFootSwitch, 0, 0, fNone, footSwitch(ActSwitchLights))
	set(ActSwitchForceField, SprFootSwitch, 0, 0, fNone, footSwitch(ActSwitchForceField))
	set(ActMysteryWall, SprMysteryWall, 0, 0, fForce, with(func() Behavior { return &MysteryWall{} }))

	set(ActBabyGhost, SprBabyGhost, 0, 0, fLanding, with(func() Behavior { return &BabyGhost{Dir: Dir2South} }))
	set(ActBabyGhostEggProx, SprBabyGhostEgg, 0, 0, fNone, with(func() Behavior { return &BabyGhostEgg{Proximity: true} }))
	set(ActBabyGhostEgg, SprBabyGhostEgg, 0, 0, fNone, with(func() Behavior { return &BabyGhostEgg{} }))

	set(ActProjectileSw, SprProjectile, 0, 0, fForce|fAcrophile, projectile(Dir8SouthWest))
	set(ActProjectileSe, SprProjectile, 0, 0, fForce|fAcrophile, projectile(Dir8SouthEast))
	set(ActProjectileS, SprProjectile, 0, 0, fForce|fAcrophile, projectile(Dir8South))
	set(ActProjectileW, SprProjectile, 0, 0, fForce, projectile(Dir8West))
	set(ActProjectileE, SprProjectile, 0, 0, fForce, projectile(Dir8East))

	set(ActRoamerSlug, SprRoamerSlug, 0, 0, fStay, with(func() Behavior { return &RoamerSlug{Health: 3} }))

	set(ActPipeCornerN, SprPipeCornerN, 0, 0, fNone, hidden)
	set(ActPipeCornerS, SprPipeCornerS, 0, 0, fNone, hidden)
	set(ActPipeCornerW, SprPipeCornerW, 0, 0, fStay, hidden)
	set(ActPipeCornerE, SprPipeCornerE, 0, 0, fStay, hidden)
	set(ActPipeOutlet, SprPipeEnd, -1, 2, fForce, with(func() Behavior { return &PipeEnd{} }))
	set(ActPipeInlet, SprPipeEnd, -1, 2, fStay, with(func() Behavior { return &PipeEnd{Inlet: true} }))

	set(ActClamPlantFloor, SprClamPlant, 0, 0, fNone, with(func() Behavior { return &ClamPlant{Mode: DrawNormal} }))
	set(ActClamPlantCeil, SprClamPlant, 0, 2, fNone, with(func() Behavior { return &ClamPlant{Mode: DrawFlipped} }))
	set(ActEyePlantFloor, SprEyePlant, 0, 0, fStay, with(func() Behavior { return &EyePlant{Mode: DrawNormal} }))
	set(ActEyePlantCeil, SprEyePlant, 0, 1, fNone, with(func() Behavior { return &EyePlant{Mode: DrawFlipped} }))

	set(ActParachuteBall, SprParachuteBall, 0, 0, fLanding|fAcrophile, with(func() Behavior {
		return &ParachuteBall{Step: 20, Health: 2}
	}))
	set(ActBeamRobot, SprBeamRobot, 0, 0, fForce, with(func() Behavior { return &BeamRobot{} }))
	set(ActSplittingPlatform, SprSplittingPlatform, 0, 0, fForce, with(func() Behavior { return &SplittingPlatform{} }))
	set(ActSpark, SprSpark, 0, 0, fStay, with(func() Behavior { return &Spark{Dir: Dir4West} }))
	set(ActRedJumper, SprRedJumper, 0, 0, fStay, with(func() Behavior { return &RedJumper{Health: 7} }))
	set(ActBoss, SprBoss, 0, 0, fStay, with(func() Behavior { return &Boss{} }))
	set(ActSuctionWalker, SprSuctionWalker, 0, 0, fStay, with(func() Behavior { return &SuctionWalker{Dir: Dir2West} }))

	set(ActTransporter1, SprTransporter, 0, 0, fForce, transporter(2))
	set(ActTransporter2, SprTransporter, 0, 0, fForce, transporter(1))
	set(ActExitTransporter, SprTransporter, 0, 0, fForce, transporter(ExitTransporterID))

	set(ActSpitWallPlantW, SprSpitWallPlantW, -3, 0, fNone, with(func() Behavior { return &SpittingWallPlant{} }))
	set(ActSpitWallPlantE, SprSpitWallPlantE, 0, 0, fNone, with(func() Behavior { return &SpittingWallPlant{East: true} }))
	set(ActSpittingTurret, SprSpittingTurret, 0, 0, fStay, func(_ *World, x, _ int) Behavior {
		return &SpittingTurret{Timer: 10, HomeX: x, Health: 3}
	})
	set(ActScooter, SprScooter, 0, 0, fStay, with(func() Behavior { return &Scooter{} }))
	set(ActRedChomper, SprRedChomper, 0, 0, fLanding, with(func() Behavior { return &RedChomper{Dir: Dir2West} }))

	set(ActForceFieldVert, SprForceFieldVert, 0, 0, fForce, with(func() Behavior { return &ForceField{} }))
	set(ActForceFieldHoriz, SprForceFieldHoriz, 0, 0, fForce, with(func() Behavior { return &ForceField{Horizontal: true} }))

	set(ActPinkWorm, SprPinkWorm, 0, 0, fLanding, with(func() Behavior { return &PinkWorm{Dir: Dir2West} }))
	set(ActPinkWormSlime, SprPinkWormSlime, 0, 0, fWeighted, with(func() Behavior { return &PinkWormSlime{Delay: 3} }))
	set(ActPusherRobot, SprPusherRobot, 0, 0, fStay, with(func() Behavior { return &PusherRobot{Dir: Dir2West, Health: 4} }))
	set(ActSentryRobot, SprSentryRobot, 0, 0, fStay, with(func() Behavior { return &SentryRobot{Dir: Dir2West} }))
	set(ActDragonfly, SprDragonfly, 0, 0, fStay, with(func() Behavior { return &Dragonfly{Dir: Dir2West} }))
	set(ActWormCrate, SprWormCrate, 0, 0, fForce, func(w *World, _, _ int) Behavior {
		return &WormCrate{Fuse: w.GameRand()%20*5 + 50}
	})
	set(ActSatellite, SprSatellite, 0, 0, fNone, with(func() Behavior { return &Satellite{} }))
	set(ActIvyPlant, SprIvyPlant, 0, 7, fStay, with(func() Behavior { return &IvyPlant{Wait: 5, Rise: 7} }))
	set(ActExitMonsterW, SprExitMonsterW, -4, 0, fStay, with(func() Behavior { return &ExitMonsterW{} }))
	set(ActExitLineVert, SprExitLineVert, 0, 0, fForce, with(func() Behavior { return &ExitLine{Vertical: true} }))
	set(ActExitLineHoriz, SprExitLineHoriz, 0, 0, fForce, with(func() Behavior { return &ExitLine{} }))
	set(ActEpisode2EndLine, SprEpisode2EndLine, 0, 3, fForce, with(func() Behavior { return &ExitLine{EndsGame: true} }))
	set(ActSmallFlame, SprSmallFlame, 0, 0, fNone, with(func() Behavior { return SmallFlame{} }))
	set(ActBearTrap, SprBearTrap, 0, 0, fNone, with(func() Behavior { return &BearTrap{} }))
	set(ActFallingFloor, SprFallingFloor, 0, 0, fStay, with(func() Behavior { return &FallingFloor{} }))

	set(ActEpisode1End1, SprEpisode1End, 0, 0, fForce, episodeEnd(ActEpisode1End1))
	set(ActEpisode1End2, SprEpisode1End, 0, 0, fForce, episodeEnd(ActEpisode1End2))
	set(ActEpisode1End3, SprEpisode1End, 0, 0, fForce, episodeEnd(ActEpisode1End3))

	for i, s := range [...]Sprite{
		SprScoreEffect100, SprScoreEffect200, SprScoreEffect400, SprScoreEffect800,
		SprScoreEffect1600, SprScoreEffect3200, SprScoreEffect6400, SprScoreEffect12800,
	} {
		set(ActScoreEffect100+ActorKind(i), s, 0, 0, fStay, with(func() Behavior { return &ScoreEffect{} }))
	}

	set(ActExitPlant, SprExitPlant, 0, 0, fStay, with(func() Behavior { return &ExitPlant{Delay: 30} }))
	set(ActBird, SprBird, 0, 0, fStay, with(func() Behavior { return &Bird{Dir: Dir2West} }))
	set(ActRocket, SprRocket, 0, 0, fStay, with(func() Behavior { return &Rocket{Countdown: 60, Burn: 10} }))
	set(ActPedestalSmall, SprPedestal, 0, 0, fForce, pedestal(13))
	set(ActPedestalMedium, SprPedestal, 0, 0, fForce, pedestal(19))
	set(ActPedestalLarge, SprPedestal, 0, 0, fForce, pedestal(25))
	set(ActInvincibilityBubble, SprInvincibilityBubble, 0, 0, fNone, with(func() Behavior { return &InvincibilityBubble{} }))
	set(ActMonument, SprMonument, 0, 0, fNone, with(func() Behavior { return &Monument{} }))
	set(ActTulipLauncher, SprTulipLauncher, 0, 0, fNone, with(func() Behavior { return &TulipLauncher{Rest: 30} }))
	set(ActFrozenDuke, SprFrozenDuke, 0, 0, fNone, with(func() Behavior { return &FrozenDuke{} }))

	set(ActFlamePulseW, SprFlamePulseW, -1, 0, fNone, with(func() Behavior { return &FlamePulse{SmokeX: 1} }))
	set(ActFlamePulseE, SprFlamePulseE, 0, 0, fNone, with(func() Behavior { return &FlamePulse{} }))
	set(ActSmokeEmitSmall, SprSmokeEmitSmall, 0, 0, fNone, with(func() Behavior { return &SmokeEmitter{Small: true} }))
	set(ActSmokeEmitLarge, SprSmokeEmitLarge, 0, 0, fNone, with(func() Behavior { return &SmokeEmitter{} }))

	for k, s := range map[ActorKind]Sprite{
		ActSpeechOuch:   SprSpeechOuch,
		ActSpeechWhoa:   SprSpeechWhoa,
		ActSpeechUmph:   SprSpeechUmph,
		ActSpeechWow50K: SprSpeechWow50K,
	} {
		set(k, s, 0, 0, fForce, with(func() Behavior { return &SpeechBubble{} }))
	}

	for n, k := range hintGlobeKinds {
		set(k, SprHintGlobe, 0, 0, fNone, hintGlobe(n))
	}
}

// hintGlobeKinds lists the hint globe archetypes by hint number.
var hintGlobeKinds = [...]ActorKind{
	ActHintGlobe0, ActHintGlobe1, ActHintGlobe2, ActHintGlobe3, ActHintGlobe4,
	ActHintGlobe5, ActHintGlobe6, ActHintGlobe7, ActHintGlobe8, ActHintGlobe9,
	ActHintGlobe10, ActHintGlobe11, ActHintGlobe12, ActHintGlobe13, ActHintGlobe14,
	ActHintGlobe15, ActHintGlobe16, ActHintGlobe17, ActHintGlobe18, ActHintGlobe19,
	ActHintGlobe20, ActHintGlobe21, ActHintGlobe22, ActHintGlobe23, ActHintGlobe24,
	ActHintGlobe25,
}

// HintGlobeNumber returns the hint a globe archetype shows, or -1.
func HintGlobeNumber(k ActorKind) int {
	for n, g := range hintGlobeKinds {
		if g == k {
			return n
		}
	}
	return -1
}

// Sprite returns the sprite an archetype is drawn with.
func (k ActorKind) Sprite() Sprite {
	if !k.Valid() {
		return SprNone
	}
	return archetypes[k].sprite
}
