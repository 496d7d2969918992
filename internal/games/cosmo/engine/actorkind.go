package engine

import "fmt"

// ActorKind is an actor archetype. The numbering matches the actor type
// words stored in map files.
type ActorKind int

const (
	ActBasketNull ActorKind = iota
	ActStarFloat
	ActJumpPadFloor
	ActArrowPistonW
	ActArrowPistonE
	ActFireballW
	ActFireballE
	ActHeadSwitchBlue
	ActDoorBlue
	ActHeadSwitchRed
	ActDoorRed
	ActHeadSwitchGreen
	ActDoorGreen
	ActHeadSwitchYellow
	ActDoorYellow
	ActJumpPadRobot
	ActSpikesFloor
	ActSpikesFloorRecip
	ActSawBladeVert
	ActSawBladeHoriz
	ActBombArmed
	ActCabbage
	ActPowerUpFloat
	ActBarrelPowerUp
	ActBasketGrnTomato
	ActBasketRedTomato
	ActBarrelYelPear
	ActBarrelOnion
	ActBarrelJumpPadFloor
	ActGrnTomato
	ActRedTomato
	ActYelPear
	ActOnion
	ActExitSign
	ActSpear
	ActSpearRecip
	ActGrnSlimeThrob
	ActGrnSlimeDrip
	ActFlyingWisp
	ActTwoTonsCrusher
	ActJumpingBullet
	ActStoneHeadCrusher
	ActPyramidCeil
	ActPyramidFalling
	ActPyramidFloor
	ActGhost
	ActMoon
	ActHeartPlant
	ActBarrelBomb
	ActBombIdle
	ActSwitchPlatforms
	ActSwitchMysteryWall
	ActMysteryWall
	ActBabyGhost
	ActProjectileSw
	ActProjectileSe
	ActProjectileS
	ActRoamerSlug
	ActPipeCornerN
	ActPipeCornerS
	ActPipeCornerW
	ActPipeCornerE
	ActBabyGhostEggProx
	ActBabyGhostEgg
	ActSharpRobotFloor
	ActSharpRobotCeil
	ActBasketHamburger
	ActHamburger
	ActClamPlantFloor
	ActClamPlantCeil
	ActGrapes
	ActParachuteBall
	ActSpikesE
	ActSpikesERecip
	ActSpikesW
	ActBeamRobot
	ActSplittingPlatform
	ActSpark
	ActBasketDancingMushroom
	ActDancingMushroom
	ActEyePlantFloor
	ActEyePlantCeil
	ActBarrelCabbageHarder
	ActRedJumper
	ActBoss
	ActPipeOutlet
	ActPipeInlet
	ActSuctionWalker
	ActTransporter1
	ActTransporter2
	ActProjectileW
	ActProjectileE
	ActSpitWallPlantW
	ActSpitWallPlantE
	ActSpittingTurret
	ActScooter
	ActRedChomper
	ActSwitchLights
	ActSwitchForceField
	ActForceFieldVert
	ActForceFieldHoriz
	ActPinkWorm
	ActHintGlobe0
	ActPusherRobot
	ActSentryRobot
	ActPinkWormSlime
	ActDragonfly
	ActWormCrate
	ActBottleDrink
	ActGrnGourd
	ActBluSpheres
	ActPod
	ActPeaPile
	ActLumpyFruit
	ActHorn
	ActRedBerries
	ActBarrelBottleDrink
	ActBasketGrnGourd
	ActBasketBluSpheres
	ActBasketPod
	ActBasketPeaPile
	ActBasketLumpyFruit
	ActBarrelHorn
	ActSatellite
	ActIvyPlant
	ActYelFruitVine
	ActHeaddress
	ActBasketHeaddress
	ActExitMonsterW
	ActExitLineVert
	ActSmallFlame
	ActRotatingOrnament
	ActBluCrystal
	ActRedCrystalFloor
	ActBarrelRotatingOrnament
	ActBarrelBluCrystal
	ActBarrelRedCrystal
	ActGrnTomatoFloat
	ActRedTomatoFloat
	ActYelPearFloat
	ActBearTrap
	ActFallingFloor
	ActEpisode1End1
	ActEpisode1End2
	ActEpisode1End3
	ActRoot
	ActBasketRoot
	ActRedGrnBerries
	ActBasketRedGrnBerries
	ActRedGourd
	ActBasketRedGourd
	ActGrnEmerald
	ActBarrelGrnEmerald
	ActClrDiamond
	ActBarrelClrDiamond
	ActScoreEffect100
	ActScoreEffect200
	ActScoreEffect400
	ActScoreEffect800
	ActScoreEffect1600
	ActScoreEffect3200
	ActScoreEffect6400
	ActScoreEffect12800
	ActExitPlant
	ActBird
	ActRocket
	ActInvincibilityCube
	ActPedestalSmall
	ActPedestalMedium
	ActPedestalLarge
	ActInvincibilityBubble
	ActBarrelCyaDiamond
	ActCyaDiamond
	ActBarrelRedDiamond
	ActRedDiamond
	ActBarrelGryOctahedron
	ActGryOctahedron
	ActBarrelBluEmerald
	ActBluEmerald
	ActThrusterJet
	ActExitTransporter
	ActHintGlobe1
	ActHintGlobe2
	ActHintGlobe3
	ActHintGlobe4
	ActHintGlobe5
	ActHintGlobe6
	ActHintGlobe7
	ActHintGlobe8
	ActHintGlobe9
	ActSpikesFloorBent
	ActMonument
	ActCyaDiamondFloat
	ActRedDiamondFloat
	ActGryOctahedronFloat
	ActBluEmeraldFloat
	ActTulipLauncher
	ActJumpPadCeil
	ActBarrelHeadphones
	ActHeadphonesFloat
	ActHeadphones
	ActFrozenDuke
	ActBananas
	ActBasketRedLeafy
	ActRedLeafyFloat
	ActRedLeafy
	ActBasketBrnPear
	ActBrnPearFloat
	ActBrnPear
	ActBasketCandyCorn
	ActCandyCornFloat
	ActCandyCorn
	ActFlamePulseW
	ActFlamePulseE
	ActRedSlimeThrob
	ActRedSlimeDrip
	ActHintGlobe10
	ActHintGlobe11
	ActHintGlobe12
	ActHintGlobe13
	ActHintGlobe14
	ActHintGlobe15
	ActSpeechOuch
	ActSpeechWhoa
	ActSpeechUmph
	ActSpeechWow50K
	ActExitMonsterN
	ActSmokeEmitSmall
	ActSmokeEmitLarge
	ActExitLineHoriz
	ActCabbageHarder
	ActRedCrystalCeil
	ActHintGlobe16
	ActHintGlobe17
	ActHintGlobe18
	ActHintGlobe19
	ActHintGlobe20
	ActHintGlobe21
	ActHintGlobe22
	ActHintGlobe23
	ActHintGlobe24
	ActHintGlobe25
	ActPowerUp
	ActStar
	ActEpisode2EndLine

	actorKindCount
)

var actorKindNames = [actorKindCount]string{
	ActBasketNull:             "basket-null",
	ActStarFloat:              "star-float",
	ActJumpPadFloor:           "jump-pad-floor",
	ActArrowPistonW:           "arrow-piston-w",
	ActArrowPistonE:           "arrow-piston-e",
	ActFireballW:              "fireball-w",
	ActFireballE:              "fireball-e",
	ActHeadSwitchBlue:         "head-switch-blue",
	ActDoorBlue:               "door-blue",
	ActHeadSwitchRed:          "head-switch-red",
	ActDoorRed:                "door-red",
	ActHeadSwitchGreen:        "head-switch-green",
	ActDoorGreen:              "door-green",
	ActHeadSwitchYellow:       "head-switch-yellow",
	ActDoorYellow:             "door-yellow",
	ActJumpPadRobot:           "jump-pad-robot",
	ActSpikesFloor:            "spikes-floor",
	ActSpikesFloorRecip:       "spikes-floor-recip",
	ActSawBladeVert:           "saw-blade-vert",
	ActSawBladeHoriz:          "saw-blade-horiz",
	ActBombArmed:              "bomb-armed",
	ActCabbage:                "cabbage",
	ActPowerUpFloat:           "power-up-float",
	ActBarrelPowerUp:          "barrel-power-up",
	ActBasketGrnTomato:        "basket-grn-tomato",
	ActBasketRedTomato:        "basket-red-tomato",
	ActBarrelYelPear:          "barrel-yel-pear",
	ActBarrelOnion:            "barrel-onion",
	ActBarrelJumpPadFloor:     "barrel-jump-pad-fl",
	ActGrnTomato:              "grn-tomato",
	ActRedTomato:              "red-tomato",
	ActYelPear:                "yel-pear",
	ActOnion:                  "onion",
	ActExitSign:               "exit-sign",
	ActSpear:                  "spear",
	ActSpearRecip:             "spear-recip",
	ActGrnSlimeThrob:          "grn-slime-throb",
	ActGrnSlimeDrip:           "grn-slime-drip",
	ActFlyingWisp:             "flying-wisp",
	ActTwoTonsCrusher:         "two-tons-crusher",
	ActJumpingBullet:          "jumping-bullet",
	ActStoneHeadCrusher:       "stone-head-crusher",
	ActPyramidCeil:            "pyramid-ceil",
	ActPyramidFalling:         "pyramid-falling",
	ActPyramidFloor:           "pyramid-floor",
	ActGhost:                  "ghost",
	ActMoon:                   "moon",
	ActHeartPlant:             "heart-plant",
	ActBarrelBomb:             "barrel-bomb",
	ActBombIdle:               "bomb-idle",
	ActSwitchPlatforms:        "switch-platforms",
	ActSwitchMysteryWall:      "switch-mystery-wall",
	ActMysteryWall:            "mystery-wall",
	ActBabyGhost:              "baby-ghost",
	ActProjectileSw:           "projectile-sw",
	ActProjectileSe:           "projectile-se",
	ActProjectileS:            "projectile-s",
	ActRoamerSlug:             "roamer-slug",
	ActPipeCornerN:            "pipe-corner-n",
	ActPipeCornerS:            "pipe-corner-s",
	ActPipeCornerW:            "pipe-corner-w",
	ActPipeCornerE:            "pipe-corner-e",
	ActBabyGhostEggProx:       "baby-ghost-egg-prox",
	ActBabyGhostEgg:           "baby-ghost-egg",
	ActSharpRobotFloor:        "sharp-robot-floor",
	ActSharpRobotCeil:         "sharp-robot-ceil",
	ActBasketHamburger:        "basket-hamburger",
	ActHamburger:              "hamburger",
	ActClamPlantFloor:         "clam-plant-floor",
	ActClamPlantCeil:          "clam-plant-ceil",
	ActGrapes:                 "grapes",
	ActParachuteBall:          "parachute-ball",
	ActSpikesE:                "spikes-e",
	ActSpikesERecip:           "spikes-e-recip",
	ActSpikesW:                "spikes-w",
	ActBeamRobot:              "beam-robot",
	ActSplittingPlatform:      "splitting-platform",
	ActSpark:                  "spark",
	ActBasketDancingMushroom:  "basket-dance-mush",
	ActDancingMushroom:        "dancing-mushroom",
	ActEyePlantFloor:          "eye-plant-floor",
	ActEyePlantCeil:           "eye-plant-ceil",
	ActBarrelCabbageHarder:    "barrel-cabb-harder",
	ActRedJumper:              "red-jumper",
	ActBoss:                   "boss",
	ActPipeOutlet:             "pipe-outlet",
	ActPipeInlet:              "pipe-inlet",
	ActSuctionWalker:          "suction-walker",
	ActTransporter1:           "transporter-1",
	ActTransporter2:           "transporter-2",
	ActProjectileW:            "projectile-w",
	ActProjectileE:            "projectile-e",
	ActSpitWallPlantW:         "spit-wall-plant-w",
	ActSpitWallPlantE:         "spit-wall-plant-e",
	ActSpittingTurret:         "spitting-turret",
	ActScooter:                "scooter",
	ActRedChomper:             "red-chomper",
	ActSwitchLights:           "switch-lights",
	ActSwitchForceField:       "switch-force-field",
	ActForceFieldVert:         "force-field-vert",
	ActForceFieldHoriz:        "force-field-horiz",
	ActPinkWorm:               "pink-worm",
	ActHintGlobe0:             "hint-globe-0",
	ActPusherRobot:            "pusher-robot",
	ActSentryRobot:            "sentry-robot",
	ActPinkWormSlime:          "pink-worm-slime",
	ActDragonfly:              "dragonfly",
	ActWormCrate:              "worm-crate",
	ActBottleDrink:            "bottle-drink",
	ActGrnGourd:               "grn-gourd",
	ActBluSpheres:             "blu-spheres",
	ActPod:                    "pod",
	ActPeaPile:                "pea-pile",
	ActLumpyFruit:             "lumpy-fruit",
	ActHorn:                   "horn",
	ActRedBerries:             "red-berries",
	ActBarrelBottleDrink:      "barrel-botl-drink",
	ActBasketGrnGourd:         "basket-grn-gourd",
	ActBasketBluSpheres:       "basket-blu-spheres",
	ActBasketPod:              "basket-pod",
	ActBasketPeaPile:          "basket-pea-pile",
	ActBasketLumpyFruit:       "basket-lumpy-fruit",
	ActBarrelHorn:             "barrel-horn",
	ActSatellite:              "satellite",
	ActIvyPlant:               "ivy-plant",
	ActYelFruitVine:           "yel-fruit-vine",
	ActHeaddress:              "headdress",
	ActBasketHeaddress:        "basket-headdress",
	ActExitMonsterW:           "exit-monster-w",
	ActExitLineVert:           "exit-line-vert",
	ActSmallFlame:             "small-flame",
	ActRotatingOrnament:       "rotating-ornament",
	ActBluCrystal:             "blu-crystal",
	ActRedCrystalFloor:        "red-crystal-floor",
	ActBarrelRotatingOrnament: "barrel-rt-ornament",
	ActBarrelBluCrystal:       "barrel-blu-crystal",
	ActBarrelRedCrystal:       "barrel-red-crystal",
	ActGrnTomatoFloat:         "grn-tomato-float",
	ActRedTomatoFloat:         "red-tomato-float",
	ActYelPearFloat:           "yel-pear-float",
	ActBearTrap:               "bear-trap",
	ActFallingFloor:           "falling-floor",
	ActEpisode1End1:           "ep1-end-1",
	ActEpisode1End2:           "ep1-end-2",
	ActEpisode1End3:           "ep1-end-3",
	ActRoot:                   "root",
	ActBasketRoot:             "basket-root",
	ActRedGrnBerries:          "redgrn-berries",
	ActBasketRedGrnBerries:    "basket-rg-berries",
	ActRedGourd:               "red-gourd",
	ActBasketRedGourd:         "basket-red-gourd",
	ActGrnEmerald:             "grn-emerald",
	ActBarrelGrnEmerald:       "barrel-grn-emerald",
	ActClrDiamond:             "clr-diamond",
	ActBarrelClrDiamond:       "barrel-clr-diamond",
	ActScoreEffect100:         "score-effect-100",
	ActScoreEffect200:         "score-effect-200",
	ActScoreEffect400:         "score-effect-400",
	ActScoreEffect800:         "score-effect-800",
	ActScoreEffect1600:        "score-effect-1600",
	ActScoreEffect3200:        "score-effect-3200",
	ActScoreEffect6400:        "score-effect-6400",
	ActScoreEffect12800:       "score-effect-12800",
	ActExitPlant:              "exit-plant",
	ActBird:                   "bird",
	ActRocket:                 "rocket",
	ActInvincibilityCube:      "invincibility-cube",
	ActPedestalSmall:          "pedestal-small",
	ActPedestalMedium:         "pedestal-medium",
	ActPedestalLarge:          "pedestal-large",
	ActInvincibilityBubble:    "invincibility-bubb",
	ActBarrelCyaDiamond:       "barrel-cya-diamond",
	ActCyaDiamond:             "cya-diamond",
	ActBarrelRedDiamond:       "barrel-red-diamond",
	ActRedDiamond:             "red-diamond",
	ActBarrelGryOctahedron:    "barrel-gry-octahed",
	ActGryOctahedron:          "gry-octahedron",
	ActBarrelBluEmerald:       "barrel-blu-emerald",
	ActBluEmerald:             "blu-emerald",
	ActThrusterJet:            "thruster-jet",
	ActExitTransporter:        "exit-transporter",
	ActHintGlobe1:             "hint-globe-1",
	ActHintGlobe2:             "hint-globe-2",
	ActHintGlobe3:             "hint-globe-3",
	ActHintGlobe4:             "hint-globe-4",
	ActHintGlobe5:             "hint-globe-5",
	ActHintGlobe6:             "hint-globe-6",
	ActHintGlobe7:             "hint-globe-7",
	ActHintGlobe8:             "hint-globe-8",
	ActHintGlobe9:             "hint-globe-9",
	ActSpikesFloorBent:        "spikes-floor-bent",
	ActMonument:               "monument",
	ActCyaDiamondFloat:        "cya-diamond-float",
	ActRedDiamondFloat:        "red-diamond-float",
	ActGryOctahedronFloat:     "gry-octahed-float",
	ActBluEmeraldFloat:        "blu-emerald-float",
	ActTulipLauncher:          "tulip-launcher",
	ActJumpPadCeil:            "jump-pad-ceil",
	ActBarrelHeadphones:       "barrel-headphones",
	ActHeadphonesFloat:        "headphones-float",
	ActHeadphones:             "headphones",
	ActFrozenDuke:             "frozen-dn",
	ActBananas:                "bananas",
	ActBasketRedLeafy:         "basket-red-leafy",
	ActRedLeafyFloat:          "red-leafy-float",
	ActRedLeafy:               "red-leafy",
	ActBasketBrnPear:          "basket-brn-pear",
	ActBrnPearFloat:           "brn-pear-float",
	ActBrnPear:                "brn-pear",
	ActBasketCandyCorn:        "basket-candy-corn",
	ActCandyCornFloat:         "candy-corn-float",
	ActCandyCorn:              "candy-corn",
	ActFlamePulseW:            "flame-pulse-w",
	ActFlamePulseE:            "flame-pulse-e",
	ActRedSlimeThrob:          "red-slime-throb",
	ActRedSlimeDrip:           "red-slime-drip",
	ActHintGlobe10:            "hint-globe-10",
	ActHintGlobe11:            "hint-globe-11",
	ActHintGlobe12:            "hint-globe-12",
	ActHintGlobe13:            "hint-globe-13",
	ActHintGlobe14:            "hint-globe-14",
	ActHintGlobe15:            "hint-globe-15",
	ActSpeechOuch:             "speech-ouch",
	ActSpeechWhoa:             "speech-whoa",
	ActSpeechUmph:             "speech-umph",
	ActSpeechWow50K:           "speech-wow-50k",
	ActExitMonsterN:           "exit-monster-n",
	ActSmokeEmitSmall:         "smoke-emit-small",
	ActSmokeEmitLarge:         "smoke-emit-large",
	ActExitLineHoriz:          "exit-line-horiz",
	ActCabbageHarder:          "cabbage-harder",
	ActRedCrystalCeil:         "red-crystal-ceil",
	ActHintGlobe16:            "hint-globe-16",
	ActHintGlobe17:            "hint-globe-17",
	ActHintGlobe18:            "hint-globe-18",
	ActHintGlobe19:            "hint-globe-19",
	ActHintGlobe20:            "hint-globe-20",
	ActHintGlobe21:            "hint-globe-21",
	ActHintGlobe22:            "hint-globe-22",
	ActHintGlobe23:            "hint-globe-23",
	ActHintGlobe24:            "hint-globe-24",
	ActHintGlobe25:            "hint-globe-25",
	ActPowerUp:                "power-up",
	ActStar:                   "star",
	ActEpisode2EndLine:        "ep2-end-line",
}

func (k ActorKind) String() string {
	if k < 0 || k >= actorKindCount {
		return fmt.Sprintf("actor(%d)", int(k))
	}
	return actorKindNames[k]
}

// ActorKindByName resolves an archetype from its level-file name.
func ActorKindByName(name string) (ActorKind, bool) {
	for i, n := range actorKindNames {
		if n == name {
			return ActorKind(i), true
		}
	}
	return 0, false
}

// Valid reports whether k names a known archetype.
func (k ActorKind) Valid() bool {
	return k >= 0 && k < actorKindCount
}
