package engine

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sprite identifies a graphic (and its per-frame bounding boxes).
type Sprite int

const (
	SprNone Sprite = iota
	SprArrowPistonE
	SprArrowPistonW
	SprBabyGhost
	SprBabyGhostEgg
	SprBananas
	SprBarrel
	SprBarrelShards
	SprBasket
	SprBasketShards
	SprBeamRobot
	SprBearTrap
	SprBabyGhostEggShard1
	SprBabyGhostEggShard2
	SprBabyGhostEggShard3
	SprBabyGhostEggShard4
	SprBird
	SprBluCrystal
	SprBluEmerald
	SprBluSpheres
	SprBombArmed
	SprBombIdle
	SprBoss
	SprBottleDrink
	SprBrnPear
	SprCabbage
	SprCandyCorn
	SprClamPlant
	SprClrDiamond
	SprCyaDiamond
	SprDancingMushroom
	SprDemoOverlay
	SprDoorBlue
	SprDoorGreen
	SprDoorRed
	SprDoorYellow
	SprDragonfly
	SprEpisode1End
	SprEpisode2EndLine
	SprExitLineHoriz
	SprExitLineVert
	SprExitMonsterN
	SprExitMonsterW
	SprExitPlant
	SprExitSign
	SprExplosion
	SprEyePlant
	SprFallingFloor
	SprFireball
	SprFlamePulseE
	SprFlamePulseW
	SprFlyingWisp
	SprFootSwitch
	SprForceFieldHoriz
	SprForceFieldVert
	SprFountain
	SprFrozenDuke
	SprGhost
	SprGrapes
	SprGreenSlime
	SprGrnEmerald
	SprGrnGourd
	SprGrnTomato
	SprGryOctahedron
	SprHamburger
	SprHeaddress
	SprHeadphones
	SprHeadSwitchBlue
	SprHeadSwitchGreen
	SprHeadSwitchRed
	SprHeadSwitchYellow
	SprHeartPlant
	SprHintGlobe
	SprHorn
	SprInvincibilityBubble
	SprInvincibilityCube
	SprIvyPlant
	SprJumpingBullet
	SprJumpPad
	SprJumpPadRobot
	SprLumpyFruit
	SprMonument
	SprMoon
	SprMysteryWall
	SprOnion
	SprParachuteBall
	SprPeaPile
	SprPedestal
	SprPinkWorm
	SprPinkWormSlime
	SprPipeCornerE
	SprPipeCornerN
	SprPipeCornerS
	SprPipeCornerW
	SprPipeEnd
	SprPod
	SprPounceDebris
	SprPowerUp
	SprProjectile
	SprPusherRobot
	SprPyramid
	SprRaindrop
	SprRedGrnBerries
	SprRedBerries
	SprRedChomper
	SprRedCrystal
	SprRedDiamond
	SprRedGourd
	SprRedJumper
	SprRedLeafy
	SprRedSlime
	SprRedTomato
	SprRoamerSlug
	SprRocket
	SprRoot
	SprRotatingOrnament
	SprSatellite
	SprSatelliteShards
	SprSawBlade
	SprScooter
	SprScooterExhaust
	SprScoreEffect100
	SprScoreEffect200
	SprScoreEffect400
	SprScoreEffect800
	SprScoreEffect1600
	SprScoreEffect3200
	SprScoreEffect6400
	SprScoreEffect12800
	SprSentryRobot
	SprSharpRobotCeil
	SprSharpRobotFloor
	SprSmallFlame
	SprSmoke
	SprSmokeEmitLarge
	SprSmokeEmitSmall
	SprSmokeLarge
	SprSpark
	SprSparkleLong
	SprSparkleShort
	SprSparkleSlippery
	SprSpear
	SprSpeechMulti
	SprSpeechOuch
	SprSpeechUmph
	SprSpeechWhoa
	SprSpeechWow50K
	SprSpikesE
	SprSpikesERecip
	SprSpikesFloor
	SprSpikesFloorBent
	SprSpikesFloorRecip
	SprSpikesW
	SprSpittingTurret
	SprSpitWallPlantE
	SprSpitWallPlantW
	SprSplittingPlatform
	SprStar
	SprStoneHeadCrusher
	SprSuctionWalker
	SprThrusterJet
	SprTransporterGlow
	SprTransporter
	SprTulipLauncher
	SprTwoTonsCrusher
	SprWormCrate
	SprWormCrateShards
	SprYelFruitVine
	SprYelPear

	spriteCount
)

var spriteNames = [spriteCount]string{
	SprNone:                "none",
	SprArrowPistonE:        "arrow-piston-e",
	SprArrowPistonW:        "arrow-piston-w",
	SprBabyGhost:           "baby-ghost",
	SprBabyGhostEgg:        "baby-ghost-egg",
	SprBananas:             "bananas",
	SprBarrel:              "barrel",
	SprBarrelShards:        "barrel-shards",
	SprBasket:              "basket",
	SprBasketShards:        "basket-shards",
	SprBeamRobot:           "beam-robot",
	SprBearTrap:            "bear-trap",
	SprBabyGhostEggShard1:  "baby-ghost-egg-shard-1",
	SprBabyGhostEggShard2:  "baby-ghost-egg-shard-2",
	SprBabyGhostEggShard3:  "baby-ghost-egg-shard-3",
	SprBabyGhostEggShard4:  "baby-ghost-egg-shard-4",
	SprBird:                "bird",
	SprBluCrystal:          "blu-crystal",
	SprBluEmerald:          "blu-emerald",
	SprBluSpheres:          "blu-spheres",
	SprBombArmed:           "bomb-armed",
	SprBombIdle:            "bomb-idle",
	SprBoss:                "boss",
	SprBottleDrink:         "bottle-drink",
	SprBrnPear:             "brn-pear",
	SprCabbage:             "cabbage",
	SprCandyCorn:           "candy-corn",
	SprClamPlant:           "clam-plant",
	SprClrDiamond:          "clr-diamond",
	SprCyaDiamond:          "cya-diamond",
	SprDancingMushroom:     "dancing-mushroom",
	SprDemoOverlay:         "demo-overlay",
	SprDoorBlue:            "door-blue",
	SprDoorGreen:           "door-green",
	SprDoorRed:             "door-red",
	SprDoorYellow:          "door-yellow",
	SprDragonfly:           "dragonfly",
	SprEpisode1End:         "episode1-end",
	SprEpisode2EndLine:     "episode2-end-line",
	SprExitLineHoriz:       "exit-line-horiz",
	SprExitLineVert:        "exit-line-vert",
	SprExitMonsterN:        "exit-monster-n",
	SprExitMonsterW:        "exit-monster-w",
	SprExitPlant:           "exit-plant",
	SprExitSign:            "exit-sign",
	SprExplosion:           "explosion",
	SprEyePlant:            "eye-plant",
	SprFallingFloor:        "falling-floor",
	SprFireball:            "fireball",
	SprFlamePulseE:         "flame-pulse-e",
	SprFlamePulseW:         "flame-pulse-w",
	SprFlyingWisp:          "flying-wisp",
	SprFootSwitch:          "foot-switch",
	SprForceFieldHoriz:     "force-field-horiz",
	SprForceFieldVert:      "force-field-vert",
	SprFountain:            "fountain",
	SprFrozenDuke:          "frozen-duke",
	SprGhost:               "ghost",
	SprGrapes:              "grapes",
	SprGreenSlime:          "green-slime",
	SprGrnEmerald:          "grn-emerald",
	SprGrnGourd:            "grn-gourd",
	SprGrnTomato:           "grn-tomato",
	SprGryOctahedron:       "gry-octahedron",
	SprHamburger:           "hamburger",
	SprHeaddress:           "headdress",
	SprHeadphones:          "headphones",
	SprHeadSwitchBlue:      "head-switch-blue",
	SprHeadSwitchGreen:     "head-switch-green",
	SprHeadSwitchRed:       "head-switch-red",
	SprHeadSwitchYellow:    "head-switch-yellow",
	SprHeartPlant:          "heart-plant",
	SprHintGlobe:           "hint-globe",
	SprHorn:                "horn",
	SprInvincibilityBubble: "invincibility-bubble",
	SprInvincibilityCube:   "invincibility-cube",
	SprIvyPlant:            "ivy-plant",
	SprJumpingBullet:       "jumping-bullet",
	SprJumpPad:             "jump-pad",
	SprJumpPadRobot:        "jump-pad-robot",
	SprLumpyFruit:          "lumpy-fruit",
	SprMonument:            "monument",
	SprMoon:                "moon",
	SprMysteryWall:         "mystery-wall",
	SprOnion:               "onion",
	SprParachuteBall:       "parachute-ball",
	SprPeaPile:             "pea-pile",
	SprPedestal:            "pedestal",
	SprPinkWorm:            "pink-worm",
	SprPinkWormSlime:       "pink-worm-slime",
	SprPipeCornerE:         "pipe-corner-e",
	SprPipeCornerN:         "pipe-corner-n",
	SprPipeCornerS:         "pipe-corner-s",
	SprPipeCornerW:         "pipe-corner-w",
	SprPipeEnd:             "pipe-end",
	SprPod:                 "pod",
	SprPounceDebris:        "pounce-debris",
	SprPowerUp:             "power-up",
	SprProjectile:          "projectile",
	SprPusherRobot:         "pusher-robot",
	SprPyramid:             "pyramid",
	SprRaindrop:            "raindrop",
	SprRedGrnBerries:       "red-grn-berries",
	SprRedBerries:          "red-berries",
	SprRedChomper:          "red-chomper",
	SprRedCrystal:          "red-crystal",
	SprRedDiamond:          "red-diamond",
	SprRedGourd:            "red-gourd",
	SprRedJumper:           "red-jumper",
	SprRedLeafy:            "red-leafy",
	SprRedSlime:            "red-slime",
	SprRedTomato:           "red-tomato",
	SprRoamerSlug:          "roamer-slug",
	SprRocket:              "rocket",
	SprRoot:                "root",
	SprRotatingOrnament:    "rotating-ornament",
	SprSatellite:           "satellite",
	SprSatelliteShards:     "satellite-shards",
	SprSawBlade:            "saw-blade",
	SprScooter:             "scooter",
	SprScooterExhaust:      "scooter-exhaust",
	SprScoreEffect100:      "score-effect-100",
	SprScoreEffect200:      "score-effect-200",
	SprScoreEffect400:      "score-effect-400",
	SprScoreEffect800:      "score-effect-800",
	SprScoreEffect1600:     "score-effect-1600",
	SprScoreEffect3200:     "score-effect-3200",
	SprScoreEffect6400:     "score-effect-6400",
	SprScoreEffect12800:    "score-effect-12800",
	SprSentryRobot:         "sentry-robot",
	SprSharpRobotCeil:      "sharp-robot-ceil",
	SprSharpRobotFloor:     "sharp-robot-floor",
	SprSmallFlame:          "small-flame",
	SprSmoke:               "smoke",
	SprSmokeEmitLarge:      "smoke-emit-large",
	SprSmokeEmitSmall:      "smoke-emit-small",
	SprSmokeLarge:          "smoke-large",
	SprSpark:               "spark",
	SprSparkleLong:         "sparkle-long",
	SprSparkleShort:        "sparkle-short",
	SprSparkleSlippery:     "sparkle-slippery",
	SprSpear:               "spear",
	SprSpeechMulti:         "speech-multi",
	SprSpeechOuch:          "speech-ouch",
	SprSpeechUmph:          "speech-umph",
	SprSpeechWhoa:          "speech-whoa",
	SprSpeechWow50K:        "speech-wow-50k",
	SprSpikesE:             "spikes-e",
	SprSpikesERecip:        "spikes-e-recip",
	SprSpikesFloor:         "spikes-floor",
	SprSpikesFloorBent:     "spikes-floor-bent",
	SprSpikesFloorRecip:    "spikes-floor-recip",
	SprSpikesW:             "spikes-w",
	SprSpittingTurret:      "spitting-turret",
	SprSpitWallPlantE:      "spit-wall-plant-e",
	SprSpitWallPlantW:      "spit-wall-plant-w",
	SprSplittingPlatform:   "splitting-platform",
	SprStar:                "star",
	SprStoneHeadCrusher:    "stone-head-crusher",
	SprSuctionWalker:       "suction-walker",
	SprThrusterJet:         "thruster-jet",
	SprTransporterGlow:     "transporter-glow",
	SprTransporter:         "transporter",
	SprTulipLauncher:       "tulip-launcher",
	SprTwoTonsCrusher:      "two-tons-crusher",
	SprWormCrate:           "worm-crate",
	SprWormCrateShards:     "worm-crate-shards",
	SprYelFruitVine:        "yel-fruit-vine",
	SprYelPear:             "yel-pear",
}

func (s Sprite) String() string {
	if s < 0 || s >= spriteCount {
		return fmt.Sprintf("sprite(%d)", int(s))
	}
	return spriteNames[s]
}

// SpriteByName resolves a sprite from its table name.
func SpriteByName(name string) (Sprite, bool) {
	for i, n := range spriteNames {
		if n == name {
			return Sprite(i), true
		}
	}
	return SprNone, false
}

// Size is a bounding box in tiles.
type Size struct {
	W int
	H int
}

type spriteInfo struct {
	frames   int
	base     Size
	perFrame map[int]Size
}

// SpriteTable maps (sprite, frame) to its bounding box. Frames without an
// explicit entry share the sprite's base size.
type SpriteTable struct {
	info [spriteCount]spriteInfo
}

// NewSpriteTable returns a table where every sprite is 1x1.
func NewSpriteTable() *SpriteTable {
	t := &SpriteTable{}
	for i := range t.info {
		t.info[i] = spriteInfo{frames: 1, base: Size{W: 1, H: 1}}
	}
	return t
}

// Set overrides the bounding box of a single frame.
func (t *SpriteTable) Set(s Sprite, frame, w, h int) {
	if s < 0 || s >= spriteCount {
		return
	}
	inf := &t.info[s]
	if frame == 0 {
		inf.base = Size{W: w, H: h}
		return
	}
	if inf.perFrame == nil {
		inf.perFrame = make(map[int]Size)
	}
	inf.perFrame[frame] = Size{W: w, H: h}
	if frame >= inf.frames {
		inf.frames = frame + 1
	}
}

// Size returns the width and height of a sprite frame.
func (t *SpriteTable) Size(s Sprite, frame int) (w, h int) {
	if s < 0 || s >= spriteCount {
		return 1, 1
	}
	inf := &t.info[s]
	if sz, ok := inf.perFrame[frame]; ok {
		return sz.W, sz.H
	}
	return inf.base.W, inf.base.H
}

// Frames returns the number of animation frames a sprite has.
func (t *SpriteTable) Frames(s Sprite) int {
	if s < 0 || s >= spriteCount {
		return 0
	}
	return t.info[s].frames
}

//go:embed sprites.yaml
var defaultSpritesYAML []byte

type spriteFile struct {
	Sprites map[string]struct {
		Frames int            `yaml:"frames"`
		Size   [2]int         `yaml:"size"`
		Frame  map[int][2]int `yaml:"frame"`
	} `yaml:"sprites"`
}

// LoadSpriteTable parses a YAML sprite table.
func LoadSpriteTable(data []byte) (*SpriteTable, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("engine: parse sprite table: %w", err)
	}

	t := NewSpriteTable()
	for name, entry := range f.Sprites {
		s, ok := SpriteByName(name)
		if !ok {
			return nil, fmt.Errorf("engine: sprite table: unknown sprite %q", name)
		}
		if entry.Size[0] <= 0 || entry.Size[1] <= 0 {
			return nil, fmt.Errorf("engine: sprite table: %q has empty size", name)
		}
		t.info[s].base = Size{W: entry.Size[0], H: entry.Size[1]}
		t.info[s].frames = max(entry.Frames, 1)
		for frame, sz := range entry.Frame {
			t.Set(s, frame, sz[0], sz[1])
		}
	}

	return t, nil
}

// DefaultSpriteTable returns the built-in sprite table.
func DefaultSpriteTable() *SpriteTable {
	t, err := LoadSpriteTable(defaultSpritesYAML)
	if err != nil {
		panic(err)
	}
	return t
}
