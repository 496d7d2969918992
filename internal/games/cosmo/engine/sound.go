package engine

// Sound identifies a sound effect. Playback is the audio collaborator's
// business; the engine only names what should be heard.
type Sound int

const (
	SndNone Sound = iota
	SndBabyGhostJump
	SndBabyGhostLand
	SndBarrelDestroy1
	SndBarrelDestroy2
	SndBearTrapClose
	SndBghostEggCrack
	SndBghostEggHatch
	SndBigObjectHit
	SndBigPrize
	SndBonusStage
	SndBossDamage
	SndBossLaunch
	SndBossMove
	SndDestroySatellite
	SndDestroySolid
	SndDoorUnlock
	SndDrip
	SndExitMonsterIngest
	SndExitMonsterOpen
	SndExplosion
	SndFireballLaunch
	SndFlamePulse
	SndFootSwitchMove
	SndFootSwitchOn
	SndHintDialogAlert
	SndIvyPlantRise
	SndJumpPadRobot
	SndNewGame
	SndNoBombs
	SndObjectHit
	SndPauseGame
	SndPipeCornerHit
	SndPlaceBomb
	SndPlantMouthOpen
	SndPlayerCling
	SndPlayerDeath
	SndPlayerFootstep
	SndPlayerHitHead
	SndPlayerHurt
	SndPlayerJump
	SndPlayerLand
	SndPlayerPounce
	SndPrize
	SndProjectileLaunch
	SndPushPlayer
	SndRedJumperJump
	SndRedJumperLand
	SndRoamerGift
	SndRocketBurn
	SndSawBladeMove
	SndScooterPutt
	SndShardBounce
	SndSmash
	SndSpeechBubble
	SndSpikesMove
	SndTextTypewriter
	SndThunder
	SndTransporterOn
	SndTulipIngest
	SndTulipLaunch
	SndWinLevel

	soundCount
)

var soundNames = [soundCount]string{
	SndNone:              "none",
	SndBabyGhostJump:     "baby-ghost-jump",
	SndBabyGhostLand:     "baby-ghost-land",
	SndBarrelDestroy1:    "barrel-destroy-1",
	SndBarrelDestroy2:    "barrel-destroy-2",
	SndBearTrapClose:     "bear-trap-close",
	SndBghostEggCrack:    "bghost-egg-crack",
	SndBghostEggHatch:    "bghost-egg-hatch",
	SndBigObjectHit:      "big-object-hit",
	SndBigPrize:          "big-prize",
	SndBonusStage:        "bonus-stage",
	SndBossDamage:        "boss-damage",
	SndBossLaunch:        "boss-launch",
	SndBossMove:          "boss-move",
	SndDestroySatellite:  "destroy-satellite",
	SndDestroySolid:      "destroy-solid",
	SndDoorUnlock:        "door-unlock",
	SndDrip:              "drip",
	SndExitMonsterIngest: "exit-monster-ingest",
	SndExitMonsterOpen:   "exit-monster-open",
	SndExplosion:         "explosion",
	SndFireballLaunch:    "fireball-launch",
	SndFlamePulse:        "flame-pulse",
	SndFootSwitchMove:    "foot-switch-move",
	SndFootSwitchOn:      "foot-switch-on",
	SndHintDialogAlert:   "hint-dialog-alert",
	SndIvyPlantRise:      "ivy-plant-rise",
	SndJumpPadRobot:      "jump-pad-robot",
	SndNewGame:           "new-game",
	SndNoBombs:           "no-bombs",
	SndObjectHit:         "object-hit",
	SndPauseGame:         "pause-game",
	SndPipeCornerHit:     "pipe-corner-hit",
	SndPlaceBomb:         "place-bomb",
	SndPlantMouthOpen:    "plant-mouth-open",
	SndPlayerCling:       "player-cling",
	SndPlayerDeath:       "player-death",
	SndPlayerFootstep:    "player-footstep",
	SndPlayerHitHead:     "player-hit-head",
	SndPlayerHurt:        "player-hurt",
	SndPlayerJump:        "player-jump",
	SndPlayerLand:        "player-land",
	SndPlayerPounce:      "player-pounce",
	SndPrize:             "prize",
	SndProjectileLaunch:  "projectile-launch",
	SndPushPlayer:        "push-player",
	SndRedJumperJump:     "red-jumper-jump",
	SndRedJumperLand:     "red-jumper-land",
	SndRoamerGift:        "roamer-gift",
	SndRocketBurn:        "rocket-burn",
	SndSawBladeMove:      "saw-blade-move",
	SndScooterPutt:       "scooter-putt",
	SndShardBounce:       "shard-bounce",
	SndSmash:             "smash",
	SndSpeechBubble:      "speech-bubble",
	SndSpikesMove:        "spikes-move",
	SndTextTypewriter:    "text-typewriter",
	SndThunder:           "thunder",
	SndTransporterOn:     "transporter-on",
	SndTulipIngest:       "tulip-ingest",
	SndTulipLaunch:       "tulip-launch",
	SndWinLevel:          "win-level",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// Music tracks, numbered the way level headers store them.
const (
	MusicCaves = iota
	MusicScarry
	MusicBoss
	MusicRunaway
	MusicCircus
	MusicTekWorld
	MusicEasyLevel
	MusicRockIt
	MusicHappy
	MusicDevo
	MusicDaDoDa
	MusicBells
	MusicDrums
	MusicBanjo
	MusicEasy2
	MusicTeck2
	MusicTeck3
	MusicTeck4
	MusicZZTop
)
