package engine

// Event is something the platform should show the player between frames:
// dialogs, intermissions and hints the simulation itself does not draw.
type Event int

const (
	EventNone Event = iota
	// EventHintGlobe carries the globe number as its value.
	EventHintGlobe
	EventBombHint
	EventHealthHint
	EventPounceHint
	// EventEpisodeEnd carries the 1-based story page.
	EventEpisodeEnd
	EventRescuedDuke
	// EventLevelIntro carries the level number.
	EventLevelIntro
	EventSectionComplete
	EventBonusComplete
	// EventStarBonus carries the number of stars cashed in.
	EventStarBonus
	EventBonusStage
)

var eventNames = [...]string{
	EventNone:            "none",
	EventHintGlobe:       "hint-globe",
	EventBombHint:        "bomb-hint",
	EventHealthHint:      "health-hint",
	EventPounceHint:      "pounce-hint",
	EventEpisodeEnd:      "episode-end",
	EventRescuedDuke:     "rescued-duke",
	EventLevelIntro:      "level-intro",
	EventSectionComplete: "section-complete",
	EventBonusComplete:   "bonus-complete",
	EventStarBonus:       "star-bonus",
	EventBonusStage:      "bonus-stage",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Notice is one queued event with its payload.
type Notice struct {
	Event Event
	Value int
}
