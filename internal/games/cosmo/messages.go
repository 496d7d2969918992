package cosmo

import (
	"fmt"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
)

// levelNamer is implemented by level sources that know level titles.
type levelNamer interface {
	Name(num int) string
}

var hintGlobeText = []string{
	"Jump on enemies to knock them out.",
	"Bombs clear walls and enemies. Press fire to drop one.",
	"Stand under a ceiling and hold jump to cling to walls.",
	"Collect stars: enough of them opens a bonus level.",
	"Look up at doors and transporters to use them.",
	"Some blocks hide goodies. Try pouncing them.",
}

// noticeText describes a world notice for the status line, or returns ""
// for notices the terminal does not show.
func (g *Game) noticeText(n engine.Notice) string {
	switch n.Event {
	case engine.EventLevelIntro:
		name := ""
		if ln, ok := g.world.Levels().(levelNamer); ok {
			name = ln.Name(n.Value)
		}
		if name == "" {
			return fmt.Sprintf("Level %d", n.Value+1)
		}
		return fmt.Sprintf("Level %d: %s", n.Value+1, name)
	case engine.EventHintGlobe:
		return "Hint: " + hintGlobeText[n.Value%len(hintGlobeText)]
	case engine.EventBombHint:
		return "You found a bomb! Press fire to drop it."
	case engine.EventHealthHint:
		return "Hamburgers and power-ups restore your health."
	case engine.EventPounceHint:
		return "Pounce on enemies by jumping on them."
	case engine.EventEpisodeEnd:
		return fmt.Sprintf("The end, part %d.", n.Value)
	case engine.EventRescuedDuke:
		return "You rescued Duke!"
	case engine.EventSectionComplete:
		return "Section complete!"
	case engine.EventBonusComplete:
		return "Bonus level complete!"
	case engine.EventStarBonus:
		return fmt.Sprintf("Star bonus: %d stars, %d points", n.Value, n.Value*1000)
	case engine.EventBonusStage:
		return fmt.Sprintf("%d stars: welcome to the bonus level!", n.Value)
	}
	return ""
}
