package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cosmo-arcade/internal/config"
	"github.com/vovakirdan/cosmo-arcade/internal/core"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
	"github.com/vovakirdan/cosmo-arcade/internal/storage"
)

// fakeGame records the inputs it is stepped with.
type fakeGame struct {
	resets int
	inputs []core.InputFrame
	state  core.GameState
	saved  []byte
	loaded []byte
	err    error
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) SaveGame(slot byte) error {
	g.saved = append(g.saved, slot)
	return g.err
}

func (g *fakeGame) LoadGame(slot byte) error {
	g.loaded = append(g.loaded, slot)
	return g.err
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"w", core.ActionUp},
		{"s", core.ActionDown},
		{" ", core.ActionJump},
		{"z", core.ActionJump},
		{"x", core.ActionFire},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"m", core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keys.Action(keyMsg(tt.key)); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeyHoldKeepsMovementDown(t *testing.T) {
	h := NewKeyHold(3)
	h.Press(core.ActionRight)
	h.Press(core.ActionFire)

	first := h.Frame()
	if !first.Has(core.ActionRight) || !first.Has(core.ActionFire) {
		t.Fatalf("first frame = %v, expected right and fire", first.Actions)
	}

	for i := 0; i < 2; i++ {
		in := h.Frame()
		if !in.Has(core.ActionRight) {
			t.Errorf("frame %d: right released early", i+2)
		}
		if in.Has(core.ActionFire) {
			t.Errorf("frame %d: fire held past one frame", i+2)
		}
	}

	if in := h.Frame(); in.Has(core.ActionRight) {
		t.Error("right still held after the hold ran out")
	}
}

func TestKeyHoldOppositeReleases(t *testing.T) {
	h := NewKeyHold(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	in := h.Frame()
	if in.Has(core.ActionLeft) || !in.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected only right", in.Actions)
	}

	h.Press(core.ActionNone)
	h.Clear()
	if in := h.Frame(); len(in.Actions) != 0 {
		t.Errorf("frame after Clear = %v, expected nothing", in.Actions)
	}
}

func newTestModel(g *fakeGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1}, Options{HoldFrames: 2})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelFeedsHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	if g.resets != 1 {
		t.Fatalf("Init reset the game %d times, expected 1", g.resets)
	}

	m = update(t, m, keyMsg("right"))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	if len(g.inputs) != 3 {
		t.Fatalf("game stepped %d times, expected 3", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionRight) || !g.inputs[1].Has(core.ActionRight) {
		t.Error("right not held for two frames")
	}
	if g.inputs[2].Has(core.ActionRight) {
		t.Error("right held for a third frame")
	}
}

func TestModelPreparedSkipsReset(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.DefaultConfig(), Options{Prepared: true})
	m.Init()
	if g.resets != 0 {
		t.Errorf("Init reset a prepared game")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	g.state.GameOver = true
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, keyMsg("r"))
	m = update(t, m, TickMsg(time.Now()))

	if g.resets != 2 {
		t.Errorf("game reset %d times, expected 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("model still reports game over after restart")
	}
}

func TestModelSavePrompt(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, keyMsg("f2"))
	// The game waits while the prompt is open.
	m = update(t, m, TickMsg(time.Now()))
	if len(g.inputs) != 0 {
		t.Error("game stepped while the slot prompt was open")
	}
	if view := m.View(); !strings.Contains(view, "Save to which slot") {
		t.Error("prompt not shown")
	}

	m = update(t, m, keyMsg("x")) // ignored
	m = update(t, m, keyMsg("4"))
	if string(g.saved) != "4" {
		t.Errorf("saved slots = %q, expected \"4\"", g.saved)
	}

	g.err = engine.ErrSaveNotFound
	m = update(t, m, keyMsg("f3"))
	m = update(t, m, keyMsg("7"))
	if string(g.loaded) != "7" {
		t.Errorf("loaded slots = %q, expected \"7\"", g.loaded)
	}
	if !strings.Contains(m.View(), "Slot 7") {
		t.Error("load error not shown")
	}

	m = update(t, m, keyMsg("f3"))
	m = update(t, m, keyMsg("esc"))
	m = update(t, m, TickMsg(time.Now()))
	if len(g.inputs) != 1 {
		t.Errorf("game stepped %d times after the prompt closed, expected 1", len(g.inputs))
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	// Esc pauses a running game.
	m = update(t, m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Fatal("esc left a running game")
	}
	m = update(t, m, TickMsg(time.Now()))
	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("esc did not pause")
	}

	g.state.Paused = true
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("esc while paused did not go back to the menu")
	}

	m = update(t, m, keyMsg("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q did not quit")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := NewModel(g, core.DefaultConfig(), Options{Store: store})
	m.Init()

	g.state = core.GameState{Score: 1500, Level: 3, GameOver: true}
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1500 || scores[0].Level != 4 {
		t.Errorf("scores = %+v, expected one run of 1500 on level 4", scores)
	}
}

func TestMenuModel(t *testing.T) {
	levels := []LevelEntry{{Num: 0, Name: "Welcome"}, {Num: 1, Name: "Caves"}, {Num: 4}}
	m := NewMenuModel(MenuConfig{Levels: levels, HasDemo: true}, core.DefaultConfig())

	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("default difficulty = %q", m.Difficulty())
	}

	step := func(key string) {
		next, _ := m.Update(keyMsg(key))
		m = next.(MenuModel)
	}

	step("down") // difficulty
	step("right")
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("difficulty = %q, expected hard", m.Difficulty())
	}
	step("right")
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty = %q, expected easy after wrapping", m.Difficulty())
	}

	step("down") // start level
	step("left")
	if m.StartLevel() != 4 {
		t.Errorf("start level = %d, expected 4", m.StartLevel())
	}
	if !strings.Contains(m.View(), "< 5 >") {
		t.Error("start level not shown")
	}

	step("down") // demo
	step("enter")
	if m.Choice() != ChoiceDemo {
		t.Errorf("choice = %v, expected the demo", m.Choice())
	}
}

func TestMenuModelQuit(t *testing.T) {
	m := NewMenuModel(MenuConfig{Difficulty: config.DifficultyEasy}, core.DefaultConfig())
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty = %q, expected easy", m.Difficulty())
	}
	next, _ := m.Update(keyMsg("q"))
	if next.(MenuModel).Choice() != ChoiceQuit {
		t.Error("q did not quit the menu")
	}
}

func TestSlotTable(t *testing.T) {
	slots := []storage.SlotInfo{
		{Slot: '2', Block: engine.SaveBlock{Health: 4, MaxHealth: 3, LevelNum: 5, Score: 4200, Bombs: 1, Stars: 7}},
		{Slot: engine.TempSlot, Block: engine.SaveBlock{Health: 2, MaxHealth: 3}},
	}
	view := SlotTable(slots, 80, 5).View()

	for _, want := range []string{"4200", "3/3", "auto"} {
		if !strings.Contains(view, want) {
			t.Errorf("slot table missing %q:\n%s", want, view)
		}
	}
}

func TestScoreTable(t *testing.T) {
	scores := []storage.ScoreEntry{
		{Score: 900, Level: 2, CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Score: 300, Level: 1},
	}
	view := ScoreTable(scores, 80, 5).View()
	if !strings.Contains(view, "#1") || !strings.Contains(view, "900") || !strings.Contains(view, "Mar 01") {
		t.Errorf("unexpected score table:\n%s", view)
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun("cosmo", 777, 2)

	saves := store.SaveStore("cosmo")
	b := engine.SaveBlock{Health: 3, MaxHealth: 3, LevelNum: 1, Score: 555}
	b.Checksum = b.Sum()
	if err := saves.Save('1', b); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	m := NewScoreboardModel("cosmo", "Cosmo", store, saves, 100, 30)
	if view := m.View(); !strings.Contains(view, "777") || !strings.Contains(view, "Statistics") {
		t.Errorf("scores tab missing the run:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if view := m.View(); !strings.Contains(view, "SAVED GAMES") || !strings.Contains(view, "555") {
		t.Errorf("saves tab missing the slot:\n%s", view)
	}

	next, _ = m.Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc did not go back")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, '*', core.ColorBrightYellow)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "*") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}

	SetPlainOutput(true)
	defer SetPlainOutput(false)
	if out := RenderScreen(s); out != s.String() {
		t.Errorf("plain RenderScreen() = %q, expected %q", out, s.String())
	}
}

func TestSessionSaveKey(t *testing.T) {
	if got := SessionSaveKey("cosmo", "alice"); got != "cosmo@alice" {
		t.Errorf("SessionSaveKey() = %q", got)
	}
}
