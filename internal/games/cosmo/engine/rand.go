package engine

var gameRandTable = [...]int{
	31, 12, 17, 233, 99, 8, 64, 12, 199, 49, 5, 6,
	143, 1, 35, 46, 52, 5, 8, 21, 44, 8, 3, 77,
	2, 103, 34, 23, 78, 2, 67, 2, 79, 46, 1, 98,
}

// GameRand returns the next value of the deterministic gameplay sequence.
// The result depends on the table position plus the scroll and player
// positions, so identical input replays identically.
func (w *World) GameRand() int {
	w.randStep++
	if w.randStep >= len(gameRandTable) {
		w.randStep = 0
	}
	v := gameRandTable[w.randStep] + w.ScrollX + w.ScrollY + w.randStep + w.Player.X + w.Player.Y
	return int(uint16(v))
}

// random returns a value in [0, n) from the seeded generator used for
// cosmetic choices.
func (w *World) random(n int) int {
	if n <= 0 {
		return 0
	}
	return w.rng.Intn(n)
}
