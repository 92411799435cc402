package memory

// View is the presentation side of the game. The Engine pushes every
// visible change through it; a View never mutates game state.
type View interface {
	// RenderBoard is called whenever a level is (re)dealt.
	RenderBoard(level Level, cards []Card)

	// UpdateMoveCount reports the move counter of the current level.
	UpdateMoveCount(moves int)

	// ShowLevelComplete is called when a level other than the last is cleared.
	ShowLevelComplete(message string, hasNextLevel bool, nextLevelName string)

	// ShowGameComplete is called when the final level is cleared.
	ShowGameComplete(message string)
}

type nopView struct{}

func (nopView) RenderBoard(Level, []Card) {}
func (nopView) UpdateMoveCount(int) {}
func (nopView) ShowLevelComplete(string, bool, string) {}
func (nopView) ShowGameComplete(string) {}
