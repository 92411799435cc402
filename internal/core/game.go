package core

// Game is the interface the platform drives. Implementations contain pure
// logic with no Bubble Tea dependency; the platform handles input mapping,
// timing and turning the Screen into terminal output.
type Game interface {
	// ID returns a short identifier for this game (e.g., "memory").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after the game is over.
	Reset(cfg RuntimeConfig)

	// Resize adapts the layout to new screen dimensions without
	// discarding progress.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
