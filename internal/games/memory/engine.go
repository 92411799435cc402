package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// Phase is the state of the turn state machine.
type Phase int

const (
	PhaseIdle               Phase = iota // Board unlocked, no card face up this turn
	PhaseAwaitingSecondFlip              // One card face up this turn
	PhaseResolving                       // Two cards face up, board locked
	PhaseLevelComplete                   // All pairs found, next level available
	PhaseGameComplete                    // Final level cleared; terminal until Reset
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingSecondFlip:
		return "awaiting_second_flip"
	case PhaseResolving:
		return "resolving"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Card is one position on the board.
type Card struct {
	Symbol  Symbol
	Pos     int
	Flipped bool // Face up
	Matched bool // Paired; stays face up for the rest of the level
}

// GameState is the complete mutable state of a campaign.
type GameState struct {
	LevelIndex   int
	Cards        []Card
	Flipped      []int // Positions turned this turn, at most two
	MatchedPairs int
	Moves        int // Moves on the current level
	TotalMoves   int // Moves over the whole campaign
	Locked       bool
	Phase        Phase
}

// resolveAction is the scheduled flip-back of a mismatched pair.
type resolveAction struct {
	deadline      uint64
	first, second int
}

// Engine is the single owner of a GameState. All mutation goes through
// SubmitClick, Tick, NextLevel, StartAt and Reset, which must be called
// from one goroutine.
type Engine struct {
	settings   Settings
	rng        *rand.Rand
	view       View
	delayTicks uint64

	now     uint64
	pending *resolveAction
	state   GameState
}

// NewEngine validates the settings and deals the first level.
// tickRate converts the reveal delay into ticks; a nil view discards
// all notifications.
func NewEngine(settings Settings, tickRate int, rng *rand.Rand, view View) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if view == nil {
		view = nopView{}
	}

	e := &Engine{
		settings:   settings,
		rng:        rng,
		view:       view,
		delayTicks: DelayTicks(settings.RevealDelay, tickRate),
	}
	e.initLevel(0)
	return e, nil
}

// DelayTicks converts a duration to a whole number of ticks, rounding up
// so a mismatch is always visible for at least one tick.
func DelayTicks(d time.Duration, tickRate int) uint64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := (int64(d)*int64(tickRate) + int64(time.Second) - 1) / int64(time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return uint64(ticks)
}

// SubmitClick flips the card at pos. It reports whether the click was
// accepted; clicks while locked, after the level is won, out of range, or
// on a matched or face-up card are ignored.
func (e *Engine) SubmitClick(pos int) bool {
	s := &e.state
	if s.Locked || s.Phase == PhaseLevelComplete || s.Phase == PhaseGameComplete {
		return false
	}
	if pos < 0 || pos >= len(s.Cards) {
		return false
	}
	card := &s.Cards[pos]
	if card.Matched || card.Flipped {
		return false
	}

	card.Flipped = true
	s.Flipped = append(s.Flipped, pos)
	if len(s.Flipped) < 2 {
		s.Phase = PhaseAwaitingSecondFlip
		return true
	}

	s.Moves++
	s.TotalMoves++
	s.Locked = true
	s.Phase = PhaseResolving
	e.view.UpdateMoveCount(s.Moves)
	e.checkForMatch()
	return true
}

func (e *Engine) checkForMatch() {
	s := &e.state
	first, second := s.Flipped[0], s.Flipped[1]

	if s.Cards[first].Symbol != s.Cards[second].Symbol {
		e.pending = &resolveAction{
			deadline: e.now + e.delayTicks,
			first:    first,
			second:   second,
		}
		return
	}

	s.Cards[first].Matched = true
	s.Cards[second].Matched = true
	s.MatchedPairs++
	e.resetTurn()
	e.checkWinCondition()
}

// Tick advances the clock by one tick and runs the pending flip-back once
// its deadline is reached.
func (e *Engine) Tick() {
	e.now++
	if e.pending == nil || e.now < e.pending.deadline {
		return
	}

	p := e.pending
	e.pending = nil
	e.state.Cards[p.first].Flipped = false
	e.state.Cards[p.second].Flipped = false
	e.resetTurn()
}

func (e *Engine) resetTurn() {
	e.state.Flipped = e.state.Flipped[:0]
	e.state.Locked = false
	e.state.Phase = PhaseIdle
}

func (e *Engine) checkWinCondition() {
	s := &e.state
	level := e.Level()
	if s.MatchedPairs != level.Pairs {
		return
	}

	if next, ok := e.nextLevel(); ok {
		s.Phase = PhaseLevelComplete
		msg := fmt.Sprintf("Great! You cleared %s in %d moves. Ready for the next level?", level.Name, s.Moves)
		e.view.ShowLevelComplete(msg, true, next.Name)
		return
	}

	s.Phase = PhaseGameComplete
	msg := fmt.Sprintf("Amazing! You cleared all %d levels in %d moves (%d on %s).",
		len(e.settings.Levels), s.TotalMoves, s.Moves, level.Name)
	e.view.ShowGameComplete(msg)
}

func (e *Engine) nextLevel() (Level, bool) {
	i := e.state.LevelIndex + 1
	if i >= len(e.settings.Levels) {
		return Level{}, false
	}
	return e.settings.Levels[i], true
}

// NextLevel deals the following level once the current one is complete.
// It reports false, leaving the state untouched, in any other phase,
// including after the final level.
func (e *Engine) NextLevel() bool {
	if e.state.Phase != PhaseLevelComplete {
		return false
	}
	e.initLevel(e.state.LevelIndex + 1)
	return true
}

// StartAt restarts the campaign at the given 0-based level index.
func (e *Engine) StartAt(index int) error {
	if index < 0 || index >= len(e.settings.Levels) {
		return fmt.Errorf("level %d out of range 1..%d", index+1, len(e.settings.Levels))
	}
	e.state.TotalMoves = 0
	e.initLevel(index)
	return nil
}

// Reset restarts the campaign from the first level.
func (e *Engine) Reset() {
	e.state.TotalMoves = 0
	e.initLevel(0)
}

func (e *Engine) initLevel(index int) {
	level := e.settings.Levels[index]
	deck, err := BuildDeck(level, e.settings.Catalog, e.rng)
	if err != nil {
		// Levels were checked against the catalog by NewEngine
		panic(fmt.Sprintf("memory: validated level rejected: %v", err))
	}

	cards := make([]Card, len(deck))
	for i, sym := range deck {
		cards[i] = Card{Symbol: sym, Pos: i}
	}

	e.pending = nil
	e.state = GameState{
		LevelIndex: index,
		Cards:      cards,
		Flipped:    make([]int, 0, 2),
		TotalMoves: e.state.TotalMoves,
		Phase:      PhaseIdle,
	}

	e.view.RenderBoard(level, e.Cards())
	e.view.UpdateMoveCount(0)
}

// State returns a copy of the current state.
func (e *Engine) State() GameState {
	s := e.state
	s.Cards = e.Cards()
	s.Flipped = append([]int(nil), e.state.Flipped...)
	return s
}

// Cards returns a copy of the board.
func (e *Engine) Cards() []Card {
	return append([]Card(nil), e.state.Cards...)
}

// Card returns the card at pos.
func (e *Engine) Card(pos int) (Card, bool) {
	if pos < 0 || pos >= len(e.state.Cards) {
		return Card{}, false
	}
	return e.state.Cards[pos], true
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// Level returns the level being played.
func (e *Engine) Level() Level {
	return e.settings.Levels[e.state.LevelIndex]
}

// LevelCount returns the number of levels in the campaign.
func (e *Engine) LevelCount() int {
	return len(e.settings.Levels)
}

// HasNextLevel reports whether a level follows the current one.
func (e *Engine) HasNextLevel() bool {
	_, ok := e.nextLevel()
	return ok
}

// Catalog returns the icon catalog.
func (e *Engine) Catalog() Catalog {
	return e.settings.Catalog
}
