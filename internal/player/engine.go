package player

import (
	"time"

	"github.com/google/uuid"

	"subplay/internal/subtitle"
)

// Sink receives cue visibility and clock display signals from the
// engine. The engine is indifferent to how they are rendered.
type Sink interface {
	ShowCue(cue subtitle.Cue)
	HideCue()
	UpdateClock(elapsed time.Duration)
}

// Engine maps the virtual clock onto which cue is visible. One engine
// is one playback session over one immutable cue sequence; all state
// lives on the instance, so independent sessions can coexist.
//
// The engine is synchronous and scheduler-agnostic: a driver calls
// Tick periodically while playing (the CLI uses a time.Ticker). Tick
// checks the clock itself, so a tick that fires after Toggle paused
// playback mutates nothing.
type Engine struct {
	id    string
	cues  []subtitle.Cue
	clock *Clock
	sink  Sink

	index int  // cursor: 0 <= index <= len(cues); len(cues) means past the end
	shown bool // whether cues[index] is currently displayed

	lastSecond int64 // last whole second pushed to the sink
}

func NewEngine(cues []subtitle.Cue, sink Sink) *Engine {
	return &Engine{
		id:         uuid.NewString(),
		cues:       cues,
		clock:      NewClock(),
		sink:       sink,
		lastSecond: -1,
	}
}

// ID returns the playback session identifier.
func (e *Engine) ID() string { return e.id }

// Playing reports whether the virtual clock is advancing.
func (e *Engine) Playing() bool { return e.clock.Running() }

// Elapsed returns the current virtual time.
func (e *Engine) Elapsed() time.Duration { return e.clock.Now() }

// Toggle flips between stopped and playing and returns the new state.
func (e *Engine) Toggle() bool {
	if e.clock.Running() {
		e.clock.Pause()
	} else {
		e.clock.Start()
	}
	return e.clock.Running()
}

// Tick advances cue state to the clock's current position. Hide is
// always emitted before a new show within the same tick. Cue intervals
// are half-open, so a tick landing exactly on End hides the cue.
func (e *Engine) Tick() {
	if !e.clock.Running() {
		return
	}
	now := e.clock.Now()

	if e.shown && now >= e.cues[e.index].End {
		e.sink.HideCue()
		e.shown = false
	}

	// skip every cue that already ended; after a long idle stretch or
	// a large seek the cursor may be several cues behind
	for e.index < len(e.cues) && now >= e.cues[e.index].End {
		e.index++
	}

	if !e.shown && e.index < len(e.cues) && e.cues[e.index].Active(now) {
		e.sink.ShowCue(e.cues[e.index])
		e.shown = true
	}

	e.updateClockDisplay(now)
}

// SkipNext jumps to the start of the next cue: the cue under the
// cursor when its start has not been reached yet, otherwise the one
// after it. No-op when no cue remains.
func (e *Engine) SkipNext() {
	target := e.index
	if target < len(e.cues) && e.clock.Now() >= e.cues[target].Start {
		target++
	}
	if target >= len(e.cues) {
		return
	}
	e.jumpTo(target)
}

// SkipPrev jumps to the start of the previous cue. No-op at the first.
func (e *Engine) SkipPrev() {
	if e.index == 0 {
		return
	}
	e.jumpTo(e.index - 1)
}

func (e *Engine) jumpTo(target int) {
	e.index = target
	cue := e.cues[target]
	e.clock.SeekTo(cue.Start)
	if e.shown {
		e.sink.HideCue()
	}
	e.sink.ShowCue(cue)
	e.shown = true
	e.updateClockDisplay(cue.Start)
}

// updateClockDisplay pushes the elapsed time to the sink at most once
// per whole second.
func (e *Engine) updateClockDisplay(now time.Duration) {
	sec := int64(now / time.Second)
	if sec == e.lastSecond {
		return
	}
	e.lastSecond = sec
	e.sink.UpdateClock(now)
}
