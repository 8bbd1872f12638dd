package search

import (
	"errors"
	"log"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilTopology indicates that a nil *core.Topology was passed to Solve.
	ErrNilTopology = errors.New("search: topology is nil")

	// ErrUnsolvable indicates the frontier emptied before a solved state was reached.
	ErrUnsolvable = errors.New("search: no sequence of moves sorts the burrow")

	// ErrNodeLimit indicates more states were expanded than Options.MaxNodes allows.
	ErrNodeLimit = errors.New("search: expanded-state ceiling exceeded")

	// ErrBadMaxNodes indicates a negative MaxNodes.
	ErrBadMaxNodes = errors.New("search: MaxNodes must be non-negative")

	// ErrBadProgressEvery indicates a negative ProgressEvery.
	ErrBadProgressEvery = errors.New("search: ProgressEvery must be non-negative")
)

// Options configures a single Solve call.
//
// Heuristic     – order the frontier by cost + core.Estimate (A*); false gives plain Dijkstra.
// DirectMoves   – let core.Moves collapse room→hallway→room into one move.
// MaxNodes      – fail with ErrNodeLimit after this many expansions; 0 means no ceiling.
// Logger        – receives progress and summary lines; nil disables logging.
// ProgressEvery – log a progress line every N expansions; 0 disables progress lines.
type Options struct {
	Heuristic     bool
	DirectMoves   bool
	MaxNodes      int
	Logger        *log.Logger
	ProgressEvery int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the options used when none are given:
// A* ordering, direct moves enabled, no ceiling, no logging.
func DefaultOptions() Options {
	return Options{
		Heuristic:   true,
		DirectMoves: true,
	}
}

// WithHeuristic toggles A* ordering. Disabling it never changes the returned cost.
func WithHeuristic(enabled bool) Option {
	return func(o *Options) {
		o.Heuristic = enabled
	}
}

// WithDirectMoves toggles the combined room→room move. Disabling it never
// changes the returned cost.
func WithDirectMoves(enabled bool) Option {
	return func(o *Options) {
		o.DirectMoves = enabled
	}
}

// WithMaxNodes caps the number of expanded states. Panics on a negative value.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxNodes.Error())
		}
		o.MaxNodes = n
	}
}

// WithLogger routes progress and summary lines to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithProgressEvery logs a progress line every n expansions. Panics on a negative value.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadProgressEvery.Error())
		}
		o.ProgressEvery = n
	}
}

// Result is the outcome of a successful Solve.
type Result struct {
	Cost       int64 // minimal total energy
	Expanded   int   // states popped and expanded
	Discovered int   // distinct states entered into the cost map
}
