package pathfind

// MaxSteps is the cost recorded for cells the search has not reached.
// A cell whose cumulative cost would reach it is never entered.
const MaxSteps = 999

// Heuristic selects the estimate added to a cell's cost when it is queued.
type Heuristic int

const (
	// HeuristicStep adds the distance of the single step just taken (always 1
	// for cardinal moves). This is the classic behaviour of the generator.
	HeuristicStep Heuristic = iota

	// HeuristicGoal adds the Manhattan distance from the cell to the goal.
	HeuristicGoal
)

// Termination selects when the search stops.
type Termination int

const (
	// TerminateOnDiscover stops as soon as the goal is seen as a neighbour.
	TerminateOnDiscover Termination = iota

	// TerminateOnExpand stops when the goal is popped from the frontier, which
	// yields minimum-cost paths on non-uniform cost maps.
	TerminateOnExpand
)

// Options configures a search. Build it with the With* helpers.
type Options struct {
	NewFrontier func() Frontier
	Heuristic   Heuristic
	Termination Termination
	MaxSteps    int
}

// Option is a functional option for FindPath and FindCostField.
type Option func(*Options)

// DefaultOptions returns the list frontier, step heuristic, discovery
// termination and the MaxSteps sentinel.
func DefaultOptions() Options {
	return Options{
		NewFrontier: NewListFrontier,
		Heuristic:   HeuristicStep,
		Termination: TerminateOnDiscover,
		MaxSteps:    MaxSteps,
	}
}

// WithFrontier selects the frontier implementation
func WithFrontier(fn func() Frontier) Option {
	return func(o *Options) {
		if fn != nil {
			o.NewFrontier = fn
		}
	}
}

// WithHeuristic selects the A* priority estimate
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithTermination selects when A* stops
func WithTermination(t Termination) Option {
	return func(o *Options) {
		o.Termination = t
	}
}

// WithMaxSteps replaces the unreached sentinel. Non-positive values are ignored.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSteps = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
