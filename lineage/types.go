// Package lineage provides tunable options and error definitions
// for breadth-first relationship walks over a pedigree.Pedigree.
package lineage

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for lineage walks.
var (
	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("lineage: start individual not found")

	// ErrPedigreeNil is returned if a nil pedigree pointer is passed.
	ErrPedigreeNil = errors.New("lineage: pedigree is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lineage: invalid option supplied")
)

// Direction selects which links a walk follows.
type Direction int

const (
	// Up follows father/mother links (ancestors).
	Up Direction = iota + 1
	// Down follows offspring links (descendants).
	Down
	// Both follows parent and offspring links (blood relatives reachable by any path).
	Both
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps "up", "down" and "both" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "ancestors":
		return Up, nil
	case "down", "descendants":
		return Down, nil
	case "both", "relatives":
		return Both, nil
	}

	return 0, fmt.Errorf("%w: unknown direction %q", ErrOptionViolation, s)
}

// Option configures a walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the walk runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for every reached individual, the start included.
	// Returning an error aborts the walk and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many generations.
	// 0 means no limit.
	MaxDepth int

	// Filter can refuse a step from one individual to a relative.
	Filter func(from, to string) bool

	err error
}

// DefaultOptions returns Options with a background context, no-op hook,
// no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(string, int) error { return nil },
		MaxDepth: 0,
		Filter:   func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback; returning an error stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d generations.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips a step from→to when fn returns false.
func WithFilter(fn func(from, to string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: individuals reached, in visit sequence, start first.
//   - Depth: generations from the start.
//   - Parent: the individual each one was first reached from.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the chain of individuals from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("lineage: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
