// Package lineage walks a pedigree.Pedigree breadth-first along resolved
// parent and offspring links, returning generation depths, discovery links
// and visit order.
package lineage

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pedigraph/pedigree"
)

// queueItem pairs an individual ID with its depth and the ID it was reached from.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for the start
}

// walker encapsulates mutable walk state.
type walker struct {
	ped     *pedigree.Pedigree
	dir     Direction
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk runs a breadth-first walk on p from startID in direction dir.
// Malformed input with cyclic parent chains terminates because every
// individual is visited at most once.
//
// Returns ErrPedigreeNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options or direction, ctx.Err() on cancellation,
// or any error returned by OnVisit.
func Walk(p *pedigree.Pedigree, startID string, dir Direction, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrPedigreeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if dir < Up || dir > Both {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, dir)
	}
	if !p.Has(startID) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, startID)
	}

	w := &walker{
		ped:     p,
		dir:     dir,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Ancestors walks father/mother links from id.
func Ancestors(p *pedigree.Pedigree, id string, opts ...Option) (*Result, error) {
	return Walk(p, id, Up, opts...)
}

// Descendants walks offspring links from id.
func Descendants(p *pedigree.Pedigree, id string, opts ...Option) (*Result, error) {
	return Walk(p, id, Down, opts...)
}

// Relatives walks every link from id.
func Relatives(p *pedigree.Pedigree, id string, opts ...Option) (*Result, error) {
	return Walk(p, id, Both, opts...)
}

// CommonAncestors returns the strict ancestors shared by a and b, in the
// order they are reached from a.
func CommonAncestors(p *pedigree.Pedigree, a, b string, opts ...Option) ([]string, error) {
	ra, err := Ancestors(p, a, opts...)
	if err != nil {
		return nil, err
	}
	rb, err := Ancestors(p, b, opts...)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, id := range ra.Order {
		if id == a || id == b {
			continue
		}
		if rb.Reached(id) {
			out = append(out, id)
		}
	}

	return out, nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("lineage: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		rels, err := w.relatives(item.id)
		if err != nil {
			return err
		}
		for _, rel := range rels {
			if w.visited[rel] || !w.opts.Filter(item.id, rel) {
				continue
			}
			w.enqueue(rel, next, item.id)
		}
	}

	return nil
}

// relatives lists the IDs one step away in w.dir: father, mother, then offspring.
func (w *walker) relatives(id string) ([]string, error) {
	var out []string
	if w.dir == Up || w.dir == Both {
		father, err := w.ped.Father(id)
		if err != nil {
			return nil, err
		}
		if father != nil {
			out = append(out, father.ID)
		}
		mother, err := w.ped.Mother(id)
		if err != nil {
			return nil, err
		}
		if mother != nil {
			out = append(out, mother.ID)
		}
	}
	if w.dir == Down || w.dir == Both {
		kids, err := w.ped.Offspring(id)
		if err != nil {
			return nil, err
		}
		for _, k := range kids {
			out = append(out, k.ID)
		}
	}

	return out, nil
}
