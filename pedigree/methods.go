// File: methods.go
// Role: Arena accessors, relationship resolution and cascading removal.
//
// Determinism:
//   - IDs() and Individuals() follow insertion order (declared lines, then placeholders).
//   - Families() follows first-appearance order in the source.
package pedigree

import (
	"fmt"
	"iter"
	"slices"
)

// Get returns the record for id.
//
// Errors:
//   - ErrIndividualNotFound: id is not in the graph.
func (p *Pedigree) Get(id string) (*Individual, error) {
	ind, ok := p.individuals[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIndividualNotFound, id)
	}

	return ind, nil
}

// Has reports whether id is present.
func (p *Pedigree) Has(id string) bool {
	_, ok := p.individuals[id]
	return ok
}

// Len returns the number of individuals, placeholders included.
func (p *Pedigree) Len() int { return len(p.individuals) }

// IDs returns every individual ID in insertion order.
func (p *Pedigree) IDs() []string {
	return slices.Clone(p.order)
}

// Individuals yields every record in insertion order. The sequence is
// restartable; each range re-reads the current state.
func (p *Pedigree) Individuals() iter.Seq[*Individual] {
	return p.selectWhere(func(*Individual) bool { return true })
}

// selectWhere is the shared lazy walk behind every cohort query.
func (p *Pedigree) selectWhere(keep func(*Individual) bool) iter.Seq[*Individual] {
	return func(yield func(*Individual) bool) {
		for _, id := range p.order {
			ind := p.individuals[id]
			if keep(ind) && !yield(ind) {
				return
			}
		}
	}
}

// Families returns family IDs that still have declared members, in
// first-appearance order.
func (p *Pedigree) Families() []string {
	return slices.Clone(p.familyOrder)
}

// Family returns the declared members of famID in source order.
// Synthesized placeholders are never listed here.
//
// Errors:
//   - ErrFamilyNotFound: famID has no declared members.
func (p *Pedigree) Family(famID string) ([]*Individual, error) {
	ids, ok := p.families[famID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFamilyNotFound, famID)
	}
	out := make([]*Individual, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.individuals[id])
	}

	return out, nil
}

// Father returns the resolved father of id, or nil if it has none.
//
// Errors:
//   - ErrIndividualNotFound: id is not in the graph.
func (p *Pedigree) Father(id string) (*Individual, error) {
	ind, err := p.Get(id)
	if err != nil {
		return nil, err
	}

	father, _ := p.linked(ind.father)

	return father, nil
}

// Mother returns the resolved mother of id, or nil if it has none.
//
// Errors:
//   - ErrIndividualNotFound: id is not in the graph.
func (p *Pedigree) Mother(id string) (*Individual, error) {
	ind, err := p.Get(id)
	if err != nil {
		return nil, err
	}

	mother, _ := p.linked(ind.mother)

	return mother, nil
}

// Offspring returns the linked children of id in link order.
//
// Errors:
//   - ErrIndividualNotFound: id is not in the graph.
func (p *Pedigree) Offspring(id string) ([]*Individual, error) {
	ind, err := p.Get(id)
	if err != nil {
		return nil, err
	}

	return p.resolve(ind.offspring), nil
}

// linked resolves a father/mother link. The empty string marks "no link"
// and never resolves, whatever IDs the arena holds.
func (p *Pedigree) linked(id string) (*Individual, bool) {
	if id == "" {
		return nil, false
	}
	ind, ok := p.individuals[id]

	return ind, ok
}

// resolve maps IDs to records, dropping any that are no longer present.
func (p *Pedigree) resolve(ids []string) []*Individual {
	out := make([]*Individual, 0, len(ids))
	for _, id := range ids {
		if ind, ok := p.individuals[id]; ok {
			out = append(out, ind)
		}
	}

	return out
}

// Remove deletes id and every reference to it.
//
// Implementation:
//   - Stage 1: Verify presence (ErrIndividualNotFound).
//   - Stage 2: Delegate to removeAll with a one-element set.
//
// Errors:
//   - ErrIndividualNotFound: id is not in the graph.
//
// Complexity:
//   - Time O(V) for the order slice, plus O(deg) for links.
func (p *Pedigree) Remove(id string) error {
	if !p.Has(id) {
		return fmt.Errorf("%w: %s", ErrIndividualNotFound, id)
	}
	p.removeAll(NewSet(id))

	return nil
}

// removeAll deletes every present member of victims and cascades the deletion.
//
// Implementation:
//   - Stage 1: Detach each victim from its resolved parents' offspring lists.
//   - Stage 2: Clear father/mother on each linked child. Raw PaternalID/MaternalID stay untouched.
//   - Stage 3: One pass over order and family lists; empty families are dropped.
//   - Stage 4: Delete from the arena.
//
// Complexity:
//   - Time O(V + Σdeg), Space O(1) beyond the victim set.
func (p *Pedigree) removeAll(victims Set) {
	gone := func(id string) bool { return victims.Has(id) }

	for id := range victims {
		ind, ok := p.individuals[id]
		if !ok {
			continue
		}
		for _, pid := range []string{ind.father, ind.mother} {
			if parent, ok := p.linked(pid); ok {
				parent.offspring = slices.DeleteFunc(parent.offspring, func(c string) bool { return c == id })
			}
		}
		for _, cid := range ind.offspring {
			child, ok := p.individuals[cid]
			if !ok {
				continue
			}
			if child.father == id {
				child.father = ""
			}
			if child.mother == id {
				child.mother = ""
			}
		}
	}

	p.order = slices.DeleteFunc(p.order, gone)
	for _, famID := range p.familyOrder {
		members := slices.DeleteFunc(p.families[famID], gone)
		if len(members) == 0 {
			delete(p.families, famID)
			continue
		}
		p.families[famID] = members
	}
	p.familyOrder = slices.DeleteFunc(p.familyOrder, func(f string) bool {
		_, ok := p.families[f]
		return !ok
	})

	for id := range victims {
		delete(p.individuals, id)
	}
}
