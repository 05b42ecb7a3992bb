// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Three-pass construction of a Pedigree from a PED text source.
//
// Passes:
//   - declare:    one Individual per non-comment, non-empty line; empty ID
//     columns are malformed.
//   - synthesize: placeholders for parents referenced but never declared.
//   - link:       father/mother IDs on children, offspring IDs on parents.
package pedigree

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// minFields is the number of leading PED columns before the phenotype list.
const minFields = 5

// Parse reads a PED source and returns the fully linked Pedigree.
//
// Implementation:
//   - Stage 1: Apply options; reject invalid ones with ErrOptionViolation.
//   - Stage 2: Scan lines, skipping blanks and comments, declaring one record per line.
//   - Stage 3: Synthesize placeholders for every undeclared parent ID.
//   - Stage 4: Link every record to its resolved parents.
//
// Errors:
//   - ErrNilReader: r == nil.
//   - ErrOptionViolation: an Option was invalid.
//   - *ParseError wrapping ErrMalformedLine or ErrDuplicateIndividual. No
//     partial Pedigree is returned on failure.
//   - Any read error from r.
//
// Complexity:
//   - Time O(N·F) for N lines of F fields, Space O(N·F).
func Parse(r io.Reader, opts ...Option) (*Pedigree, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	p := newPedigree()
	p.log = o.logger

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, o.maxLineBytes)), o.maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := trimLine(sc.Text())
		if line == "" {
			continue
		}
		if o.commentPrefix != "" && strings.HasPrefix(line, o.commentPrefix) {
			continue
		}
		ind, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err, Text: line}
		}
		if err = p.declare(ind); err != nil {
			return nil, &ParseError{Line: lineNo, Err: err, Text: line}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pedigree: read line %d: %w", lineNo+1, err)
	}

	p.synthesizeParents()
	p.link()

	p.log.Debug("pedigree parsed",
		"lines", lineNo,
		"individuals", len(p.individuals),
		"families", len(p.familyOrder))

	return p, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts ...Option) (*Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pedigree: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

func newPedigree() *Pedigree {
	return &Pedigree{
		individuals: make(map[string]*Individual),
		families:    make(map[string][]string),
		log:         slog.New(slog.DiscardHandler),
	}
}

// trimLine drops trailing whitespace and leading spaces. A leading tab is
// kept: it delimits an empty family column, which parseLine rejects.
func trimLine(raw string) string {
	return strings.TrimLeft(strings.TrimRightFunc(raw, unicode.IsSpace), " ")
}

// idColumns names the leading columns that must not be empty. "0" is the
// only way to say a parent is unknown.
var idColumns = [...]string{"family ID", "individual ID", "paternal ID", "maternal ID"}

// parseLine splits an already-trimmed line into an Individual.
func parseLine(line string) (*Individual, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: want at least %d tab-separated fields, got %d",
			ErrMalformedLine, minFields, len(fields))
	}
	for i, name := range idColumns {
		if fields[i] == "" {
			return nil, fmt.Errorf("%w: empty %s", ErrMalformedLine, name)
		}
	}

	return NewIndividual(fields[0], fields[1], fields[2], fields[3], fields[4], fields[minFields:]), nil
}

// declare registers a record read from the source: arena, order and family.
func (p *Pedigree) declare(ind *Individual) error {
	if _, dup := p.individuals[ind.ID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateIndividual, ind.ID)
	}
	p.insert(ind)
	if _, ok := p.families[ind.FamilyID]; !ok {
		p.familyOrder = append(p.familyOrder, ind.FamilyID)
	}
	p.families[ind.FamilyID] = append(p.families[ind.FamilyID], ind.ID)

	return nil
}

// insert adds ind to the arena and the iteration order only.
func (p *Pedigree) insert(ind *Individual) {
	p.individuals[ind.ID] = ind
	p.order = append(p.order, ind.ID)
}

// synthesizeParents creates a placeholder for every parent ID that has no record.
// The ID list is snapshotted first because placeholders are appended to p.order.
func (p *Pedigree) synthesizeParents() {
	snapshot := make([]string, len(p.order))
	copy(snapshot, p.order)

	for _, id := range snapshot {
		ind := p.individuals[id]
		if ind.PaternalID != Unknown && !p.Has(ind.PaternalID) {
			p.insert(newPlaceholder(ind.FamilyID, ind.PaternalID, SexMale))
			p.log.Debug("synthesized father", "id", ind.PaternalID, "family", ind.FamilyID, "child", id)
		}
		if ind.MaternalID != Unknown && !p.Has(ind.MaternalID) {
			p.insert(newPlaceholder(ind.FamilyID, ind.MaternalID, SexFemale))
			p.log.Debug("synthesized mother", "id", ind.MaternalID, "family", ind.FamilyID, "child", id)
		}
	}
}

// link resolves father/mother on every record and appends it to each parent's offspring.
// It must run after synthesizeParents so every non-"0" parent ID resolves.
func (p *Pedigree) link() {
	for _, id := range p.order {
		ind := p.individuals[id]
		if father, ok := p.lookupParent(ind.PaternalID); ok {
			ind.father = father.ID
			father.offspring = append(father.offspring, ind.ID)
		}
		if mother, ok := p.lookupParent(ind.MaternalID); ok {
			ind.mother = mother.ID
			mother.offspring = append(mother.offspring, ind.ID)
		}
	}
}

// lookupParent resolves a parent column; the "0" sentinel never resolves,
// even if some line declared an individual literally named "0".
func (p *Pedigree) lookupParent(id string) (*Individual, bool) {
	if id == Unknown {
		return nil, false
	}
	ind, ok := p.individuals[id]

	return ind, ok
}
