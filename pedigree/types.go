// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Individual, Pedigree, Set, sentinel errors and the option surface.
//
// Ownership:
//   - Pedigree.individuals is the arena: the only owner of *Individual values.
//   - father/mother/offspring store arena keys (IDs), never pointers, so the
//     parent↔offspring cycle never appears as a pointer cycle.
//
// Concurrency:
//   - None. A Pedigree is not safe for concurrent mutation; Filter/Remove
//     must be serialized by the caller against any reader.
package pedigree

import (
	"errors"
	"fmt"
	"log/slog"
)

// PED column codes.
const (
	// Unknown is the "0" sentinel for a missing parent (and unknown phenotype).
	Unknown = "0"

	// SexMale and SexFemale are the only recognised sex codes; anything else is unknown.
	SexMale   = "1"
	SexFemale = "2"

	// PhenotypeUnaffected and PhenotypeAffected are compared against the first phenotype column.
	PhenotypeUnaffected = "1"
	PhenotypeAffected   = "2"
)

// Sentinel errors.
var (
	// ErrDuplicateIndividual indicates an individual ID declared on more than one line.
	ErrDuplicateIndividual = errors.New("pedigree: duplicate individual ID")

	// ErrMalformedLine indicates a line with fewer than five tab-separated fields
	// or an empty individual ID.
	ErrMalformedLine = errors.New("pedigree: malformed line")

	// ErrIndividualNotFound indicates a query referenced an ID absent from the graph.
	ErrIndividualNotFound = errors.New("pedigree: individual not found")

	// ErrFamilyNotFound indicates a query referenced a family ID with no declared members.
	ErrFamilyNotFound = errors.New("pedigree: family not found")

	// ErrNilReader is returned by Parse when the source is nil.
	ErrNilReader = errors.New("pedigree: reader is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pedigree: invalid option supplied")
)

// ParseError attaches the 1-based source line number to a parse failure.
// Err is always one of the package sentinels, so errors.Is keeps working.
type ParseError struct {
	Line int
	Err  error
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Individual is one person in the pedigree.
//
// The exported fields are the raw PED columns exactly as read. Resolved
// relationships are kept as IDs into the owning Pedigree and are reached
// through Pedigree.Father, Pedigree.Mother and Pedigree.Offspring.
type Individual struct {
	FamilyID   string
	ID         string
	PaternalID string
	MaternalID string
	Sex        string

	// Phenotype holds every column after the fifth, in order.
	Phenotype []string

	// Synthesized is true for placeholders created because the ID was only
	// ever referenced as a parent.
	Synthesized bool

	father    string   // resolved paternal ID, "" if unresolved
	mother    string   // resolved maternal ID, "" if unresolved
	offspring []string // child IDs in link order
}

// Pedigree is the relationship graph built from a PED source.
type Pedigree struct {
	individuals map[string]*Individual // arena: ID → record
	order       []string               // insertion order of individuals

	families    map[string][]string // family ID → declared member IDs
	familyOrder []string            // first-appearance order of families

	log *slog.Logger
}

// Set is a collection of IDs used by Filter and Subset. A nil Set means
// "not given"; an empty non-nil Set matches nothing.
type Set map[string]struct{}

// NewSet builds a Set from ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports whether id is a member of s.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	commentPrefix string
	maxLineBytes  int
	logger        *slog.Logger
	err           error
}

// defaultMaxLineBytes bounds a single PED line; wide phenotype panels exceed bufio's 64 KiB default.
const defaultMaxLineBytes = 1 << 20

func defaultParseOptions() parseOptions {
	return parseOptions{
		commentPrefix: "#",
		maxLineBytes:  defaultMaxLineBytes,
		logger:        slog.New(slog.DiscardHandler),
	}
}

// WithCommentPrefix sets the prefix marking comment lines. An empty prefix
// disables comment handling entirely.
func WithCommentPrefix(prefix string) Option {
	return func(o *parseOptions) { o.commentPrefix = prefix }
}

// WithMaxLineBytes sets the largest accepted line length.
//
//	n > 0: limit to n bytes
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxLineBytes(n int) Option {
	return func(o *parseOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max line bytes must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.maxLineBytes = n
	}
}

// WithLogger routes construction diagnostics to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *parseOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
