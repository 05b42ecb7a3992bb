// File: write.go
// Role: PED serialization. Declared records round-trip verbatim.
package pedigree

import (
	"bufio"
	"io"
)

// WriteOptions controls Write.
type WriteOptions struct {
	// IncludeSynthesized appends placeholder records after the declared ones.
	IncludeSynthesized bool

	// Header, if non-empty, is written first as a comment line ("#" + Header).
	Header string
}

// WriteTo writes every declared record as one PED line, families in
// first-appearance order, members in source order. It implements io.WriterTo.
func (p *Pedigree) WriteTo(w io.Writer) (int64, error) {
	return p.Write(w, WriteOptions{})
}

// Write serializes p according to opts and returns the bytes written.
func (p *Pedigree) Write(w io.Writer, opts WriteOptions) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	put := func(s string) error {
		k, err := bw.WriteString(s)
		n += int64(k)
		if err != nil {
			return err
		}
		k, err = bw.WriteString("\n")
		n += int64(k)

		return err
	}

	if opts.Header != "" {
		if err := put("#" + opts.Header); err != nil {
			return n, err
		}
	}
	for _, famID := range p.familyOrder {
		for _, id := range p.families[famID] {
			if err := put(p.individuals[id].String()); err != nil {
				return n, err
			}
		}
	}
	if opts.IncludeSynthesized {
		for _, id := range p.order {
			if ind := p.individuals[id]; ind.Synthesized {
				if err := put(ind.String()); err != nil {
					return n, err
				}
			}
		}
	}

	return n, bw.Flush()
}
