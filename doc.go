// Package pedigraph is an in-memory toolkit for PED pedigree files:
// parsing family-relationship records into a linked graph and querying it.
//
// Under the hood, everything is organized under three packages:
//
//	pedigree/     Individual and Pedigree types, two-pass build, filtering,
//	              cohorts, siblings, trio/quad probands, views, PED output
//	lineage/      breadth-first ancestor/descendant/relative walks
//	cmd/pedigree/ command-line front end (stats, filter, cohort, siblings,
//	              trios, quads, lineage)
//
// Quick example (FAM1, two parents and two children):
//
//	P1 ─┬─ P2
//	 ┌──┴──┐
//	 C1    C2
//
// yields one quad {C1, C2} from (*pedigree.Pedigree).QuadProbands.
//
//	go get github.com/katalvlaran/pedigraph/pedigree
package pedigraph
