package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pedigraph/internal/config"
	"github.com/katalvlaran/pedigraph/lineage"
	"github.com/katalvlaran/pedigraph/pedigree"
)

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE...",
		Short: "Print summary counts for one or more PED files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peds, err := a.loadAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FILE\tINDIVIDUALS\tDECLARED\tSYNTHESIZED\tFAMILIES\tMALE\tFEMALE\tAFFECTED\tUNAFFECTED\tTRIOS")
			for i, p := range peds {
				s := p.Stats()
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
					args[i], s.Individuals, s.Declared, s.Synthesized, s.Families,
					s.Males, s.Females, s.Affected, s.Unaffected, s.TrioProbands)
			}
			return tw.Flush()
		},
	}
}

// loadAll parses every file concurrently; each pedigree stays owned by one goroutine.
func (a *app) loadAll(ctx context.Context, paths []string) ([]*pedigree.Pedigree, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]*pedigree.Pedigree, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := a.load(path)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func filterCmd(a *app) *cobra.Command {
	var (
		fc          config.FilterConfig
		synthesized bool
	)
	cmd := &cobra.Command{
		Use:   "filter FILE",
		Short: "Filter a PED file and write the surviving records",
		Long: `Steps run in a fixed order, each on the result of the previous one:
include families, include individuals, exclude families, exclude individuals.
An include flag replaces the config file's list for that step; exclude flags
add to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			given := config.FilterConfig{}
			if flags.Changed("include-family") {
				given.IncludeFamilies = fc.IncludeFamilies
			}
			if flags.Changed("exclude-family") {
				given.ExcludeFamilies = fc.ExcludeFamilies
			}
			if flags.Changed("include-individual") {
				given.IncludeIndividuals = fc.IncludeIndividuals
			}
			if flags.Changed("exclude-individual") {
				given.ExcludeIndividuals = fc.ExcludeIndividuals
			}
			a.cfg.Merge(&config.Config{Filter: given})

			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			_, err = p.Write(cmd.OutOrStdout(), pedigree.WriteOptions{IncludeSynthesized: synthesized})
			return err
		},
	}
	cmd.Flags().StringSliceVar(&fc.IncludeFamilies, "include-family", nil, "Keep only these family IDs")
	cmd.Flags().StringSliceVar(&fc.ExcludeFamilies, "exclude-family", nil, "Drop these family IDs")
	cmd.Flags().StringSliceVar(&fc.IncludeIndividuals, "include-individual", nil, "Keep only these individual IDs")
	cmd.Flags().StringSliceVar(&fc.ExcludeIndividuals, "exclude-individual", nil, "Drop these individual IDs")
	cmd.Flags().BoolVar(&synthesized, "synthesized", false, "Also write synthesized parent placeholders")
	return cmd
}

func cohortCmd(a *app) *cobra.Command {
	var sex, phenotype string
	cmd := &cobra.Command{
		Use:   "cohort FILE",
		Short: "List individuals by sex or phenotype",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			var seq iter.Seq[*pedigree.Individual]
			switch {
			case sex == "male":
				seq = p.AllMale()
			case sex == "female":
				seq = p.AllFemale()
			case phenotype == "affected":
				seq = p.AllAffected()
			case phenotype == "unaffected":
				seq = p.AllUnaffected()
			default:
				return fmt.Errorf("need --sex male|female or --phenotype affected|unaffected")
			}
			return printIndividuals(cmd.OutOrStdout(), seq)
		},
	}
	cmd.Flags().StringVar(&sex, "sex", "", "male or female")
	cmd.Flags().StringVar(&phenotype, "phenotype", "", "affected or unaffected")
	cmd.MarkFlagsMutuallyExclusive("sex", "phenotype")
	return cmd
}

func siblingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "siblings FILE ID",
		Short: "List everyone sharing the father OR the mother of ID (ID included)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			seq, err := p.Siblings(args[1])
			if err != nil {
				return err
			}
			return printIndividuals(cmd.OutOrStdout(), seq)
		},
	}
}

func triosCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trios FILE",
		Short: "List probands with both parents known",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for ind := range p.TrioProbands() {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ind.FamilyID, ind.ID, ind.PaternalID, ind.MaternalID); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func quadsCmd(a *app) *cobra.Command {
	var pairs bool
	cmd := &cobra.Command{
		Use:   "quads FILE",
		Short: "List exact quads (two full siblings), optionally with sibling pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for pr := range p.QuadProbands() {
				if pr.Kind == pedigree.KindSiblingPair && !pairs {
					continue
				}
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					pr.Kind, pr.Members[0].FamilyID, pr.Members[0].ID, pr.Members[1].ID); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pairs, "pairs", false, "Also print (proband, sibling) pairs")
	return cmd
}

func lineageCmd(a *app) *cobra.Command {
	var (
		direction string
		maxDepth  int
	)
	cmd := &cobra.Command{
		Use:   "lineage FILE ID",
		Short: "Walk ancestors, descendants or all relatives of ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := lineage.ParseDirection(direction)
			if err != nil {
				return err
			}
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			res, err := lineage.Walk(p, args[1], dir,
				lineage.WithContext(ctx),
				lineage.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, id := range res.Order {
				path, _ := res.PathTo(id)
				if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", res.Depth[id], id, strings.Join(path, ">")); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&direction, "direction", "up", "up, down or both")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Generations to walk (0 = no limit)")
	return cmd
}

func printIndividuals(w io.Writer, seq iter.Seq[*pedigree.Individual]) error {
	for ind := range seq {
		if _, err := fmt.Fprintln(w, ind.String()); err != nil {
			return err
		}
	}
	return nil
}
