package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/interval"
)

func relationCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "relation A B",
		Short: "Print the Allen relation of interval A to interval B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := opts.spans(args)
			if err != nil {
				return err
			}
			r := interval.Relate(ss[0], ss[1])
			return opts.print(cmd, r.String(), map[string]any{
				"a":        ss[0].String(),
				"b":        ss[1].String(),
				"relation": r,
			})
		},
	}
}

func compareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Print -1, 0 or 1 as A sorts before, with or after B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := opts.spans(args)
			if err != nil {
				return err
			}
			c := interval.Compare(ss[0], ss[1])
			return opts.print(cmd, strconv.Itoa(c), map[string]any{
				"a":       ss[0].String(),
				"b":       ss[1].String(),
				"compare": c,
			})
		},
	}
}

func overlapsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "overlaps A B",
		Short: "Print whether A and B share at least one point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := opts.spans(args)
			if err != nil {
				return err
			}
			ok := interval.Overlap(ss[0], ss[1])
			return opts.print(cmd, strconv.FormatBool(ok), map[string]any{
				"a":        ss[0].String(),
				"b":        ss[1].String(),
				"overlaps": ok,
			})
		},
	}
}

func containsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "contains A POINT",
		Short: "Print whether POINT lies within A",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.span(args[0])
			if err != nil {
				return err
			}
			p, err := opts.point(args[1])
			if err != nil {
				return err
			}
			ok := interval.Contains(s, p)
			return opts.print(cmd, strconv.FormatBool(ok), map[string]any{
				"a":        s.String(),
				"point":    p.String(),
				"contains": ok,
			})
		},
	}
}

func normalizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize A",
		Short: "Print the closed form of A, which is also its unique identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.span(args[0])
			if err != nil {
				return err
			}
			id := s.UniqueIdentifier()
			return opts.print(cmd, s.String()+" -> "+id, map[string]any{
				"interval":   s.String(),
				"kind":       s.Kind(),
				"normalized": id,
			})
		},
	}
}

func sortCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sort A...",
		Short: "Print the intervals in their natural order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := opts.spans(args)
			if err != nil {
				return err
			}
			interval.Sort(ss, interval.Natural)
			for _, s := range ss {
				if err := opts.print(cmd, s.String(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func filterCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "filter SET [POINT...]",
		Short: "Print the merged form of a '|' separated union of intervals, or whether it accepts each POINT",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, notation, err := opts.splitKind(args[0])
			if err != nil {
				return err
			}
			m, err := interval.ParseFilterOf(k, notation)
			if err != nil {
				return fmt.Errorf("filter %q: %w", args[0], err)
			}
			if len(args) == 1 {
				return opts.print(cmd, m.String(), map[string]any{
					"filter": m.String(),
					"kind":   m.Kind(),
					"all":    m.IsAll(),
				})
			}
			for _, arg := range args[1:] {
				p, err := opts.point(arg)
				if err != nil {
					return err
				}
				ok := m.Contains(p)
				if err := opts.print(cmd, strconv.FormatBool(ok), map[string]any{
					"filter":   m.String(),
					"point":    p.String(),
					"contains": ok,
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
