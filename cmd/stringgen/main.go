// Command stringgen is a thin CLI front-end over the stringgen
// library, exposing render/list/set/count/enumerate/iterate as cobra
// subcommands plus structured logging. The library packages never log
// or call os.Exit, only this binary does.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/patterngen/stringgen"
	"github.com/patterngen/stringgen/alphabets"
)

var (
	logger *zap.Logger

	flagAlphabet  string
	flagMaxRepeat int
	flagSeed      string
)

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "stringgen: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stringgen",
		Short: "Generate, count, and enumerate strings matching a pattern",
	}
	root.PersistentFlags().StringVar(&flagAlphabet, "alphabet", "", "alphabet override (see the alphabets package for named presets)")
	root.PersistentFlags().IntVar(&flagMaxRepeat, "max-repeat", 0, "cap substituted for unbounded quantifiers (0 = use the default)")
	root.PersistentFlags().StringVar(&flagSeed, "seed", "", "deterministic seed string")

	root.AddCommand(newRenderCmd(), newListCmd(), newSetCmd(), newCountCmd(), newEnumerateCmd(), newIterateCmd())
	return root
}

func buildGenerator(pattern string) (*stringgen.Generator, error) {
	opts := []stringgen.Option{}
	if flagAlphabet != "" {
		if named, ok := namedAlphabet(flagAlphabet); ok {
			opts = append(opts, stringgen.WithAlphabet(named))
		} else {
			opts = append(opts, stringgen.WithAlphabet(flagAlphabet))
		}
	}
	if flagMaxRepeat > 0 {
		opts = append(opts, stringgen.WithMaxRepeat(flagMaxRepeat))
	}
	if flagSeed != "" {
		opts = append(opts, stringgen.WithSeed(flagSeed))
	}
	return stringgen.New(pattern, opts...)
}

// namedAlphabet resolves a --alphabet value against the alphabets
// package's presets by name (case-sensitive, matching the Go export
// name), so CLI users don't have to paste raw Unicode ranges.
func namedAlphabet(name string) (string, bool) {
	switch name {
	case "ascii":
		return alphabets.ASCII, true
	case "cyrillic":
		return alphabets.Cyrillic, true
	case "greek":
		return alphabets.Greek, true
	case "latin-extended":
		return alphabets.LatinExtended, true
	case "hiragana":
		return alphabets.Hiragana, true
	case "katakana":
		return alphabets.Katakana, true
	case "cjk":
		return alphabets.CJK, true
	case "hangul":
		return alphabets.Hangul, true
	case "arabic":
		return alphabets.Arabic, true
	case "devanagari":
		return alphabets.Devanagari, true
	case "thai":
		return alphabets.Thai, true
	case "hebrew":
		return alphabets.Hebrew, true
	default:
		return "", false
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <pattern>",
		Short: "Render one random string matching pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGenerator(args[0])
			if err != nil {
				return fail(err)
			}
			s, err := g.Render()
			if err != nil {
				return fail(err)
			}
			fmt.Println(s)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "list <pattern>",
		Short: "Render n random strings matching pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGenerator(args[0])
			if err != nil {
				return fail(err)
			}
			out, err := g.RenderList(n)
			if err != nil {
				return fail(err)
			}
			for _, s := range out {
				fmt.Println(s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of strings to render")
	return cmd
}

func newSetCmd() *cobra.Command {
	var n, maxIter int
	cmd := &cobra.Command{
		Use:   "set <pattern>",
		Short: "Render n distinct strings matching pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGenerator(args[0])
			if err != nil {
				return fail(err)
			}
			set, err := g.RenderSet(n, maxIter)
			if err != nil {
				return fail(err)
			}
			for s := range set {
				fmt.Println(s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of distinct strings to render")
	cmd.Flags().IntVar(&maxIter, "max-iter", 100_000, "maximum samples to draw before giving up")
	return cmd
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <pattern>",
		Short: "Print the exact (possibly infinite) count of distinct matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGenerator(args[0])
			if err != nil {
				return fail(err)
			}
			fmt.Println(g.Count().String())
			return nil
		},
	}
}

func newEnumerateCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "enumerate <pattern>",
		Short: "Print every distinct string the pattern can produce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGenerator(args[0])
			if err != nil {
				return fail(err)
			}
			g.Enumerate(limit)(func(s string) bool {
				fmt.Println(s)
				return true
			})
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "cap on unbounded quantifiers for this call (0 = use --max-repeat)")
	return cmd
}

func newIterateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iterate <pattern>",
		Short: "Print random samples forever, until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGenerator(args[0])
			if err != nil {
				return fail(err)
			}
			g.Iterate()(func(s string) bool {
				fmt.Println(s)
				return true
			})
			return nil
		},
	}
}

func fail(err error) error {
	logger.Error("stringgen command failed", zap.Error(err))
	return err
}
