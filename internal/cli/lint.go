package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harlowdrift/tallint/internal/logging"
	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/grammar"
	"github.com/harlowdrift/tallint/pkg/indent"
	"github.com/harlowdrift/tallint/pkg/parser"
	"github.com/harlowdrift/tallint/pkg/reporter"
	"github.com/harlowdrift/tallint/pkg/suppress"
)

// defaultSuppressionsFile is used when no -S flag is given and the file
// is present in the working directory (spec §6).
const defaultSuppressionsFile = "suppressions"

// ErrUnsupportedPolicy is returned when --policy names anything other
// than the one supported policy.
var ErrUnsupportedPolicy = errors.New("unsupported policy")

type lintFlags struct {
	verbose          bool
	context          int
	censusWhitespace bool
	inclusionFiles   []string
	suppressionFiles []string
	policy           string
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [options] file",
		Short: "Check a tall-form rune expression file for whitespace mistakes",
		Long:  lintLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args[0], flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Check a tall-form rune expression file for whitespace mistakes:
backdented staircases, note and cell alignment, sequence gaps, and
the jogging shapes of multi-clause runes.

Examples:
  tallint lint foo.hoon
  tallint lint -C 4 foo.hoon
  tallint lint -S suppressions foo.hoon
  tallint lint --census-whitespace foo.hoon`

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "reserved; no behavioral effect yet")
	cmd.Flags().IntVarP(&flags.context, "context", "C", 2, "context window size in lines around each reported line (0 = no source shown)")
	cmd.Flags().BoolVar(&flags.censusWhitespace, "census-whitespace", false, "emit a diagnostic for every inspected construct, including suppressed ones")
	cmd.Flags().StringSliceVarP(&flags.inclusionFiles, "inclusions-file", "I", nil, "only report diagnostics whose tag appears in FILE")
	cmd.Flags().StringSliceVarP(&flags.suppressionFiles, "suppressions_file", "S", nil, "drop diagnostics whose tag appears in FILE (repeatable)")
	cmd.Flags().StringVarP(&flags.policy, "policy", "P", "Test::Whitespace", "select policy; currently only Test::Whitespace")
}

func runLint(cmd *cobra.Command, path string, flags *lintFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logging.Default())

	if flags.policy != "Test::Whitespace" {
		return fmt.Errorf("%w: %q", ErrUnsupportedPolicy, flags.policy)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	cat := grammar.Default()

	tree, err := parser.Parse(cat, source)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	filterList, err := loadFilters(flags)
	if err != nil {
		return err
	}

	rep := indent.NewReport(path, filterList, flags.censusWhitespace)

	if walkErr := walkSafely(tree, cat, rep, flags.censusWhitespace); walkErr != nil {
		return walkErr
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rptr := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Color:       colorMode,
		ContextSize: flags.context,
	})

	count, err := rptr.Render(source, rep)
	if err != nil {
		return fmt.Errorf("render diagnostics: %w", err)
	}

	if err := rptr.RenderUnused(filterList.Unused()); err != nil {
		return fmt.Errorf("render unused suppressions: %w", err)
	}

	logging.FromContext(ctx).Debug("lint complete", logging.FieldPath, path, logging.FieldMistakesTotal, count)

	return nil
}

// loadFilters loads every suppression/inclusion file named on the
// command line, falling back to ./suppressions when no -S flag was
// given and that file exists (spec §6).
func loadFilters(flags *lintFlags) (*suppress.List, error) {
	list := suppress.NewList()

	suppressionFiles := flags.suppressionFiles
	if len(suppressionFiles) == 0 {
		if _, err := os.Stat(defaultSuppressionsFile); err == nil {
			suppressionFiles = []string{defaultSuppressionsFile}
		}
	}

	for _, name := range suppressionFiles {
		if err := loadSuppressionFile(list, name); err != nil {
			return nil, err
		}
	}

	for _, name := range flags.inclusionFiles {
		if err := loadInclusionFile(list, name); err != nil {
			return nil, err
		}
	}

	return list, nil
}

func loadSuppressionFile(list *suppress.List, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open suppressions file %s: %w", name, err)
	}
	defer f.Close()

	if err := list.LoadSuppressions(name, f); err != nil {
		return err
	}
	return nil
}

func loadInclusionFile(list *suppress.List, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open inclusions file %s: %w", name, err)
	}
	defer f.Close()

	if err := list.LoadInclusions(name, f); err != nil {
		return err
	}
	return nil
}

// walkSafely runs indent.Walk, converting a panicked *indent.InternalError
// into a returned error (spec §7: internal errors abort the process with
// a message naming the detecting code location).
func walkSafely(tree *cst.Tree, cat *grammar.Catalog, rep *indent.Report, census bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*indent.InternalError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()
	indent.Walk(tree, cat, tree.Root, rep.Recorder(), indent.WithCensus(census))
	return nil
}
