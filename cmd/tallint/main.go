// Package main is the entry point for the tallint CLI.
package main

import (
	"errors"
	"os"

	"github.com/harlowdrift/tallint/internal/cli"
	"github.com/harlowdrift/tallint/internal/logging"
	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/indent"
	"github.com/harlowdrift/tallint/pkg/parser"
	"github.com/harlowdrift/tallint/pkg/suppress"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return exitCodeFor(err)
	}

	return cli.ExitSuccess
}

// exitCodeFor maps an error returned from the command tree to one of the
// exit codes spec §6/§7 distinguishes: parse failure, user error, or
// internal error.
func exitCodeFor(err error) int {
	var internal *indent.InternalError
	if errors.As(err, &internal) {
		return cli.ExitInternalError
	}

	var badTree *cst.InvariantError
	if errors.As(err, &badTree) {
		return cli.ExitInternalError
	}

	if errors.Is(err, parser.ErrParse) {
		return cli.ExitParseError
	}

	if errors.Is(err, suppress.ErrMalformedLine) || errors.Is(err, cli.ErrUnsupportedPolicy) {
		return cli.ExitUserError
	}

	return cli.ExitUserError
}
