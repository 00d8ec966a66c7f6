package cli

// Exit codes for tallint (spec §6: "nonzero on parse failure or
// internal error; zero when all diagnostics printed" — a clean lint run
// that merely reports mistakes still exits zero, unlike a typical
// linter's nonzero-on-findings convention).
const (
	// ExitSuccess indicates the file was parsed and linted; any
	// diagnostics were printed successfully.
	ExitSuccess = 0

	// ExitUserError indicates malformed CLI usage, a missing input file,
	// or a malformed suppression/inclusion file (spec §7 "User errors").
	ExitUserError = 64

	// ExitParseError indicates the input failed to parse (spec §7).
	ExitParseError = 65

	// ExitInternalError indicates an invariant violation inside the
	// classifier or grammar (spec §7 "Internal errors").
	ExitInternalError = 70
)
