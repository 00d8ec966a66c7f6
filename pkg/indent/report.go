package indent

// Filter decides whether a mistake survives the suppression/inclusion
// pass (spec §4.7). Implemented by pkg/suppress.List; declared here
// rather than there so pkg/indent stays the leaf package — suppress
// depends on indent, not the other way around.
type Filter interface {
	// Allowed reports whether the (file, line, col1, kind) tag passes the
	// active inclusion list. With no inclusion list active, everything
	// is allowed.
	Allowed(file string, line, col1 int, kind Kind) bool

	// Suppress reports whether the tag matches a configured suppression,
	// marking it used as a side effect when it does.
	Suppress(file string, line, col1 int, kind Kind) bool
}

// Report is the process-wide accumulator mistakes are recorded into
// during a walk (spec §3): which lines are "topic" lines worth showing
// in context, and which mistakes landed on which line. Unused
// suppression tags are tracked by the Filter itself (pkg/suppress.List),
// not duplicated here.
type Report struct {
	File             string
	CensusWhitespace bool
	Filter           Filter

	TopicLines   map[int]bool
	MistakeLines map[int][]Mistake
}

// NewReport creates an empty accumulator for one file.
func NewReport(file string, filter Filter, censusWhitespace bool) *Report {
	return &Report{
		File:             file,
		CensusWhitespace: censusWhitespace,
		Filter:           filter,
		TopicLines:       make(map[int]bool),
		MistakeLines:     make(map[int][]Mistake),
	}
}

// Recorder returns a MistakeFunc that applies this report's filter and
// records surviving mistakes, ready to pass to Walk.
func (r *Report) Recorder() MistakeFunc {
	return func(parentLine int, m Mistake) {
		r.record(parentLine, m)
	}
}

func (r *Report) record(parentLine int, m Mistake) {
	if m.IsCensus {
		// Census entries are not suppressible: they report what shape a
		// construct was inspected as, not a violation, so there is
		// nothing for a suppression tag to match against (spec §6).
		r.MistakeLines[m.Line] = append(r.MistakeLines[m.Line], m)
		r.TopicLines[parentLine] = true
		r.TopicLines[m.Line] = true
		return
	}

	col1 := m.Column + 1

	if r.Filter != nil {
		if !r.Filter.Allowed(r.File, m.Line, col1, m.Kind) {
			return
		}
		if r.Filter.Suppress(r.File, m.Line, col1, m.Kind) {
			if !r.CensusWhitespace {
				return
			}
			m.Description = "SUPPRESSION " + m.Description
		}
	}

	r.MistakeLines[m.Line] = append(r.MistakeLines[m.Line], m)
	r.TopicLines[parentLine] = true
	r.TopicLines[m.Line] = true
}
