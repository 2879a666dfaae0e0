package models

// Summary collects the results of a run over one or more files.
type Summary struct {
	// Target is the absolute path that was processed.
	Target string `json:"target"`
	// Command is the operation that ran.
	Command string `json:"command"`
	// Succeeded counts files that did not fail, skipped ones included.
	Succeeded int `json:"succeeded"`
	// Failed counts files whose operation returned an error.
	Failed int `json:"failed"`
	// Skipped counts files left untouched because they were already in the
	// requested state.
	Skipped int          `json:"skipped"`
	Results []FileResult `json:"results"`
}

// Add records r and updates the counters.
func (s *Summary) Add(r FileResult) {
	switch r.Outcome {
	case OutcomeFailed:
		s.Failed++
	case OutcomeSkipped:
		s.Skipped++
		s.Succeeded++
	default:
		s.Succeeded++
	}
	s.Results = append(s.Results, r)
}
