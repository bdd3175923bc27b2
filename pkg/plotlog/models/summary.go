package models

// Result is the outcome of processing a single plot document.
type Result struct {
	// Source is the path of the document that was read.
	Source string `json:"source"`
	// Output is the path written to, empty when nothing was written.
	Output string `json:"output,omitempty"`
	// Converted reports whether the document was switched to a log scale.
	Converted bool `json:"converted"`
	// Samples is the number of usable values extracted.
	Samples int `json:"samples"`
	// Range is the detected data range (zero when no usable data).
	Range AxisRange `json:"range"`
	// Ticks are the decade ticks generated for Range.
	Ticks []Tick `json:"ticks,omitempty"`
}

// Summary aggregates the results of a batch run.
type Summary struct {
	// Examined is the number of documents discovered and processed.
	Examined int `json:"examined"`
	// Converted is the number of documents written with a log scale.
	Converted int `json:"converted"`
	// Failed is the number of documents that could not be processed.
	Failed int `json:"failed"`
	// Errors holds one error per failed document, in processing order.
	Errors []error `json:"-"`
}

// Add records r in s.
func (s *Summary) Add(r Result) {
	s.Examined++
	if r.Converted {
		s.Converted++
	}
}

// Fail records a failed document in s.
func (s *Summary) Fail(err error) {
	s.Examined++
	s.Failed++
	s.Errors = append(s.Errors, err)
}
