package types

// Record is one header-plus-content unit written to the output for a matched file.
type Record struct {
	// Path is the display path written in the header, e.g. "./a/x.cpp"
	Path string `json:"path"`

	// Bytes is the number of content bytes written (0 when Err is set)
	Bytes int `json:"bytes"`

	// Err is the read error inlined in place of the content, if any
	Err error `json:"-"`
}

// Failed reports whether the record carries an inline read error instead of content.
func (r Record) Failed() bool {
	return r.Err != nil
}

// Result summarizes a completed pack run.
type Result struct {
	Output     string   `json:"output"`
	Records    []Record `json:"records"`
	Skipped    int      `json:"skipped"`    // files without a matching extension
	PrunedDirs int      `json:"prunedDirs"` // subtrees removed by the ignore set
}

// Files returns the number of records written.
func (r *Result) Files() int {
	return len(r.Records)
}

// Failed returns the number of records written with an inline read error.
func (r *Result) Failed() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Failed() {
			n++
		}
	}
	return n
}

// Summary is the reportable view of a Result
type Summary struct {
	Output     string   `json:"output"`
	Files      int      `json:"files"`
	Failed     int      `json:"failed"`
	Skipped    int      `json:"skipped"`
	PrunedDirs int      `json:"prunedDirs"`
	Unreadable []string `json:"unreadable,omitempty"`
}

// Summary condenses the result for display
func (r *Result) Summary() Summary {
	s := Summary{
		Output:     r.Output,
		Files:      r.Files(),
		Failed:     r.Failed(),
		Skipped:    r.Skipped,
		PrunedDirs: r.PrunedDirs,
	}
	for _, rec := range r.Records {
		if rec.Failed() {
			s.Unreadable = append(s.Unreadable, rec.Path)
		}
	}
	return s
}

// Confirmation is the line reported to the user once the output is written
func (s Summary) Confirmation() string {
	return "Done! Code saved to " + s.Output
}
