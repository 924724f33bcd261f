package generator

// Status is the outcome for one table.
type Status int

const (
	Generated Status = iota // New file written
	Updated                 // Existing file gained relation methods
	Completed               // Existing file gained structural declarations only
	Unchanged               // Existing file already complete
	Skipped                 // Existing file left alone without --force
	Failed                  // Table could not be processed
)

var statusNames = [...]string{
	Generated: "generated",
	Updated:   "updated",
	Completed: "completed",
	Unchanged: "unchanged",
	Skipped:   "skipped",
	Failed:    "failed",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// TableResult is the outcome of processing one table.
type TableResult struct {
	Table    string
	Class    string
	Path     string
	Status   Status
	Err      error   // Set when Status is Failed
	Warnings []error // Degraded relationship inference
}

// Summary counts outcomes across a run.
type Summary struct {
	Generated int
	Updated   int
	Completed int
	Unchanged int
	Skipped   int
	Failed    int
	Results   []TableResult
}

func (s *Summary) add(r TableResult) {
	s.Results = append(s.Results, r)

	switch r.Status {
	case Generated:
		s.Generated++
	case Updated:
		s.Updated++
	case Completed:
		s.Completed++
	case Unchanged:
		s.Unchanged++
	case Skipped:
		s.Skipped++
	case Failed:
		s.Failed++
	}
}

// Written returns the number of files written during the run.
func (s *Summary) Written() int {
	return s.Generated + s.Updated + s.Completed
}
