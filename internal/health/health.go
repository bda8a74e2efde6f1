// Package health aggregates the observations of a run into per-category status.
package health

// SystemStatus represents the overall health state of the fleet or a category.
type SystemStatus string

const (
	StatusHealthy  SystemStatus = "healthy"
	StatusDegraded SystemStatus = "degraded"
	StatusCritical SystemStatus = "critical"
)

func (s SystemStatus) rank() int {
	switch s {
	case StatusCritical:
		return 2
	case StatusDegraded:
		return 1
	default:
		return 0
	}
}

// CategoryHealth contains the tallies of one category.
type CategoryHealth struct {
	Category     string       `json:"category"`
	Status       SystemStatus `json:"status"`
	OK           int          `json:"ok"`
	Warn         int          `json:"warn"`
	Error        int          `json:"error"`
	Undetermined int          `json:"undetermined"`
	Failures     []string     `json:"failures,omitempty"`
}

// Report contains the full run summary.
type Report struct {
	SystemStatus SystemStatus     `json:"system_status"`
	Categories   []CategoryHealth `json:"categories"`
}

// Failed reports whether anything in the run needs attention beyond warnings.
func (r Report) Failed() bool {
	for _, c := range r.Categories {
		if c.Error > 0 || c.Undetermined > 0 || len(c.Failures) > 0 {
			return true
		}
	}
	return false
}
