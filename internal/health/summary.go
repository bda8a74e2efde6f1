package health

import (
	"github.com/vietddude/relaywatch/internal/core/domain"
)

// Summary tallies observations per category. It is a control.Sink.
type Summary struct {
	order      []string
	categories map[string]*CategoryHealth
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{categories: make(map[string]*CategoryHealth)}
}

func (s *Summary) get(category string) *CategoryHealth {
	h, ok := s.categories[category]
	if !ok {
		h = &CategoryHealth{Category: category, Status: StatusHealthy}
		s.categories[category] = h
		s.order = append(s.order, category)
	}
	return h
}

// Report implements control.Sink.
func (s *Summary) Report(obs domain.Observation) {
	h := s.get(obs.Category)
	switch {
	case !obs.Determined():
		h.Undetermined++
	case obs.Severity == domain.SeverityError:
		h.Error++
	case obs.Severity == domain.SeverityWarn:
		h.Warn++
	default:
		h.OK++
	}
}

// Fail records a failure that kept a category from being checked.
func (s *Summary) Fail(category string, err error) {
	h := s.get(category)
	h.Failures = append(h.Failures, err.Error())
}

// Snapshot evaluates category status and aggregates it (worst case wins).
func (s *Summary) Snapshot() Report {
	report := Report{SystemStatus: StatusHealthy}

	for _, name := range s.order {
		h := *s.categories[name]
		h.Failures = append([]string(nil), h.Failures...)

		switch {
		case h.Error > 0 || len(h.Failures) > 0:
			h.Status = StatusCritical
		case h.Warn > 0 || h.Undetermined > 0:
			h.Status = StatusDegraded
		default:
			h.Status = StatusHealthy
		}

		if h.Status.rank() > report.SystemStatus.rank() {
			report.SystemStatus = h.Status
		}
		report.Categories = append(report.Categories, h)
	}
	return report
}
