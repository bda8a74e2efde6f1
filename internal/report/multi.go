package report

import (
	"github.com/vietddude/relaywatch/internal/control"
	"github.com/vietddude/relaywatch/internal/core/domain"
)

// Multi fans every observation out to each sink, in order. Nil sinks are skipped.
type Multi []control.Sink

// NewMulti creates a Multi from sinks.
func NewMulti(sinks ...control.Sink) Multi {
	var m Multi
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

// Report implements control.Sink.
func (m Multi) Report(obs domain.Observation) {
	for _, s := range m {
		s.Report(obs)
	}
}
