package srp

import "github.com/bft-labs/solid/pkg/log"

// ReportGenerator only produces the report artifact.
type ReportGenerator struct {
	log log.Logger
}

// NewReportGenerator creates a generator. A nil logger discards output.
func NewReportGenerator(logger log.Logger) *ReportGenerator {
	return &ReportGenerator{log: log.OrNoop(logger)}
}

// Generate builds the report in memory.
func (g *ReportGenerator) Generate() {
	g.log.Debug("report generated", log.String("by", "ReportGenerator"))
}

// ReportSaver only persists a report artifact.
type ReportSaver struct {
	log log.Logger
}

// NewReportSaver creates a saver. A nil logger discards output.
func NewReportSaver(logger log.Logger) *ReportSaver {
	return &ReportSaver{log: log.OrNoop(logger)}
}

// Save persists the report.
func (s *ReportSaver) Save() {
	s.log.Debug("report saved", log.String("by", "ReportSaver"))
}
