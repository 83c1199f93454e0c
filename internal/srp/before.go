package srp

import "github.com/bft-labs/solid/pkg/log"

// Report generates and saves itself. Anti-example: a change to the storage
// format and a change to the report layout both land in this type.
type Report struct {
	log log.Logger
}

// NewReport creates the combined report.
func NewReport(logger log.Logger) *Report {
	return &Report{log: log.OrNoop(logger)}
}

// Generate builds the report in memory.
func (r *Report) Generate() {
	r.log.Debug("report generated", log.String("by", "Report"))
}

// SaveToFile persists the report.
func (r *Report) SaveToFile() {
	r.log.Debug("report saved", log.String("by", "Report"))
}
