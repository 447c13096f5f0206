package constants

// RunStatus is the canonical status for rows in processing_runs.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunSuccess RunStatus = "SUCCESS" // totals reconciled within tolerance
	RunWarning RunStatus = "WARNING" // minor discrepancy, invoice kept
	RunFailed  RunStatus = "FAILED"  // declared total mismatch beyond tolerance
)

// RunStatuses holds the allowed values for the status field in ProcessingRun.
var RunStatuses = []string{
	string(RunSuccess),
	string(RunWarning),
	string(RunFailed),
}
