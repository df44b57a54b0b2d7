package domain

// CancelOutcome is the result of asking the provider to cancel one message.
type CancelOutcome int

const (
	// CancelOutcomeCancelled means the provider accepted the cancellation.
	CancelOutcomeCancelled CancelOutcome = iota + 1
	// CancelOutcomeRejected means the provider refused or could not be reached.
	// The usual cause is that the message was already delivered.
	CancelOutcomeRejected
)

func (o CancelOutcome) String() string {
	switch o {
	case CancelOutcomeCancelled:
		return "cancelled"
	case CancelOutcomeRejected:
		return "rejected"
	}
	return "unknown"
}

// CancelResult is returned by the messaging gateway instead of an error so
// callers decide explicitly what a rejection means.
type CancelResult struct {
	Outcome CancelOutcome
	// ProviderCode is the provider error code for rejections, 0 if none.
	ProviderCode int
	Reason       string
}

// Cancelled builds a successful result.
func Cancelled() CancelResult {
	return CancelResult{Outcome: CancelOutcomeCancelled}
}

// Rejected builds a failed result.
func Rejected(code int, reason string) CancelResult {
	return CancelResult{Outcome: CancelOutcomeRejected, ProviderCode: code, Reason: reason}
}

func (r CancelResult) IsCancelled() bool {
	return r.Outcome == CancelOutcomeCancelled
}
