package entry

// Outcome classifies how a single entry attempt ended. It drives the session
// continuation state machine.
type Outcome int

const (
	// OutcomeSuccess means a trade row was inserted.
	OutcomeSuccess Outcome = iota
	// OutcomeCancelled means the user declined the duplicate override;
	// earlier location and villager commits stand.
	OutcomeCancelled
	// OutcomeFull means the villager already holds four trades.
	OutcomeFull
	// OutcomeError means a storage failure interrupted the attempt.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFull:
		return "full"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}
