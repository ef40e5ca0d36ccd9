package cancellation

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// PolicyDescription renders the policy as a sentence for customers.
// Unset fields fall back to the defaults; the function never fails.
func PolicyDescription(policy domain.CancellationPolicy) string {
	hours := policy.EffectiveRequiredHours()

	var rule string
	switch hours {
	case 0:
		rule = "Cancellations are allowed at any time before the appointment starts"
	case 1:
		rule = "Cancellations must be made at least 1 hour in advance"
	default:
		rule = fmt.Sprintf("Cancellations must be made at least %d hours in advance", hours)
	}

	switch policy.EffectiveKind() {
	case domain.PolicyModerate:
		return "Moderate policy: " + rule
	case domain.PolicyStrict:
		return "Strict policy: " + rule
	case domain.PolicyCustom:
		return "Custom policy: " + rule
	default:
		return rule
	}
}
