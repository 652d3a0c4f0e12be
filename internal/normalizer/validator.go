package normalizer

// Recognized program statuses.
const (
	StatusRolling  = "Accepting applications - rolling basis"
	StatusWaitlist = "Applications on hold/Waitlist"
)

// DefaultStatuses is the built-in status allow-list.
var DefaultStatuses = []string{StatusRolling, StatusWaitlist}

// StatusValidator checks program status strings against an allow-list.
type StatusValidator struct {
	accepted map[string]struct{}
}

// NewStatusValidator creates a validator accepting exactly the given statuses.
// With no statuses it falls back to DefaultStatuses.
func NewStatusValidator(statuses ...string) *StatusValidator {
	if len(statuses) == 0 {
		statuses = DefaultStatuses
	}

	accepted := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		accepted[s] = struct{}{}
	}

	return &StatusValidator{accepted: accepted}
}

// IsValid reports whether status is an exact match for an accepted status.
func (v *StatusValidator) IsValid(status string) bool {
	_, ok := v.accepted[status]
	return ok
}
