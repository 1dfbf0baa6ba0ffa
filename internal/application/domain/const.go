package domain

// Status represents the review workflow state of a merchant application.
type Status string

const (
	// StatusDraft is an application being filled in by the client.
	StatusDraft Status = "draft"
	// StatusSubmitted is an application handed off for compliance review.
	StatusSubmitted Status = "submitted"
	// StatusUnderReview is an application an admin has started reviewing.
	StatusUnderReview Status = "under_review"
	// StatusApproved is an application cleared for downstream partner systems.
	StatusApproved Status = "approved"
	// StatusRejected is an application declined during review.
	StatusRejected Status = "rejected"
)

// Valid reports whether the status is one of the known workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// statusTransitions maps each status to the statuses it may move to.
// Approved and rejected are terminal.
var statusTransitions = map[Status][]Status{
	StatusDraft:       {StatusSubmitted},
	StatusSubmitted:   {StatusUnderReview, StatusRejected},
	StatusUnderReview: {StatusApproved, StatusRejected},
}

// CanTransitionTo reports whether the review workflow allows moving from the
// current status to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
