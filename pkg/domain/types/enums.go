package types

// APIRevision selects which write path the remote service exposes for
// notification settings.
type APIRevision string

const (
	// APIRevisionUser writes settings through PUT /api/v1/user/{id}
	APIRevisionUser APIRevision = "user"
	// APIRevisionSettings writes settings through POST /api/v1/user/{id}/settings/notifications
	APIRevisionSettings APIRevision = "settings"
)

// String returns the string representation of the revision
func (r APIRevision) String() string {
	return string(r)
}

// IsValid checks if the revision is known
func (r APIRevision) IsValid() bool {
	switch r {
	case APIRevisionUser, APIRevisionSettings:
		return true
	default:
		return false
	}
}

// Outcome is the per-user result of an update attempt
type Outcome string

const (
	OutcomeOK   Outcome = "OK"
	OutcomeFail Outcome = "FAIL"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// IsValid checks if the outcome is valid
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeOK, OutcomeFail:
		return true
	default:
		return false
	}
}
