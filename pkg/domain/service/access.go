package service

import "storefront/pkg/domain/model"

type Decision int

const (
	// DecisionPending defers the decision while the session is still resolving.
	DecisionPending Decision = iota
	DecisionDeny
	DecisionAdmit
)

// DecideAccess is the admin gate: a pure predicate over the session snapshot,
// evaluated fresh on every navigation with no memory across calls. While
// loading it admits nothing and denies nothing.
func DecideAccess(session *model.Session, profile *model.Profile, loading bool) Decision {
	if loading {
		return DecisionPending
	}
	if session == nil || !profile.IsAdmin() {
		return DecisionDeny
	}
	return DecisionAdmit
}
