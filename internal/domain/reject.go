package domain

import "errors"

// RejectKind classifies why a submission was turned down. Every kind is
// user-recoverable; there is no fatal class.
type RejectKind string

const (
	// RejectMissingField means one or more required inputs were absent.
	RejectMissingField RejectKind = "missing_field"
	// RejectConstraint means a value was present but violates a rule.
	RejectConstraint RejectKind = "constraint_violation"
	// RejectDuplicateKey means a per-user uniqueness rule was violated.
	RejectDuplicateKey RejectKind = "duplicate_key"
	// RejectNoChange means an edit was identical to the stored record.
	RejectNoChange RejectKind = "no_change"
	// RejectReference means a record points at an entity the user does not have.
	RejectReference RejectKind = "referential_mismatch"
	// RejectAuth means credentials or the confirmation password did not match.
	RejectAuth RejectKind = "authentication_failure"
)

// Reject is a single user-facing rejection. Validators report exactly one
// reason per submission; Reason is the text shown to the user.
type Reject struct {
	Kind   RejectKind
	Reason string
}

func (r *Reject) Error() string { return r.Reason }

// NewReject builds a rejection of the given kind.
func NewReject(kind RejectKind, reason string) *Reject {
	return &Reject{Kind: kind, Reason: reason}
}

// AsReject unwraps err into a Reject if it is one.
func AsReject(err error) (*Reject, bool) {
	var r *Reject
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
