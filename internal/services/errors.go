package services

import (
	"errors"
	"fmt"
)

// ErrNoAccounts is returned when a listing has no account to belong to.
var ErrNoAccounts = errors.New("no provisioned accounts to own the listing")

// RecordKind names the kind of record being provisioned.
type RecordKind string

const (
	RecordAccount RecordKind = "account"
	RecordListing RecordKind = "listing"
)

// Batch phases reported by FatalBatchError.
const (
	PhaseReset    = "reset"
	PhaseAccounts = "accounts"
	PhaseListings = "listings"
)

// TransientProvisioningError means a single record failed to persist.
type TransientProvisioningError struct {
	Kind    RecordKind
	Index   int
	Attempt int
	Err     error
}

func (e *TransientProvisioningError) Error() string {
	return fmt.Sprintf("%s %d (attempt %d) failed to persist: %v", e.Kind, e.Index, e.Attempt, e.Err)
}

func (e *TransientProvisioningError) Unwrap() error { return e.Err }

// FatalBatchError means a batch invariant cannot be satisfied and the run is aborted.
type FatalBatchError struct {
	Phase string
	Index int
	Err   error
}

func (e *FatalBatchError) Error() string {
	return fmt.Sprintf("seed batch aborted in %s phase at index %d: %v", e.Phase, e.Index, e.Err)
}

func (e *FatalBatchError) Unwrap() error { return e.Err }

// OutcomeKind tags the result of one provisioning operation.
type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota
	// OutcomeRetryable: the record was not persisted but the failure was transient.
	OutcomeRetryable
	// OutcomeFatal: the record cannot be produced at all (e.g. identity space exhausted).
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCreated:
		return "created"
	case OutcomeRetryable:
		return "retryable"
	case OutcomeFatal:
		return "fatal"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}
