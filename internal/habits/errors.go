// Package habits holds the domain error taxonomy shared by the storage and
// service layers.
package habits

import "errors"

// Business-rule failures are deterministic outcomes: retrying cannot change
// the result, so they are returned to the caller as-is. Storage failures
// wrap ErrTransient instead; retry policy for those belongs to the calling
// layer, not this core.
var (
	ErrHabitNotFound            = errors.New("habit not found")
	ErrInvalidDate              = errors.New("invalid date")
	ErrInsufficientFreezeTokens = errors.New("insufficient freeze tokens")
	ErrAlreadyProtected         = errors.New("day is already protected")
	ErrAlreadyClaimedToday      = errors.New("daily reward already claimed today")
	ErrFutureDate               = errors.New("date is in the future")
	ErrBeforeHabitStart         = errors.New("date is before the habit start date")
	ErrTransient                = errors.New("storage temporarily unavailable")
)

// Kind buckets errors for transport mapping.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindConflict          Kind = "conflict"
	KindResourceExhausted Kind = "resource_exhausted"
	KindState             Kind = "state"
	KindTransient         Kind = "transient"
	KindUnknown           Kind = "unknown"
)

func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrHabitNotFound), errors.Is(err, ErrInvalidDate):
		return KindValidation
	case errors.Is(err, ErrAlreadyProtected), errors.Is(err, ErrAlreadyClaimedToday):
		return KindConflict
	case errors.Is(err, ErrInsufficientFreezeTokens):
		return KindResourceExhausted
	case errors.Is(err, ErrFutureDate), errors.Is(err, ErrBeforeHabitStart):
		return KindState
	case errors.Is(err, ErrTransient):
		return KindTransient
	default:
		return KindUnknown
	}
}
