package platform

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrClaimed is returned when a work item is already claimed by another worker.
	// It is a concurrency conflict, not a failure - the caller should yield.
	ErrClaimed = errors.New("item claimed by another worker")
	// ErrRecomputeLocked is returned when another worker holds the aggregation
	// lock for the product. The triggering event should be re-enqueued.
	ErrRecomputeLocked = errors.New("product aggregation already in progress")
	// ErrInvalidTransition is returned on a state machine move outside the allowed set.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrArchivedProduct is returned when linking an item to an archived product.
	ErrArchivedProduct = errors.New("can't link to archived product")
	// ErrAlreadyLinked is returned when an item is already linked to another product.
	ErrAlreadyLinked = errors.New("item already linked to another product")
	// ErrEmptyName is returned for items with no usable name. Permanent, never retried.
	ErrEmptyName = errors.New("item has empty name")
)

// IsConflict reports whether err is a concurrency conflict which should be
// yielded or re-enqueued rather than surfaced as a failure.
func IsConflict(err error) bool {
	return errors.Is(err, ErrClaimed) || errors.Is(err, ErrRecomputeLocked)
}

// IsPermanent reports whether err can never succeed on retry.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrArchivedProduct) ||
		errors.Is(err, ErrAlreadyLinked)
}
