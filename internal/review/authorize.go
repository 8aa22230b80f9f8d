package review

import "bookreview/internal/platform/apperr"

// Authorize permits a mutation only when actorID wrote r.
func Authorize(actorID string, r Review, action string) error {
	if actorID == "" || actorID != r.UserID() {
		return apperr.Forbidden("You can only " + action + " your own reviews")
	}
	return nil
}

// EnsureNotReviewed rejects a second review of the same book by the same user.
func EnsureNotReviewed(existing *Review) error {
	if existing != nil {
		return apperr.Conflict("You have already reviewed this book")
	}
	return nil
}
