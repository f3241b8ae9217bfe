// Package access holds the trial/subscription gate policy. The
// predicates are pure functions of a user and a clock reading so that
// every protected request can evaluate them fresh against its own
// wall-clock instant.
package access

import (
	"time"

	"flashcards/internal/models"
)

// TrialDuration is the free window granted at registration.
const TrialDuration = 24 * time.Hour

// TrialActive reports whether now still falls inside the user's trial
// window. The comparison is strict: at the exact expiry instant the
// trial is over.
func TrialActive(user *models.User, now time.Time) bool {
	return now.Before(user.TrialStart.Add(TrialDuration))
}

// SubscriptionActive reports whether the user holds a paid subscription
// that has not yet ended. Users without a subscription end date have
// never subscribed.
func SubscriptionActive(user *models.User, now time.Time) bool {
	return user.SubscriptionEnd != nil && now.Before(*user.SubscriptionEnd)
}

// HasAccess grants access when either window is open. A live trial is
// not voided by a missing subscription, and a subscription bought
// before or after trial expiry counts on its own.
func HasAccess(user *models.User, now time.Time) bool {
	return TrialActive(user, now) || SubscriptionActive(user, now)
}
