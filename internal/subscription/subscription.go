// Package subscription holds the page-quota and subscription-expiry rules.
// It is deliberately free of storage and transport concerns: callers pass in
// the persisted subscription fields and the current non-deleted page count.
package subscription

import (
	"pagehub/internal/models"
	"time"
)

// FreePageLimit is the number of non-deleted pages a free account may own.
const FreePageLimit = 10

// CanCreate reports whether a principal may create one more page. A paid
// subscription lifts the limit entirely. The check uses the persisted
// subscription status as-is: a lapsed paid subscription still passes until
// some write updates the stored status.
func CanCreate(subscriptionStatus string, activePageCount int) bool {
	return subscriptionStatus == models.SubscriptionPaid || activePageCount < FreePageLimit
}

// Remaining returns how many more pages the principal may create under the
// free limit, or 0 when creation is blocked. Paid accounts are reported
// against the same ceiling for display purposes.
func Remaining(subscriptionStatus string, activePageCount int) int {
	if !CanCreate(subscriptionStatus, activePageCount) {
		return 0
	}
	if activePageCount >= FreePageLimit {
		return 0
	}
	return FreePageLimit - activePageCount
}

// DefaultExpiry returns the expiry assigned when a subscription is set to
// paid without an explicit expiry: one calendar month from now, with
// month-of-year rollover (Jan 31 + 1 month normalizes past Feb).
func DefaultExpiry(now time.Time) time.Time {
	return now.AddDate(0, 1, 0)
}

// NormalizeExpiry returns the expiry to persist for the given target status.
// Any status other than paid clears the expiry unconditionally; paid keeps
// the supplied expiry or falls back to DefaultExpiry.
func NormalizeExpiry(status string, expiry *time.Time, now time.Time) *time.Time {
	if status != models.SubscriptionPaid {
		return nil
	}
	if expiry != nil {
		return expiry
	}
	e := DefaultExpiry(now)
	return &e
}

// EffectiveStatus derives the subscription status to report to callers.
// A paid subscription whose expiry is in the past reads as expired; the
// stored value is never touched here.
func EffectiveStatus(status string, expiry *time.Time, now time.Time) string {
	if status == models.SubscriptionPaid && expiry != nil && expiry.Before(now) {
		return models.SubscriptionExpired
	}
	return status
}
