package domain

import (
	"time"

	"github.com/google/uuid"
)

// UsageDateLayout is the layout of Visitor.UsageDate.
const UsageDateLayout = "2006-01-02"

// Visitor is an anonymous client identified by a signed cookie.
type Visitor struct {
	ID            uuid.UUID
	UserKey       string
	Fingerprint   string
	LastIP        string
	LastUserAgent string
	UsageDate     string
	UsageCount    int
	CreatedAt     time.Time
	LastSeenAt    time.Time
}

// VisitorIdentity is what the transport layer knows about the caller.
type VisitorIdentity struct {
	ID        uuid.UUID
	IP        string
	UserAgent string
}

// UserKey returns the persistent key used for quota accounting.
func (v VisitorIdentity) UserKey() string { return v.ID.String() }

// Usage is a snapshot of a visitor's daily quota. Limit and Remaining are -1
// for premium visitors.
type Usage struct {
	Used      int
	Remaining int
	Limit     int
	Premium   bool
	Allowed   bool
}

// Unlimited returns the usage snapshot reported for premium visitors.
func Unlimited() Usage {
	return Usage{Used: 0, Remaining: -1, Limit: -1, Premium: true, Allowed: true}
}

// RollOver resets the daily counter when today differs from the stored usage
// date. It reports whether the visitor was modified.
func (v *Visitor) RollOver(today string) bool {
	if v.UsageDate == today {
		return false
	}
	v.UsageDate = today
	v.UsageCount = 0
	return true
}

// Consume rolls the counter over to today and, when under limit, records one
// use. The returned Usage reflects the state after the attempt.
func (v *Visitor) Consume(today string, limit int) Usage {
	v.RollOver(today)

	allowed := v.UsageCount < limit
	if allowed {
		v.UsageCount++
	}

	u := v.Snapshot(limit)
	u.Allowed = allowed
	return u
}

// Snapshot reports the current usage without modifying the visitor.
func (v *Visitor) Snapshot(limit int) Usage {
	return Usage{
		Used:      v.UsageCount,
		Remaining: max(0, limit-v.UsageCount),
		Limit:     limit,
		Allowed:   v.UsageCount < limit,
	}
}
