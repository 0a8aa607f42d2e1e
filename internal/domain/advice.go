package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdviceStaleAfter is how long a generated plan or review stays fresh.
const AdviceStaleAfter = 7 * 24 * time.Hour

// Plan is an AI-generated meal plan, one per user. Regeneration overwrites
// the text and timestamp in place.
type Plan struct {
	UserID      uuid.UUID
	Text        string
	GeneratedAt time.Time
}

// IsStale reports whether the plan should be regenerated.
func (p *Plan) IsStale(now time.Time) bool {
	return now.Sub(p.GeneratedAt) > AdviceStaleAfter
}

// Review is an AI-generated progress review, one per user.
type Review struct {
	UserID      uuid.UUID
	Text        string
	GeneratedAt time.Time
}

// IsStale reports whether the review should be regenerated.
func (r *Review) IsStale(now time.Time) bool {
	return now.Sub(r.GeneratedAt) > AdviceStaleAfter
}
