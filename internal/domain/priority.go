package domain

import "time"

const day = 24 * time.Hour

// DaysInQueue returns the whole days elapsed since createdAt. Never negative.
func DaysInQueue(createdAt, now time.Time) int {
	if now.Before(createdAt) {
		return 0
	}
	return int(now.Sub(createdAt) / day)
}

// PriorityFor derives the moderation queue priority from item age.
// More than 6 days is urgent, more than 3 days is high.
func PriorityFor(createdAt, now time.Time) Priority {
	days := DaysInQueue(createdAt, now)
	switch {
	case days > 6:
		return PriorityUrgent
	case days > 3:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}
