package gamification

import "time"

// sameDay reports whether two instants fall on the same calendar day in UTC.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// NextStreak computes the streak value after activity at now. Activity on the
// same day keeps the current streak, activity on the day after the last
// active date extends it by one, and anything later starts over at 1. A user
// with no recorded activity starts at 1.
func NextStreak(lastActive *time.Time, now time.Time, current int) int {
	if lastActive == nil {
		return 1
	}
	if sameDay(*lastActive, now) {
		if current < 1 {
			return 1
		}
		return current
	}
	if sameDay(lastActive.Add(24*time.Hour), now) {
		return current + 1
	}
	return 1
}

// StreakExpired reports whether a streak should be zeroed: the last activity
// is neither today nor yesterday.
func StreakExpired(lastActive *time.Time, now time.Time) bool {
	if lastActive == nil {
		return false
	}
	return !sameDay(*lastActive, now) && !sameDay(lastActive.Add(24*time.Hour), now)
}

// DateString formats an instant as the ISO date key used by DailyProgress
// rows.
func DateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
