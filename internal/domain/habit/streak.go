package habit

import "time"

// CurrentStreak returns the length of the run of consecutive completed days
// ending at today or yesterday.
//
// completed is the set of completed calendar dates in YYYY-MM-DD form; only
// the presence of a key matters. Day boundaries follow now's location, i.e.
// the user's local calendar day, not the UTC day — "did I do it today" must
// flip at local midnight. A streak survives exactly one unmarked day: if
// today has no entry yet but yesterday does, the count starts at yesterday.
// Two or more unmarked days means no active streak.
//
// PRE: dates in completed are well-formed YYYY-MM-DD strings
// POST: returns a count >= 0; completed is not mutated
func CurrentStreak(completed map[string]bool, now time.Time) int {
	today := now.Format(DateLayout)
	cursor := now
	if !completed[today] {
		yesterday := now.AddDate(0, 0, -1)
		if !completed[yesterday.Format(DateLayout)] {
			return 0
		}
		cursor = yesterday
	}

	count := 0
	for completed[cursor.Format(DateLayout)] {
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

// CompletedSet converts a slice of logs into the date set CurrentStreak expects.
// PRE: logs belong to a single habit
// POST: returns a map keyed by log date
func CompletedSet(logs []Log) map[string]bool {
	set := make(map[string]bool, len(logs))
	for _, l := range logs {
		set[l.Date] = true
	}
	return set
}
