// Package feed implements the append-only per-player and per-game event-tag
// log, with windowed queries bounded by a count of half-innings.
package feed

const inningSwitchTag = "inningSwitch"

// Events is an append-only sequence of short string tags.
type Events struct {
	events []string
}

// New returns an empty feed.
func New() *Events {
	return &Events{}
}

// Add appends a tag.
func (e *Events) Add(tag string) {
	e.events = append(e.events, tag)
}

// Len returns the number of tags recorded.
func (e *Events) Len() int {
	return len(e.events)
}

// Last returns the most recent tag. It panics if the feed is empty — callers
// must only call this once at least one event has been recorded.
func (e *Events) Last() string {
	if len(e.events) == 0 {
		panic("feed: Last called on empty feed")
	}
	return e.events[len(e.events)-1]
}

// Has reports whether tag appears within the most recent limit half-innings:
// scanning backward, the search stops at the (limit+1)-th "inningSwitch"
// tag (limit = -1 disables the cutoff, searching the whole feed).
func (e *Events) Has(tag string, limit int) bool {
	halfInnings := 0
	for i := len(e.events) - 1; i >= 0; i-- {
		ev := e.events[i]
		if ev == tag {
			return true
		} else if limit != -1 && ev == inningSwitchTag {
			if halfInnings < limit {
				halfInnings++
			} else {
				return false
			}
		}
	}
	return false
}

// Count returns how many times tag appears within the same window Has uses.
func (e *Events) Count(tag string, limit int) int {
	halfInnings := 0
	counter := 0
	for i := len(e.events) - 1; i >= 0; i-- {
		ev := e.events[i]
		if ev == tag {
			counter++
		} else if ev == inningSwitchTag && limit != -1 {
			if halfInnings < limit {
				halfInnings++
			} else {
				return counter
			}
		}
	}
	return counter
}

// StreakMultiple counts occurrences of any tag in tags within the window.
// Like Has/Count it does not stop early on encountering a tag outside the
// given set — only the (limit+1)-th "inningSwitch" boundary ends the scan.
func (e *Events) StreakMultiple(tags []string, limit int) int {
	halfInnings := 0
	counter := 0
	for i := len(e.events) - 1; i >= 0; i-- {
		ev := e.events[i]
		if ev == inningSwitchTag && limit != -1 {
			if halfInnings < limit {
				halfInnings++
			} else {
				return counter
			}
		} else {
			for _, s := range tags {
				if ev == s {
					counter++
				}
			}
		}
	}
	return counter
}
