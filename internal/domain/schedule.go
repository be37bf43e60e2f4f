package domain

import (
	"time"
)

const (
	// ChangeoverBuffer is added to a film's runtime for cleaning between showings.
	ChangeoverBuffer = 30 * time.Minute
	// EndSlack is how far past the earliest legal end a showing may still end.
	EndSlack = 30 * time.Minute

	OpeningHour = 9
	ClosingHour = 20
)

// EndWindow returns the earliest and latest legal end of a showing that starts
// at start for a film running runtime minutes.
func EndWindow(runtime int, start time.Time) (earliest, latest time.Time) {
	earliest = start.Add(time.Duration(runtime)*time.Minute + ChangeoverBuffer)
	latest = earliest.Add(EndSlack)

	return earliest, latest
}

// ScheduleRules validates showtime intervals against the film runtime and the
// opening hours of the house, evaluated in the house's local time zone.
type ScheduleRules struct {
	loc *time.Location
}

func NewScheduleRules(loc *time.Location) ScheduleRules {
	if loc == nil {
		loc = time.UTC
	}

	return ScheduleRules{loc: loc}
}

func (r ScheduleRules) Location() *time.Location {
	return r.loc
}

// Validate runs every interval rule for a candidate showing of film and
// returns the first violation. Opening hours are checked before duration.
func (r ScheduleRules) Validate(film *Film, start, end time.Time) error {
	if !end.After(start) {
		return newViolation(RuleInvalidInterval, "the showtime must end after it starts")
	}

	if err := r.ValidateBusinessHours(start, end); err != nil {
		return err
	}

	return r.ValidateDuration(film, start, end)
}

// ValidateDuration checks that end falls inside the window derived from the
// film runtime. A film without a known runtime cannot be checked and passes.
func (r ScheduleRules) ValidateDuration(film *Film, start, end time.Time) error {
	if film == nil || film.Runtime <= 0 {
		return nil
	}

	earliest, latest := EndWindow(film.Runtime, start)

	if end.Before(earliest) {
		return newViolation(RuleTooShort, "the showtime must end at %s at the earliest", r.clock(earliest))
	}

	if end.After(latest) {
		return newViolation(RuleTooLong, "the showtime must end at %s at the latest", r.clock(latest))
	}

	return nil
}

// ValidateBusinessHours rejects showings outside Monday to Friday, spanning
// more than one calendar day, starting before opening or ending after closing.
func (r ScheduleRules) ValidateBusinessHours(start, end time.Time) error {
	localStart := start.In(r.loc)
	localEnd := end.In(r.loc)

	if weekday := localStart.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		return newViolation(RuleWeekday, "showtimes can only be scheduled from Monday to Friday")
	}

	if !sameDay(localStart, localEnd) {
		return newViolation(RuleSameDay, "the showtime must start and end on the same day")
	}

	if localStart.Hour() < OpeningHour {
		return newViolation(RuleOpeningHour, "the first showtimes start at %02d:00", OpeningHour)
	}

	year, month, day := localEnd.Date()
	closing := time.Date(year, month, day, ClosingHour, 0, 0, 0, r.loc)
	if localEnd.After(closing) {
		return newViolation(RuleClosingHour, "the last showtimes end at %02d:00", ClosingHour)
	}

	return nil
}

func (r ScheduleRules) clock(t time.Time) string {
	return t.In(r.loc).Format("15:04")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// Scope is the resource a set of showtimes shares: a film or a room.
type Scope int

const (
	ScopeFilm Scope = iota + 1
	ScopeRoom
)

func (s Scope) String() string {
	switch s {
	case ScopeFilm:
		return "film"
	case ScopeRoom:
		return "room"
	default:
		return "unknown"
	}
}

func (s Scope) rule() Rule {
	if s == ScopeFilm {
		return RuleFilmOverlap
	}

	return RuleRoomOverlap
}

// Overlaps reports whether the closed intervals [s1, e1] and [s2, e2] share
// at least one instant. Touching endpoints overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}

// DetectOverlap scans showtimes already filtered to one film or room and
// returns a violation for the first one conflicting with [start, end].
// Callers exclude the showtime being updated themselves.
func DetectOverlap(existing []Showtime, start, end time.Time, scope Scope) error {
	for _, other := range existing {
		if Overlaps(start, end, other.Start, other.End) {
			return newViolation(
				scope.rule(),
				"the showtime for this %s overlaps with showtime %d (%s - %s)",
				scope,
				other.ID,
				other.Start.Format(time.RFC3339),
				other.End.Format(time.RFC3339),
			)
		}
	}

	return nil
}
