package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-11 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2024, time.March, 11, hour, min, 0, 0, time.UTC)
}

func TestEndWindow(t *testing.T) {
	earliest, latest := EndWindow(90, monday(10, 0))

	assert.Equal(t, monday(12, 0), earliest)
	assert.Equal(t, monday(12, 30), latest)
}

func TestValidateDuration(t *testing.T) {
	rules := NewScheduleRules(time.UTC)
	film := &Film{ID: 1, Runtime: 90}

	tests := []struct {
		name     string
		film     *Film
		end      time.Time
		wantRule Rule
		wantMsg  string
	}{
		{name: "earliest end", film: film, end: monday(12, 0)},
		{name: "inside window", film: film, end: monday(12, 15)},
		{name: "latest end", film: film, end: monday(12, 30)},
		{
			name:     "one minute too short",
			film:     film,
			end:      monday(11, 59),
			wantRule: RuleTooShort,
			wantMsg:  "the showtime must end at 12:00 at the earliest",
		},
		{
			name:     "one minute too long",
			film:     film,
			end:      monday(12, 31),
			wantRule: RuleTooLong,
			wantMsg:  "the showtime must end at 12:30 at the latest",
		},
		{name: "unknown runtime passes", film: &Film{ID: 2}, end: monday(18, 0)},
		{name: "nil film passes", film: nil, end: monday(18, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.ValidateDuration(tt.film, monday(10, 0), tt.end)

			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			rule, ok := ViolationRule(err)
			require.True(t, ok, "expected a rule violation, got %v", err)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateDurationBoundaries(t *testing.T) {
	rules := NewScheduleRules(time.UTC)

	for _, runtime := range []int{1, 45, 90, 137, 240} {
		film := &Film{Runtime: runtime}
		start := monday(9, 0)
		earliest, latest := EndWindow(runtime, start)

		for offset := -2 * time.Minute; offset <= 2*time.Minute; offset += time.Minute {
			assert.Equal(t, offset >= 0, rules.ValidateDuration(film, start, earliest.Add(offset)) == nil,
				"runtime %d, earliest%+v", runtime, offset)
			assert.Equal(t, offset <= 0, rules.ValidateDuration(film, start, latest.Add(offset)) == nil,
				"runtime %d, latest%+v", runtime, offset)
		}
	}
}

func TestValidateBusinessHours(t *testing.T) {
	rules := NewScheduleRules(time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantRule Rule
	}{
		{name: "monday morning", start: monday(10, 0), end: monday(12, 0)},
		{name: "opening time", start: monday(9, 0), end: monday(11, 0)},
		{name: "ends exactly at closing", start: monday(18, 0), end: monday(20, 0)},
		{name: "friday", start: monday(10, 0).AddDate(0, 0, 4), end: monday(12, 0).AddDate(0, 0, 4)},
		{
			name:     "saturday",
			start:    monday(10, 0).AddDate(0, 0, 5),
			end:      monday(12, 0).AddDate(0, 0, 5),
			wantRule: RuleWeekday,
		},
		{
			name:     "sunday outside hours still reports weekday",
			start:    monday(7, 0).AddDate(0, 0, 6),
			end:      monday(23, 0).AddDate(0, 0, 6),
			wantRule: RuleWeekday,
		},
		{
			name:     "spans two days",
			start:    monday(19, 0),
			end:      monday(9, 30).AddDate(0, 0, 1),
			wantRule: RuleSameDay,
		},
		{name: "before opening", start: monday(8, 59), end: monday(11, 0), wantRule: RuleOpeningHour},
		{name: "one minute after closing", start: monday(18, 0), end: monday(20, 1), wantRule: RuleClosingHour},
		{
			name:     "one second after closing",
			start:    monday(18, 0),
			end:      monday(20, 0).Add(time.Second),
			wantRule: RuleClosingHour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.ValidateBusinessHours(tt.start, tt.end)

			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			rule, ok := ViolationRule(err)
			require.True(t, ok, "expected a rule violation, got %v", err)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestValidateBusinessHoursUsesLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	rules := NewScheduleRules(paris)

	// 08:30 UTC is 09:30 in Paris in March (UTC+1).
	start := time.Date(2024, time.March, 11, 8, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 11, 10, 30, 0, 0, time.UTC)
	assert.NoError(t, rules.ValidateBusinessHours(start, end))

	// 19:30 UTC is 20:30 in Paris.
	start = time.Date(2024, time.March, 11, 17, 0, 0, 0, time.UTC)
	end = time.Date(2024, time.March, 11, 19, 30, 0, 0, time.UTC)
	assert.ErrorIs(t, rules.ValidateBusinessHours(start, end), &RuleViolationError{Rule: RuleClosingHour})
}

func TestValidate(t *testing.T) {
	rules := NewScheduleRules(time.UTC)
	film := &Film{ID: 1, Runtime: 90}

	t.Run("valid showtime", func(t *testing.T) {
		assert.NoError(t, rules.Validate(film, monday(10, 0), monday(12, 0)))
	})

	t.Run("end before start", func(t *testing.T) {
		err := rules.Validate(film, monday(12, 0), monday(10, 0))
		assert.ErrorIs(t, err, &RuleViolationError{Rule: RuleInvalidInterval})
	})

	t.Run("weekday is reported before duration", func(t *testing.T) {
		saturday := monday(10, 0).AddDate(0, 0, 5)
		err := rules.Validate(film, saturday, saturday.Add(10*time.Minute))
		assert.ErrorIs(t, err, &RuleViolationError{Rule: RuleWeekday})
	})

	t.Run("every violation is a business rule error", func(t *testing.T) {
		err := rules.Validate(film, monday(10, 0), monday(11, 0))
		assert.ErrorIs(t, err, ErrBusinessRule)
		assert.False(t, errors.Is(err, ErrRecordNotFound))
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		s1, e1 time.Time
		s2, e2 time.Time
		want   bool
	}{
		{name: "touching endpoints", s1: monday(10, 0), e1: monday(12, 0), s2: monday(12, 0), e2: monday(14, 0), want: true},
		{name: "touching reversed", s1: monday(12, 0), e1: monday(14, 0), s2: monday(10, 0), e2: monday(12, 0), want: true},
		{name: "partial overlap", s1: monday(10, 0), e1: monday(12, 0), s2: monday(11, 0), e2: monday(13, 0), want: true},
		{name: "contained", s1: monday(10, 0), e1: monday(14, 0), s2: monday(11, 0), e2: monday(12, 0), want: true},
		{name: "identical", s1: monday(10, 0), e1: monday(12, 0), s2: monday(10, 0), e2: monday(12, 0), want: true},
		{name: "disjoint", s1: monday(10, 0), e1: monday(12, 0), s2: monday(12, 1), e2: monday(14, 0), want: false},
		{name: "disjoint reversed", s1: monday(15, 0), e1: monday(16, 0), s2: monday(10, 0), e2: monday(12, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1), "overlap must be symmetric")
			assert.Equal(t, !(tt.e1.Before(tt.s2) || tt.e2.Before(tt.s1)), Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
		})
	}
}

func TestDetectOverlap(t *testing.T) {
	existing := []Showtime{
		{ID: 1, Start: monday(10, 0), End: monday(12, 0)},
		{ID: 2, Start: monday(14, 0), End: monday(16, 0)},
	}

	t.Run("free slot", func(t *testing.T) {
		assert.NoError(t, DetectOverlap(existing, monday(12, 1), monday(13, 59), ScopeRoom))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.NoError(t, DetectOverlap(nil, monday(10, 0), monday(12, 0), ScopeFilm))
	})

	t.Run("room conflict names the other showtime", func(t *testing.T) {
		err := DetectOverlap(existing, monday(11, 0), monday(13, 0), ScopeRoom)

		assert.ErrorIs(t, err, ErrRoomOverlap)
		assert.NotErrorIs(t, err, ErrFilmOverlap)
		assert.Contains(t, err.Error(), "room")
		assert.Contains(t, err.Error(), "showtime 1")
	})

	t.Run("film conflict", func(t *testing.T) {
		err := DetectOverlap(existing, monday(16, 0), monday(18, 0), ScopeFilm)

		assert.ErrorIs(t, err, ErrFilmOverlap)
		assert.Contains(t, err.Error(), "showtime 2")
	})
}

func TestTicketKindUses(t *testing.T) {
	assert.Equal(t, 1, TicketKindSimple.Uses())
	assert.Equal(t, 10, TicketKindGold.Uses())
	assert.False(t, TicketKind("platinum").Valid())

	ticket := NewTicket("Weekend pass", TicketKindGold, 7)
	assert.Equal(t, 10, ticket.RemainingUses)
	assert.False(t, ticket.Exhausted())

	ticket.RemainingUses = 0
	assert.True(t, ticket.Exhausted())
}
