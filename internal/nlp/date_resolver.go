package nlp

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var (
	nextWeekdayRe = regexp.MustCompile(`next\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	isoDateRe     = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// DateResolver turns date phrases in free text into a calendar date
// anchored at "now". Explicit relative phrases win over the general
// natural-language search, in a fixed priority order.
type DateResolver struct {
	parser *when.Parser
	now    func() time.Time
}

func NewDateResolver(now func() time.Time) *DateResolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateResolver{parser: w, now: now}
}

// Resolve returns the date in YYYY-MM-DD form, or ok=false when the text
// carries no usable date. Dates strictly in the past are discarded even if
// nothing else matches.
func (r *DateResolver) Resolve(text string) (string, bool) {
	lower := strings.ToLower(text)
	today := dateOnly(r.now())

	// "tomorrow" is a substring of "day after tomorrow", so order matters.
	if strings.Contains(lower, "day after tomorrow") {
		return today.AddDate(0, 0, 2).Format("2006-01-02"), true
	}
	if strings.Contains(lower, "tomorrow") {
		return today.AddDate(0, 0, 1).Format("2006-01-02"), true
	}

	if m := nextWeekdayRe.FindStringSubmatch(lower); m != nil {
		return nextWeekday(today, weekdays[m[1]]).Format("2006-01-02"), true
	}

	for _, tok := range isoDateRe.FindAllString(text, -1) {
		if t, err := time.Parse("2006-01-02", tok); err == nil && !t.Before(today) {
			return tok, true
		}
	}

	// General search: walk candidate spans left to right and take the
	// first one resolving to today or later. ISO tokens were already
	// adjudicated above and must not reach the parser: its clock-time
	// rules read a rejected date's "MM-DD" tail as a time of day.
	remaining := isoDateRe.ReplaceAllString(text, " ")
	for {
		res, err := r.parser.Parse(remaining, r.now())
		if err != nil || res == nil {
			break
		}
		if t := dateOnly(res.Time); !t.Before(today) {
			return t.Format("2006-01-02"), true
		}
		next := res.Index + len(res.Text)
		if next >= len(remaining) {
			break
		}
		remaining = remaining[next:]
	}

	return "", false
}

// nextWeekday returns the next occurrence of target strictly after today;
// when today already is that weekday it jumps a full week.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	ahead := (int(target) - int(today.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return today.AddDate(0, 0, ahead)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
