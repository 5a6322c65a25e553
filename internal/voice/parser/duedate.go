package parser

import (
	"time"

	"voice-task-tracker/pkg/datemath"
)

type resolveFunc func(cal *datemath.Calendar, now time.Time) time.Time

type dueRule struct {
	phrases []string
	resolve resolveFunc
}

func daysAt(days, hour, minute int) resolveFunc {
	return func(cal *datemath.Calendar, now time.Time) time.Time {
		return cal.At(now, days, hour, minute)
	}
}

func weekdayAt(target time.Weekday, inclusive bool) resolveFunc {
	return func(cal *datemath.Calendar, now time.Time) time.Time {
		return cal.At(now, cal.DaysUntil(now, target, inclusive), defaultDueHour, 0)
	}
}

var dayPeriods = []struct {
	name string
	hour int
}{
	{"morning", morningHour},
	{"afternoon", afternoonHour},
	{"evening", eveningHour},
	{"night", nightHour},
}

// dueRules is evaluated top to bottom; the first rule with a matching phrase wins.
var dueRules = buildDueRules()

func buildDueRules() []dueRule {
	var rules []dueRule

	// "tomorrow morning" must not be swallowed by the plain "tomorrow" rule.
	for _, period := range dayPeriods {
		rules = append(rules, dueRule{[]string{"tomorrow " + period.name}, daysAt(1, period.hour, 0)})
	}

	rules = append(rules,
		dueRule{[]string{"tomorrow"}, daysAt(1, defaultDueHour, 0)},
		dueRule{[]string{"today"}, daysAt(0, defaultDueHour, 0)},
		dueRule{[]string{"next week"}, daysAt(7, defaultDueHour, 0)},
		dueRule{[]string{"next month"}, func(cal *datemath.Calendar, now time.Time) time.Time {
			return cal.AddMonthsAt(now, 1, defaultDueHour, 0)
		}},
		dueRule{[]string{"in 2 days", "in two days"}, daysAt(2, defaultDueHour, 0)},
		dueRule{[]string{"in 3 days", "in three days"}, daysAt(3, defaultDueHour, 0)},
		dueRule{[]string{"in a week", "in one week"}, daysAt(7, defaultDueHour, 0)},
		dueRule{[]string{"end of day", "eod"}, daysAt(0, endOfDayHour, endOfDayMinute)},
		dueRule{[]string{"end of week", "eow"}, weekdayAt(time.Friday, true)},
	)

	// "next/by/on <day>" never resolves to today; "this <day>" may.
	for _, d := range datemath.Weekdays {
		rules = append(rules,
			dueRule{[]string{"next " + d.Name, "by " + d.Name, "on " + d.Name}, weekdayAt(d.Weekday, false)},
			dueRule{[]string{"this " + d.Name}, weekdayAt(d.Weekday, true)},
		)
	}

	for _, period := range dayPeriods {
		rules = append(rules, dueRule{[]string{period.name}, daysAt(0, period.hour, 0)})
	}

	return rules
}

// extractDueDate resolves the first recognised temporal phrase against now.
// The result always carries an explicit time of day with whole seconds.
func (p *Parser) extractDueDate(text string, now time.Time) *time.Time {
	for _, rule := range dueRules {
		if containsAny(text, rule.phrases...) {
			due := rule.resolve(p.calendar, now)
			return &due
		}
	}
	return nil
}
