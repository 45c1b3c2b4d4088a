package setting

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// DefaultYear is used when a date string has no usable number
const DefaultYear = 1500

// DateContext is the structured form of a date string
type DateContext struct {
	Year    int
	Era     entities.Era
	Century int
	Decade  *int
	IsBC    bool
	Month   int
	Day     int

	// Defaulted is true when the input could not be parsed
	Defaulted bool
}

var (
	numberPattern  = regexp.MustCompile(`\d+`)
	leadingPattern = regexp.MustCompile(`^\D{0,3}?(\d+)`)
	bcPattern      = regexp.MustCompile(`(?i)(^|[^a-z])b\.?\s?c\.?(\s?e\.?)?([^a-z]|$)`)
	slashPattern   = regexp.MustCompile(`\d+\s*/\s*\d+\s*/\s*\d+`)
	centuryPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:st|nd|rd|th)\s+century\b`)
	monthPattern   = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\b`)
)

var months = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// CenturyMidpoint is the year within a century a "14th century" style date
// resolves to
const CenturyMidpoint = 50

// ParseDate extracts a year from free text. It never fails: input without a
// number resolves to DefaultYear.
func ParseDate(raw string) DateContext {
	s := strings.TrimSpace(raw)
	tokens := numberPattern.FindAllString(s, -1)
	if len(tokens) == 0 {
		return contextForYear(DefaultYear, false, 0, 0, true)
	}

	isBC := bcPattern.MatchString(s)

	if m := centuryPattern.FindStringSubmatch(s); m != nil {
		if n := atoi(m[1]); n > 0 {
			year := (n-1)*100 + CenturyMidpoint
			if isBC {
				year = -year
			}
			return contextForYear(year, isBC, 0, 0, false)
		}
	}

	var yearToken string
	month, day := 0, 0
	switch {
	case monthPattern.MatchString(s):
		month = months[strings.ToLower(monthPattern.FindStringSubmatch(s)[1])[:3]]
		yearToken, day = yearAndDay(tokens)
	case slashPattern.MatchString(s) && len(tokens) >= 3:
		yearToken = tokens[len(tokens)-1]
		month = atoi(tokens[0])
		day = atoi(tokens[1])
		if month < 1 || month > 12 {
			month = 0
		}
		if day < 1 || day > 31 {
			day = 0
		}
	default:
		if m := leadingPattern.FindStringSubmatch(s); m != nil {
			yearToken = m[1]
		} else {
			yearToken = tokens[len(tokens)-1]
		}
	}

	year, err := strconv.Atoi(yearToken)
	if err != nil {
		return contextForYear(DefaultYear, false, 0, 0, true)
	}
	if isBC {
		year = -year
	}
	return contextForYear(year, isBC, month, day, false)
}

func contextForYear(year int, isBC bool, month, day int, defaulted bool) DateContext {
	ctx := DateContext{
		Year:      year,
		Era:       EraForYear(year),
		Century:   CenturyForYear(year),
		IsBC:      isBC,
		Month:     month,
		Day:       day,
		Defaulted: defaulted,
	}
	if year > 0 {
		decade := year / 10 * 10
		ctx.Decade = &decade
	}
	return ctx
}

// yearAndDay picks the year from the numbers around a month name: the last
// number of three or more digits, else the last number. A remaining number
// from 1 to 31 is the day.
func yearAndDay(tokens []string) (string, int) {
	yearIdx := len(tokens) - 1
	for i := len(tokens) - 1; i >= 0; i-- {
		if len(tokens[i]) >= 3 {
			yearIdx = i
			break
		}
	}
	day := 0
	for i, t := range tokens {
		if i == yearIdx {
			continue
		}
		if d := atoi(t); d >= 1 && d <= 31 {
			day = d
			break
		}
	}
	return tokens[yearIdx], day
}

func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
