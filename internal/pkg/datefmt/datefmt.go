package datefmt

import (
	"strings"
	"time"
	"unicode"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/pkg/errs"
)

const DefaultPattern = "dd/MM/yyyy"

var ErrUnsupportedPattern = errs.New("unsupported date pattern")

// pattern letter runs and their time layout equivalents, longest first
var tokens = []struct {
	pattern string
	layout  string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
}

// Formatter parses and renders calendar dates with one configured pattern
// written in the dd/MM/yyyy style.
type Formatter struct {
	pattern string
	layout  string
}

func New(pattern string) (*Formatter, error) {
	layout, err := toLayout(pattern)
	if err != nil {
		return nil, err
	}
	return &Formatter{pattern: pattern, layout: layout}, nil
}

func MustNew(pattern string) *Formatter {
	f, err := New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Pattern() string { return f.pattern }

func (f *Formatter) Parse(s string) (calendar.Date, error) {
	t, err := time.Parse(f.layout, strings.TrimSpace(s))
	if err != nil {
		return calendar.Date{}, errs.Wrapf(errs.ErrDateFormat, "%q does not match %s", s, f.pattern)
	}
	return calendar.DateOf(t), nil
}

func (f *Formatter) Format(d calendar.Date) string {
	return d.Time().Format(f.layout)
}

func (f *Formatter) FormatAll(dates []calendar.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = f.Format(d)
	}
	return out
}

// Reference dates differ in every field a layout element can render, so a
// literal that Go would read as one shows up as a mismatch on at least one.
var referenceDates = []time.Time{
	time.Date(2009, time.November, 23, 0, 0, 0, 0, time.UTC),
	time.Date(2010, time.February, 5, 0, 0, 0, 0, time.UTC),
}

// segment is either literal text or a single layout element.
type segment struct {
	literal string
	layout  string
}

func toLayout(pattern string) (string, error) {
	if pattern == "" {
		return "", errs.Wrap(ErrUnsupportedPattern, "empty pattern")
	}
	var segments []segment
	var hasYear, hasMonth, hasDay bool
	rest := pattern
	for rest != "" {
		r := rune(rest[0])
		switch {
		case r == '\'':
			end := strings.IndexByte(rest[1:], '\'')
			if end < 0 {
				return "", errs.Wrapf(ErrUnsupportedPattern, "unterminated quote in %q", pattern)
			}
			literal := rest[1 : end+1]
			if strings.ContainsFunc(literal, unicode.IsDigit) {
				return "", errs.Wrapf(ErrUnsupportedPattern, "digits in literal of %q", pattern)
			}
			segments = append(segments, segment{literal: literal})
			rest = rest[end+2:]
		case unicode.IsLetter(r):
			matched := false
			for _, tok := range tokens {
				if strings.HasPrefix(rest, tok.pattern) {
					segments = append(segments, segment{layout: tok.layout})
					rest = rest[len(tok.pattern):]
					switch tok.pattern[0] {
					case 'y':
						hasYear = true
					case 'M':
						hasMonth = true
					case 'd':
						hasDay = true
					}
					matched = true
					break
				}
			}
			if !matched {
				return "", errs.Wrapf(ErrUnsupportedPattern, "letter %q in %q", r, pattern)
			}
		case unicode.IsDigit(r):
			return "", errs.Wrapf(ErrUnsupportedPattern, "digit in %q", pattern)
		default:
			segments = append(segments, segment{literal: rest[:1]})
			rest = rest[1:]
		}
	}
	if !hasYear || !hasMonth || !hasDay {
		return "", errs.Wrapf(ErrUnsupportedPattern, "%q must contain year, month and day", pattern)
	}

	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.layout + seg.literal)
	}
	layout := b.String()
	if err := checkRoundTrip(pattern, layout, segments); err != nil {
		return "", err
	}
	return layout, nil
}

// checkRoundTrip rejects layouts where literal text, alone or joined to a
// neighbouring element, reads as a time layout element (Mon, MST, _2,
// Jan+uary). Each segment is rendered on its own and the whole layout must
// render the same text and parse it back to the same date.
func checkRoundTrip(pattern, layout string, segments []segment) error {
	for _, ref := range referenceDates {
		var want strings.Builder
		for _, seg := range segments {
			if seg.layout != "" {
				want.WriteString(ref.Format(seg.layout))
			} else {
				want.WriteString(seg.literal)
			}
		}
		if got := ref.Format(layout); got != want.String() {
			return errs.Wrapf(ErrUnsupportedPattern, "literal text in %q reads as a layout element", pattern)
		}
		parsed, err := time.Parse(layout, want.String())
		if err != nil || !parsed.Equal(ref) {
			return errs.Wrapf(ErrUnsupportedPattern, "%q does not round-trip", pattern)
		}
	}
	return nil
}
