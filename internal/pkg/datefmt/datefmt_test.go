//go:build unit

package datefmt_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter(t *testing.T) {
	f := datefmt.MustNew(datefmt.DefaultPattern)

	t.Run("parses the default pattern", func(t *testing.T) {
		d, err := f.Parse("05/03/2025")
		require.NoError(t, err)
		assert.Equal(t, calendar.NewDate(2025, time.March, 5), d)
	})

	t.Run("formats with the default pattern", func(t *testing.T) {
		assert.Equal(t, "05/03/2025", f.Format(calendar.NewDate(2025, time.March, 5)))
	})

	t.Run("rejects input in another layout", func(t *testing.T) {
		for _, in := range []string{"2025-03-05", "5/3/2025", "31/02/2025", "", "tomorrow"} {
			_, err := f.Parse(in)
			assert.ErrorIs(t, err, errs.ErrDateFormat, in)
		}
	})

	t.Run("supports other patterns", func(t *testing.T) {
		tests := []struct {
			pattern string
			in      string
			want    calendar.Date
		}{
			{pattern: "yyyy-MM-dd", in: "2025-12-31", want: calendar.NewDate(2025, time.December, 31)},
			{pattern: "MM/dd/yy", in: "12/31/25", want: calendar.NewDate(2025, time.December, 31)},
			{pattern: "d MMM yyyy", in: "7 Jan 2026", want: calendar.NewDate(2026, time.January, 7)},
			{pattern: "yyyy'T'MM'T'dd", in: "2026T01T07", want: calendar.NewDate(2026, time.January, 7)},
		}
		for _, tt := range tests {
			t.Run(tt.pattern, func(t *testing.T) {
				g, err := datefmt.New(tt.pattern)
				require.NoError(t, err)
				got, err := g.Parse(tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.in, g.Format(got))
			})
		}
	})

	t.Run("rejects unsupported patterns", func(t *testing.T) {
		for _, p := range []string{"", "dd/MM", "HH:mm dd/MM/yyyy", "dd/MM/yyyy 2", "'unterminated"} {
			_, err := datefmt.New(p)
			assert.ErrorIs(t, err, datefmt.ErrUnsupportedPattern, p)
		}
	})

	t.Run("rejects literals that read as layout elements", func(t *testing.T) {
		for _, p := range []string{
			"dd/MM/yyyy 'Monday'",
			"'Jan' dd/MM/yyyy",
			"dd/MM/yyyy 'MST'",
			"dd/MM/yyyy 'PM'",
			"_d/MM/yyyy",
			"MMM'uary' d yyyy",
		} {
			_, err := datefmt.New(p)
			assert.ErrorIs(t, err, datefmt.ErrUnsupportedPattern, p)
		}
	})

	t.Run("keeps plain words in quotes", func(t *testing.T) {
		g, err := datefmt.New("'day' dd 'of' MMMM yyyy")
		require.NoError(t, err)
		d := calendar.NewDate(2025, time.March, 5)
		assert.Equal(t, "day 05 of March 2025", g.Format(d))

		got, err := g.Parse("day 05 of March 2025")
		require.NoError(t, err)
		assert.Equal(t, d, got)
	})
}
