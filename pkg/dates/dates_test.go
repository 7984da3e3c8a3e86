package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("01/01/2021")
	require.NoError(t, err)
	assert.Equal(t, 2021, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, 0, got.Hour(), "time of day must be zeroed")
	assert.Equal(t, 0, got.Minute())
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2021-01-01", "01-01-2021", "abc", "1/2", "dd/mm/yyyy"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestFormat(t *testing.T) {
	d := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "01/01/2021", Format(d))

	d = time.Date(1999, time.December, 31, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "31/12/1999", Format(d))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{
		"01/01/2021",
		"29/02/2020", // leap day
		"31/12/1999",
		"05/09/2003",
		"15/06/2019",
	} {
		d, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Format(d))
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, d := range []time.Time{
		time.Date(2020, time.February, 29, 0, 0, 0, 0, time.Local),
		time.Date(2021, time.July, 4, 0, 0, 0, 0, time.Local),
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.Local),
	} {
		got, err := Parse(Format(d))
		require.NoError(t, err)
		assert.True(t, got.Equal(d), "parse(format(%v)) = %v", d, got)
	}
}

func TestISO(t *testing.T) {
	d := time.Date(2021, time.March, 7, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2021-03-07", ISO(d))
}

func TestDisplay(t *testing.T) {
	d := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "01 Jan 2021", Display(d))

	ts := time.Date(2021, time.January, 1, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "01 Jan 2021, 09:05", DisplayTime(ts))
}

func TestBeforeToday(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	assert.True(t, BeforeToday(yesterday), "yesterday must be accepted")
	assert.False(t, BeforeToday(now), "today must be rejected")
	assert.False(t, BeforeToday(tomorrow), "tomorrow must be rejected")

	// The comparison is day-granular: today at 00:00 is still today.
	todayMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	assert.False(t, BeforeToday(todayMidnight))

	// And late yesterday is still yesterday, whatever the current hour.
	lateYesterday := todayMidnight.Add(-time.Minute)
	assert.True(t, BeforeToday(lateYesterday))
}
