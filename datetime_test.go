package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTimeVariants(t *testing.T) {
	t.Parallel()
	examples := []struct {
		desc string
		raw  string
		kind DateTimeKind
	}{
		{desc: "offset Z", raw: "1979-05-27T07:32:00Z", kind: OffsetDateTimeKind},
		{desc: "offset explicit", raw: "1979-05-27T00:32:00-07:00", kind: OffsetDateTimeKind},
		{desc: "local datetime", raw: "1979-05-27T07:32:00", kind: LocalDateTimeKind},
		{desc: "local date", raw: "1979-05-27", kind: LocalDateKind},
		{desc: "local time", raw: "07:32:00", kind: LocalTimeKind},
	}
	for _, ex := range examples {
		ex := ex
		t.Run(ex.desc, func(t *testing.T) {
			t.Parallel()
			dt, err := parseDateTime(ex.raw)
			require.NoError(t, err)
			assert.Equal(t, ex.kind, dt.Kind)
			assert.Equal(t, ex.raw, dt.String())
		})
	}
}

// The canonical String() form pads sub-second fractions to nanosecond
// width; it is never used to decide what bytes a parsed value serializes
// as (Value.Raw keeps the original spelling for that), so a shorter
// fraction in the input is expected to not round-trip through String().
func TestParseDateTimeFractionalSeconds(t *testing.T) {
	t.Parallel()
	dt, err := parseDateTime("1979-05-27T07:32:00.999999")
	require.NoError(t, err)
	assert.Equal(t, LocalDateTimeKind, dt.Kind)
	assert.Equal(t, 999999000, dt.Time.Nanosecond)
}

func TestDateTimeAsTime(t *testing.T) {
	t.Parallel()
	dt, err := parseDateTime("1979-05-27T07:32:00-07:00")
	require.NoError(t, err)
	tm := dt.AsTime()
	assert.Equal(t, 1979, tm.Year())
	assert.Equal(t, 7, tm.Hour())
	_, offset := tm.Zone()
	assert.Equal(t, -7*3600, offset)
}

func TestParseDateTimeInvalidMonth(t *testing.T) {
	t.Parallel()
	_, err := parseDateTime("1979-13-27")
	assert.Error(t, err)
}
