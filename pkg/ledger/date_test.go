package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, "2025-01-15", d.String())

	_, err = ParseDate("15/01/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDate_MonthKey(t *testing.T) {
	assert.Equal(t, "2025-01", MustParseDate("2025-01-15").MonthKey())
	assert.Equal(t, "2025-12", MustParseDate("2025-12-01").MonthKey())
	assert.Empty(t, Date{}.MonthKey())
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParseDate("2025-06-15")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDate_UnmarshalVariants(t *testing.T) {
	var d Date

	require.NoError(t, json.Unmarshal([]byte(`"2025-06-15T10:30:00Z"`), &d))
	assert.Equal(t, "2025-06-15", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"June 15"`), &d))
}

func TestValidMonthKey(t *testing.T) {
	assert.True(t, ValidMonthKey("2025-06"))
	assert.False(t, ValidMonthKey("2025-6"))
	assert.False(t, ValidMonthKey("2025-13"))
	assert.False(t, ValidMonthKey("June 2025"))
	assert.False(t, ValidMonthKey(""))
}

func TestMonthKeyOf(t *testing.T) {
	assert.Equal(t, "2025-06", MonthKeyOf(testNow))
}
