package adherence

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDays(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  int
		kind  ParamErrorKind
	}{
		{"valid", "days=7", 7, ""},
		{"missing", "", 0, KindDaysRequired},
		{"other param only", "foo=1", 0, KindDaysRequired},
		{"empty", "days=", 0, KindDaysNotInteger},
		{"text", "days=abc", 0, KindDaysNotInteger},
		{"decimal", "days=7.5", 0, KindDaysNotInteger},
		{"zero", "days=0", 0, KindDaysNotPositive},
		{"negative", "days=-5", 0, KindDaysNotPositive},
		{"negative decimal is still not an integer", "days=-1.5", 0, KindDaysNotInteger},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := url.ParseQuery(c.query)
			require.NoError(t, err)

			got, err := ParseDays(q)
			if c.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, c.want, got)
				return
			}

			pe, ok := IsParamError(err)
			require.True(t, ok, "expected ParamError, got %v", err)
			assert.Equal(t, c.kind, pe.Kind)
			assert.NotEmpty(t, pe.Message)
		})
	}
}

func TestParseDays_Messages(t *testing.T) {
	_, err := ParseDays(url.Values{"days": {"abc"}})
	assert.EqualError(t, err, "Days must be a valid integer.")

	_, err = ParseDays(url.Values{"days": {"0"}})
	assert.EqualError(t, err, "Days must be a positive integer greater than zero.")

	_, err = ParseDays(url.Values{})
	assert.EqualError(t, err, "Query parameter 'days' is required.")
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange(url.Values{"start": {"2025-01-01"}, "end": {"2025-01-31"}})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), end)

	bad := []url.Values{
		{},
		{"start": {"2025-01-01"}},
		{"end": {"2025-01-01"}},
		{"start": {"2025-13-01"}, "end": {"2025-01-02"}},
		{"start": {"yesterday"}, "end": {"2025-01-02"}},
	}
	for _, q := range bad {
		_, _, err := ParseDateRange(q)
		pe, ok := IsParamError(err)
		require.True(t, ok, "query %v", q)
		assert.Equal(t, KindInvalidDate, pe.Kind)
	}
}
