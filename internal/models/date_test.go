package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"iso date", "2026-10-17", NewDate(2026, time.October, 17), false},
		{"surrounding whitespace", " 2026-01-02 ", NewDate(2026, time.January, 2), false},
		{"rfc3339 timestamp truncated", "2026-03-04T22:10:00+07:00", NewDate(2026, time.March, 4), false},
		{"european format rejected", "17.10.2026", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestDateOf_UsesLocalCalendarDay(t *testing.T) {
	vientiane := time.FixedZone("ICT", 7*3600)
	// 23:30 UTC on the 16th is already the 17th in UTC+7.
	ts := time.Date(2026, time.October, 16, 23, 30, 0, 0, time.UTC).In(vientiane)
	assert.Equal(t, "2026-10-17", DateOf(ts).String())
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, time.February, 28)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-02-28"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	var zero Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &zero))
	assert.True(t, zero.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`20260228`), &back))
}

func TestDate_YAML(t *testing.T) {
	type holder struct {
		Date Date `yaml:"date"`
	}
	out, err := yaml.Marshal(holder{Date: NewDate(2025, time.December, 1)})
	require.NoError(t, err)
	assert.Contains(t, string(out), "2025-12-01")
	assert.NotContains(t, string(out), "T00:00:00")
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2026, time.September, 30)
	b := NewDate(2026, time.October, 1)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, "2026-09", a.MonthKey())
}
