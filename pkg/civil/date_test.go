package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 14), d)

	_, err = ParseDate("14/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{"forward", NewDate(2026, time.March, 14), 10, NewDate(2026, time.March, 24)},
		{"backward", NewDate(2026, time.March, 14), -14, NewDate(2026, time.February, 28)},
		{"across year end", NewDate(2026, time.December, 30), 5, NewDate(2027, time.January, 4)},
		{"leap february", NewDate(2028, time.February, 28), 1, NewDate(2028, time.February, 29)},
		{"zero", NewDate(2026, time.March, 14), 0, NewDate(2026, time.March, 14)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.AddDays(tt.n))
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	today := NewDate(2026, time.March, 14)

	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, 1, today.DaysUntil(NewDate(2026, time.March, 15)))
	assert.Equal(t, -1, today.DaysUntil(NewDate(2026, time.March, 13)))
	assert.Equal(t, 31, today.DaysUntil(NewDate(2026, time.April, 14)))
	assert.Equal(t, -365, NewDate(2027, time.March, 14).DaysUntil(today))
}

func TestDate_Comparisons(t *testing.T) {
	a := NewDate(2026, time.March, 14)
	b := NewDate(2026, time.March, 15)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.True(t, Date{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestDate_Text(t *testing.T) {
	d := NewDate(2026, time.March, 14)
	assert.Equal(t, "2026-03-14", d.String())

	data, err := d.MarshalText()
	require.NoError(t, err)

	var back Date
	require.NoError(t, back.UnmarshalText(data))
	assert.Equal(t, d, back)

	assert.Error(t, back.UnmarshalText([]byte("not-a-date")))
}

func TestDate_YAML(t *testing.T) {
	type doc struct {
		Due Date `yaml:"due"`
	}

	var got doc
	require.NoError(t, yaml.Unmarshal([]byte("due: 2026-03-14\n"), &got))
	assert.Equal(t, NewDate(2026, time.March, 14), got.Due)

	out, err := yaml.Marshal(doc{Due: NewDate(2026, time.March, 14)})
	require.NoError(t, err)
	var round doc
	require.NoError(t, yaml.Unmarshal(out, &round))
	assert.Equal(t, NewDate(2026, time.March, 14), round.Due)

	assert.Error(t, yaml.Unmarshal([]byte("due: tomorrow\n"), &got))
}
