package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"2024-06", Key{2024, time.June}, false},
		{"2024-01", Key{2024, time.January}, false},
		{" 2024-12 ", Key{2024, time.December}, false},
		{"2024-13", Key{}, true},
		{"2024-00", Key{}, true},
		{"2024", Key{}, true},
		{"junk-06", Key{}, true},
		{"", Key{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "Parse(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestString_RoundTrip(t *testing.T) {
	k := Key{2024, time.March}
	assert.Equal(t, "2024-03", k.String())
	back, err := Parse(k.String())
	require.NoError(t, err)
	assert.Equal(t, k, back)
}

func TestIndex_MonthsDiff(t *testing.T) {
	a := Key{2024, time.June}
	b := Key{2025, time.May}
	assert.Equal(t, 11, b.Index()-a.Index())
	assert.Equal(t, -11, a.Index()-b.Index())
	assert.Equal(t, 0, a.Index()-a.Index())
}

func TestAdd(t *testing.T) {
	tests := []struct {
		start Key
		n     int
		want  Key
	}{
		{Key{2024, time.June}, 1, Key{2024, time.July}},
		{Key{2024, time.December}, 1, Key{2025, time.January}},
		{Key{2024, time.January}, -1, Key{2023, time.December}},
		{Key{2024, time.June}, 12, Key{2025, time.June}},
		{Key{2024, time.June}, -18, Key{2022, time.December}},
		{Key{2024, time.June}, 0, Key{2024, time.June}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.start.Add(tt.n), "%s + %d", tt.start, tt.n)
	}
}

func TestContains(t *testing.T) {
	k := Key{2024, time.June}
	assert.True(t, k.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, k.Contains(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, k.Contains(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, k.Contains(time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)))
}

func TestFromTime(t *testing.T) {
	k := FromTime(time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC))
	assert.Equal(t, Key{2024, time.June}, k)
}
