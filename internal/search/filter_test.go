package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerBound_Today(t *testing.T) {
	now := time.Date(2024, 1, 15, 15, 30, 0, 0, time.Local)

	bound, ok := FilterToday.LowerBound(now)

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), bound)
}

func TestLowerBound_LastHour(t *testing.T) {
	now := time.Date(2024, 1, 15, 15, 30, 0, 0, time.Local)

	bound, ok := FilterLastHour.LowerBound(now)

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 14, 30, 0, 0, time.Local), bound)
}

func TestLowerBound_Last7Days(t *testing.T) {
	now := time.Date(2024, 1, 15, 15, 30, 0, 0, time.Local)

	bound, ok := FilterLast7Days.LowerBound(now)

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 8, 15, 30, 0, 0, time.Local), bound)
}

func TestLowerBound_Last30Days(t *testing.T) {
	now := time.Date(2024, 1, 31, 12, 0, 0, 0, time.Local)

	bound, ok := FilterLast30Days.LowerBound(now)

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local), bound)
}

func TestLowerBound_NoneAndUnknown(t *testing.T) {
	now := time.Now()

	_, ok := FilterNone.LowerBound(now)
	assert.False(t, ok)

	_, ok = PublishDateFilter("").LowerBound(now)
	assert.False(t, ok)

	_, ok = PublishDateFilter("garbage").LowerBound(now)
	assert.False(t, ok)
}
