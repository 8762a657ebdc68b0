package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDateKeywords(t *testing.T) {
	loc := time.UTC
	now := time.Now().In(loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	got, err := ParseFlexibleDate("today", loc)
	require.NoError(t, err)
	assert.Equal(t, midnight, got)

	got, err = ParseFlexibleDate("Yesterday", loc)
	require.NoError(t, err)
	assert.Equal(t, midnight.AddDate(0, 0, -1), got)
}

func TestParseFlexibleDateRelative(t *testing.T) {
	loc := time.UTC
	now := time.Now().In(loc)

	got, err := ParseFlexibleDate("last week", loc)
	require.NoError(t, err)
	assert.WithinDuration(t, now.AddDate(0, 0, -7), got, time.Minute)

	got, err = ParseFlexibleDate("3 days", loc)
	require.NoError(t, err)
	assert.WithinDuration(t, now.AddDate(0, 0, -3), got, time.Minute)

	got, err = ParseFlexibleDate("2 weeks", loc)
	require.NoError(t, err)
	assert.WithinDuration(t, now.AddDate(0, 0, -14), got, time.Minute)
}

func TestParseFlexibleDateThisMonth(t *testing.T) {
	loc := time.UTC
	now := time.Now().In(loc)

	got, err := ParseFlexibleDate("this month", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc), got)
}

func TestParseFlexibleDateExplicit(t *testing.T) {
	loc := time.UTC

	got, err := ParseFlexibleDate("2026-08-23", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, loc), got)

	got, err = ParseFlexibleDate("23.01.2026", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 23, 0, 0, 0, 0, loc), got)
}

func TestParseFlexibleDateRejectsGarbage(t *testing.T) {
	_, err := ParseFlexibleDate("", time.UTC)
	assert.Error(t, err)

	_, err = ParseFlexibleDate("the day after the demo", time.UTC)
	assert.Error(t, err)
}
