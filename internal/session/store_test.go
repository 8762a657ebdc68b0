package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestActiveOnEmptyStore(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Active()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestPutAndActiveRoundTrip(t *testing.T) {
	st := newTestStore(t)

	s := New("Apollo", "Development")
	s.Accumulated = 90 * time.Second
	require.NoError(t, st.Put(s))
	assert.NotZero(t, s.ID)

	got, err := st.Active()
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "Apollo", got.Project)
	assert.Equal(t, "Development", got.Activity)
	assert.Equal(t, StateRunning, got.State)
	assert.Equal(t, 90*time.Second, got.Accumulated)
	assert.WithinDuration(t, s.StartedAt, got.StartedAt, time.Millisecond)
}

func TestPutRejectsSecondSession(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Put(New("Apollo", "Development")))
	err := st.Put(New("Hermes", "Review"))
	assert.ErrorIs(t, err, ErrAlreadyActive)
}

func TestUpdatePersistsStateChange(t *testing.T) {
	st := newTestStore(t)

	s := New("Apollo", "Development")
	require.NoError(t, st.Put(s))

	s.State = StatePaused
	s.Accumulated = 15 * time.Minute
	require.NoError(t, st.Update(s))

	got, err := st.Active()
	require.NoError(t, err)
	assert.Equal(t, StatePaused, got.State)
	assert.Equal(t, 15*time.Minute, got.Accumulated)
}

func TestUpdateUnknownID(t *testing.T) {
	st := newTestStore(t)

	s := New("Apollo", "Development")
	s.ID = 99
	assert.ErrorIs(t, st.Update(s), ErrNoSession)
}

func TestDeleteClearsActive(t *testing.T) {
	st := newTestStore(t)

	s := New("Apollo", "Development")
	require.NoError(t, st.Put(s))
	require.NoError(t, st.Delete(s.ID))

	_, err := st.Active()
	assert.ErrorIs(t, err, ErrNoSession)

	// A new session can start once the old one is gone.
	assert.NoError(t, st.Put(New("Hermes", "Review")))
}

func TestRestoredSessionKeepsAccruing(t *testing.T) {
	st := newTestStore(t)

	s := New("Apollo", "Development")
	s.StartedAt = time.Now().Add(-time.Hour)
	require.NoError(t, st.Put(s))

	got, err := st.Active()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Elapsed(), time.Hour)
}
