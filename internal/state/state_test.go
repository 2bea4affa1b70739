package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_FailedBeforeFirstBuildIsError(t *testing.T) {
	s := NewStore()
	assert.Equal(t, BOOTING, s.Snapshot().Phase)
	assert.Equal(t, -1, s.Snapshot().Hover)

	s.Failed(errors.New("no display"))
	snap := s.Snapshot()
	assert.Equal(t, ERROR, snap.Phase)
	assert.Equal(t, "no display", snap.LastError)
}

func TestStore_FailedAfterBuildStaysReady(t *testing.T) {
	s := NewStore()
	s.Built("not configured")
	s.SetPhase(RELOADING)
	assert.Equal(t, "reloading", s.Snapshot().Phase.String())

	s.Failed(errors.New("bad theme"))
	snap := s.Snapshot()
	assert.Equal(t, READY, snap.Phase)
	assert.Equal(t, 1, snap.Generation)
	assert.Equal(t, "bad theme", snap.LastError)

	s.Built("loaded /tmp/bg.png")
	snap = s.Snapshot()
	assert.Equal(t, 2, snap.Generation)
	assert.Empty(t, snap.LastError)
	assert.Equal(t, "loaded /tmp/bg.png", snap.Background)
}
