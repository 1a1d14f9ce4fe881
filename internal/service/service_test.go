package service

import (
	"context"
	"testing"

	"github.com/mergington/activities/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *ActivityService {
	return NewActivityService(store.New())
}

func TestSignupMessage(t *testing.T) {
	svc := newService()

	msg, err := svc.Signup(context.Background(), "Chess Club", "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Signed up test@example.com for Chess Club", msg)
}

func TestSignupRequiresEmail(t *testing.T) {
	svc := newService()

	_, err := svc.Signup(context.Background(), "Chess Club", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestSignupRequiresActivityName(t *testing.T) {
	svc := newService()

	_, err := svc.Signup(context.Background(), "", "test@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity name is required")
}

func TestSignupSurfacesDomainErrors(t *testing.T) {
	svc := newService()

	_, err := svc.Signup(context.Background(), "NonExistentActivity", "test@example.com")
	assert.ErrorIs(t, err, store.ErrActivityNotFound)

	_, err = svc.Signup(context.Background(), "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, store.ErrAlreadySignedUp)
}

func TestUnregisterMessage(t *testing.T) {
	svc := newService()

	msg, err := svc.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", msg)
}

func TestUnregisterRequiresEmail(t *testing.T) {
	svc := newService()

	_, err := svc.Unregister(context.Background(), "Chess Club", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestUnregisterSurfacesDomainErrors(t *testing.T) {
	svc := newService()

	_, err := svc.Unregister(context.Background(), "NonExistentActivity", "test@example.com")
	assert.ErrorIs(t, err, store.ErrActivityNotFound)

	_, err = svc.Unregister(context.Background(), "Chess Club", "stranger@example.com")
	assert.ErrorIs(t, err, store.ErrNotSignedUp)
}

func TestListSnapshot(t *testing.T) {
	svc := newService()

	snap := svc.List(context.Background())
	assert.Greater(t, snap.Len(), 0)
	_, ok := snap.Activity("Chess Club")
	assert.True(t, ok)
}

// Emails are opaque identifiers: no trimming or case folding is applied, so
// a differently-cased address is a distinct participant.
func TestEmailIsOpaque(t *testing.T) {
	svc := newService()

	_, err := svc.Signup(context.Background(), "Chess Club", "MICHAEL@mergington.edu")
	assert.NoError(t, err)
}
