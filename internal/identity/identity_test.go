package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	id := Registered(7)
	require.True(t, id.IsRegistered())
	require.False(t, id.IsGuest())
	require.False(t, id.IsZero())
	require.Equal(t, int64(7), id.UserID())
	require.Empty(t, id.GuestID())
}

func TestGuest(t *testing.T) {
	id := Guest("device-abc")
	require.True(t, id.IsGuest())
	require.False(t, id.IsRegistered())
	require.False(t, id.IsZero())
	require.Equal(t, "device-abc", id.GuestID())
	require.Zero(t, id.UserID())
}

func TestZeroValue(t *testing.T) {
	var id Identity
	require.True(t, id.IsZero())
	require.False(t, id.IsRegistered())
	require.False(t, id.IsGuest())
}

func TestInvalidInputsCollapseToZero(t *testing.T) {
	require.True(t, Registered(0).IsZero())
	require.True(t, Registered(-3).IsZero())
	require.True(t, Guest("").IsZero())
}
