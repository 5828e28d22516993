// Package identity models the acting party for engagement actions: either a
// registered user or an anonymous guest carrying an opaque device token.
package identity

// Identity is a tagged union over the two identity kinds. The zero value is
// "unauthenticated". Fields are unexported so the registered/guest variants
// stay mutually exclusive; construct values with Registered or Guest only.
//
// A registered identity and a guest identity are never merged: records written
// under a guest token do not move to a user account after sign-in.
type Identity struct {
	userID  int64
	guestID string
}

// Registered returns the identity of a signed-in user. A non-positive id
// yields the zero identity.
func Registered(userID int64) Identity {
	if userID <= 0 {
		return Identity{}
	}
	return Identity{userID: userID}
}

// Guest returns the identity of an anonymous visitor identified by an opaque
// token. An empty token yields the zero identity.
func Guest(token string) Identity {
	if token == "" {
		return Identity{}
	}
	return Identity{guestID: token}
}

// IsRegistered reports whether the identity belongs to a signed-in user.
func (i Identity) IsRegistered() bool { return i.userID > 0 }

// IsGuest reports whether the identity is an anonymous guest.
func (i Identity) IsGuest() bool { return i.userID == 0 && i.guestID != "" }

// IsZero reports whether no identity could be resolved.
func (i Identity) IsZero() bool { return i.userID == 0 && i.guestID == "" }

// UserID returns the registered user id, or 0 for guests and the zero value.
func (i Identity) UserID() int64 { return i.userID }

// GuestID returns the guest token, or "" for registered users and the zero value.
func (i Identity) GuestID() string { return i.guestID }
