package session

import "time"

// MembershipType enumerates the paid plans the platform offers.
type MembershipType string

const (
	MembershipMonthly MembershipType = "monthly"
	MembershipYearly  MembershipType = "yearly"
)

// User is the client-side mirror of an account record. ID and Email are
// issued by the backend and never change; the membership and profile flags
// may be patched optimistically ahead of server confirmation.
type User struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Name             string         `json:"name"`
	IsMember         bool           `json:"is_member"`
	MembershipType   MembershipType `json:"membership_type,omitempty"`
	ProfileCompleted bool           `json:"profile_completed"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Patch is a partial user update. Nil fields are left untouched.
type Patch struct {
	Name             *string
	IsMember         *bool
	MembershipType   *MembershipType
	ProfileCompleted *bool
}

// Apply returns a copy of u with the patch merged in.
func (p Patch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.IsMember != nil {
		u.IsMember = *p.IsMember
	}
	if p.MembershipType != nil {
		u.MembershipType = *p.MembershipType
	}
	if p.ProfileCompleted != nil {
		u.ProfileCompleted = *p.ProfileCompleted
	}
	return u
}
