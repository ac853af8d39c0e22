package guard

import "github.com/castlist/castkit/pkg/session"

// AccessLevel is what a view requires of the visitor.
type AccessLevel int

const (
	// AccessPublic admits everyone.
	AccessPublic AccessLevel = iota
	// AccessAuthenticated requires a signed-in user.
	AccessAuthenticated
	// AccessMember requires a signed-in user with an active membership.
	AccessMember
)

// Decision is the outcome of evaluating a navigation attempt.
type Decision int

const (
	// Allow admits the request.
	Allow Decision = iota
	// RedirectToLogin means authentication is required but absent.
	RedirectToLogin
	// RedirectToMembership means the user is signed in but not a member.
	RedirectToMembership
)

// Evaluate decides whether the session state satisfies the access level. It
// is a pure function: no I/O, no mutation, and the same inputs always yield
// the same decision.
func Evaluate(st session.State, level AccessLevel) Decision {
	switch level {
	case AccessAuthenticated:
		if !st.IsAuthenticated || st.User == nil {
			return RedirectToLogin
		}
	case AccessMember:
		if !st.IsAuthenticated || st.User == nil {
			return RedirectToLogin
		}
		if !st.User.IsMember {
			return RedirectToMembership
		}
	}
	return Allow
}
