package auth

import "errors"

var (
	// ErrLoginFailed indicates the login pipeline did not produce a user,
	// whether the credentials were rejected or the backend was unreachable.
	ErrLoginFailed = errors.New("auth.login_failed")

	// ErrSignupFailed indicates the signup pipeline did not produce a user.
	ErrSignupFailed = errors.New("auth.signup_failed")
)
