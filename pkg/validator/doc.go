// Package validator provides declarative input validation as composable
// rules. A Rule pairs a check with the field-level error reported when it
// fails; Apply runs a set of rules and collects every failure into a single
// ValidationErrors value, so forms can show all problems at once.
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.MinLen("password", password, 8),
//	    validator.Matches("password_confirm", passwordConfirm, password),
//	    validator.Accepted("terms", acceptedTerms),
//	)
//	if errs := validator.Extract(err); len(errs) > 0 {
//	    // errs.Get("email") → messages for the email field
//	}
package validator
