package validator

import (
	"fmt"
	"net/mail"
	"strings"
)

// Required fails when the value is empty or whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// ValidEmail fails unless the value parses as an address with a dotted,
// non-degenerate domain. The RFC grammar alone admits addresses no mail
// provider would issue, so the domain gets an extra check.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}
			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// MinLen fails when the value is shorter than n characters.
func MinLen(field, value string, n int) Rule {
	return Rule{
		Check: func() bool { return len([]rune(value)) >= n },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters", n)},
	}
}

// Matches fails when value differs from other, e.g. a password confirmation
// field.
func Matches(field, value, other string) Rule {
	return Rule{
		Check: func() bool { return value == other },
		Error: ValidationError{Field: field, Message: "does not match"},
	}
}

// Accepted fails unless ok is true, for consent checkboxes that must be
// ticked.
func Accepted(field string, ok bool) Rule {
	return Rule{
		Check: func() bool { return ok },
		Error: ValidationError{Field: field, Message: "must be accepted"},
	}
}
