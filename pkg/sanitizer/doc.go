// Package sanitizer normalizes user input before it is validated or sent to
// the API. Sanitizers are plain string transforms; compose them with Apply.
package sanitizer
