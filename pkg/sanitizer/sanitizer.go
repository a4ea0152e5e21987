// Package sanitizer normalizes free-text input before it is validated and
// persisted. Sanitization never rejects; it only cleans. Rejection is the
// validator's job.
package sanitizer

import "strings"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func NormalizeEmail(email string) string {
	p := Pipeline{
		strings.TrimSpace,
		strings.ToLower,
	}
	return p.Apply(email)
}

func NormalizeRoomNumber(roomNumber string) string {
	p := Pipeline{
		TrimAndNormalize,
		strings.ToUpper,
	}
	return p.Apply(roomNumber)
}
