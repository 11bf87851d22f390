package utils

import (
	"errors"
	"strings"
)

// ErrorChain renders err in full followed by every error it wraps,
// outermost first. Causes are shortened to their first line so multi-line
// payloads such as stacks appear once. Joined errors are expanded depth
// first.
func ErrorChain(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("error: ")
	b.WriteString(err.Error())
	writeCauses(&b, err, 1)
	return b.String()
}

func writeCauses(b *strings.Builder, err error, depth int) {
	var causes []error
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		causes = e.Unwrap()
	default:
		if next := errors.Unwrap(err); next != nil {
			causes = []error{next}
		}
	}

	for _, cause := range causes {
		if cause == nil {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString("caused by: ")
		msg, _, _ := strings.Cut(cause.Error(), "\n")
		b.WriteString(msg)
		writeCauses(b, cause, depth+1)
	}
}
