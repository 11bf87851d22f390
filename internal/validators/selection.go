package validators

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSelection parses a comma-separated list of 1-based labels chosen out
// of total entries and returns the zero-based indexes in input order.
//
// Empty input fails with ErrEmptySelection. Any token that is not a plain
// decimal number, or that falls outside 1..total, fails the whole input with
// ErrInvalidSelection.
func ParseSelection(input string, total int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptySelection
	}

	tokens := strings.Split(input, ",")
	indexes := make([]int, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if !isDigits(token) {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, token)
		}

		label, err := strconv.Atoi(token)
		if err != nil || label < 1 || label > total {
			return nil, fmt.Errorf("%w: %q is out of range 1..%d", ErrInvalidSelection, token, total)
		}
		indexes = append(indexes, label-1)
	}

	return indexes, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
