package value

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid matches every *Error with errors.Is.
var ErrInvalid = errors.New("invalid value")

// Error reports why a raw value was rejected for a key.
type Error struct {
	Key      string
	Raw      string
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: invalid value %q: %s", e.Key, e.Raw, strings.Join(e.Problems, "; "))
}

// Is makes errors.Is(err, ErrInvalid) succeed.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

func newError(key, raw string, problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &Error{Key: key, Raw: raw, Problems: problems}
}
