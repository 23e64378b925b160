package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGlobalID is returned when a string is not a well-formed global id.
var ErrInvalidGlobalID = errors.New("invalid global id")

const (
	globalIDSeparator = '#'
	globalIDEscape    = '\\'
)

var componentEscaper = strings.NewReplacer(`\`, `\\`, `#`, `\#`)

// GlobalID derives the store key for a task from its owning user and its
// task identifier. Each component has '\' and '#' escaped before joining
// with '#', so the result holds exactly one unescaped separator and distinct
// pairs never map to the same id.
func GlobalID(userUUID, taskUUID string) string {
	return componentEscaper.Replace(userUUID) +
		string(globalIDSeparator) +
		componentEscaper.Replace(taskUUID)
}

// SplitGlobalID is the inverse of GlobalID. It works on bytes, so
// components are returned exactly as they were joined.
func SplitGlobalID(id string) (userUUID, taskUUID string, err error) {
	var (
		parts    [2]strings.Builder
		part     int
		escaping bool
	)

	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case escaping:
			if c != globalIDEscape && c != globalIDSeparator {
				return "", "", fmt.Errorf("%w: unknown escape \\%c", ErrInvalidGlobalID, c)
			}
			parts[part].WriteByte(c)
			escaping = false
		case c == globalIDEscape:
			escaping = true
		case c == globalIDSeparator:
			if part == 1 {
				return "", "", fmt.Errorf("%w: more than one separator", ErrInvalidGlobalID)
			}
			part = 1
		default:
			parts[part].WriteByte(c)
		}
	}

	if escaping {
		return "", "", fmt.Errorf("%w: dangling escape", ErrInvalidGlobalID)
	}
	if part != 1 {
		return "", "", fmt.Errorf("%w: missing separator", ErrInvalidGlobalID)
	}

	return parts[0].String(), parts[1].String(), nil
}
