package parse

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	spaceRe      = regexp.MustCompile(`\s+`)
	roomNumberRe = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z-]{0,31}$`)
)

// CategoryKey derives the lookup key of a category from its display name:
// surrounding whitespace dropped, inner runs collapsed to one space, lower-cased.
// "  Стандарт ", "стандарт" and "СТАНДАРТ" share one key.
func CategoryKey(name string) string {
	s := strings.TrimSpace(spaceRe.ReplaceAllString(name, " "))
	return strings.ToLower(s)
}

// RoomNumber validates and trims a room's display number.
func RoomNumber(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !roomNumberRe.MatchString(s) {
		return "", fmt.Errorf("invalid room number: %q", raw)
	}
	return s, nil
}
