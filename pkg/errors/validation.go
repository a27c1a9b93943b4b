package errors

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxSpaceNameLength bounds the length of a single space label.
const MaxSpaceNameLength = 64

// ValidateSpaceName checks a candidate space name against the names already
// on the list. Blank names (after trimming) and names already present are
// rejected.
func ValidateSpaceName(name string, existing []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return New(ErrCodeEmptySpaceName, "need to input a value")
	}
	if utf8.RuneCountInString(name) > MaxSpaceNameLength {
		return New(ErrCodeInvalidInput, "board space name too long (max %d characters)", MaxSpaceNameLength)
	}
	if slices.Contains(existing, name) {
		return New(ErrCodeDuplicateSpaceName, "board space %q already exists", name)
	}
	return nil
}

// ValidateSpaceList checks that a board can be built from names.
// An empty list is reported before an uneven one.
func ValidateSpaceList(names []string) error {
	if len(names) == 0 {
		return New(ErrCodeEmptySpaceList, "need board spaces to start")
	}
	if len(names)%4 != 0 {
		return New(ErrCodeInvalidSpaceCount, "total board spaces needs to be divisible by 4 (have %d)", len(names))
	}
	return nil
}

// CheckSpaceList is [ValidateSpaceList] shaped for display: it reports
// whether the list can start a game and, if not, why.
func CheckSpaceList(names []string) (ok bool, reason string) {
	if err := ValidateSpaceList(names); err != nil {
		return false, UserMessage(err)
	}
	return true, ""
}
