package models

import (
	"regexp"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
)

// LineState classifies the subscriber line from its account status code.
type LineState int

const (
	LineStateUnknown LineState = iota
	LineStateActive
	LineStateDeactivated
	LineStateValidOnly
)

var (
	deactivatedStateRe = regexp.MustCompile(consts.DeactivatedStatePattern)
	validStateRe       = regexp.MustCompile(consts.ValidStatePattern)
)

// DeriveLineState maps a raw status code to a LineState. A code matching the
// deactivated shape wins over the valid-state shape; anything else, including
// an empty code, is active. Unknown is reserved for failed lookups, where no
// derivation happens at all.
func DeriveLineState(statusCode string) LineState {
	switch {
	case deactivatedStateRe.MatchString(statusCode):
		return LineStateDeactivated
	case validStateRe.MatchString(statusCode):
		return LineStateValidOnly
	default:
		return LineStateActive
	}
}

func (s LineState) String() string {
	switch s {
	case LineStateActive:
		return "ACTIVE"
	case LineStateDeactivated:
		return "DEACTIVATED"
	case LineStateValidOnly:
		return "VALID_ONLY"
	default:
		return "UNKNOWN"
	}
}
