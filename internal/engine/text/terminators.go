package text

import "slices"

// Unicode line terminators.
const (
	CR  = '\r'
	LF  = '\n'
	VT  = '\v'
	FF  = '\f'
	NEL = '\u0085'
	LS  = '\u2028'
	PS  = '\u2029'
)

var terminators = []rune{CR, LF, VT, FF, NEL, LS, PS}

// LineTerminators returns the set of runes that end a line.
func LineTerminators() []rune {
	return slices.Clone(terminators)
}

// IsLineTerminator reports whether r ends a line.
func IsLineTerminator(r rune) bool {
	switch r {
	case CR, LF, VT, FF, NEL, LS, PS:
		return true
	}
	return false
}
