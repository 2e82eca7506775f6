// Package resolve provides candidate validation and the resolution pipeline.
package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRejected indicates a candidate token failed validation.
var ErrRejected = errors.New("candidate rejected")

// denylist holds tokens that match the answer shape but are site
// boilerplate or navigation text, not answers. Static configuration;
// membership is checked against the uppercased token. PUZZLE, ANSWER,
// and WORDLE exceed five letters and are already stopped by the length
// check; they stay here so the list is the complete boilerplate
// vocabulary and survives any change to the shape rules.
var denylist = map[string]struct{}{
	"TODAY": {}, "HINTS": {}, "PUZZLE": {}, "ANSWER": {}, "WORDLE": {},
	"WORDS": {}, "GUESS": {}, "DAILY": {}, "GAMES": {}, "CLUES": {},
	"LINKS": {}, "ABOUT": {}, "TERMS": {}, "LOGIN": {}, "SHARE": {},
	"REPLY": {}, "VIDEO": {}, "WATCH": {}, "INDEX": {}, "ERROR": {},
	"SOLVE": {}, "EXTRA": {}, "BONUS": {},
}

// ValidateAnswer checks that a candidate token is a plausible answer and
// returns it uppercased. Every strategy's candidate passes through here;
// no strategy may bypass it. Idempotent on accepted values.
func ValidateAnswer(token string) (string, error) {
	t := strings.TrimSpace(token)
	if len(t) != 5 {
		return "", fmt.Errorf("%w: %q is %d characters, want 5", ErrRejected, token, len(t))
	}
	for i := 0; i < len(t); i++ {
		c := t[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') {
			return "", fmt.Errorf("%w: %q contains a non-alphabetic character", ErrRejected, token)
		}
	}
	up := strings.ToUpper(t)
	if _, ok := denylist[up]; ok {
		return "", fmt.Errorf("%w: %q is a known false positive", ErrRejected, up)
	}
	return up, nil
}
