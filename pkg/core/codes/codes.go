// Package codes produces the human-shareable identifiers used to join a
// scheduling session, e.g. "oak-river-247".
package codes

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// words is the fixed pool the two word parts are drawn from
var words = []string{
	"oak", "river", "bloom", "sky", "stone",
	"moss", "tide", "grove", "glow", "dawn",
}

// KeyspaceSize is the number of distinct codes Generate can produce
// (word-count squared times the 900 three-digit numbers).
const KeyspaceSize = 10 * 10 * 900

// Generate returns a new session code: two random words and a random
// three-digit number joined by dashes. Codes are always lower-case.
//
// No uniqueness is guaranteed here; the session store checks the generated
// code against existing sessions and retries on collision.
func Generate() string {
	return fmt.Sprintf("%s-%s-%d",
		words[rand.IntN(len(words))],
		words[rand.IntN(len(words))],
		100+rand.IntN(900),
	)
}

// Normalize prepares user input for lookup: codes are generated lower-case
// but people mistype case and copy stray whitespace.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
