package topology

import "strings"

// busTokens are the substrings that mark a substation node as a busbar
// rather than a connection point (transformer lead, line lead, breaker
// stub). Node names are free-form operator conventions, so this is a
// substring match, not an exact one.
var busTokens = []string{"bus", "母线", "正母", "副母"}

// IsBusNode reports whether name contains one of the recognized busbar
// tokens. sequence.Synthesize does not call it: its adjacency test
// treats any shared endpoint, busbar or not, as adjacent.
func IsBusNode(name string) bool {
	for _, tok := range busTokens {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}
