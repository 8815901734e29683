// Package fighters provides the built-in roster used to prefill a matchup
// when the user has not picked opponents themselves.
package fighters

import "math/rand/v2"

// roster is the static list of suggested fighters.
var roster = []string{
	"a grizzly bear",
	"a silverback gorilla",
	"a saltwater crocodile",
	"a honey badger",
	"a bald eagle",
	"a great white shark",
	"an anaconda",
	"a kangaroo",
	"a secret agent",
	"a medieval knight",
	"a samurai",
	"a viking",
	"a pirate captain",
	"a heavyweight boxer",
	"a sumo wrestler",
	"an olympic fencer",
	"a robot vacuum",
	"a garden gnome",
	"a swarm of bees",
	"a very angry goose",
}

// List returns a copy of the full roster.
func List() []string {
	out := make([]string, len(roster))
	copy(out, roster)
	return out
}

// RandomPair returns two distinct fighters from the roster.
func RandomPair() (string, string) {
	i := rand.IntN(len(roster))
	j := rand.IntN(len(roster) - 1)
	if j >= i {
		j++
	}
	return roster[i], roster[j]
}
