package arena

import (
	"regexp"
	"strings"
)

// Winner identifies which opponent a judgment favored.
type Winner string

const (
	// WinnerOpponent1 and WinnerOpponent2 are the labels the prompt asks
	// the model to declare.
	WinnerOpponent1 Winner = "opponent1"
	WinnerOpponent2 Winner = "opponent2"

	// WinnerUnresolved means the transcript carried no recognizable label.
	WinnerUnresolved Winner = ""
)

// winnerPattern captures the single word following the "winner:" marker.
// Deliberately narrow: if the model wraps the label in punctuation or
// formatting, extraction resolves to WinnerUnresolved rather than guessing.
var winnerPattern = regexp.MustCompile(`(?i)winner: (\w+)`)

// ExtractWinner derives the winner label from a finished transcript.
// The captured word is lower-cased; no match yields WinnerUnresolved.
func ExtractWinner(transcript string) Winner {
	m := winnerPattern.FindStringSubmatch(transcript)
	if m == nil {
		return WinnerUnresolved
	}
	return Winner(strings.ToLower(m[1]))
}
