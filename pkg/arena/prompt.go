package arena

import "fmt"

// Prompt builds the judgment prompt for a fight between two opponents.
// The closing instruction pins the exact "winner:" line format that
// ExtractWinner matches on the other side of the stream.
func Prompt(opponent1, opponent2 string) string {
	return fmt.Sprintf(
		"Who would win in a fight between %s and %s? "+
			"Narrate the fight as a short, dramatic play-by-play. "+
			"Then, on its own line, declare the result in the exact format "+
			"\"winner: opponent1\" if %s wins or \"winner: opponent2\" if %s wins, "+
			"followed by \"reason: \" and a one-sentence explanation.",
		opponent1, opponent2, opponent1, opponent2,
	)
}
