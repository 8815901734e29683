// Package cliui renders the terminal output of versus commands: the
// deliberation spinner, markdown judgments, and the winner announcement.
package cliui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessMark = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("✓")
	FailMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")
	StepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	winnerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	drawStyle    = lipgloss.NewStyle().Faint(true)
)

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// judgmentWrapWidth keeps rendered transcripts readable on wide terminals.
const judgmentWrapWidth = 80

// Step prints an animated spinner while fn runs, then replaces it with
// a ✓ or ✗ checkmark and elapsed time.
func Step(w io.Writer, msg string, fn func() error) error {
	done := make(chan struct{})
	var mu sync.Mutex

	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			mu.Lock()
			fmt.Fprintf(w, "\r  %s %s",
				spinnerStyle.Render(spinnerFrames[frame%len(spinnerFrames)]),
				msg,
			)
			mu.Unlock()

			select {
			case <-done:
				return
			case <-ticker.C:
			}
		}
	}()

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	close(done)

	// Clear the spinner line and print the final result
	mu.Lock()
	fmt.Fprintf(w, "\r  %s %s %s\n",
		Mark(err),
		msg,
		StepStyle.Render(fmt.Sprintf("(%s)", FormatDuration(elapsed))),
	)
	mu.Unlock()

	return err
}

// Mark returns a ✓ for nil errors or ✗ for non-nil errors.
func Mark(err error) string {
	if err != nil {
		return FailMark
	}
	return SuccessMark
}

// FormatDuration formats a duration for display (e.g. "12ms" or "3.2s").
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// WinnerBanner renders the celebration line naming the winning opponent.
func WinnerBanner(name string) string {
	return winnerStyle.Render(fmt.Sprintf("🏆 %s wins!", name))
}

// UnresolvedBanner renders the line shown when no winner could be extracted
// from the transcript.
func UnresolvedBanner() string {
	return drawStyle.Render("the judge declined to name a winner")
}

// RenderJudgment renders a finished judgment transcript as markdown for
// terminal display using glamour.
func RenderJudgment(transcript string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(judgmentWrapWidth),
	)
	if err != nil {
		return transcript, err
	}

	rendered, err := r.Render(transcript)
	if err != nil {
		return transcript, err
	}

	return rendered, nil
}
