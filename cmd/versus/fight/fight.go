// Package fightcmder provides the terminal fight client.
package fightcmder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timscodebase/versus/pkg/arena"
	"github.com/timscodebase/versus/pkg/cliui"
	"github.com/timscodebase/versus/pkg/config"
)

type fightCommander struct {
	target string
	pretty bool
}

const fightLongDesc string = `Submit a fight to a running versus server and stream the judgment.

The transcript streams to the terminal as the judge writes it. Once the
stream ends, the winner is announced.

With --pretty the transcript is collected behind a spinner and rendered
as markdown once the judgment is complete.`

const fightShortDesc string = "Fight two opponents from the terminal"

func NewFightCmd() *cobra.Command {
	cmder := &fightCommander{}

	cmd := &cobra.Command{
		Use:   "fight <opponent1> <opponent2>",
		Short: fightShortDesc,
		Long:  fightLongDesc,
		Args:  cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("target") {
				cmder.target = cfg.Client.Target
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args[0], args[1])
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.target, "target", "t", defaults.Client.Target, "Base URL of the versus server")
	cmd.Flags().BoolVarP(&cmder.pretty, "pretty", "p", false, "Render the judgment as markdown instead of streaming it")

	return cmd
}

func (c *fightCommander) run(cmd *cobra.Command, opponent1, opponent2 string) error {
	form := url.Values{}
	form.Set("opponent1", opponent1)
	form.Set("opponent2", opponent2)

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost,
		c.target+"/api/fight", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating fight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("submitting fight: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Errors []string `json:"errors"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && len(payload.Errors) > 0 {
			return fmt.Errorf("fight rejected: %s", strings.Join(payload.Errors, ", "))
		}
		return fmt.Errorf("fight failed: server returned %s", resp.Status)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s vs %s\n\n", opponent1, opponent2)

	accumulator := arena.NewAccumulator(resp.Body)

	if c.pretty {
		if err := c.renderPretty(out, accumulator); err != nil {
			return err
		}
	} else {
		// Print each chunk as it arrives; the Accumulator keeps the
		// transcript for the winner announcement once the transport ends.
		for {
			chunk, ok, err := accumulator.Next()
			if err != nil {
				return fmt.Errorf("reading judgment stream: %w", err)
			}
			if !ok {
				break
			}
			fmt.Fprint(out, chunk)
		}
		fmt.Fprintln(out)
	}

	c.announce(out, accumulator, opponent1, opponent2)
	return nil
}

// renderPretty drains the stream behind a spinner, then renders the whole
// transcript as markdown.
func (c *fightCommander) renderPretty(out io.Writer, accumulator *arena.Accumulator) error {
	err := cliui.Step(out, "the judge deliberates", func() error {
		for {
			_, ok, err := accumulator.Next()
			if err != nil {
				return fmt.Errorf("reading judgment stream: %w", err)
			}
			if !ok {
				return nil
			}
		}
	})
	if err != nil {
		return err
	}

	rendered, err := cliui.RenderJudgment(accumulator.Transcript())
	if err != nil {
		// Fall back to the raw transcript.
		rendered = accumulator.Transcript()
	}
	fmt.Fprintln(out, rendered)
	return nil
}

func (c *fightCommander) announce(out io.Writer, accumulator *arena.Accumulator, opponent1, opponent2 string) {
	switch accumulator.Winner() {
	case arena.WinnerOpponent1:
		fmt.Fprintln(out, cliui.WinnerBanner(opponent1))
	case arena.WinnerOpponent2:
		fmt.Fprintln(out, cliui.WinnerBanner(opponent2))
	default:
		fmt.Fprintln(out, cliui.UnresolvedBanner())
	}
}
