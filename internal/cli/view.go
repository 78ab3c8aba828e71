// view.go implements the "confsched view" command: an interactive
// timetable browser.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/confsched-dev/confsched/internal/render"
	"github.com/confsched-dev/confsched/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <proposals-file>",
	Short: "Browse the schedule interactively",
	Long: `Build the schedule and open an interactive viewer: left/right switch
tracks, up/down scroll, q quits. Falls back to plain output when stdout
is not a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	tracks, err := buildTracks(args[0], false)
	if err != nil {
		return err
	}

	if !tui.IsTTY() {
		return render.Text{}.Render(os.Stdout, tracks)
	}
	return tui.Run(tui.NewModel(tracks))
}
