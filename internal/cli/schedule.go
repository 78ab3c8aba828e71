// schedule.go implements the "confsched schedule" command which drives the
// full normalize -> pack -> render pipeline.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/confsched-dev/confsched/internal/config"
	"github.com/confsched-dev/confsched/internal/log"
	"github.com/confsched-dev/confsched/internal/proposal"
	"github.com/confsched-dev/confsched/internal/render"
	"github.com/confsched-dev/confsched/internal/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <proposals-file>",
	Short: "Build and print the conference schedule",
	Long: `Read proposals from a text file (one per line, duration spec last:
"60min" or "lightning"), pack them into tracks, and print the schedule.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchedule,
}

var (
	outputFlag string
	icsFlag   string
	dateFlag  string
	logFlag   bool
)

func init() {
	scheduleCmd.Flags().StringVar(&icsFlag, "ics", "", "Also export the schedule as an iCalendar file at this path")
	scheduleCmd.Flags().StringVar(&dateFlag, "date", "", "Calendar date of track 1 for the export, YYYY-MM-DD (default: today)")
	scheduleCmd.Flags().BoolVar(&logFlag, "log", false, "Append run events to .confsched/log.jsonl")
	scheduleCmd.Flags().StringVar(&outputFlag, "output", "auto", "Output style: auto, plain, or styled")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	tracks, err := buildTracks(args[0], logFlag)
	if err != nil {
		return err
	}

	var renderer render.TrackRenderer = render.Text{}
	if styledOutput() {
		renderer = render.Styled{}
	}
	if err := renderer.Render(os.Stdout, tracks); err != nil {
		return fmt.Errorf("rendering schedule: %w", err)
	}

	if icsFlag != "" {
		if err := exportICS(icsFlag, dateFlag, tracks); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Calendar written to %s\n", icsFlag)
	}

	return nil
}

// buildTracks runs the pipeline shared by the schedule and view commands:
// load venue config, read and normalize proposals, pack tracks.
func buildTracks(path string, logEvents bool) ([]*schedule.Track, error) {
	venue, err := loadVenue()
	if err != nil {
		return nil, err
	}

	raws, err := proposal.FileSource{Path: path}.Proposals()
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("no proposals found in %s", path)
	}

	items, err := proposal.Normalize(raws, venue.Limits())
	if err != nil {
		return nil, fmt.Errorf("normalizing proposals: %w", err)
	}

	if Verbose() {
		fmt.Fprintf(os.Stderr, "Normalized %d proposals\n", len(items))
	}

	var logger *log.Logger
	if logEvents {
		logger, err = log.NewLogger(".")
		if err != nil {
			return nil, fmt.Errorf("opening run log: %w", err)
		}
		_ = logger.Append(log.LogEvent{Event: log.EventRunStarted, Proposals: len(items)})
	}

	pool := schedule.NewPool(items)
	tracks, err := schedule.Build(pool, venue, logger)
	if err != nil {
		if logger != nil {
			_ = logger.Append(log.LogEvent{Event: log.EventRunFailed, Error: err.Error()})
		}
		return nil, fmt.Errorf("building schedule: %w", err)
	}

	if logger != nil {
		_ = logger.Append(log.LogEvent{
			Event:     log.EventRunComplete,
			Proposals: len(items),
			Tracks:    len(tracks),
		})
	}
	return tracks, nil
}

// loadVenue reads the venue config, falling back to defaults when the
// project is not initialized.
func loadVenue() (config.Venue, error) {
	cfg, err := config.ReadConfig(".")
	if err != nil {
		// Config not found or invalid, use defaults.
		cfg = config.DefaultConfig()
	}
	if err := cfg.Venue.Validate(); err != nil {
		return config.Venue{}, fmt.Errorf("invalid venue config: %w", err)
	}
	return cfg.Venue, nil
}

// styledOutput decides between the plain and lipgloss renderers.
func styledOutput() bool {
	switch outputFlag {
	case "styled":
		return true
	case "plain":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func exportICS(path, date string, tracks []*schedule.Track) error {
	firstDay := time.Now()
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
		firstDay = parsed
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := render.WriteICS(f, tracks, firstDay); err != nil {
		return fmt.Errorf("exporting calendar: %w", err)
	}
	return nil
}
