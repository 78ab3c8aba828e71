// validate.go implements the "confsched validate" command: a dry run of
// the normalizer without packing.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confsched-dev/confsched/internal/proposal"
	"github.com/confsched-dev/confsched/internal/session"
)

var validateCmd = &cobra.Command{
	Use:   "validate <proposals-file>",
	Short: "Check a proposals file without scheduling",
	Long: `Parse and normalize a proposals file, reporting the validated pool in
packing order. Fails on the first proposal with an invalid duration.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	venue, err := loadVenue()
	if err != nil {
		return err
	}

	raws, err := proposal.FileSource{Path: args[0]}.Proposals()
	if err != nil {
		return err
	}

	items, err := proposal.Normalize(raws, venue.Limits())
	if err != nil {
		return fmt.Errorf("normalizing proposals: %w", err)
	}

	talks := 0
	lightning := 0
	total := 0
	for _, it := range items {
		if it.Becomes() == session.KindLightning {
			lightning++
		} else {
			talks++
		}
		total += it.Duration
	}

	fmt.Printf("%d proposals valid (%d talks, %d lightning, %d minutes total)\n",
		len(items), talks, lightning, total)
	fmt.Println()
	for _, it := range items {
		fmt.Printf("  %3dmin  %s\n", it.Duration, it.Description)
	}

	return nil
}
