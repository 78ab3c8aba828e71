// init.go implements the "confsched init" command.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confsched-dev/confsched/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default venue configuration",
	Long: `Initialize the .confsched/ directory with a config.yaml describing the
standard conference day. Edit it to change block boundaries, the
networking window, or the talk duration limits.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	// Check for existing .confsched/ directory.
	cfgPath := filepath.Join(dir, ".confsched", "config.yaml")
	if _, statErr := os.Stat(cfgPath); statErr == nil {
		fmt.Println("Warning: .confsched/config.yaml already exists.")
		fmt.Print("Overwrite with defaults? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := config.WriteConfig(dir, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Println("Confsched initialized")
	fmt.Println("Configuration written to .confsched/config.yaml")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Put one proposal per line in a text file, e.g. \"Overdoing it in Python 45min\"")
	fmt.Println("  2. Run: confsched schedule proposals.txt")

	return nil
}
