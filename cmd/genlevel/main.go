// genlevel generates, validates, and exports octoplat levels outside the
// game, for tuning the segment pool and debugging the linker.
//
// Usage:
//
//	genlevel generate --biome ocean_depths --seed 42 --out ./levels
//	genlevel validate --count 100 --preset challenge
//	genlevel pool --dir ./assets/segments
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "genlevel",
	Short: "octoplat level generation debug tool",
	Long: `genlevel drives the roguelite level generator without the game.

Available commands:
  generate - Generate levels and export them as annotated text files
  validate - Batch-generate levels and report completability
  pool     - Show segment pool statistics

Examples:
  genlevel generate --biome coral_reefs --seed 7 --out ./out
  genlevel validate --count 200 --preset challenge
  genlevel pool --dir ./assets/segments`,
}

var (
	flagDir     string
	flagBiome   string
	flagPreset  string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Segment pool directory (default: embedded pool)")
	rootCmd.PersistentFlags().StringVar(&flagBiome, "biome", "ocean_depths", "Biome identifier")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "standard", "Difficulty preset: casual, standard, challenge")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(poolCmd)
}
