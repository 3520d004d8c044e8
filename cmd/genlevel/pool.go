package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/octoplat/assets"
	"github.com/automoto/octoplat/shared/leveldata"
	"github.com/spf13/cobra"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Show segment pool statistics",
	Long: `List every segment in the pool with its archetype, tier, size,
and declared mechanics, then totals per archetype.

Examples:
  genlevel pool
  genlevel pool --dir ./assets/segments`,
	RunE: runPool,
}

func runPool(cmd *cobra.Command, args []string) error {
	var (
		fsys fs.FS
		dir  string
	)
	if flagDir != "" {
		fsys, dir = os.DirFS(flagDir), "."
	} else {
		fsys, dir = assets.Content(), assets.SegmentsDir
	}

	segs, errs := leveldata.LoadSegments(fsys, dir)
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if len(segs) == 0 {
		return fmt.Errorf("no segments under %s", dir)
	}

	byArchetype := map[string]int{}
	for _, seg := range segs {
		fmt.Printf("%-20s %-12s tier %d  %2dx%-2d  %v\n",
			seg.Name, seg.Archetype, seg.Tier, seg.Width(), seg.Height(), seg.Mechanics)
		byArchetype[seg.Archetype]++
	}

	fmt.Printf("\n%d segments\n", len(segs))
	for arch, n := range byArchetype {
		fmt.Printf("  %-12s %d\n", arch, n)
	}
	return nil
}
