package systems

import (
	"testing"

	"github.com/automoto/octoplat/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSeedEntryCapsAtTenDigits(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	menu := &components.MenuData{EnteringSeed: true}
	input := &components.InputData{
		TextBuffer: []rune("98765432109876543210"),
		TextEntry:  true,
	}

	updateSeedEntry(e, menu, input, func(RunRequest) {
		t.Fatal("run started during text entry")
	})

	if menu.SeedText != "9876543210" {
		t.Errorf("SeedText = %q, want the first ten digits kept", menu.SeedText)
	}
	if len(input.TextBuffer) != 0 {
		t.Errorf("TextBuffer not drained, %d runes left", len(input.TextBuffer))
	}
}

func TestSeedEntryDropsNonDigits(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	menu := &components.MenuData{EnteringSeed: true}
	input := &components.InputData{
		TextBuffer: []rune("a1b2-3 4"),
		TextEntry:  true,
	}

	updateSeedEntry(e, menu, input, func(RunRequest) {
		t.Fatal("run started during text entry")
	})

	if menu.SeedText != "1234" {
		t.Errorf("SeedText = %q, want %q", menu.SeedText, "1234")
	}
}
