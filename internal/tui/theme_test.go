package tui

import "testing"

func TestThemeByNameFallsBack(t *testing.T) {
	if ThemeByName("dracula").Name != "Dracula" {
		t.Fatalf("expected dracula theme")
	}
	if ThemeByName("nope").Name != "Default" {
		t.Fatalf("expected default fallback")
	}
}
