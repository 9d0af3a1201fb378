package style

import (
	"strings"
	"testing"

	"github.com/idadots/ida/pkg/install"
	"github.com/idadots/ida/pkg/types"
)

func TestRenderOutcome(t *testing.T) {
	tests := []struct {
		name     string
		outcome  types.LinkOutcome
		contains []string
	}{
		{
			name: "create link",
			outcome: types.LinkOutcome{
				Source: "/repo/config/kitty",
				Target: "/home/u/.config/kitty",
				Action: types.ActionCreateLink,
			},
			contains: []string{"link", "/home/u/.config/kitty", "linked"},
		},
		{
			name: "create link dry run uses future tense",
			outcome: types.LinkOutcome{
				Target: "/home/u/.config/kitty",
				Action: types.ActionCreateLink,
				DryRun: true,
			},
			contains: []string{"will be linked"},
		},
		{
			name: "backup shows displaced path",
			outcome: types.LinkOutcome{
				Target:     "/home/u/.config/kitty",
				Action:     types.ActionBackupThenLink,
				BackupPath: "/home/u/.ida-backups/20240101-120000/kitty",
			},
			contains: []string{"backed up and linked", "/home/u/.ida-backups/20240101-120000/kitty"},
		},
		{
			name: "dry run backup omits backup path",
			outcome: types.LinkOutcome{
				Target: "/home/u/.config/kitty",
				Action: types.ActionBackupThenLink,
				DryRun: true,
			},
			contains: []string{"will be backed up and linked"},
		},
		{
			name: "skip",
			outcome: types.LinkOutcome{
				Target: "/home/u/.config/fish",
				Action: types.ActionSkipExisting,
			},
			contains: []string{"skip", "skipped (exists)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := RenderOutcome(tt.outcome)
			for _, want := range tt.contains {
				if !strings.Contains(line, want) {
					t.Errorf("RenderOutcome() = %q, want it to contain %q", line, want)
				}
			}
		})
	}
}

func TestRenderSummary(t *testing.T) {
	stats := types.TreeStats{Linked: 12, Skipped: 2, Backups: 1}

	line := RenderSummary(stats, false)
	for _, want := range []string{"12 linked", "2 skipped", "1 backed up"} {
		if !strings.Contains(line, want) {
			t.Errorf("RenderSummary() = %q, want it to contain %q", line, want)
		}
	}
	if strings.Contains(line, "errors") {
		t.Errorf("RenderSummary() = %q, should not mention errors when there are none", line)
	}

	dry := RenderSummary(types.TreeStats{Linked: 3, Skipped: 1}, true)
	if !strings.Contains(dry, "dry run") {
		t.Errorf("RenderSummary() = %q, want dry run marker", dry)
	}
}

func TestRenderReport(t *testing.T) {
	report := &install.Report{
		Configs: []install.ConfigCheck{
			{Name: "kitty", Target: "/home/u/.config/kitty", State: install.StateLinked},
			{Name: "waybar", Target: "/home/u/.config/waybar", State: install.StateConflict},
			{Name: "wofi", Target: "/home/u/.config/wofi", State: install.StateMissing},
		},
		Scripts: []install.ScriptCheck{
			{Name: "ida-theme", Linked: true, OnPath: true},
			{Name: "ida-wallpaper", Linked: true, OnPath: false},
		},
		Issues: 3,
	}

	out := RenderReport(report)
	for _, want := range []string{
		"linked", "conflict", "missing",
		"/home/u/.config/waybar",
		"ida-theme", "ida-wallpaper", "not on PATH",
		"3 issues",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderReport() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderSwatches(t *testing.T) {
	colors := map[string]string{
		"accent": "#7AA2F7",
		"urgent": "#F7768E",
	}
	out := RenderSwatches(colors, []string{"accent", "urgent", "shadow"})

	for _, want := range []string{"accent", "#7AA2F7", "urgent", "#F7768E"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSwatches() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "shadow") {
		t.Errorf("RenderSwatches() should skip keys without colors:\n%s", out)
	}
}
