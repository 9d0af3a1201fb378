package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/idadots/ida/pkg/install"
	"github.com/idadots/ida/pkg/types"
)

// actionVerbs defines past and future tense phrasing per engine action.
var actionVerbs = map[types.Action]struct {
	Past   string
	Future string
}{
	types.ActionNoOp:           {Past: "already linked", Future: "already linked"},
	types.ActionCreateLink:     {Past: "linked", Future: "will be linked"},
	types.ActionSkipExisting:   {Past: "skipped (exists)", Future: "would be skipped (exists)"},
	types.ActionBackupThenLink: {Past: "backed up and linked", Future: "will be backed up and linked"},
	types.ActionDeleteThenLink: {Past: "replaced", Future: "will be replaced"},
}

// ActionStyle returns the pterm style for an engine action.
func ActionStyle(action types.Action) *pterm.Style {
	switch action {
	case types.ActionCreateLink:
		return pterm.NewStyle(pterm.FgGreen)
	case types.ActionBackupThenLink:
		return pterm.NewStyle(pterm.FgYellow)
	case types.ActionDeleteThenLink:
		return pterm.NewStyle(pterm.FgRed)
	case types.ActionSkipExisting:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderOutcome renders one per-item status line.
func RenderOutcome(outcome types.LinkOutcome) string {
	if outcome.Err != nil {
		label := pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(fmt.Sprintf("%-8s", "error"))
		return fmt.Sprintf("  %s %s: %v", label, outcome.Target, outcome.Err)
	}

	verbs := actionVerbs[outcome.Action]
	verb := verbs.Past
	if outcome.DryRun {
		verb = verbs.Future
	}

	label := ActionStyle(outcome.Action).Sprint(fmt.Sprintf("%-8s", string(outcome.Action)))
	line := fmt.Sprintf("  %s %s %s", label, outcome.Target, MutedStyle.Render(verb))
	if outcome.BackupPath != "" && !outcome.DryRun {
		line += MutedStyle.Render(" -> " + outcome.BackupPath)
	}
	return line
}

// RenderSummary renders the one-line run summary for a tree pass.
func RenderSummary(stats types.TreeStats, dryRun bool) string {
	parts := []string{
		fmt.Sprintf("%d linked", stats.Linked),
		fmt.Sprintf("%d skipped", stats.Skipped),
	}
	if stats.Backups > 0 {
		parts = append(parts, fmt.Sprintf("%d backed up", stats.Backups))
	}
	if stats.Errors > 0 {
		parts = append(parts, ErrorStyle.Render(fmt.Sprintf("%d errors", stats.Errors)))
	}

	summary := strings.Join(parts, ", ")
	if dryRun {
		return MutedStyle.Render("dry run: ") + summary
	}
	return summary
}

// RenderReport renders a validation report, one line per config entry and
// key script.
func RenderReport(report *install.Report) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Configs") + "\n")
	for _, check := range report.Configs {
		sb.WriteString(renderConfigCheck(check) + "\n")
	}

	sb.WriteString(TitleStyle.Render("Key scripts") + "\n")
	for _, check := range report.Scripts {
		sb.WriteString(renderScriptCheck(check) + "\n")
	}

	if report.Issues == 0 {
		sb.WriteString(SuccessStyle.Render("ok") + "\n")
	} else {
		sb.WriteString(ErrorStyle.Render(fmt.Sprintf("%d issues", report.Issues)) + "\n")
	}
	return sb.String()
}

func renderConfigCheck(check install.ConfigCheck) string {
	var label string
	switch check.State {
	case install.StateLinked:
		label = SuccessStyle.Render(fmt.Sprintf("%-8s", "linked"))
	case install.StateConflict:
		label = WarningStyle.Render(fmt.Sprintf("%-8s", "conflict"))
	default:
		label = ErrorStyle.Render(fmt.Sprintf("%-8s", "missing"))
	}
	return fmt.Sprintf("  %s %s", label, check.Target)
}

func renderScriptCheck(check install.ScriptCheck) string {
	var notes []string
	if !check.Linked {
		notes = append(notes, "not linked")
	}
	if !check.OnPath {
		notes = append(notes, "not on PATH")
	}

	if len(notes) == 0 {
		return fmt.Sprintf("  %s %s", SuccessStyle.Render(fmt.Sprintf("%-8s", "ok")), check.Name)
	}
	return fmt.Sprintf("  %s %s (%s)",
		ErrorStyle.Render(fmt.Sprintf("%-8s", "broken")), check.Name, strings.Join(notes, ", "))
}
