package monitor

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// copyPlayerCmd copies a player's scouting report to the clipboard and
// reports the outcome on the status line.
func copyPlayerCmd(row playerRow) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(formatPlayerAsMarkdown(row)); err != nil {
			return statusMsg{Text: fmt.Sprintf("copy failed: %v", err), IsErr: true}
		}
		return statusMsg{Text: fmt.Sprintf("copied %s", row.Name)}
	}
}

// copyToClipboard copies text to the system clipboard.
// Uses pbcopy on macOS, xclip on Linux, clip.exe on Windows.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard tool found (install xclip or xsel)")
		}
	case "windows":
		cmd = exec.Command("clip.exe")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if _, err := stdin.Write([]byte(text)); err != nil {
		return err
	}

	if err := stdin.Close(); err != nil {
		return err
	}

	return cmd.Wait()
}

// formatPlayerAsMarkdown formats a scouting report for the clipboard.
func formatPlayerAsMarkdown(row playerRow) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n", row.Name))
	sb.WriteString(fmt.Sprintf("**Position:** %s", row.Position.Label()))
	if row.TeamName != "" {
		sb.WriteString(fmt.Sprintf(" | **Team:** %s", row.TeamName))
	}
	if row.Age > 0 {
		sb.WriteString(fmt.Sprintf(" | **Age:** %d", row.Age))
	}
	sb.WriteString("\n")

	if row.Rating != nil {
		sb.WriteString(fmt.Sprintf("**Rating:** %.1f\n", *row.Rating))
	}
	if row.Retired {
		sb.WriteString("**Status:** retired\n")
	}

	if row.Notes != "" {
		sb.WriteString("\n## Scouting Notes\n\n")
		sb.WriteString(row.Notes)
		sb.WriteString("\n")
	}

	return sb.String()
}
