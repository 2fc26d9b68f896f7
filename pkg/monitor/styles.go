package monitor

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("212")
	successColor = lipgloss.Color("78")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("241")
	cyanColor    = lipgloss.Color("86")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(cyanColor)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(successColor)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	retiredBadgeStyle = lipgloss.NewStyle().
				Foreground(warningColor)
)
