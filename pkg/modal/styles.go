package modal

import "github.com/charmbracelet/lipgloss"

// Variant selects the modal's visual intent, mirrored in the border color
// and the primary button style.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

// Palette colors shared by the modal surfaces.
var (
	colorPrimary = lipgloss.Color("212")
	colorError   = lipgloss.Color("196")
	colorWarning = lipgloss.Color("214")
	colorInfo    = lipgloss.Color("45")
	colorMuted   = lipgloss.Color("241")
	colorBorder  = lipgloss.Color("240")
)

func (v Variant) borderColor() lipgloss.Color {
	switch v {
	case VariantDanger:
		return colorError
	case VariantWarning:
		return colorWarning
	case VariantInfo:
		return colorInfo
	default:
		return colorPrimary
	}
}

// Text styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	bodyStyle  = lipgloss.NewStyle()
	hintStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// Button styles per state.
var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	buttonFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(colorPrimary).
				Bold(true).
				Padding(0, 2)

	buttonHoverStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("245")).
				Padding(0, 2)

	buttonDangerFocusedStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("255")).
					Background(colorError).
					Bold(true).
					Padding(0, 2)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(lipgloss.Color("236")).
				Padding(0, 2)
)

// List styles.
var (
	listItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	listItemSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255"))

	listItemFocusedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255")).
				Bold(true)

	listCursorStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)

// Close button glyph in the header.
var closeButtonStyle = lipgloss.NewStyle().Foreground(colorMuted)
