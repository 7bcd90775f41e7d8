package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/HaiFongPan/kvpage/internal/layout"
)

// RoleStyle returns the style a grid run of the given role is painted with.
func RoleStyle(role layout.Role) lipgloss.Style {
	switch role {
	case layout.RoleKey:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorKey))
	case layout.RoleValue:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorValue))
	case layout.RoleTitle:
		return CreateHeaderStyle()
	case layout.RoleClose:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBrightRed))
	case layout.RoleLabel:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightYellow))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRule))
	}
}

// CreateHeaderStyle creates the title style
func CreateHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrightCyan))
}

// CreateFooterStyle creates the footer style
func CreateFooterStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack)).
		MaxWidth(width).
		PaddingLeft(1)
}

// CreateSecondaryTextStyle creates a consistent secondary text style
func CreateSecondaryTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack)).
		Italic(true)
}

// CreateErrorStyle creates a consistent error style
func CreateErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightRed))
}
