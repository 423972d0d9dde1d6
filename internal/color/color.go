package color

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic palette with consistent light/dark mode support.
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
)

// Styles used by the CLI commands.
var (
	// PromptStyle renders the interactive chat prompt.
	PromptStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	// HeaderStyle renders table headers in catalog listings.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// ToolNameStyle highlights tool names in catalogs and call traces.
	ToolNameStyle = lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)

	// SuccessStyle marks successful states.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// WarningStyle marks degraded but non-fatal states.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	// ErrorStyle renders command errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	// MutedStyle de-emphasizes secondary text such as hints and raw tool
	// output.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Initialize pins the terminal background mode so adaptive colors resolve
// consistently for the whole process. Called once from the root command.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
