package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorOK        = lipgloss.Color("#3DDC97") // green: success, fresh data
	ColorWarning   = lipgloss.Color("#FFB800") // yellow: warning
	ColorError     = lipgloss.Color("#FF4F5E") // red: error
	ColorHash      = lipgloss.Color("#5BC0EB") // cyan: hashes, namespace ids
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold: amounts, heights
	ColorMeta      = lipgloss.Color("#6B6B6B") // dim gray: timestamps, metadata
	ColorBorder    = lipgloss.Color("#3B2A5C") // dark purple: UI chrome
	ColorBrand     = lipgloss.Color("#7B2BF9") // celestia purple: titles
	ColorHighlight = lipgloss.Color("#E94BE8") // pink: headers, selected rows
)

// Base styles.
var (
	StyleOK      = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleHash    = lipgloss.NewStyle().Foreground(ColorHash)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleBrand   = lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorBrand).
			Bold(true).
			MarginBottom(1)
)

// Success formats a success message.
func Success(msg string) string { return StyleOK.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Hash formats a hash or namespace id.
func Hash(h string) string { return StyleHash.Render(h) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// TruncateHash shortens a hash for display: 6F1C…9A0B.
func TruncateHash(h string) string {
	if len(h) <= 12 {
		return h
	}
	return h[:6] + "…" + h[len(h)-4:]
}

// Dash renders empty values as an em dash placeholder.
func Dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
