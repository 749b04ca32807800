package tui

import "github.com/charmbracelet/lipgloss"

// Colors adapted to remain readable on both light and dark terminal
// backgrounds.
var (
	pcpText   = lipgloss.AdaptiveColor{Light: "#1f2933", Dark: "#f5f7fa"}
	pcpMuted  = lipgloss.AdaptiveColor{Light: "#7b8794", Dark: "#cbd2d9"}
	pcpAccent = lipgloss.AdaptiveColor{Light: "#2f6fed", Dark: "#7da2f7"}
	pcpWarn   = lipgloss.AdaptiveColor{Light: "#b44d12", Dark: "#e8a13c"}
	pcpDanger = lipgloss.AdaptiveColor{Light: "#a32138", Dark: "#e05252"}
	pcpDemo   = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#b794f4"}
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(pcpText)
}

func metaStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pcpMuted).Faint(true)
}

func dangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pcpDanger).Bold(true)
}

func demoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pcpDemo).Bold(true)
}

// severityStyle maps the backend's severity levels to display styles.
func severityStyle(sev string) lipgloss.Style {
	switch sev {
	case "alto":
		return dangerStyle()
	case "medio":
		return lipgloss.NewStyle().Foreground(pcpWarn)
	default:
		return metaStyle()
	}
}
