package reports

import "strings"

// Tone is the semantic color of a status or priority badge.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneWarn
	ToneInfo
	ToneBad
)

// StatusTone classifies a report status.
func StatusTone(status string) Tone {
	switch status {
	case "Resolved", "Completed":
		return ToneGood
	case "Under Investigation", "In Progress":
		return ToneWarn
	case "Under Review", "Planned":
		return ToneInfo
	default:
		return ToneNeutral
	}
}

// PriorityTone classifies a priority label.
func PriorityTone(priority string) Tone {
	switch priority {
	case "High":
		return ToneBad
	case "Medium":
		return ToneWarn
	case "Low":
		return ToneGood
	default:
		return ToneNeutral
	}
}

// ChangeTone colors a period-over-period change: increases are good.
func ChangeTone(change string) Tone {
	switch {
	case strings.HasPrefix(change, "+"):
		return ToneGood
	case strings.HasPrefix(change, "-"):
		return ToneBad
	default:
		return ToneNeutral
	}
}
