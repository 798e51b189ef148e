package pretty

import (
	"fmt"
)

// FormatEntry renders one report line: "<file>:<line>: [<severity>] <message>".
// When width is positive the rendered line is truncated to fit a terminal;
// width 0 disables truncation.
func (s *Styles) FormatEntry(file string, line int, severity, message string, width int) string {
	if width > 0 {
		// Budget: location + ": [severity] " decoration around the message.
		decoration := len(file) + len(severity) + len(": [] ") + numWidth(line) + 1
		if avail := width - decoration; avail > 3 && len(message) > avail {
			message = message[:avail-3] + "..."
		}
	}

	location := fmt.Sprintf("%s:%d:", s.FilePath.Render(file), line)

	return fmt.Sprintf("%s [%s] %s",
		location,
		s.formatSeverity(severity),
		s.Message.Render(message),
	)
}

func (s *Styles) formatSeverity(severity string) string {
	switch severity {
	case "error":
		return s.Error.Render(severity)
	case "warning":
		return s.Warning.Render(severity)
	default:
		return s.Dim.Render(severity)
	}
}

func numWidth(n int) int {
	return len(fmt.Sprint(n))
}
