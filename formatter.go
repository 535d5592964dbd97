package chatscrape

import "strings"

// FormatMessages formats messages as a plain-text transcript for display.
// Each line carries the timestamp and sender when the heuristics found them,
// followed by the message text and one indented line per attachment.
func FormatMessages(msgs []*Message) string {
	if len(msgs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}

		if m.Timestamp != "" {
			b.WriteString("[" + m.Timestamp + "] ")
		}
		if m.Sender != "" {
			b.WriteString(m.Sender + ": ")
		}
		b.WriteString(m.Text)
		b.WriteString("\n")

		for _, a := range m.Attachments {
			b.WriteString("  (" + string(a.Type) + ") ")
			if a.Name != "" {
				b.WriteString(a.Name + " ")
			}
			b.WriteString(a.URL)
			b.WriteString("\n")
		}
	}

	return b.String()
}
