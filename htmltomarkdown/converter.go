// Package htmltomarkdown converts extracted message HTML to Markdown for
// transcript output.
package htmltomarkdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/chatscrape"
)

// Ensure Converter implements chatscrape.Converter at compile time.
var _ chatscrape.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", chatscrape.Errorf(chatscrape.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// ConvertMessages renders a conversation as a Markdown transcript. Each
// message becomes a section headed by its sender and timestamp; the message
// body is converted from its extracted HTML, with attachments appended as a
// link list. Messages whose HTML fails to convert fall back to their plain
// text.
func (c *Converter) ConvertMessages(messages []*chatscrape.Message) (string, error) {
	var b strings.Builder

	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}

		heading := msg.Sender
		if heading == "" {
			heading = "Unknown"
		}
		if msg.Timestamp != "" {
			heading += " — " + msg.Timestamp
		}
		fmt.Fprintf(&b, "## %s\n\n", heading)

		body := msg.Text
		if msg.HTML != "" {
			if md, err := c.Convert(msg.HTML); err == nil {
				body = strings.TrimSpace(md)
			}
		}
		if body != "" {
			b.WriteString(body)
			b.WriteString("\n")
		}

		for _, att := range msg.Attachments {
			name := att.Name
			if name == "" {
				name = string(att.Type)
			}
			fmt.Fprintf(&b, "\n- [%s](%s)", name, att.URL)
		}
		if len(msg.Attachments) > 0 {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
