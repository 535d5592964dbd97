// Package etree renders scrape results as XML documents.
package etree

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/chatscrape"
)

// Encoder renders a scrape result as an indented XML document.
type Encoder struct {
	indent int
}

// NewEncoder creates a new Encoder with two-space indentation.
func NewEncoder() *Encoder {
	return &Encoder{indent: 2}
}

// Encode returns the XML rendering of a scrape result. Optional message
// fields are emitted only when present, mirroring the JSON payload shape.
func (e *Encoder) Encode(res *chatscrape.ScrapeResult) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	conv := doc.CreateElement("conversation")
	conv.CreateAttr("url", res.PageURL)
	conv.CreateAttr("title", res.PageTitle)
	conv.CreateAttr("scrapedAt", res.ScrapedAt.Format(time.RFC3339))
	conv.CreateAttr("count", strconv.Itoa(res.Count))
	if res.ContainerSelector != "" {
		conv.CreateAttr("containerSelector", res.ContainerSelector)
	}

	for _, msg := range res.Messages {
		el := conv.CreateElement("message")
		el.CreateAttr("index", strconv.Itoa(msg.Index))
		if msg.Sender != "" {
			el.CreateAttr("sender", msg.Sender)
		}
		if msg.Timestamp != "" {
			el.CreateAttr("timestamp", msg.Timestamp)
		}

		el.CreateElement("text").SetText(msg.Text)

		for _, att := range msg.Attachments {
			a := el.CreateElement("attachment")
			a.CreateAttr("type", string(att.Type))
			a.CreateAttr("url", att.URL)
			if att.Name != "" {
				a.CreateAttr("name", att.Name)
			}
		}
	}

	doc.Indent(e.indent)
	return doc.WriteToString()
}
