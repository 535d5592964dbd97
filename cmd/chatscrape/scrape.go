package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/chatscrape"
	"github.com/fwojciec/chatscrape/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 1 {
		payload, err := deps.Scraper.Scrape(deps.Ctx, c.URLs[0])
		if emitErr := c.emit(deps, payload, err); emitErr != nil {
			return emitErr
		}
		return err
	}

	outcomes, err := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs, func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %v\n", e.Completed, e.Total, e.URL, e.Error)
		}
	})
	if err != nil {
		return err
	}

	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
		if err := c.emit(deps, o.Payload, o.Err); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(outcomes))
	}
	return nil
}

// emit writes one scrape outcome to stdout in the requested format and, when
// an output directory is configured, writes a markdown transcript file.
func (c *ScrapeCmd) emit(deps *Dependencies, payload *chatscrape.ScrapeResult, scrapeErr error) error {
	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(chatscrape.NewResponse(payload, scrapeErr)); err != nil {
			return err
		}
	case "text":
		if scrapeErr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", chatscrape.ErrorMessage(scrapeErr))
			break
		}
		fmt.Fprintf(deps.Stdout, "%s (%d messages)\n\n", payload.PageURL, payload.Count)
		fmt.Fprint(deps.Stdout, chatscrape.FormatMessages(payload.Messages))
	case "markdown":
		if scrapeErr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", chatscrape.ErrorMessage(scrapeErr))
			break
		}
		md, err := deps.Converter.ConvertMessages(payload.Messages)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
	case "xml":
		if scrapeErr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", chatscrape.ErrorMessage(scrapeErr))
			break
		}
		xml, err := deps.Encoder.Encode(payload)
		if err != nil {
			return err
		}
		fmt.Fprint(deps.Stdout, xml)
	}

	if deps.Writer != nil && scrapeErr == nil {
		body, err := deps.Converter.ConvertMessages(payload.Messages)
		if err != nil {
			return err
		}
		path, err := deps.Writer.WriteTranscript(deps.Ctx, payload, body)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "wrote %s\n", path)
	}

	return nil
}
