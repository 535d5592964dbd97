package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/chatscrape"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := chatscrape.ScrapeFilter{Limit: c.Limit}
	if c.Origin != "" {
		filter.Origin = &c.Origin
	}

	records, err := deps.History.FindScrapes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", chatscrape.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No scrapes recorded.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d messages  %s\n",
			r.ScrapedAt.Format(time.RFC3339), r.PageURL, r.Count, r.ID)
		if c.Full {
			fmt.Fprintln(deps.Stdout, r.Payload)
		}
	}

	return nil
}
