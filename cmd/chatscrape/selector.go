package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/chatscrape"
)

// Run executes the set-selector command.
func (c *SetSelectorCmd) Run(deps *Dependencies) error {
	if err := deps.Scraper.SetSelector(deps.Ctx, c.URL, c.Selector); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", chatscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Memorized selector %q\n", c.Selector)
	return nil
}

// Run executes the selectors command.
func (c *SelectorsCmd) Run(deps *Dependencies) error {
	selectors, err := deps.Selectors.ListSelectors(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", chatscrape.ErrorMessage(err))
		return err
	}

	if len(selectors) == 0 {
		fmt.Fprintln(deps.Stdout, "No selectors memorized. Use 'chatscrape set-selector' to add one.")
		return nil
	}

	for _, s := range selectors {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.Origin, s.Selector, s.UpdatedAt.Format(time.RFC3339))
	}

	return nil
}

// Run executes the forget command.
func (c *ForgetCmd) Run(deps *Dependencies) error {
	if err := deps.Selectors.DeleteSelector(deps.Ctx, c.Origin); err != nil {
		if chatscrape.ErrorCode(err) == chatscrape.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no selector memorized for %q. Use 'chatscrape selectors' to see what is stored.\n", c.Origin)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", chatscrape.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Forgot selector for %q\n", c.Origin)

	if c.Scrapes {
		if err := deps.History.DeleteScrapesByOrigin(deps.Ctx, c.Origin); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", chatscrape.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted recorded scrapes for %q\n", c.Origin)
	}

	return nil
}
