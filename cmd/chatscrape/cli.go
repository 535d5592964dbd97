package main

import (
	"context"
	"io"

	"github.com/fwojciec/chatscrape"
	"github.com/fwojciec/chatscrape/etree"
	"github.com/fwojciec/chatscrape/htmltomarkdown"
	"github.com/fwojciec/chatscrape/scrape"
	"github.com/fwojciec/chatscrape/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Selectors chatscrape.SelectorService
	History   chatscrape.HistoryService
	Scraper   *scrape.Scraper
	Converter *htmltomarkdown.Converter
	Encoder   *etree.Encoder
	Writer    chatscrape.TranscriptWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape      ScrapeCmd      `cmd:"" help:"Scrape chat messages from one or more pages"`
	SetSelector SetSelectorCmd `cmd:"" name:"set-selector" help:"Memorize a container selector for a page origin"`
	Selectors   SelectorsCmd   `cmd:"" help:"List memorized container selectors"`
	Forget      ForgetCmd      `cmd:"" help:"Forget the memorized selector for an origin"`
	History     HistoryCmd     `cmd:"" help:"List recorded scrapes"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" help:"Chat page URLs"`
	Format      string   `short:"f" default:"json" enum:"json,text,markdown,xml" help:"Output format (json, text, markdown, xml)"`
	Out         string   `short:"o" help:"Write markdown transcripts to this directory"`
	Static      bool     `help:"Fetch with plain HTTP instead of a headless browser"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Verbose     bool     `short:"v" help:"Log fetch and extraction details"`
}

// SetSelectorCmd is the "set-selector" subcommand.
type SetSelectorCmd struct {
	URL      string `arg:"" help:"Page URL or origin to memorize the selector for"`
	Selector string `arg:"" help:"CSS selector for the conversation container"`
}

// SelectorsCmd is the "selectors" subcommand.
type SelectorsCmd struct{}

// ForgetCmd is the "forget" subcommand.
type ForgetCmd struct {
	Origin  string `arg:"" help:"Origin to forget, e.g. https://example.com"`
	Scrapes bool   `help:"Also delete recorded scrapes for the origin"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Origin string `short:"O" help:"Filter by origin"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of records"`
	Full   bool   `help:"Show the full stored payload"`
}
