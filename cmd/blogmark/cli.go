package main

import (
	"context"
	"io"

	"github.com/fwojciec/blogmark"
	"github.com/fwojciec/blogmark/batch"
	"github.com/fwojciec/blogmark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	DB           *sqlite.DB
	Drafts       blogmark.DraftService
	Fetcher      blogmark.Fetcher
	Extractor    blogmark.Extractor
	Converter    blogmark.Converter
	Writer       blogmark.DraftWriter
	TokenCounter blogmark.TokenCounter
	Feeds        blogmark.FeedService
	Runner       *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert a blog post URL to a Markdown draft"`
	Feed    FeedCmd    `cmd:"" help:"Convert every post in an RSS/Atom feed"`
	List    ListCmd    `cmd:"" help:"List saved drafts"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a draft record"`
}

// PipelineFlags are the flags shared by commands that run the
// fetch-extract-convert pipeline.
type PipelineFlags struct {
	Engine    string `default:"goquery" enum:"goquery,readability,trafilatura" help:"Extraction engine"`
	Timeout   int    `default:"15" help:"HTTP timeout in seconds"`
	UserAgent string `name:"user-agent" default:"" help:"Override the HTTP User-Agent header"`
	Tokens    bool   `help:"Count Gemini tokens for the draft"`
	Verbose   bool   `short:"v" help:"Log pipeline steps to stderr"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	URL     string `arg:"" help:"Blog post URL"`
	Dir     string `default:"drafts" help:"Base directory for draft files"`
	HTMLOut string `name:"html-out" help:"Explicit path for the HTML snapshot"`
	MDOut   string `name:"md-out" help:"Explicit path for the Markdown file"`
	TOC     bool   `name:"toc" help:"Insert a table of contents after the title"`
	Force   bool   `short:"f" help:"Replace an existing draft with the same slug"`

	PipelineFlags `embed:""`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URL         string   `arg:"" help:"Feed URL, or a blog page to autodiscover the feed from"`
	Dir         string   `default:"drafts" help:"Base directory for draft files"`
	Include     []string `short:"i" help:"Only convert entries matching a regex (repeatable)"`
	Exclude     []string `short:"x" help:"Skip entries matching a regex (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per domain"`

	PipelineFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Draft ID"`
	Force bool   `help:"Confirm deletion"`
}
