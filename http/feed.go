package http

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/blogmark"
	"golang.org/x/net/html"
)

// Ensure FeedService implements blogmark.FeedService.
var _ blogmark.FeedService = (*FeedService)(nil)

// FeedService discovers post URLs from a blog's RSS 2.0 or Atom feed.
type FeedService struct {
	fetcher *Fetcher
}

// NewFeedService creates a new FeedService. If fetcher is nil a default
// Fetcher is used.
func NewFeedService(fetcher *Fetcher) *FeedService {
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	return &FeedService{fetcher: fetcher}
}

// Entries returns the posts advertised by the feed at feedURL.
// If feedURL points at an HTML page rather than a feed, the feed is
// located via <link rel="alternate"> autodiscovery. Entries matching
// the filter are returned in feed order; a nil filter passes everything.
func (s *FeedService) Entries(ctx context.Context, feedURL string, filter *blogmark.URLFilter) ([]blogmark.FeedEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(feedURL)
	if err != nil {
		return nil, blogmark.Errorf(blogmark.EINVALID, "invalid feed URL %q: %v", feedURL, err)
	}

	body, contentType, err := s.fetcher.fetchBody(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(body)
	body.Close()
	if err != nil {
		return nil, err
	}

	// An HTML page is not a feed; look for an advertised one.
	if looksLikeHTML(contentType, raw) {
		discovered := discoverFeedURL(raw, base)
		if discovered == "" {
			return nil, blogmark.Errorf(blogmark.ENOTFOUND, "no feed advertised by %s", feedURL)
		}
		discoveredBody, _, err := s.fetcher.fetchBody(ctx, discovered)
		if err != nil {
			return nil, err
		}
		raw, err = io.ReadAll(discoveredBody)
		discoveredBody.Close()
		if err != nil {
			return nil, err
		}
		if base, err = url.Parse(discovered); err != nil {
			return nil, blogmark.Errorf(blogmark.EINTERNAL, "invalid discovered feed URL %q: %v", discovered, err)
		}
	}

	entries, err := parseFeed(raw, base)
	if err != nil {
		return nil, err
	}

	var filtered []blogmark.FeedEntry
	for _, entry := range entries {
		if filter.Match(entry.URL) {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// looksLikeHTML reports whether a response is an HTML page rather than
// an XML feed.
func looksLikeHTML(contentType string, body []byte) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	head := strings.ToLower(string(body[:min(len(body), 512)]))
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

// discoverFeedURL extracts the first <link rel="alternate"> feed URL
// from an HTML page, resolved against the page URL.
func discoverFeedURL(page []byte, base *url.URL) string {
	doc, err := html.Parse(strings.NewReader(string(page)))
	if err != nil {
		return ""
	}

	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, typ, href string
			for _, attr := range n.Attr {
				switch strings.ToLower(attr.Key) {
				case "rel":
					rel = strings.ToLower(attr.Val)
				case "type":
					typ = strings.ToLower(attr.Val)
				case "href":
					href = attr.Val
				}
			}
			if rel == "alternate" && href != "" &&
				(strings.Contains(typ, "rss+xml") || strings.Contains(typ, "atom+xml")) {
				if ref, err := url.Parse(href); err == nil {
					found = base.ResolveReference(ref).String()
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

// parseFeed parses RSS 2.0 and Atom documents into feed entries.
func parseFeed(raw []byte, base *url.URL) ([]blogmark.FeedEntry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, blogmark.Errorf(blogmark.EINVALID, "parsing feed XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, blogmark.Errorf(blogmark.EINVALID, "empty feed document")
	}

	switch root.Tag {
	case "rss":
		return parseRSS(root, base), nil
	case "feed":
		return parseAtom(root, base), nil
	default:
		return nil, blogmark.Errorf(blogmark.EINVALID, "unrecognized feed root element <%s>", root.Tag)
	}
}

// parseRSS extracts entries from an RSS 2.0 <rss><channel> document.
func parseRSS(root *etree.Element, base *url.URL) []blogmark.FeedEntry {
	channel := root.SelectElement("channel")
	if channel == nil {
		return nil
	}

	var entries []blogmark.FeedEntry
	for _, item := range channel.SelectElements("item") {
		link := elementText(item, "link")
		if link == "" {
			continue
		}
		entries = append(entries, blogmark.FeedEntry{
			URL:   resolveEntryURL(base, link),
			Title: elementText(item, "title"),
		})
	}
	return entries
}

// parseAtom extracts entries from an Atom <feed> document. The entry
// link is the alternate link, or the first link when no rel attributes
// are present.
func parseAtom(root *etree.Element, base *url.URL) []blogmark.FeedEntry {
	var entries []blogmark.FeedEntry
	for _, entry := range root.SelectElements("entry") {
		var href string
		for _, link := range entry.SelectElements("link") {
			rel := link.SelectAttrValue("rel", "")
			if rel == "alternate" || (rel == "" && href == "") {
				href = link.SelectAttrValue("href", "")
				if rel == "alternate" {
					break
				}
			}
		}
		if href == "" {
			continue
		}
		entries = append(entries, blogmark.FeedEntry{
			URL:   resolveEntryURL(base, href),
			Title: elementText(entry, "title"),
		})
	}
	return entries
}

func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func resolveEntryURL(base *url.URL, link string) string {
	ref, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return link
	}
	return base.ResolveReference(ref).String()
}
