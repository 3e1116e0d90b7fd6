// Package blogmark turns blog posts into standalone Markdown drafts.
// It fetches a post (or every post in a feed), extracts the main article
// content from the HTML, converts it to Markdown, writes the draft to
// disk, and records it in a local database.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package blogmark
