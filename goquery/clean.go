package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// CleanContent strips boilerplate out of a chosen content node in place.
// Unwanted tags are removed first so that a noise container's descendants
// cannot independently survive the class sweep that follows. The second
// pass removes subtrees with boilerplate class markers and collapses
// empty div/span wrapper shells. Idempotent.
func CleanContent(content *goquery.Selection) {
	content.Find(unwantedTagSelector).Remove()

	root := content.Get(0)
	content.Find("*").Each(func(_ int, s *goquery.Selection) {
		// Skip nodes detached by an earlier subtree removal.
		if !attachedTo(root, s.Get(0)) {
			return
		}

		class := strings.ToLower(s.AttrOr("class", ""))
		for _, keyword := range unwantedClassKeywords {
			if strings.Contains(class, keyword) {
				s.Remove()
				return
			}
		}

		switch goquery.NodeName(s) {
		case "div", "span":
			if strings.TrimSpace(s.Text()) == "" && s.Find("img").Length() == 0 {
				s.Remove()
			}
		}
	})
}

// attachedTo reports whether n is still a descendant of root.
func attachedTo(root, n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}
