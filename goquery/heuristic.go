package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minHeuristicScore is the confidence threshold below which the best
// heuristic candidate is rejected. Empirically chosen; tunable, not a
// guarantee.
const minHeuristicScore = 200

// Score weights for structural article signals. Paragraph and heading
// density distinguish an article body from a data table or footer with
// the same raw text volume.
const (
	paragraphWeight = 50
	headingWeight   = 30
)

// unwantedTags are elements that never contain article content.
var unwantedTags = []string{
	"header", "nav", "aside", "footer", "form",
	"noscript", "script", "style", "iframe",
}

// unwantedClassKeywords mark boilerplate containers. Matching is by
// substring against the lower-cased class attribute.
var unwantedClassKeywords = []string{
	"share", "comment", "recommend", "related", "sidebar",
	"advert", "ad-", "reward", "meta", "profile",
}

var unwantedTagSelector = strings.Join(unwantedTags, ", ")

const headingSelector = "h1, h2, h3, h4, h5, h6"

// heuristicPick scores candidate containers across the whole document
// and returns the best one, or nil when no candidate is convincing.
// Unwanted tags are removed from the document before scoring so their
// text cannot inflate candidate scores. The removal is destructive;
// callers run this only after selector-based extraction has failed.
func heuristicPick(doc *goquery.Document) *goquery.Selection {
	doc.Find(unwantedTagSelector).Remove()

	var best *goquery.Selection
	bestScore := 0

	doc.Find("article, div, main").Each(func(_ int, s *goquery.Selection) {
		if looksLikeNoise(s) {
			return
		}
		if score := scoreNode(s); score > bestScore {
			best = s
			bestScore = score
		}
	})

	if bestScore < minHeuristicScore {
		return nil
	}
	return best
}

// looksLikeNoise reports whether a candidate is obvious boilerplate.
func looksLikeNoise(s *goquery.Selection) bool {
	class := strings.ToLower(s.AttrOr("class", ""))
	for _, keyword := range unwantedClassKeywords {
		if strings.Contains(class, keyword) {
			return true
		}
	}
	switch goquery.NodeName(s) {
	case "ul", "ol":
		return true
	}
	return false
}

// scoreNode rates a candidate by text volume plus structural density.
func scoreNode(s *goquery.Selection) int {
	return textLength(s) +
		paragraphWeight*s.Find("p").Length() +
		headingWeight*s.Find(headingSelector).Length()
}
