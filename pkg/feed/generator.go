// Package feed renders the curated digest as an RSS 2.0 feed for delivery to
// host pages and readers.
package feed

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/umputun/newsdigest/pkg/domain"
)

// Generator creates RSS feeds from news items
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed from news items, optionally restricted
// to one category. Items come out newest first.
func (g *Generator) GenerateRSS(items []domain.NewsItem, category domain.Category) (string, error) {
	// determine title
	title := "Ethical Tech Digest"
	if category != "" {
		title = fmt.Sprintf("Ethical Tech Digest - %s", category.Name())
	}

	// build self link
	selfLink := g.baseURL + "/rss"
	if category != "" {
		selfLink = fmt.Sprintf("%s/rss/%s", g.baseURL, category)
	}

	// filter and sort newest first
	filtered := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		filtered = append(filtered, item)
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Date > filtered[j].Date })

	rssItems := make([]*RSSItem, 0, len(filtered))
	for _, item := range filtered {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	// create RSS structure
	rssFeed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Curated news on the ethical implications of new technologies",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	// marshal to XML
	output, err := xml.MarshalIndent(rssFeed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	// add XML declaration
	return xml.Header + string(output), nil
}

// convertToRSSItem converts a news item to an RSS item
func (g *Generator) convertToRSSItem(item domain.NewsItem) *RSSItem {
	desc := item.Summary
	if desc == "" {
		desc = item.Content
	}

	pubDate := item.Date
	if t, err := time.Parse("2006-01-02", item.Date); err == nil {
		pubDate = t.Format(time.RFC1123Z)
	}

	rssItem := &RSSItem{
		Title:       item.Title,
		Link:        item.URL,
		GUID:        item.ID,
		Description: desc,
		PubDate:     pubDate,
		Categories:  []string{string(item.Category)},
	}
	if item.ImageURL != "" {
		rssItem.Enclosure = &RSSImg{URL: item.ImageURL, Type: "image/jpeg"}
	}
	return rssItem
}
