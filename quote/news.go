package quote

import (
	"log"

	"github.com/mmcdole/gofeed"
)

// A NewsItem is one headline from a market news feed.
type NewsItem struct {
	Title string
	Link  string
	Date  string
}

// News fetches headlines from each configured RSS feed, keyed by the
// feed's category name. Feeds that cannot be fetched or parsed are
// skipped; only categories with at least one headline appear.
func News(feeds map[string]string, maxPerFeed int) map[string][]NewsItem {
	parser := gofeed.NewParser()
	news := make(map[string][]NewsItem)
	for category, addr := range feeds {
		feed, err := parser.ParseURL(addr)
		if err != nil {
			log.Printf("news: %s: %v", category, err)
			continue
		}
		items := make([]NewsItem, 0, maxPerFeed)
		for _, entry := range feed.Items {
			if len(items) >= maxPerFeed {
				break
			}
			items = append(items, NewsItem{Title: entry.Title, Link: entry.Link, Date: entry.Published})
		}
		if len(items) > 0 {
			news[category] = items
		}
	}
	return news
}
