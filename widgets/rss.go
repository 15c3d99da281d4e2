// widgets/rss.go
package widgets

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"
)

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// RSSWidget renders the newest items of an RSS feed as a linked list.
type RSSWidget struct {
	title   string
	feedURL string
	limit   int
	client  *http.Client
}

// NewRSSFactory returns a factory for an RSS widget bound to one feed.
func NewRSSFactory(title, feedURL string, limit int) Factory {
	return func() Widget {
		return &RSSWidget{
			title:   title,
			feedURL: feedURL,
			limit:   limit,
			client:  &http.Client{Timeout: 10 * time.Second},
		}
	}
}

func (w *RSSWidget) Title() string {
	return w.title
}

func (w *RSSWidget) Height() int {
	return 3
}

func (w *RSSWidget) Width() int {
	return 2
}

func (w *RSSWidget) RenderContent(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return "", fmt.Errorf("failed to parse feed: %w", err)
	}

	var builder strings.Builder
	builder.WriteString(`<ul class="widget-rss">`)
	for i, item := range feed.Channel.Items {
		if i >= w.limit {
			break
		}
		builder.WriteString(fmt.Sprintf(
			`<li><a href="%s">%s</a><span>%s</span></li>`,
			html.EscapeString(item.Link),
			html.EscapeString(item.Title),
			html.EscapeString(item.PubDate),
		))
	}
	builder.WriteString(`</ul>`)
	return builder.String(), nil
}

func (w *RSSWidget) EventData() map[string]interface{} {
	return map[string]interface{}{
		"feed": w.feedURL,
	}
}
