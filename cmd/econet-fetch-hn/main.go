// Command econet-fetch-hn downloads Hacker News top stories, keeps the
// ones mentioning economic concepts and writes them as JSONL items that
// econet-analyze can consume.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/cognicore/econgraph/internal/feed"
	"github.com/cognicore/econgraph/pkg/econet/extract"
	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

// Hacker News API endpoints
const (
	apiBase       = "https://hacker-news.firebaseio.com/v0"
	topStoriesURL = apiBase + "/topstories.json"
	itemURL       = apiBase + "/item/%d.json"
)

// hnItem represents a Hacker News story
type hnItem struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Time  int64  `json:"time"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}

func main() {
	var (
		count = flag.Int("count", 100, "Number of top stories to scan")
		out   = flag.String("out", "testdata/hn/items.jsonl", "Output JSONL path")
		all   = flag.Bool("all", false, "Keep every story, not just economically relevant ones")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	logger.Info("downloading top stories", "count", *count)

	storyIDs, err := getTopStories()
	if err != nil {
		logger.Fatal("get top stories", "err", err)
	}
	if *count < len(storyIDs) {
		storyIDs = storyIDs[:*count]
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		logger.Fatal("create output directory", "err", err)
	}
	outFile, err := os.Create(*out)
	if err != nil {
		logger.Fatal("create output file", "err", err)
	}
	defer outFile.Close()

	extractor := extract.New(taxonomy.Default())
	encoder := json.NewEncoder(outFile)
	kept := 0

	for i, id := range storyIDs {
		item, err := getItem(id)
		if err != nil {
			logger.Warn("skipping item", "id", id, "err", err)
			continue
		}
		if item.Type != "story" || item.Title == "" {
			continue
		}

		text := item.Title
		if item.Text != "" {
			text += ". " + stripHTML(item.Text)
		}

		if !*all && !relevant(extractor, text) {
			continue
		}

		doc := feed.Item{
			Title:       item.Title,
			Text:        text,
			Source:      "news.ycombinator.com",
			PublishedAt: time.Unix(item.Time, 0).UTC(),
		}
		if err := encoder.Encode(doc); err != nil {
			logger.Warn("encode item", "id", id, "err", err)
			continue
		}

		kept++
		if (i+1)%25 == 0 {
			logger.Info("progress", "scanned", i+1, "kept", kept)
		}

		// Be nice to the API
		time.Sleep(50 * time.Millisecond)
	}

	logger.Info("done", "kept", kept, "path", *out)
}

// relevant reports whether the text mentions at least one taxonomy
// concept, so off-topic stories never reach the analyzer.
func relevant(extractor *extract.Extractor, text string) bool {
	return len(extractor.Extract(text)) > 0
}

func getTopStories() ([]int64, error) {
	resp, err := http.Get(topStoriesURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var ids []int64
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, err
	}

	return ids, nil
}

func getItem(id int64) (*hnItem, error) {
	url := fmt.Sprintf(itemURL, id)
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var item hnItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
