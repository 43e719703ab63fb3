package feed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Item represents one news or social text to analyze
type Item struct {
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// FullText joins title and body for extraction. Titles carry concept
// terms too, so both feed the analyzer.
func (it Item) FullText() string {
	if it.Title == "" {
		return it.Text
	}
	if it.Text == "" {
		return it.Title
	}
	return it.Title + " " + it.Text
}

// LoadFromJSONL loads items from a JSONL file with proper error handling
func LoadFromJSONL(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []Item
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", path)
	}

	return items, nil
}
