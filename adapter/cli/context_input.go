package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/daybrief/daybrief/internal/briefing/domain"
)

// contextFile is the JSON document produced by the state-file parser. Date is
// optional and defaults to today.
type contextFile struct {
	Date  string            `json:"date,omitempty"`
	Items []contextFileItem `json:"items"`
}

type contextFileItem struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	Type      string `json:"type,omitempty"`
	Deadline  string `json:"deadline,omitempty"`
	Completed bool   `json:"completed,omitempty"`
}

// loadBriefingContext reads a briefing context from the given path ("-" means
// stdin). An empty path yields an empty context for today.
func loadBriefingContext(path string, today time.Time) (domain.BriefingContext, error) {
	if path == "" {
		return domain.NewBriefingContext(today, nil), nil
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.BriefingContext{}, fmt.Errorf("read context: %w", err)
	}

	var file contextFile
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.BriefingContext{}, fmt.Errorf("parse context: %w", err)
	}

	if file.Date != "" {
		parsed, err := time.Parse("2006-01-02", file.Date)
		if err != nil {
			return domain.BriefingContext{}, fmt.Errorf("invalid context date %q (use YYYY-MM-DD): %w", file.Date, err)
		}
		today = parsed
	}

	items := make([]domain.ScorableItem, 0, len(file.Items))
	for i, raw := range file.Items {
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			continue
		}
		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("item-%d", i+1)
		}
		items = append(items, domain.ScorableItem{
			ID:        id,
			Title:     title,
			Category:  raw.Category,
			Type:      domain.ParseItemType(raw.Type),
			Deadline:  raw.Deadline,
			Completed: raw.Completed,
		})
	}

	return domain.NewBriefingContext(today, items), nil
}
