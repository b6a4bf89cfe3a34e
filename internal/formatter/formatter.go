// package formatter exports a user's watchlist to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/desertthunder/wlx/internal/models"
)

// Item pairs a watchlist entry with its catalog title. The title may be
// nil when the referenced record was deleted after the entry was created.
type Item struct {
	Entry models.WatchlistEntry
	Title *models.Title
}

// WatchlistExport is a user's full watchlist prepared for export.
type WatchlistExport struct {
	User  models.User
	Items []Item
}

// ExportToCSV renders the export with columns: Title, Type, Genre, Status, Rating, Review
func ExportToCSV(export *WatchlistExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Type", "Genre", "Status", "Rating", "Review"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range export.Items {
		record := []string{
			titleName(item),
			titleType(item),
			titleGenre(item),
			string(item.Entry.Status),
			ratingString(item.Entry.Rating),
			item.Entry.Review,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders the export as a Markdown document grouped by status.
func ExportToMarkdown(export *WatchlistExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Watchlist: %s\n\n", export.User.Name))
	buf.WriteString(fmt.Sprintf("**Email**: %s\n", export.User.Email))
	buf.WriteString(fmt.Sprintf("**Entries**: %d\n", len(export.Items)))

	for _, status := range []models.Status{models.StatusWatched, models.StatusPlanning, models.StatusDropped} {
		items := byStatus(export.Items, status)
		if len(items) == 0 {
			continue
		}

		buf.WriteString(fmt.Sprintf("\n## %s\n\n", status))
		for i, item := range items {
			line := fmt.Sprintf("%d. %s (%s)", i+1, titleName(item), titleType(item))
			if item.Entry.Rating != nil {
				line += fmt.Sprintf(" - %d/10", *item.Entry.Rating)
			}
			if item.Entry.Review != "" {
				line += fmt.Sprintf(" - %q", item.Entry.Review)
			}
			buf.WriteString(line + "\n")
		}
	}

	return buf.Bytes(), nil
}

// ExportToText renders the export as aligned plain text.
func ExportToText(export *WatchlistExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Watchlist for %s <%s>\n", export.User.Name, export.User.Email))
	buf.WriteString(fmt.Sprintf("%d entries\n\n", len(export.Items)))

	for _, item := range export.Items {
		buf.WriteString(fmt.Sprintf("[%-8s] %s (%s)", item.Entry.Status, titleName(item), titleType(item)))
		if item.Entry.Rating != nil {
			buf.WriteString(fmt.Sprintf("  %d/10", *item.Entry.Rating))
		}
		buf.WriteString("\n")
		if item.Entry.Review != "" {
			buf.WriteString(fmt.Sprintf("           %s\n", item.Entry.Review))
		}
	}

	return buf.Bytes(), nil
}

func byStatus(items []Item, status models.Status) []Item {
	var out []Item
	for _, item := range items {
		if item.Entry.Status == status {
			out = append(out, item)
		}
	}
	return out
}

func titleName(item Item) string {
	if item.Title == nil {
		// Dangling reference: the title was deleted after the entry was added.
		return fmt.Sprintf("(deleted title %s)", item.Entry.MovieID)
	}
	return item.Title.Name
}

func titleType(item Item) string {
	if item.Title == nil {
		return "unknown"
	}
	return string(item.Title.Type)
}

func titleGenre(item Item) string {
	if item.Title == nil {
		return ""
	}
	return item.Title.Genre
}

func ratingString(rating *int) string {
	if rating == nil {
		return ""
	}
	return strconv.Itoa(*rating)
}
