package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hemshop/storefront/internal/model"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeProducts(w io.Writer, format string, products []model.Product) error {
	if format == "json" {
		return writeJSON(w, products)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY\tSIZES\tCOLORS\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t$%.0f\t%s\t%s\t%s\t%d\n",
			p.ID, p.Name, p.Price, p.Category,
			strings.Join(p.Sizes, ","), strings.Join(p.Colors, ","), p.Stock)
	}
	return tw.Flush()
}

func writeEntries(w io.Writer, format string, entries []model.ActivityEntry) error {
	if format == "json" {
		return writeJSON(w, entries)
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-6s  %s\n", e.Timestamp, e.Action, e.Details)
	}
	return nil
}

func writeLines(w io.Writer, format string, lines []model.CartLine) error {
	if format == "json" {
		return writeJSON(w, lines)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSIZE\tCOLOR\tQTY\tPRICE")
	for i, l := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t$%.0f\n", i, l.Name, l.Size, l.Color, l.Quantity, l.Price*float64(l.Quantity))
	}
	return tw.Flush()
}

func writePosts(w io.Writer, format string, posts []model.BlogPost) error {
	if format == "json" {
		return writeJSON(w, posts)
	}
	for _, p := range posts {
		fmt.Fprintf(w, "[%d] %s (%s, %s)\n    %s\n", p.ID, p.Title, p.Category, p.Date, p.Excerpt)
	}
	return nil
}
