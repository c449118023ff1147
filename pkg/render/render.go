// Package render formats PBR show and dump results for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/harun/pbrctl/pkg/dump"
	"github.com/harun/pbrctl/pkg/pbr"
	"gopkg.in/yaml.v3"
)

// Format selects an output representation
type Format string

const (
	FormatText Format = "text"
	FormatList Format = "list"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatList, FormatJSON, FormatYAML}

const listIndent = "   "

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown output format %q", pbr.ErrInvalidArgument, name)
}

// Listing writes a show listing in the given format
func Listing(w io.Writer, format Format, listing *pbr.Listing) error {
	switch format {
	case FormatText:
		return listingTable(w, listing)
	case FormatList:
		return listingList(w, listing)
	case FormatJSON:
		return writeJSON(w, listing)
	case FormatYAML:
		return writeYAML(w, listing)
	default:
		return fmt.Errorf("%w: unknown output format %q", pbr.ErrInvalidArgument, format)
	}
}

// DumpResult writes a dump confirmation in the given format
func DumpResult(w io.Writer, format Format, result *dump.Result) error {
	switch format {
	case FormatText, FormatList:
		_, err := fmt.Fprintln(w, result.Message())
		return err
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	default:
		return fmt.Errorf("%w: unknown output format %q", pbr.ErrInvalidArgument, format)
	}
}

func listingTable(w io.Writer, listing *pbr.Listing) error {
	rows := make([][]string, 0, len(listing.Rows))
	for _, r := range listing.Rows {
		rows = append(rows, []string{r.TagID, r.ExitCode, r.CliArgs})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("TagId", "ExitCode", "CliArgs").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func listingList(w io.Writer, listing *pbr.Listing) error {
	for _, r := range listing.Rows {
		if _, err := fmt.Fprintf(w, "---TagId=%s---\n", r.TagID); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%sExitCode=%s\n", listIndent, r.ExitCode); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%sCliArgs=%s\n", listIndent, r.CliArgs); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
