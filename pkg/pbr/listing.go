package pbr

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// NoCurrentTag marks a Listing without a selected row.
const NoCurrentTag = -1

// TagRow is the flattened, display-ready form of one tag.
type TagRow struct {
	Index    int    `json:"index" yaml:"index"`
	TagID    string `json:"tag_id" yaml:"tag_id"`
	Selected bool   `json:"selected" yaml:"selected"`
	ExitCode string `json:"exit_code" yaml:"exit_code"`
	CliArgs  string `json:"cli_args" yaml:"cli_args"`
}

// Listing is the result of a show operation.
type Listing struct {
	Rows    []TagRow `json:"tags" yaml:"tags"`
	Current int      `json:"current" yaml:"current"`
}

// FormatTagID renders a tag index, marking the current tag with '*'.
func FormatTagID(index int, selected bool) string {
	if selected {
		return fmt.Sprintf("0x%x*", index)
	}
	return fmt.Sprintf("0x%x", index)
}

// Show builds the tag listing with the current tag marked.
// A resolver miss leaves the listing without a selection; every other
// failure aborts the operation.
func Show(store *Store) (*Listing, error) {
	current, err := NewResolver(store).Resolve()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("resolve current tag: %w", err)
		}
		log.Debug().Err(err).Msg("No current tag")
		current = NoCurrentTag
	}

	tags, err := store.Tags()
	if err != nil {
		return nil, err
	}

	listing := &Listing{
		Rows:    make([]TagRow, 0, len(tags)),
		Current: current,
	}
	for i, tag := range tags {
		selected := i == current
		listing.Rows = append(listing.Rows, TagRow{
			Index:    i,
			TagID:    FormatTagID(i, selected),
			Selected: selected,
			ExitCode: tag.Description,
			CliArgs:  tag.Name,
		})
	}
	return listing, nil
}
