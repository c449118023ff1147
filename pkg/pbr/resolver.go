package pbr

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Resolver finds the tag that corresponds to the session's playback position.
type Resolver struct {
	store *Store
}

// NewResolver creates a Resolver over store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the index of the current tag.
//
// A zero pass-through offset always resolves to index 0. Otherwise the first
// CLI-signed tag whose pass-through partition offset equals the global offset
// wins; since a tag carries at most one pass-through partition, the first
// match is also the only match within a tag. ErrNotFound means no tag matched.
func (r *Resolver) Resolve() (int, error) {
	info, err := r.store.GetPlaybackInfo(PassThroughSignature)
	if err != nil {
		return 0, err
	}

	if info.CurrentOffset == 0 {
		return 0, nil
	}

	count, err := r.store.GetTagCount()
	if err != nil {
		return 0, err
	}

	for i := 0; i < count; i++ {
		tag, err := r.store.GetTag(i)
		if err != nil {
			return 0, err
		}
		if !tag.IsCLI() {
			continue
		}
		part, ok := tag.PassThroughPartition()
		if !ok {
			continue
		}
		if part.CurrentOffset == info.CurrentOffset {
			log.Debug().
				Int("tag", i).
				Uint32("offset", info.CurrentOffset).
				Msg("Resolved current tag")
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: no tag at playback offset %d", ErrNotFound, info.CurrentOffset)
}
