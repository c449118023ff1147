package pbr

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// DefaultMaxBufferBytes bounds the size of a session buffer copy.
const DefaultMaxBufferBytes = 256 << 20

// Store is an ordered, indexable view of the tags captured in the current
// session. It holds no state between calls; every query goes to the backend
// and every returned value is owned by the caller.
type Store struct {
	backend        Backend
	maxBufferBytes int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMaxBufferBytes sets the largest buffer GetSessionBuffer will copy.
func WithMaxBufferBytes(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.maxBufferBytes = n
		}
	}
}

// NewStore creates a Store over backend.
func NewStore(backend Backend, opts ...StoreOption) *Store {
	s := &Store{
		backend:        backend,
		maxBufferBytes: DefaultMaxBufferBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetTagCount returns the number of tags in the session.
func (s *Store) GetTagCount() (int, error) {
	count, err := s.backend.GetTagCount()
	if err != nil {
		return 0, fmt.Errorf("get tag count: %w", err)
	}
	if count < 0 {
		return 0, fmt.Errorf("get tag count: %w: negative count %d", ErrAborted, count)
	}
	return count, nil
}

// GetTag returns the tag at index. Callers must keep index below GetTagCount.
func (s *Store) GetTag(index int) (Tag, error) {
	if index < 0 {
		return Tag{}, fmt.Errorf("get tag %d: %w: negative index", index, ErrInvalidArgument)
	}
	tag, err := s.backend.GetTag(index)
	if err != nil {
		return Tag{}, fmt.Errorf("get tag %d: %w", index, err)
	}
	return tag.Clone(), nil
}

// Tags returns every tag in recording order.
func (s *Store) Tags() ([]Tag, error) {
	count, err := s.GetTagCount()
	if err != nil {
		return nil, err
	}

	tags := make([]Tag, 0, count)
	for i := 0; i < count; i++ {
		tag, err := s.GetTag(i)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// GetSessionBuffer returns a copy of the raw session buffer.
func (s *Store) GetSessionBuffer() ([]byte, error) {
	buf, err := s.backend.GetSessionBuffer()
	if err != nil {
		return nil, fmt.Errorf("get session buffer: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("get session buffer: %w: no session buffer", ErrNotFound)
	}
	if len(buf) > s.maxBufferBytes {
		return nil, fmt.Errorf("get session buffer: %w: %d bytes exceeds limit of %d",
			ErrOutOfMemory, len(buf), s.maxBufferBytes)
	}

	out := make([]byte, len(buf))
	copy(out, buf)

	log.Debug().Int("bytes", len(out)).Msg("Session buffer copied")
	return out, nil
}

// GetPlaybackInfo returns aggregate playback state for a data class.
func (s *Store) GetPlaybackInfo(dataClass Signature) (PlaybackInfo, error) {
	info, err := s.backend.GetPlaybackInfo(dataClass)
	if err != nil {
		return PlaybackInfo{}, fmt.Errorf("get playback info %s: %w", dataClass, err)
	}
	return info, nil
}
