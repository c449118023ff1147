// Package memory provides an in-memory PBR backend holding canned session data.
package memory

import (
	"fmt"

	"github.com/harun/pbrctl/pkg/pbr"
)

// Session is a complete PBR session snapshot.
type Session struct {
	Buffer   []byte                             `json:"buffer,omitempty" yaml:"buffer,omitempty"`
	Tags     []pbr.Tag                          `json:"tags" yaml:"tags"`
	Playback map[pbr.Signature]pbr.PlaybackInfo `json:"playback,omitempty" yaml:"playback,omitempty"`
}

// Backend serves a Session through the pbr.Backend interface.
type Backend struct {
	session Session
}

// New creates a Backend over session. The session is not copied; callers
// must not modify it afterwards.
func New(session Session) *Backend {
	return &Backend{session: session}
}

// Session returns the underlying snapshot.
func (b *Backend) Session() Session {
	return b.session
}

// Validate checks every tag against the pass-through partition invariant.
func (s Session) Validate() error {
	for i, tag := range s.Tags {
		if err := tag.Validate(); err != nil {
			return fmt.Errorf("tag %d: %w", i, err)
		}
	}
	return nil
}

// GetSessionBuffer implements pbr.Backend.
func (b *Backend) GetSessionBuffer() ([]byte, error) {
	if b.session.Buffer == nil {
		return nil, fmt.Errorf("%w: no session buffer", pbr.ErrNotFound)
	}
	out := make([]byte, len(b.session.Buffer))
	copy(out, b.session.Buffer)
	return out, nil
}

// GetTagCount implements pbr.Backend.
func (b *Backend) GetTagCount() (int, error) {
	return len(b.session.Tags), nil
}

// GetTag implements pbr.Backend.
func (b *Backend) GetTag(index int) (pbr.Tag, error) {
	if index < 0 || index >= len(b.session.Tags) {
		return pbr.Tag{}, fmt.Errorf("%w: tag %d", pbr.ErrNotFound, index)
	}
	return b.session.Tags[index].Clone(), nil
}

// GetPlaybackInfo implements pbr.Backend.
func (b *Backend) GetPlaybackInfo(dataClass pbr.Signature) (pbr.PlaybackInfo, error) {
	info, ok := b.session.Playback[dataClass]
	if !ok {
		return pbr.PlaybackInfo{}, fmt.Errorf("%w: no playback info for %s", pbr.ErrNotFound, dataClass)
	}
	return info, nil
}
