// Package image reads PBR session images: JSON snapshots of a session's
// buffer, tags and playback state, served through an in-memory backend.
package image

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/source/memory"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

// Loader loads and validates session images
type Loader struct {
	logger       zerolog.Logger
	schemaLoader gojsonschema.JSONLoader
}

// NewLoader creates a new image loader
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		logger:       logger.With().Str("component", "image-loader").Logger(),
		schemaLoader: gojsonschema.NewStringLoader(Schema),
	}
}

// Load reads a session image from path
func (l *Loader) Load(path string) (*memory.Backend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: session image %s", pbr.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to read session image: %v", pbr.ErrAborted, err)
	}

	session, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("session image %s: %w", path, err)
	}

	l.logger.Debug().
		Str("path", path).
		Int("tags", len(session.Tags)).
		Int("buffer_bytes", len(session.Buffer)).
		Msg("Loaded session image")

	return memory.New(*session), nil
}

// Parse validates and decodes a session image
func (l *Loader) Parse(data []byte) (*memory.Session, error) {
	if err := l.validateSchema(data); err != nil {
		return nil, err
	}

	var session memory.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: failed to parse session image: %v", pbr.ErrInvalidArgument, err)
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return &session, nil
}

// Encode renders a session as an image document
func Encode(session memory.Session) ([]byte, error) {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode session image: %w", err)
	}
	return data, nil
}

func (l *Loader) validateSchema(data []byte) error {
	result, err := gojsonschema.Validate(l.schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: schema validation error: %v", pbr.ErrInvalidArgument, err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: schema validation errors: %s", pbr.ErrInvalidArgument, strings.Join(msgs, "; "))
	}

	return nil
}
