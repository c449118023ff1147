// Package dump persists exported PBR session buffers.
//
// Invariants:
// - The destination holds either the complete buffer or nothing from this write.
// - Bytes are written without transformation.
package dump

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

// dumpFileMode is applied to dump files before they replace the destination
const dumpFileMode = 0644

// Result describes a completed dump
type Result struct {
	Path   string `json:"path" yaml:"path"`
	Bytes  int    `json:"bytes" yaml:"bytes"`
	Digest string `json:"blake3" yaml:"blake3"`
}

// Writer writes exported buffers to a filesystem
type Writer struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// NewWriter creates a Writer over fs
func NewWriter(fs afero.Fs, logger zerolog.Logger) *Writer {
	return &Writer{
		fs:     fs,
		logger: logger.With().Str("component", "dump").Logger(),
	}
}

// Write stores exported at destination, replacing any existing file.
func (w *Writer) Write(destination string, exported *pbr.Exported) (*Result, error) {
	if destination == "" {
		return nil, fmt.Errorf("%w: no destination path", pbr.ErrInvalidArgument)
	}
	if exported == nil || exported.Size == 0 {
		return nil, fmt.Errorf("%w: no session buffer to dump", pbr.ErrNotFound)
	}
	if exported.Size != len(exported.Data) {
		return nil, fmt.Errorf("%w: export size %d does not match %d data bytes",
			pbr.ErrInvalidArgument, exported.Size, len(exported.Data))
	}

	if info, err := w.fs.Stat(destination); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: destination %s is a directory", pbr.ErrInvalidArgument, destination)
	}

	tmp, err := afero.TempFile(w.fs, filepath.Dir(destination), ".pbr-dump-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create dump file: %w", err)
	}
	tmpName := tmp.Name()

	n, err := tmp.Write(exported.Data)
	if err == nil && n != exported.Size {
		err = fmt.Errorf("short write: %d of %d bytes", n, exported.Size)
	}
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = w.fs.Chmod(tmpName, dumpFileMode)
	}
	if err == nil {
		err = w.fs.Rename(tmpName, destination)
	}
	if err != nil {
		if rmErr := w.fs.Remove(tmpName); rmErr != nil {
			w.logger.Warn().Err(rmErr).Str("path", tmpName).Msg("Failed to remove partial dump")
		}
		return nil, fmt.Errorf("failed to dump session to file: %w", err)
	}

	sum := blake3.Sum256(exported.Data)
	result := &Result{
		Path:   destination,
		Bytes:  n,
		Digest: hex.EncodeToString(sum[:]),
	}

	w.logger.Info().
		Str("path", destination).
		Int("bytes", result.Bytes).
		Str("blake3", result.Digest).
		Msg("Session buffer dumped")

	return result, nil
}

// Message is the user-facing confirmation for a dump
func (r *Result) Message() string {
	return fmt.Sprintf("Successfully dumped %d bytes to file.", r.Bytes)
}
