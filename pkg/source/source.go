// Package source opens PBR backends by driver name.
package source

import (
	"fmt"
	"io"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/source/image"
	"github.com/harun/pbrctl/pkg/source/sqlite"
	"github.com/rs/zerolog"
)

const (
	// DriverImage reads JSON session images
	DriverImage = "image"
	// DriverSQLite reads SQLite session databases
	DriverSQLite = "sqlite"
)

// Drivers lists the supported driver names
var Drivers = []string{DriverImage, DriverSQLite}

// Handle is an open backend that must be closed when the operation completes
type Handle interface {
	pbr.Backend
	io.Closer
}

type nopCloser struct {
	pbr.Backend
}

func (nopCloser) Close() error { return nil }

// Open opens the backend for driver at path. Failing to reach the session
// is reported as pbr.ErrNotFound.
func Open(driver, path string, logger zerolog.Logger) (Handle, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no session source configured", pbr.ErrInvalidArgument)
	}

	switch driver {
	case DriverImage:
		b, err := image.NewLoader(logger).Load(path)
		if err != nil {
			return nil, err
		}
		return nopCloser{b}, nil
	case DriverSQLite:
		b, err := sqlite.Open(path, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown source driver %q", pbr.ErrInvalidArgument, driver)
	}
}
