package storage

import (
	"fmt"
	"strings"

	"github.com/theakshaypant/hackhub/internal/core"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Options selects and configures a store.
type Options struct {
	// Driver is one of DriverFile, DriverSQLite, DriverMemory. Empty means file.
	Driver string
	// Path is the preferences file or database location.
	Path string
}

// Open returns the store described by opts.
func Open(opts Options) (core.Storage, error) {
	driver := strings.ToLower(strings.TrimSpace(opts.Driver))
	if driver == "" {
		driver = DriverFile
	}

	switch driver {
	case DriverFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("file storage requires a path")
		}
		return NewFileStore(opts.Path)
	case DriverSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite storage requires a path")
		}
		return NewSQLiteStore(opts.Path)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s (supported: file, sqlite, memory)", opts.Driver)
	}
}
