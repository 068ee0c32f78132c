package catalog

import "os"

const (
	FileVersion = "1"
	TempSuffix  = ".tmp-*"

	DirPerm os.FileMode = 0o755
)

// Error messages
const (
	ErrMsgReadFailed    = "failed to read catalog file %s: %w"
	ErrMsgParseFailed   = "failed to parse catalog file %s: %w"
	ErrMsgMarshalFailed = "failed to marshal catalog: %w"
	ErrMsgWriteFailed   = "failed to write catalog file %s: %w"
)

// Log messages
const (
	LogMsgCatalogLoaded      = "Catalog loaded"
	LogMsgCatalogDefaulted   = "Catalog file not found, using defaults"
	LogMsgCatalogWriteFailed = "Failed to write default catalog"
	LogMsgCatalogSaved       = "Catalog saved"
)
