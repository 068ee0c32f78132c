//go:build tools
// +build tools

package tools

// Tool dependencies tracked in go.mod; not imported by the application.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
)
