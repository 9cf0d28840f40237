// Package api holds the OpenAPI description of the HTTP interface. The server stubs in
// internal/generated/servers are generated from it and the running service validates
// requests against the embedded copy.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPI []byte
