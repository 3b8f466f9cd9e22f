package converter

import "github.com/speakeasy-api/openapi/errors"

const (
	// ErrImportFailed is the only error Convert returns. The underlying cause
	// is logged, not returned.
	ErrImportFailed = errors.Error("Import collection failed")

	// ErrUnsupportedVersion is raised for documents that are not OpenAPI 3.x.
	ErrUnsupportedVersion = errors.Error("Only OpenAPI v3 is supported currently")
	// ErrMissingPaths is raised when the document has no paths object.
	ErrMissingPaths = errors.Error("OpenAPI document has no paths")
	// ErrUnsupportedInput is raised for input values Convert cannot read.
	ErrUnsupportedInput = errors.Error("unsupported document input")
)
