package marking

import "context"

// Request describes one marking invocation.
type Request struct {
	// InputPath locates the source file. Required.
	InputPath string
	// OutputPath optionally overrides the derived output location. When set
	// its extension must be acceptable for the modality.
	OutputPath string
	// Width and Height optionally override the probed resolution (video) or
	// the default canvas (audio). Either both are positive or both are zero.
	Width  int
	Height int
	// OverlayText overrides the default "Filename: <base>" marker text.
	OverlayText string
}

// resolutionOverride reports whether the request carries a resolution.
func (r Request) resolutionOverride() bool {
	return r.Width != 0 || r.Height != 0
}

// Marker is the uniform surface the batch runner drives: one call marks one
// file and returns the produced output path.
type Marker interface {
	Mark(ctx context.Context, req Request) (string, error)
}
