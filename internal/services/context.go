package services

import "context"

type contextKey string

const (
	fileKey     contextKey = "file"
	modalityKey contextKey = "modality"
)

// WithFile annotates context with the input file currently being marked.
func WithFile(ctx context.Context, path string) context.Context {
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, fileKey, path)
}

// FileFromContext extracts the current input file if present.
func FileFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(fileKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithModality annotates context with the modality being processed.
func WithModality(ctx context.Context, modality string) context.Context {
	if modality == "" {
		return ctx
	}
	return context.WithValue(ctx, modalityKey, modality)
}

// ModalityFromContext extracts the modality if present.
func ModalityFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(modalityKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
