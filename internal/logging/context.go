package logging

import (
	"context"
	"log/slog"

	"markmymedia/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldFile is the standardized structured logging key for the input file.
	FieldFile = "file"
	// FieldModality is the standardized structured logging key for the media modality.
	FieldModality = "modality"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if file, ok := services.FileFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldFile, file))
	}
	if modality, ok := services.ModalityFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldModality, modality))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	args := make([]any, 0, len(fields)*2)
	for _, attr := range fields {
		args = append(args, attr.Key, attr.Value.Any())
	}
	return logger.With(args...)
}
