package services

import (
	"fmt"
	"strings"
)

// Wrap builds an error message that includes marking context while tagging it
// with the provided marker for later classification. The marker should be one
// of the sentinel errors exported by the marking package.
func Wrap(marker error, modality, operation, message string, err error) error {
	detail := buildDetail(modality, operation, message)
	if marker == nil {
		if err != nil {
			return fmt.Errorf("%s: %w", detail, err)
		}
		return fmt.Errorf("%s", detail)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(modality, operation, message string) string {
	parts := make([]string, 0, 3)
	if modality = strings.TrimSpace(modality); modality != "" {
		parts = append(parts, modality)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
