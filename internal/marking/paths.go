package marking

import (
	"fmt"
	"path/filepath"
	"strings"

	"markmymedia/internal/fileutil"
	"markmymedia/internal/media"
	"markmymedia/internal/services"
)

// checkInput verifies the input file exists, is a regular file, and carries
// an extension from the allowed set.
func checkInput(modality, inputPath string, allowed map[string]struct{}) error {
	if !fileutil.Exists(inputPath) {
		return services.Wrap(ErrInputNotFound, modality, "validate", inputPath, nil)
	}
	if !fileutil.IsRegularFile(inputPath) {
		return services.Wrap(ErrInputNotFound, modality, "validate", "input path is not a regular file: "+inputPath, nil)
	}
	ext := strings.ToLower(filepath.Ext(inputPath))
	if _, ok := allowed[ext]; !ok {
		return services.Wrap(ErrUnsupportedFileType, modality, "validate",
			fmt.Sprintf("extension %q is not supported (expected one of %s)", ext, media.ExtensionList(allowed)), nil)
	}
	return nil
}

// checkOutput verifies a caller-supplied output path: the extension must be
// in the allowed set and the path must not name an existing directory.
func checkOutput(modality, outputPath string, allowed map[string]struct{}) error {
	ext := strings.ToLower(filepath.Ext(outputPath))
	if _, ok := allowed[ext]; !ok {
		return services.Wrap(ErrInvalidOutputPath, modality, "validate",
			fmt.Sprintf("output extension %q must be one of %s", ext, media.ExtensionList(allowed)), nil)
	}
	if fileutil.IsDir(outputPath) {
		return services.Wrap(ErrInvalidOutputPath, modality, "validate", "output path cannot be a directory: "+outputPath, nil)
	}
	return nil
}

// ensureParent creates the output's parent directory when absent.
func ensureParent(modality, outputPath string) error {
	if err := fileutil.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return services.Wrap(ErrInvalidOutputPath, modality, "validate", "could not create parent directory", err)
	}
	return nil
}

// markedStem derives the default output name: "<stem>_marked<ext>" next to
// the input.
func markedStem(inputPath string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)
	return stem + "_marked" + ext
}
