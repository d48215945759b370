package discover

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Gather resolves input paths into a flat list of absolute file paths. The
// output directory is excluded from traversal so a rerun never re-marks its
// own results. Paths that do not exist are returned in missing rather than
// failing the whole gather; the caller reports and skips them.
func Gather(paths []string, recursive bool, outputDir string) (files []string, missing []string, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	excluded, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, nil, err
	}

	for _, p := range paths {
		abs, absErr := filepath.Abs(p)
		if absErr != nil {
			return nil, nil, absErr
		}
		if abs == excluded {
			continue
		}
		info, statErr := os.Stat(abs)
		switch {
		case statErr != nil:
			missing = append(missing, p)
		case info.Mode().IsRegular():
			files = append(files, abs)
		case info.IsDir():
			found, walkErr := gatherDir(abs, recursive, excluded)
			if walkErr != nil {
				return nil, nil, walkErr
			}
			files = append(files, found...)
		default:
			missing = append(missing, p)
		}
	}
	return files, missing, nil
}

func gatherDir(dir string, recursive bool, excluded string) ([]string, error) {
	var files []string
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
		return files, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == excluded {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
