// Package deps reports the availability of the external tools the marking
// pipelines execute.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"markmymedia/internal/config"
)

// Requirement defines an external binary the module relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements builds the external tool list for the given configuration.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.Tools.FFmpeg,
			Description: "Marker synthesis, remuxing, and concatenation",
		},
		{
			Name:        "FFprobe",
			Command:     cfg.Tools.FFprobe,
			Description: "Stream metadata probing",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: req.Description,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if resolved, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
		} else {
			status.Command = resolved
			status.Available = true
		}
		results = append(results, status)
	}
	return results
}

// Verify returns an error naming the first unavailable requirement, so the
// batch can fail fast before spawning any work.
func Verify(requirements []Requirement) error {
	for _, status := range CheckBinaries(requirements) {
		if !status.Available {
			return fmt.Errorf("%s unavailable: %s", status.Name, status.Detail)
		}
	}
	return nil
}
