package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency shrink relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the external binaries needed for a batch run. The
// encoder binary comes from configuration and defaults to ffmpeg.
func Requirements(encoderBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "Encoder",
			Command:     encoderBinary,
			Description: "Re-encodes each video file",
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
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if resolved, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
		} else {
			status.Available = true
			status.Command = resolved
		}
		results = append(results, status)
	}
	return results
}

// CheckEncoder resolves the encoder binary on PATH.
func CheckEncoder(binary string) Status {
	statuses := CheckBinaries(Requirements(binary))
	return statuses[0]
}
