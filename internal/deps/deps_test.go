package deps_test

import (
	"testing"

	"markmymedia/internal/config"
	"markmymedia/internal/deps"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "Shell", Command: "sh"},
		{Name: "Ghost", Command: "definitely-not-a-real-binary-4a7f"},
		{Name: "Blank", Command: "  "},
	})
	if len(statuses) != 3 {
		t.Fatalf("statuses = %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Errorf("sh should be available: %+v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Errorf("missing binary not reported: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Errorf("blank command not reported: %+v", statuses[2])
	}
}

func TestVerifyFailsOnFirstMissing(t *testing.T) {
	err := deps.Verify([]deps.Requirement{
		{Name: "Ghost", Command: "definitely-not-a-real-binary-4a7f"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRequirementsUseConfiguredBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.FFmpeg = "/custom/ffmpeg"
	reqs := deps.Requirements(&cfg)
	if len(reqs) != 2 || reqs[0].Command != "/custom/ffmpeg" || reqs[1].Command != "ffprobe" {
		t.Fatalf("requirements = %+v", reqs)
	}
}
