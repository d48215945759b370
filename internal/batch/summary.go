package batch

import (
	"time"

	"markmymedia/internal/media"
)

// Result records the outcome for one file.
type Result struct {
	Modality media.Modality
	Input    string
	Output   string
	Err      error
	Duration time.Duration
}

// StageTiming records how long one modality stage took.
type StageTiming struct {
	Modality media.Modality
	Files    int
	Elapsed  time.Duration
}

// Summary aggregates a whole batch run.
type Summary struct {
	Results        []Result
	Timings        []StageTiming
	SkippedUnknown int
	OutputDir      string
	TotalElapsed   time.Duration
}

// Failures returns the failed results in processing order.
func (s Summary) Failures() []Result {
	var failures []Result
	for _, result := range s.Results {
		if result.Err != nil {
			failures = append(failures, result)
		}
	}
	return failures
}

// CountByModality returns how many files of the given modality were processed.
func (s Summary) CountByModality(modality media.Modality) int {
	count := 0
	for _, result := range s.Results {
		if result.Modality == modality {
			count++
		}
	}
	return count
}

// TimingFor returns the stage timing for a modality, if the stage ran.
func (s Summary) TimingFor(modality media.Modality) (StageTiming, bool) {
	for _, timing := range s.Timings {
		if timing.Modality == modality {
			return timing, true
		}
	}
	return StageTiming{}, false
}
