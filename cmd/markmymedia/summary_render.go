package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"markmymedia/internal/batch"
	"markmymedia/internal/media"
)

var summaryModalities = []media.Modality{media.ModalityPhoto, media.ModalityAudio, media.ModalityVideo}

func renderSummary(out io.Writer, summary batch.Summary) {
	rows := make([][]string, 0, len(summaryModalities))
	for _, modality := range summaryModalities {
		count := summary.CountByModality(modality)
		if count == 0 {
			continue
		}
		elapsed := "-"
		if timing, ok := summary.TimingFor(modality); ok {
			elapsed = formatDuration(timing.Elapsed)
		}
		failed := 0
		for _, result := range summary.Results {
			if result.Modality == modality && result.Err != nil {
				failed++
			}
		}
		rows = append(rows, []string{
			modality.Label(),
			strconv.Itoa(count),
			strconv.Itoa(failed),
			elapsed,
		})
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable([]string{"Modality", "Files", "Failed", "Elapsed"}, rows, 2, 3, 4))
	fmt.Fprintf(out, "Processed %d file(s) in %s\n", len(summary.Results), formatDuration(summary.TotalElapsed))
	if summary.SkippedUnknown > 0 {
		fmt.Fprintf(out, "Skipped %d file(s) with unrecognized extensions\n", summary.SkippedUnknown)
	}
	fmt.Fprintf(out, "Output directory: %s\n", summary.OutputDir)

	failures := summary.Failures()
	if len(failures) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Failures:")
	for _, failure := range failures {
		fmt.Fprintf(out, "  %s: %v\n", failure.Input, failure.Err)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
