// Package batch drives the normalization pipeline over a sequence of
// labels, emitting incremental progress for presentation layers.
package batch

import (
	"context"
	"math/rand"
	"time"

	"relabel/internal/models"
	"relabel/internal/normalizer"
)

// ProgressFunc receives a copy of the full record list plus the index of
// the record just updated. It is invoked twice per record: once when the
// record goes in flight and once when its correction is written.
type ProgressFunc func(records []models.LabelRecord, index int)

// Pacer is the scheduling policy applied before each record's result is
// computed. It exists purely to pace observable progress and carries no
// correctness meaning. Implementations must return promptly once ctx is
// done.
type Pacer func(ctx context.Context)

// NoDelay is the pacer for headless runs and tests.
func NoDelay(context.Context) {}

// RandomDelay returns a pacer sleeping a uniformly random duration in
// [min, max] before each record. The randomness never affects results.
func RandomDelay(min, max time.Duration) Pacer {
	if max < min {
		min, max = max, min
	}

	return func(ctx context.Context) {
		d := min
		if span := max - min; span > 0 {
			d += time.Duration(rand.Int63n(int64(span) + 1))
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
}

// Runner processes labels strictly sequentially, one record in flight at a
// time, in input order.
type Runner struct {
	pipeline *normalizer.Pipeline
	pacer    Pacer
}

// NewRunner creates a runner. A nil pacer means no pacing.
func NewRunner(pipeline *normalizer.Pipeline, pacer Pacer) *Runner {
	if pacer == nil {
		pacer = NoDelay
	}

	return &Runner{pipeline: pipeline, pacer: pacer}
}

// Run normalizes every label in order and returns the completed records.
// onProgress may be nil. Cancelling ctx abandons the batch: the records
// produced so far are returned together with ctx.Err(), and records
// already completed are never touched again.
func (r *Runner) Run(ctx context.Context, labels []string, onProgress ProgressFunc) ([]models.LabelRecord, error) {
	records := make([]models.LabelRecord, len(labels))
	for i, label := range labels {
		records[i] = models.LabelRecord{Original: label}
	}

	notify := func(index int) {
		if onProgress == nil {
			return
		}

		snapshot := make([]models.LabelRecord, len(records))
		copy(snapshot, records)
		onProgress(snapshot, index)
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		records[i].Processing = true
		notify(i)

		r.pacer(ctx)

		if err := ctx.Err(); err != nil {
			records[i].Processing = false
			return records, err
		}

		records[i].Corrected = r.pipeline.Normalize(records[i].Original)
		records[i].Processing = false
		notify(i)
	}

	return records, nil
}
