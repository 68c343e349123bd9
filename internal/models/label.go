// Package models defines the data structures shared across the pipeline.
package models

// LabelRecord tracks one label through a batch run.
//
// A record is owned by the batch runner for the duration of the run and is
// handed to progress callbacks by copy. Exactly one record is in flight at
// a time.
type LabelRecord struct {
	Original   string `json:"original"`
	Corrected  string `json:"corrected"`
	Processing bool   `json:"isProcessing"`
}
