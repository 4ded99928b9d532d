package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// SyncOptions is the operator configuration consumed by the engine.
// It is built once at startup and not modified afterwards.
type SyncOptions struct {
	Mask    NotificationMask
	DryRun  bool
	Verbose bool
}

// Validate checks the mask against the flag table in use
func (o *SyncOptions) Validate(table *FlagTable) error {
	if table == nil {
		return goerr.New("flag table is required", goerr.T(ErrTagInvalidConfig))
	}

	known := Encode(table.Flags...)
	if o.Mask&^known != 0 {
		return goerr.New("mask contains bits outside the flag table",
			goerr.V("mask", o.Mask),
			goerr.V("known", known),
			goerr.T(ErrTagInvalidConfig))
	}
	return nil
}

// LogValue returns structured log value
func (o SyncOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("mask", o.Mask.Int()),
		slog.Int("permission_count", o.Mask.PopCount()),
		slog.Bool("dry_run", o.DryRun),
		slog.Bool("verbose", o.Verbose),
	)
}
