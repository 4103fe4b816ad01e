package domain

import "errors"

var (
	// ErrInsufficientData means a series is too short (fewer than 3
	// samples) to estimate its sampling interval. Asset-level: the asset
	// is skipped, the run continues.
	ErrInsufficientData = errors.New("insufficient series data")

	// ErrOutOfRange means a lookback offset reaches before the start of
	// the fetched window. Field-level: that window is marked unavailable,
	// the asset stays in the table.
	ErrOutOfRange = errors.New("lookback out of fetched range")
)
