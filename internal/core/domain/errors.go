package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptySeries is returned when a filter pass is requested over a series without records.
	ErrEmptySeries = zerr.New("time series has no records")

	// ErrInvalidBarType is returned when the configured type is not trend, simple or slice.
	ErrInvalidBarType = zerr.New("invalid time bar type, expected 'trend', 'simple' or 'slice'")

	// ErrInvalidRendererKind is returned when the configured renderer is not canvas or svg.
	ErrInvalidRendererKind = zerr.New("invalid renderer, expected 'canvas' or 'svg'")

	// ErrInvalidRange is returned when a configured start/end pair is outside [0,1] or inverted.
	ErrInvalidRange = zerr.New("invalid range, expected 0 <= start <= end <= 1")

	// ErrInvalidSize is returned when the configured width cannot hold the padding on both sides.
	ErrInvalidSize = zerr.New("invalid size, width must be larger than twice the padding")

	// ErrInvalidSpeed is returned when the play controller speed is outside [1,9].
	ErrInvalidSpeed = zerr.New("invalid controller speed, expected a value between 1 and 9")

	// ErrInvalidGranularity is returned when the slider granularity is not continuous or release.
	ErrInvalidGranularity = zerr.New("invalid granularity, expected 'continuous' or 'release'")

	// ErrNoScheduler is returned when playback is requested without a tick scheduler.
	ErrNoScheduler = zerr.New("no tick scheduler configured for playback")

	// ErrNoSurfaceFactory is returned when Init runs without a drawing surface factory.
	ErrNoSurfaceFactory = zerr.New("no drawing surface factory configured")

	// ErrNotInitialized is returned when an operation requires Init to have run first.
	ErrNotInitialized = zerr.New("time bar is not initialized")

	// ErrAlreadyInitialized is returned when Init is called twice on the same time bar.
	ErrAlreadyInitialized = zerr.New("time bar is already initialized")

	// ErrDestroyed is returned when an operation is attempted after Destroy.
	ErrDestroyed = zerr.New("time bar has been destroyed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find timebar.yaml")

	// ErrSnapshotReadFailed is returned when a graph snapshot file cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read graph snapshot")

	// ErrSnapshotUnmarshalFailed is returned when a graph snapshot file cannot be decoded.
	ErrSnapshotUnmarshalFailed = zerr.New("failed to unmarshal graph snapshot")

	// ErrSnapshotMarshalFailed is returned when a graph snapshot cannot be encoded.
	ErrSnapshotMarshalFailed = zerr.New("failed to marshal graph snapshot")

	// ErrSnapshotWriteFailed is returned when a graph snapshot file cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write graph snapshot")

	// ErrRenderFailed is returned when a drawing surface cannot be encoded.
	ErrRenderFailed = zerr.New("failed to render time bar")

	// ErrUnsupportedRenderFormat is returned when a render path has an unknown extension.
	ErrUnsupportedRenderFormat = zerr.New("unsupported render format, expected .svg or .png")

	// ErrNotATerminal is returned when an interactive session is started without a terminal.
	ErrNotATerminal = zerr.New("interactive mode requires a terminal")

	// ErrWatchOutputRequired is returned when a watch session has no output file.
	ErrWatchOutputRequired = zerr.New("watch requires an output file")

	// ErrWatchOverwritesGraph is returned when a watch session would write over its own input.
	ErrWatchOverwritesGraph = zerr.New("output would overwrite the watched graph")
)
