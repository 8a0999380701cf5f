package domain

const (
	// EventValueChange is emitted whenever the selected range changes.
	EventValueChange = "valuechange"

	// EventAfterRender is emitted by the host graph once its content has rendered.
	EventAfterRender = "afterrender"

	// EventPlayPauseClick is emitted on the time bar group when the play button is pressed.
	EventPlayPauseClick = "playPauseBtn:click"
)

// Handle identifies the part of the selector a gesture or emission targets.
type Handle string

const (
	// HandleNone marks programmatic updates.
	HandleNone Handle = "none"
	// HandleMin is the left handle of the slider.
	HandleMin Handle = "min"
	// HandleMax is the right handle of the slider.
	HandleMax Handle = "max"
	// HandleWindow is the foreground between the handles; dragging it moves both bounds.
	HandleWindow Handle = "window"
	// HandleSpan is a tick selection on the slice variant.
	HandleSpan Handle = "span"
	// HandleController marks updates produced by playback ticks.
	HandleController Handle = "controller"
)

// ValueChangeEvent carries a range update together with the value it replaced.
type ValueChangeEvent struct {
	OriginValue NormalizedRange
	Value       NormalizedRange
	Target      Handle
}

// SelectionState is the state of the selection state machine.
type SelectionState int

const (
	// StateIdle means no gesture or playback is in progress.
	StateIdle SelectionState = iota
	// StateDragging means a handle is being dragged.
	StateDragging
	// StatePlaying means playback is advancing the range.
	StatePlaying
)

// String returns the lowercase name of the state.
func (s SelectionState) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StatePlaying:
		return "playing"
	default:
		return "idle"
	}
}
