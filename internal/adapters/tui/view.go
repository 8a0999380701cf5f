package tui

import (
	"strings"

	"go.trai.ch/timebar/internal/ui/style"
)

const helpText = "←/→ move  space play/pause  drag to select  q quit"

// View renders the title, the track, the date labels, the filter summary
// and the key help, one per line.
func (m *Model) View() string {
	var sb strings.Builder

	state := style.Play + " paused"
	if m.bar.Playing() {
		state = style.Pause + " playing"
	}
	sb.WriteString(titleStyle.Render("timebar " + string(m.bar.Type())))
	sb.WriteString(" " + state + "\n")

	sb.WriteString(strings.Repeat(" ", Margin))
	sb.WriteString(m.renderTrack())
	sb.WriteByte('\n')

	sb.WriteString(strings.Repeat(" ", Margin))
	sb.WriteString(m.renderLabels())
	sb.WriteByte('\n')

	if m.Err != nil {
		sb.WriteString(errorStyle.Render(style.Cross + " " + m.Err.Error()))
	} else {
		sb.WriteString(statusStyle.Render(m.Summary()))
	}
	sb.WriteByte('\n')

	sb.WriteString(helpStyle.Render(helpText))
	return sb.String()
}

// renderTrack draws one cell per column: selected cells full, the rest
// empty, and the handles of the slider variants on top.
func (m *Model) renderTrack() string {
	value := m.bar.Value()
	lo, hi := m.column(value.Start), m.column(value.End)

	var sb strings.Builder
	for i := range m.Width {
		switch {
		case m.sliderType() && (i == lo || i == hi):
			sb.WriteString(handleStyle.Render(style.Handle))
		case i >= lo && i <= hi:
			sb.WriteString(selectedCellStyle.Render(style.Full))
		default:
			sb.WriteString(trackCellStyle.Render(style.Empty))
		}
	}
	return sb.String()
}

// renderLabels places the min label under the start of the selection and
// right aligns the max label on its end.
func (m *Model) renderLabels() string {
	labels := m.bar.Labels()
	value := m.bar.Value()

	line := []rune(strings.Repeat(" ", m.Width))
	put := func(at int, text string) {
		for i, r := range []rune(text) {
			if at+i >= 0 && at+i < len(line) {
				line[at+i] = r
			}
		}
	}

	minLabel := []rune(labels.Min)
	maxLabel := []rune(labels.Max)
	start := m.column(value.Start)
	end := m.column(value.End) - len(maxLabel) + 1
	end = max(end, start+len(minLabel)+1)
	if end+len(maxLabel) > m.Width {
		end = m.Width - len(maxLabel)
	}

	put(start, labels.Min)
	put(end, labels.Max)
	return labelStyle.Render(strings.TrimRight(string(line), " "))
}
