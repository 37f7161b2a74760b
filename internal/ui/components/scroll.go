package components

import "strings"

// Scroll returns the height-line window of content starting at offset.
// The offset is clamped so the window never runs past the last line; the
// clamped value is returned so callers can store it back.
func Scroll(content string, offset, height int) (string, int) {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n"), 0
	}
	maxOffset := len(lines) - height
	offset = max(0, min(offset, maxOffset))
	return strings.Join(lines[offset:offset+height], "\n"), offset
}
