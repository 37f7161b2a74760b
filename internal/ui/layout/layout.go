// Package layout draws the chrome around every screen: header bar, key-hint
// footer and the section sidebar.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ieltsprep/internal/ui/theme"
)

// Below this size the app shows a resize notice instead of a screen.
const (
	MinWidth  = 80
	MinHeight = 24
)

// SidebarWidth is the width of the section menu column, border included.
const SidebarWidth = 20

// KeyHint is one "key  action" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small.\n\nResize to at least %d x %d\n(currently %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(msg)
}

// bar is the bordered strip used for both header and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader shows the app name on the left, title centred and status
// (provider and model) on the right.
func RenderHeader(title, status string, width int) string {
	brand := theme.Title.Render("  IELTS Prep")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	side := theme.Dim.Render(status)

	inner := max(width-4, 0)
	bw, mw, sw := lipgloss.Width(brand), lipgloss.Width(mid), lipgloss.Width(side)

	gapL := max((inner-mw)/2-bw, 1)
	gapR := max(inner-bw-gapL-mw-sw, 1)

	return bar(brand+strings.Repeat(" ", gapL)+mid+strings.Repeat(" ", gapR)+side, width)
}

func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(key.Render(h.Key))
		b.WriteByte(' ')
		b.WriteString(theme.Dim.Render(h.Description))
	}
	return bar(b.String(), width)
}

// JoinSidebar places the sidebar to the left of content, both at height h.
func JoinSidebar(sidebar, content string, width, height int) string {
	left := lipgloss.NewStyle().
		Width(SidebarWidth).
		Height(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(sidebar)
	right := lipgloss.NewStyle().
		Width(width - lipgloss.Width(left)).
		Height(height).
		Render(content)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// Wrap soft-wraps text to width.
func Wrap(text string, width int) string {
	if width < 1 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// RenderFrame stacks header, content and footer, giving content whatever
// height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
