package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mandelscope/internal/histogram"
)

// redraw rasterizes the current frame into ANSI half-block cells. Each
// terminal cell shows two vertically stacked pixels via the upper-half
// block with independent foreground and background colors.
func (m *Model) redraw() {
	if m.frame == nil {
		return
	}

	var table *histogram.Table
	if m.equalize {
		table = m.table
	}
	pixels := m.frame.Colors(m.scheme, table, nil)

	var sb strings.Builder
	w, h := m.frame.Width, m.frame.Height
	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			top := pixels[y*w+x]
			bot := pixels[(y+1)*w+x]
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bot.R, bot.G, bot.B)))
			sb.WriteString(st.Render("▀"))
		}
		sb.WriteByte('\n')
	}
	m.canvas = strings.TrimRight(sb.String(), "\n")
}

func (m Model) View() string {
	if m.termW == 0 {
		return "starting..."
	}

	canvas := m.canvas
	if canvas == "" {
		canvas = "rendering..."
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.sidebar())
}

func (m Model) sidebar() string {
	header := lipgloss.NewStyle().Foreground(m.theme.Header).Bold(true)
	label := lipgloss.NewStyle().Foreground(m.theme.Label).Width(10)
	value := lipgloss.NewStyle().Foreground(m.theme.Value)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	accent := lipgloss.NewStyle().Foreground(m.theme.Accent)

	vp := m.ctrl.Snapshot()

	row := func(k, v string) string {
		return label.Render(k) + value.Render(v)
	}

	lines := []string{
		header.Render("mandelscope"),
		"",
		row("center", fmt.Sprintf("%.6f %+.6fi", real(vp.Center), imag(vp.Center))),
		row("zoom", fmt.Sprintf("%.4g", vp.ZoomFactor(m.imgW))),
		row("iter", fmt.Sprintf("%d", vp.MaxIterations)),
		row("palette", accent.Render(m.scheme.String())),
		row("equalize", onOff(m.equalize)),
	}

	if m.rendering {
		lines = append(lines, row("render", "..."))
	} else {
		lines = append(lines, row("render", fmt.Sprintf("%dms", m.renderTime.Milliseconds())))
	}

	if g := m.histogramGraph(); g != "" {
		lines = append(lines, "", muted.Render("iterations"), g)
	}

	if m.showHelp {
		lines = append(lines, "", muted.Render(helpText))
	} else {
		lines = append(lines, "", muted.Render("? help  q quit"))
	}

	return lipgloss.NewStyle().Padding(0, 1).Width(sidebarWidth).Render(
		strings.Join(lines, "\n"))
}

const helpText = `+/- zoom   arrows pan
i/o iterations
c palette  e equalize
t theme    r reset
q quit`

// histogramGraph plots the escaped-iteration distribution of the
// current frame, binned to fit the sidebar.
func (m Model) histogramGraph() string {
	if m.frame == nil || len(m.frame.Samples) == 0 {
		return ""
	}

	const bins = 28
	counts := make([]float64, bins)
	maxIter := m.frame.MaxIterations
	for _, s := range m.frame.Samples {
		if !s.Escaped {
			continue
		}
		b := int(uint64(s.Iterations-1) * bins / uint64(maxIter))
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	return asciigraph.Plot(counts,
		asciigraph.Height(6),
		asciigraph.Width(sidebarWidth-6),
	)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
