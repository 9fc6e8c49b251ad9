package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/YKarmar/AdmissionsDashboard/internal/present"
	"github.com/YKarmar/AdmissionsDashboard/internal/view"
)

var (
	emeraldColor = lipgloss.Color("#10B981")
	amberColor   = lipgloss.Color("#F59E0B")
	redColor     = lipgloss.Color("#F87171")
	blueColor    = lipgloss.Color("#60A5FA")
	mutedColor   = lipgloss.Color("#9CA3AF")
	borderColor  = lipgloss.Color("#6B7280")
	titleColor   = lipgloss.Color("#A78BFA")
)

// TerminalOptions controls the terminal renderer.
type TerminalOptions struct {
	// NoColor forces plain ASCII output regardless of the terminal.
	NoColor bool
}

type terminalStyles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	pending lipgloss.Style
	amount  lipgloss.Style
	tile    lipgloss.Style
}

func newTerminalStyles(r *lipgloss.Renderer) terminalStyles {
	return terminalStyles{
		title:   r.NewStyle().Bold(true).Foreground(titleColor),
		muted:   r.NewStyle().Foreground(mutedColor),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle().Foreground(borderColor),
		pending: r.NewStyle().Bold(true).Foreground(amberColor),
		amount:  r.NewStyle().Bold(true).Foreground(emeraldColor),
		tile: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 2),
	}
}

func familyColor(f present.StyleFamily) lipgloss.Color {
	switch f {
	case present.FamilyPositive:
		return emeraldColor
	case present.FamilyWarning:
		return amberColor
	case present.FamilyNegative:
		return redColor
	case present.FamilyInfo:
		return blueColor
	}
	panic(fmt.Sprintf("render: no terminal color for family %q", string(f)))
}

func glyph(kind present.IconKind) string {
	switch kind {
	case present.IconSuccessCheck:
		return "✔"
	case present.IconPendingClock:
		return "◷"
	case present.IconAlert:
		return "⚠"
	case present.IconDocument:
		return "▤"
	case present.IconAward:
		return "★"
	case present.IconDownload:
		return "↓"
	case present.IconCalendar:
		return "▦"
	case present.IconGraduationCap:
		return "🎓"
	}
	panic(fmt.Sprintf("render: no glyph for icon %q", string(kind)))
}

// Terminal writes the dashboard as a styled table for a terminal.
func Terminal(w io.Writer, d view.Dashboard, opts TerminalOptions) error {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	st := newTerminalStyles(r)

	var b strings.Builder
	b.WriteString(st.title.Render(glyph(present.IconGraduationCap) + " " + d.Header.Owner))
	b.WriteString("\n")
	b.WriteString(d.Header.Title)
	b.WriteString("\n")
	b.WriteString(st.muted.Render(d.Header.Subtitle))
	b.WriteString("\n\n")

	tiles := make([]string, 0, len(d.Tiles))
	for _, tile := range d.Tiles {
		icon := r.NewStyle().Foreground(familyColor(tile.Family)).Render(glyph(tile.Icon))
		tiles = append(tiles, st.tile.Render(icon+" "+tile.Value+"\n"+st.muted.Render(tile.Label)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	b.WriteString("\n\n")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.border).
		Headers("University", "Status", "Applied", "Decision", "Documents").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		})

	for _, row := range d.Rows {
		t.Row(
			row.University,
			badgeCell(r, row.Badge),
			glyph(present.IconCalendar)+" "+row.AppliedOn,
			decisionCell(st, row.Decision),
			documentsCell(st, row),
		)
	}
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(st.muted.Render("Last updated: " + d.LastUpdated))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("render terminal: %w", err)
	}
	return nil
}

func badgeCell(r *lipgloss.Renderer, d present.Descriptor) string {
	return r.NewStyle().Foreground(familyColor(d.Family)).Render(glyph(d.Icon) + " " + d.Label)
}

func decisionCell(st terminalStyles, d view.Decision) string {
	if d.Pending {
		return st.pending.Render(d.Text)
	}
	return d.Text
}

func documentsCell(st terminalStyles, row view.Row) string {
	var lines []string
	if row.HasDocuments() {
		for _, doc := range row.Documents {
			lines = append(lines, fmt.Sprintf("%s %s %s", glyph(doc.Icon), doc.Name, glyph(doc.Affordance)))
		}
	} else {
		lines = append(lines, st.muted.Render("—"))
	}

	if row.HasScholarships() {
		lines = append(lines, "Scholarships:")
		for _, s := range row.Scholarships {
			s.Amount = st.amount.Render(s.Amount)
			lines = append(lines, glyph(present.IconAward)+" "+present.ScholarshipLine(s))
		}
	}
	return strings.Join(lines, "\n")
}
