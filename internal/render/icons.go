package render

import (
	"fmt"
	"html"
	"html/template"

	"github.com/YKarmar/AdmissionsDashboard/internal/present"
)

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" class="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="%s">`

// iconSVG returns inline SVG markup for an icon kind.
func iconSVG(kind present.IconKind, class string) template.HTML {
	open := fmt.Sprintf(svgOpen, html.EscapeString(class), html.EscapeString(string(kind)))
	// #nosec G203 -- paths are constants, attributes are escaped above.
	return template.HTML(open + iconPaths(kind) + `</svg>`)
}

func iconPaths(kind present.IconKind) string {
	switch kind {
	case present.IconSuccessCheck:
		return `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><polyline points="22 4 12 14.01 9 11.01"/>`
	case present.IconPendingClock:
		return `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`
	case present.IconAlert:
		return `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`
	case present.IconDocument:
		return `<path d="M14.5 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7.5L14.5 2z"/><polyline points="14 2 14 8 20 8"/><line x1="16" x2="8" y1="13" y2="13"/><line x1="16" x2="8" y1="17" y2="17"/>`
	case present.IconAward:
		return `<circle cx="12" cy="8" r="6"/><path d="M15.477 12.89 17 22l-5-3-5 3 1.523-9.11"/>`
	case present.IconDownload:
		return `<path d="M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4"/><polyline points="7 10 12 15 17 10"/><line x1="12" x2="12" y1="15" y2="3"/>`
	case present.IconCalendar:
		return `<rect width="18" height="18" x="3" y="4" rx="2" ry="2"/><line x1="16" x2="16" y1="2" y2="6"/><line x1="8" x2="8" y1="2" y2="6"/><line x1="3" x2="21" y1="10" y2="10"/>`
	case present.IconGraduationCap:
		return `<path d="M22 10v6M2 10l10-5 10 5-10 5z"/><path d="M6 12v5c3 3 9 3 12 0v-5"/>`
	}
	panic(fmt.Sprintf("render: no glyph for icon %q", string(kind)))
}

// tileClasses returns the icon background and foreground classes for a tile.
func tileClasses(family present.StyleFamily) (bg, fg string) {
	switch family {
	case present.FamilyPositive:
		return "bg-emerald-100", "text-emerald-600"
	case present.FamilyWarning:
		return "bg-amber-100", "text-amber-600"
	case present.FamilyNegative:
		return "bg-red-100", "text-red-600"
	case present.FamilyInfo:
		return "bg-blue-100", "text-blue-600"
	}
	panic(fmt.Sprintf("render: no tile classes for family %q", string(family)))
}
