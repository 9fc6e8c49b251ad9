// Package present maps application statuses and document types to the
// icon, label and style descriptors used by every renderer.
//
// The mappings are exhaustive switches with no fallback branch. An unmapped
// value is a programming defect and panics; the exhaustive linter configured
// in .golangci.yml flags a missing case before it ships.
package present

import (
	"fmt"

	"github.com/YKarmar/AdmissionsDashboard/internal/types"
)

// IconKind names a glyph independently of how a renderer draws it.
type IconKind string

const (
	IconSuccessCheck  IconKind = "success-check"
	IconPendingClock  IconKind = "pending-clock"
	IconAlert         IconKind = "alert"
	IconDocument      IconKind = "document"
	IconAward         IconKind = "award"
	IconDownload      IconKind = "download"
	IconCalendar      IconKind = "calendar"
	IconGraduationCap IconKind = "graduation-cap"
)

// StyleFamily is the color family of a badge or tile.
type StyleFamily string

const (
	FamilyPositive StyleFamily = "positive" // emerald
	FamilyWarning  StyleFamily = "warning"  // amber
	FamilyNegative StyleFamily = "negative" // red
	FamilyInfo     StyleFamily = "info"     // blue, tiles only
)

// Descriptor is what a status badge needs to render.
type Descriptor struct {
	Icon    IconKind    `json:"icon"`
	Label   string      `json:"label"`
	Family  StyleFamily `json:"family"`
	Classes string      `json:"classes"`
}

// Describe returns the badge descriptor for a status.
func Describe(s types.Status) Descriptor {
	switch s {
	case types.StatusAccepted:
		return Descriptor{
			Icon:    IconSuccessCheck,
			Label:   "Accepted",
			Family:  FamilyPositive,
			Classes: "bg-emerald-50 text-emerald-700 ring-emerald-600/20 ring-1",
		}
	case types.StatusApplied:
		return Descriptor{
			Icon:    IconPendingClock,
			Label:   "Applied",
			Family:  FamilyWarning,
			Classes: "bg-amber-50 text-amber-700 ring-amber-600/20 ring-1",
		}
	case types.StatusRejected:
		return Descriptor{
			Icon:    IconAlert,
			Label:   "Rejected",
			Family:  FamilyNegative,
			Classes: "bg-red-50 text-red-700 ring-red-600/20 ring-1",
		}
	}
	panic(fmt.Sprintf("present: unmapped status %q", string(s)))
}
