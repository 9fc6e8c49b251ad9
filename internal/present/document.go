package present

import (
	"fmt"

	"github.com/YKarmar/AdmissionsDashboard/internal/types"
)

const (
	linkTarget = "_blank"
	linkRel    = "noopener noreferrer"
)

// Link is a document rendered as an anchor opening in a new browsing context.
type Link struct {
	Name       string   `json:"name"`
	Href       string   `json:"href"`
	Target     string   `json:"target"`
	Rel        string   `json:"rel"`
	Icon       IconKind `json:"icon"`
	Affordance IconKind `json:"affordance"`
}

// DocumentIcon returns the icon for a document type. Types without a
// dedicated glyph share the offer icon.
func DocumentIcon(t types.DocumentType) IconKind {
	switch t {
	case types.DocumentOffer:
		return IconDocument
	case types.DocumentScholarship:
		return IconAward
	case types.DocumentOther:
		return IconDocument
	}
	panic(fmt.Sprintf("present: unmapped document type %q", string(t)))
}

// DocumentLink builds the link for a document. The URL is used as-is;
// reachability is left to the browser.
func DocumentLink(d types.Document) Link {
	return Link{
		Name:       d.Name,
		Href:       d.URL,
		Target:     linkTarget,
		Rel:        linkRel,
		Icon:       DocumentIcon(d.Type),
		Affordance: IconDownload,
	}
}

// ScholarshipLine formats a scholarship for plain-text surfaces.
func ScholarshipLine(s types.Scholarship) string {
	return s.Name + " — " + s.Amount
}
