package present

import (
	"testing"

	"github.com/YKarmar/AdmissionsDashboard/internal/types"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		status types.Status
		icon   IconKind
		label  string
		family StyleFamily
	}{
		{types.StatusAccepted, IconSuccessCheck, "Accepted", FamilyPositive},
		{types.StatusApplied, IconPendingClock, "Applied", FamilyWarning},
		{types.StatusRejected, IconAlert, "Rejected", FamilyNegative},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			d := Describe(tt.status)
			if d.Icon != tt.icon {
				t.Errorf("Icon = %q, want %q", d.Icon, tt.icon)
			}
			if d.Label != tt.label {
				t.Errorf("Label = %q, want %q", d.Label, tt.label)
			}
			if d.Family != tt.family {
				t.Errorf("Family = %q, want %q", d.Family, tt.family)
			}
			if d.Classes == "" {
				t.Error("Classes should not be empty")
			}
		})
	}
}

func TestDescribeCoversEveryStatus(t *testing.T) {
	allowed := map[StyleFamily]bool{
		FamilyPositive: true,
		FamilyWarning:  true,
		FamilyNegative: true,
	}
	seen := make(map[StyleFamily]types.Status)

	for _, s := range types.AllStatuses() {
		d := Describe(s)
		if d.Label == "" {
			t.Errorf("status %q has an empty label", s)
		}
		if !allowed[d.Family] {
			t.Errorf("status %q uses family %q outside the badge families", s, d.Family)
		}
		if prev, dup := seen[d.Family]; dup {
			t.Errorf("statuses %q and %q share family %q", prev, s, d.Family)
		}
		seen[d.Family] = s
	}
}

func TestDescribePanicsOnUnknownStatus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Describe to panic for an unmapped status")
		}
	}()
	Describe(types.Status("waitlisted"))
}

func TestDocumentIcon(t *testing.T) {
	tests := []struct {
		docType types.DocumentType
		want    IconKind
	}{
		{types.DocumentOffer, IconDocument},
		{types.DocumentScholarship, IconAward},
		{types.DocumentOther, IconDocument},
	}
	for _, tt := range tests {
		if got := DocumentIcon(tt.docType); got != tt.want {
			t.Errorf("DocumentIcon(%q) = %q, want %q", tt.docType, got, tt.want)
		}
	}

	if DocumentIcon(types.DocumentOther) != DocumentIcon(types.DocumentOffer) {
		t.Error("other documents should share the offer icon")
	}
	for _, dt := range types.AllDocumentTypes() {
		if DocumentIcon(dt) == "" {
			t.Errorf("document type %q has no icon", dt)
		}
	}
}

func TestDocumentIconPanicsOnUnknownType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected DocumentIcon to panic for an unmapped type")
		}
	}()
	DocumentIcon(types.DocumentType("visa"))
}

func TestDocumentLink(t *testing.T) {
	link := DocumentLink(types.Document{
		Name: "Scholarship Letter",
		URL:  "Florida Tech Scholarship.pdf",
		Type: types.DocumentScholarship,
	})

	if link.Href != "Florida Tech Scholarship.pdf" {
		t.Errorf("Href = %q", link.Href)
	}
	if link.Target != "_blank" {
		t.Errorf("Target = %q, want _blank", link.Target)
	}
	if link.Rel != "noopener noreferrer" {
		t.Errorf("Rel = %q, want noopener noreferrer", link.Rel)
	}
	if link.Icon != IconAward {
		t.Errorf("Icon = %q, want %q", link.Icon, IconAward)
	}
	if link.Affordance != IconDownload {
		t.Errorf("Affordance = %q, want %q", link.Affordance, IconDownload)
	}
}

func TestScholarshipLine(t *testing.T) {
	got := ScholarshipLine(types.Scholarship{Name: "Merit Scholarship", Amount: "$17,500/year"})
	if got != "Merit Scholarship — $17,500/year" {
		t.Errorf("ScholarshipLine() = %q", got)
	}
}
