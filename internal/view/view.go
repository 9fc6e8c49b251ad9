// Package view composes applications, presenters and summary tiles into the
// renderer-neutral dashboard model.
package view

import (
	"strconv"
	"time"

	"github.com/YKarmar/AdmissionsDashboard/internal/present"
	"github.com/YKarmar/AdmissionsDashboard/internal/summary"
	"github.com/YKarmar/AdmissionsDashboard/internal/types"
)

// DateLayout is the format of the "last updated" footer.
const DateLayout = "January 2, 2006"

// Clock returns the current time.
type Clock func() time.Time

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

type Header struct {
	Owner    string `json:"owner"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type Tile struct {
	Icon   present.IconKind    `json:"icon"`
	Family present.StyleFamily `json:"family"`
	Value  string              `json:"value"`
	Label  string              `json:"label"`
}

type Decision struct {
	Text    string `json:"text"`
	Pending bool   `json:"pending"`
}

type Row struct {
	ID           string              `json:"id"`
	University   string              `json:"university"`
	Badge        present.Descriptor  `json:"badge"`
	AppliedOn    string              `json:"applied_on"`
	Decision     Decision            `json:"decision"`
	Documents    []present.Link      `json:"documents"`
	Scholarships []types.Scholarship `json:"scholarships,omitempty"`
}

// HasDocuments reports whether the row shows links instead of the placeholder dash.
func (r Row) HasDocuments() bool { return len(r.Documents) > 0 }

// HasScholarships reports whether the scholarship sub-list is shown.
func (r Row) HasScholarships() bool { return len(r.Scholarships) > 0 }

// ScholarshipLines returns "name — amount" for each scholarship in order.
func (r Row) ScholarshipLines() []string {
	lines := make([]string, 0, len(r.Scholarships))
	for _, s := range r.Scholarships {
		lines = append(lines, present.ScholarshipLine(s))
	}
	return lines
}

type Dashboard struct {
	Header      Header        `json:"header"`
	Stylesheet  string        `json:"-"`
	Tiles       []Tile        `json:"tiles"`
	Summary     summary.Tiles `json:"summary"`
	Rows        []Row         `json:"rows"`
	LastUpdated string        `json:"last_updated"`
}

// Builder assembles a Dashboard. Tiles defaults to summary.Derived and Now
// to time.Now.
type Builder struct {
	Header     Header
	Stylesheet string
	Tiles      summary.Provider
	Now        Clock
}

// Build renders one row per application in collection order.
func (b Builder) Build(apps []types.Application) Dashboard {
	tiles := b.Tiles
	if tiles == nil {
		tiles = summary.Derived{}
	}
	now := b.Now
	if now == nil {
		now = time.Now
	}

	rows := make([]Row, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, NewRow(app))
	}

	s := tiles.Tiles(apps)
	return Dashboard{
		Header:      b.Header,
		Stylesheet:  b.Stylesheet,
		Tiles:       summaryTiles(s),
		Summary:     s,
		Rows:        rows,
		LastUpdated: now().Format(DateLayout),
	}
}

// NewRow derives the display row for one application.
func NewRow(app types.Application) Row {
	docs := make([]present.Link, 0, len(app.Documents))
	for _, d := range app.Documents {
		docs = append(docs, present.DocumentLink(d))
	}

	var scholarships []types.Scholarship
	if len(app.Scholarships) > 0 {
		scholarships = append(scholarships, app.Scholarships...)
	}

	return Row{
		ID:         app.ID,
		University: app.University,
		Badge:      present.Describe(app.Status),
		AppliedOn:  app.AppliedOn,
		Decision: Decision{
			Text:    app.DecisionDate,
			Pending: app.DecisionPending(),
		},
		Documents:    docs,
		Scholarships: scholarships,
	}
}

func summaryTiles(s summary.Tiles) []Tile {
	return []Tile{
		{Icon: present.IconSuccessCheck, Family: present.FamilyPositive, Value: strconv.Itoa(s.Accepted), Label: "Accepted"},
		{Icon: present.IconPendingClock, Family: present.FamilyWarning, Value: strconv.Itoa(s.Pending), Label: "Pending"},
		{Icon: present.IconAward, Family: present.FamilyInfo, Value: s.ScholarshipTotal, Label: "Annual Scholarship"},
	}
}
