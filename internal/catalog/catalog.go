// Package catalog holds the compiled-in admission applications.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YKarmar/AdmissionsDashboard/internal/types"
)

var (
	ErrDuplicateID         = errors.New("duplicate application id")
	ErrUnknownStatus       = errors.New("unknown application status")
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrMissingField        = errors.New("missing required field")
)

var applications = []types.Application{
	{
		ID:           "1",
		University:   "Florida Institute of Technology",
		Status:       types.StatusAccepted,
		AppliedOn:    "June 27, 2025",
		DecisionDate: "July 2, 2025",
		Documents: []types.Document{
			{Name: "Offer Letter", URL: "Florida Tech.pdf", Type: types.DocumentOffer},
			{Name: "Scholarship Letter", URL: "Florida Tech Scholarship.pdf", Type: types.DocumentScholarship},
		},
		Scholarships: []types.Scholarship{
			{Name: "Merit Scholarship", Amount: "$17,500/year"},
		},
	},
	{
		ID:           "2",
		University:   "Arizona State University",
		Status:       types.StatusApplied,
		AppliedOn:    "July 1, 2025",
		DecisionDate: types.DecisionPending,
		Documents:    []types.Document{},
	},
	{
		ID:           "3",
		University:   "Iowa State University",
		Status:       types.StatusApplied,
		AppliedOn:    "July 1, 2025",
		DecisionDate: types.DecisionPending,
		Documents:    []types.Document{},
	},
}

func init() {
	if err := Validate(applications); err != nil {
		panic(fmt.Sprintf("catalog: invalid compiled-in applications: %v", err))
	}
}

// Applications returns a deep copy of the compiled-in collection in display order.
func Applications() []types.Application {
	out := make([]types.Application, len(applications))
	for i, app := range applications {
		out[i] = clone(app)
	}
	return out
}

// Lookup returns the application with the given id.
func Lookup(id string) (types.Application, bool) {
	for _, app := range applications {
		if app.ID == id {
			return clone(app), true
		}
	}
	return types.Application{}, false
}

// Validate checks the collection invariants: unique ids, closed enums and
// non-empty display fields.
func Validate(apps []types.Application) error {
	seen := make(map[string]struct{}, len(apps))
	for i, app := range apps {
		if strings.TrimSpace(app.ID) == "" {
			return fmt.Errorf("application %d: id: %w", i, ErrMissingField)
		}
		if _, dup := seen[app.ID]; dup {
			return fmt.Errorf("application %q: %w", app.ID, ErrDuplicateID)
		}
		seen[app.ID] = struct{}{}

		if strings.TrimSpace(app.University) == "" {
			return fmt.Errorf("application %q: university: %w", app.ID, ErrMissingField)
		}
		if !knownStatus(app.Status) {
			return fmt.Errorf("application %q: %w: %q", app.ID, ErrUnknownStatus, app.Status)
		}
		if strings.TrimSpace(app.DecisionDate) == "" {
			return fmt.Errorf("application %q: decision date: %w", app.ID, ErrMissingField)
		}
		for _, doc := range app.Documents {
			if !knownDocumentType(doc.Type) {
				return fmt.Errorf("application %q: document %q: %w: %q", app.ID, doc.Name, ErrUnknownDocumentType, doc.Type)
			}
			if doc.Name == "" || doc.URL == "" {
				return fmt.Errorf("application %q: document: %w", app.ID, ErrMissingField)
			}
		}
		for _, s := range app.Scholarships {
			if s.Name == "" || s.Amount == "" {
				return fmt.Errorf("application %q: scholarship: %w", app.ID, ErrMissingField)
			}
		}
	}
	return nil
}

func knownStatus(s types.Status) bool {
	for _, v := range types.AllStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

func knownDocumentType(t types.DocumentType) bool {
	for _, v := range types.AllDocumentTypes() {
		if v == t {
			return true
		}
	}
	return false
}

func clone(app types.Application) types.Application {
	c := app
	c.Documents = append([]types.Document{}, app.Documents...)
	if app.Scholarships != nil {
		c.Scholarships = append([]types.Scholarship{}, app.Scholarships...)
	}
	return c
}
