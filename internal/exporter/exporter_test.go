package exporter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-message/mail"

	"github.com/YKarmar/AdmissionsDashboard/internal/catalog"
	"github.com/YKarmar/AdmissionsDashboard/internal/summary"
	"github.com/YKarmar/AdmissionsDashboard/internal/view"
)

func TestExportApplications(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applications.csv")
	if err := NewCSVExporter(path).ExportApplications(catalog.Applications()); err != nil {
		t.Fatalf("ExportApplications failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 records, got %d", len(records))
	}

	first := records[1]
	if first[1] != "Florida Institute of Technology" || first[2] != "Accepted" {
		t.Errorf("unexpected first record: %v", first)
	}
	if first[5] != "Offer Letter (Florida Tech.pdf); Scholarship Letter (Florida Tech Scholarship.pdf)" {
		t.Errorf("documents column = %q", first[5])
	}
	if first[6] != "Merit Scholarship — $17,500/year" {
		t.Errorf("scholarships column = %q", first[6])
	}
	if records[2][4] != "Pending" || records[2][5] != "" {
		t.Errorf("unexpected second record: %v", records[2])
	}
}

func TestExportStatistics(t *testing.T) {
	apps := catalog.Applications()
	path := filepath.Join(t.TempDir(), "stats.csv")
	if err := NewCSVExporter(path).ExportStatistics(summary.Derive(apps), apps); err != nil {
		t.Fatalf("ExportStatistics failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	out := string(content)
	for _, want := range []string{"Accepted,1", "Applied,2", "Rejected,0", "Pending,2", "Annual Scholarship,$17.5K"} {
		if !strings.Contains(out, want) {
			t.Errorf("statistics missing %q:\n%s", want, out)
		}
	}
}

func TestExportToMissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	if err := NewCSVExporter(path).ExportApplications(catalog.Applications()); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestDigestWriter(t *testing.T) {
	now := time.Date(2025, time.July, 15, 8, 0, 0, 0, time.UTC)
	d := view.Builder{
		Header: view.Header{Owner: "Naghul Adhithya", Title: "University Admissions Dashboard"},
		Now:    view.FixedClock(now),
	}.Build(catalog.Applications())

	dw := NewDigestWriter(DigestConfig{
		From: "Dashboard <dashboard@example.com>",
		To:   []string{"student@example.com"},
	}, func() time.Time { return now })

	var buf bytes.Buffer
	if err := dw.Write(&buf, d); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	mr, err := mail.CreateReader(&buf)
	if err != nil {
		t.Fatalf("digest does not parse: %v", err)
	}

	subject, err := mr.Header.Subject()
	if err != nil {
		t.Fatalf("subject: %v", err)
	}
	if subject != "University Admissions Dashboard — July 15, 2025" {
		t.Errorf("subject = %q", subject)
	}

	id, err := mr.Header.MessageID()
	if err != nil || !strings.HasSuffix(id, "@admissions.local") {
		t.Errorf("message id = %q (%v)", id, err)
	}

	to, err := mr.Header.AddressList("To")
	if err != nil || len(to) != 1 || to[0].Address != "student@example.com" {
		t.Errorf("unexpected To: %v (%v)", to, err)
	}

	bodies := map[string]string{}
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("next part: %v", err)
		}
		h, ok := p.Header.(*mail.InlineHeader)
		if !ok {
			t.Fatalf("unexpected part header %T", p.Header)
		}
		ct, _, _ := h.ContentType()
		body, err := io.ReadAll(p.Body)
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		bodies[ct] = string(body)
	}

	if !strings.Contains(bodies["text/plain"], "Merit Scholarship — $17,500/year") {
		t.Errorf("text part missing scholarship line:\n%s", bodies["text/plain"])
	}
	if !strings.Contains(bodies["text/html"], `data-application="1"`) {
		t.Error("html part should contain the rendered table")
	}
}

func TestDigestWriterRejectsBadAddress(t *testing.T) {
	dw := NewDigestWriter(DigestConfig{From: "not an address"}, nil)
	d := view.Builder{}.Build(catalog.Applications())
	if err := dw.Write(io.Discard, d); err == nil {
		t.Error("expected an error for an invalid sender")
	}
}
