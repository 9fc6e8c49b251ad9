package exporter

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"

	"github.com/YKarmar/AdmissionsDashboard/internal/render"
	"github.com/YKarmar/AdmissionsDashboard/internal/view"
)

// DigestConfig addresses the e-mail digest.
type DigestConfig struct {
	From   string
	To     []string
	Domain string // right-hand side of the Message-ID
}

// DigestWriter writes the dashboard as a multipart/alternative e-mail.
type DigestWriter struct {
	cfg DigestConfig
	now func() time.Time
}

// NewDigestWriter creates a digest writer. now stamps the Date header.
func NewDigestWriter(cfg DigestConfig, now func() time.Time) *DigestWriter {
	if cfg.Domain == "" {
		cfg.Domain = "admissions.local"
	}
	if now == nil {
		now = time.Now
	}
	return &DigestWriter{cfg: cfg, now: now}
}

// Write renders d as text and HTML parts and writes the message to w.
func (dw *DigestWriter) Write(w io.Writer, d view.Dashboard) error {
	var text, page bytes.Buffer
	if err := render.Terminal(&text, d, render.TerminalOptions{NoColor: true}); err != nil {
		return err
	}
	if err := render.HTML(&page, d); err != nil {
		return err
	}

	var h mail.Header
	h.SetDate(dw.now())
	h.SetSubject(fmt.Sprintf("%s — %s", d.Header.Title, d.LastUpdated))
	h.SetMessageID(uuid.NewString() + "@" + dw.cfg.Domain)

	if dw.cfg.From != "" {
		from, err := mail.ParseAddress(dw.cfg.From)
		if err != nil {
			return fmt.Errorf("parse digest sender: %w", err)
		}
		h.SetAddressList("From", []*mail.Address{from})
	}
	if len(dw.cfg.To) > 0 {
		to := make([]*mail.Address, 0, len(dw.cfg.To))
		for _, addr := range dw.cfg.To {
			a, err := mail.ParseAddress(addr)
			if err != nil {
				return fmt.Errorf("parse digest recipient %q: %w", addr, err)
			}
			to = append(to, a)
		}
		h.SetAddressList("To", to)
	}

	mw, err := mail.CreateWriter(w, h)
	if err != nil {
		return fmt.Errorf("create mail writer: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return fmt.Errorf("create inline writer: %w", err)
	}
	if err := writePart(tw, "text/plain", text.Bytes()); err != nil {
		return err
	}
	if err := writePart(tw, "text/html", page.Bytes()); err != nil {
		return err
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("close inline writer: %w", err)
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("close mail writer: %w", err)
	}
	return nil
}

func writePart(tw *mail.InlineWriter, contentType string, body []byte) error {
	var ph mail.InlineHeader
	ph.SetContentType(contentType, map[string]string{"charset": "utf-8"})
	ph.Set("Content-Transfer-Encoding", "quoted-printable")

	pw, err := tw.CreatePart(ph)
	if err != nil {
		return fmt.Errorf("create %s part: %w", contentType, err)
	}
	if _, err := pw.Write(body); err != nil {
		pw.Close()
		return fmt.Errorf("write %s part: %w", contentType, err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close %s part: %w", contentType, err)
	}
	return nil
}
