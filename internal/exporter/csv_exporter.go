package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YKarmar/AdmissionsDashboard/internal/present"
	"github.com/YKarmar/AdmissionsDashboard/internal/summary"
	"github.com/YKarmar/AdmissionsDashboard/internal/types"
)

// CSVExporter CSV导出器
type CSVExporter struct {
	filename string
}

// NewCSVExporter 创建CSV导出器
func NewCSVExporter(filename string) *CSVExporter {
	return &CSVExporter{
		filename: filename,
	}
}

// ExportApplications 导出申请信息到CSV文件
func (ce *CSVExporter) ExportApplications(applications []types.Application) error {
	return ce.withFile(func(w io.Writer) error {
		return WriteApplications(w, applications)
	})
}

// ExportStatistics 导出统计信息到CSV文件
func (ce *CSVExporter) ExportStatistics(tiles summary.Tiles, applications []types.Application) error {
	return ce.withFile(func(w io.Writer) error {
		return WriteStatistics(w, tiles, applications)
	})
}

func (ce *CSVExporter) withFile(write func(io.Writer) error) error {
	file, err := os.Create(ce.filename)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close CSV file: %w", err)
	}
	return nil
}

// WriteApplications 将申请信息以CSV格式写入 w
func WriteApplications(w io.Writer, applications []types.Application) error {
	writer := csv.NewWriter(w)

	headers := []string{
		"id",
		"university",
		"status",
		"applied_on",
		"decision_date",
		"documents",
		"scholarships",
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write CSV headers: %w", err)
	}

	for _, app := range applications {
		docs := make([]string, 0, len(app.Documents))
		for _, d := range app.Documents {
			docs = append(docs, d.Name+" ("+d.URL+")")
		}
		scholarships := make([]string, 0, len(app.Scholarships))
		for _, s := range app.Scholarships {
			scholarships = append(scholarships, present.ScholarshipLine(s))
		}

		record := []string{
			app.ID,
			app.University,
			present.Describe(app.Status).Label,
			app.AppliedOn,
			app.DecisionDate,
			strings.Join(docs, "; "),
			strings.Join(scholarships, "; "),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}

// WriteStatistics 写入各状态数量和汇总数据
func WriteStatistics(w io.Writer, tiles summary.Tiles, applications []types.Application) error {
	writer := csv.NewWriter(w)

	statusCount := make(map[types.Status]int)
	for _, app := range applications {
		statusCount[app.Status]++
	}

	records := [][]string{
		{"status", "count"},
	}
	for _, status := range types.AllStatuses() {
		records = append(records, []string{present.Describe(status).Label, strconv.Itoa(statusCount[status])})
	}
	records = append(records,
		[]string{},
		[]string{"tile", "value"},
		[]string{"Accepted", strconv.Itoa(tiles.Accepted)},
		[]string{"Pending", strconv.Itoa(tiles.Pending)},
		[]string{"Annual Scholarship", tiles.ScholarshipTotal},
	)

	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write statistics: %w", err)
	}
	return nil
}
