package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"gymadmin/internal/domain"
	"gymadmin/internal/repository"
)

// utf8BOM makes Excel open the files as UTF-8.
const utf8BOM = "\xEF\xBB\xBF"

type CourseSource interface {
	ListAll(ctx context.Context, f repository.CourseFilters) ([]domain.Course, error)
}

type EquipmentSource interface {
	ListAll(ctx context.Context, f repository.EquipmentFilters) ([]domain.Equipment, error)
}

type Service struct {
	courses   CourseSource
	equipment EquipmentSource
	now       func() time.Time
}

func NewService(courses CourseSource, equipment EquipmentSource) *Service {
	return &Service{courses: courses, equipment: equipment, now: time.Now}
}

// File is a rendered export ready to be written to the response.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

var courseCSVHeader = []string{
	"ID", "Name", "Category", "Date", "Start Time", "Duration (min)",
	"Max Participants", "Current Participants", "Instructor", "Location",
	"Status", "Equipment Count", "Created At",
}

// CoursesCSV renders every matching course, ignoring pagination.
func (s *Service) CoursesCSV(ctx context.Context, f repository.CourseFilters) (*File, error) {
	courses, err := s.courses.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)

	if err := w.Write(courseCSVHeader); err != nil {
		return nil, err
	}
	for _, c := range courses {
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Category,
			c.CourseDate,
			c.StartTime,
			strconv.Itoa(c.DurationMinutes),
			strconv.Itoa(c.MaxParticipants),
			strconv.Itoa(c.CurrentParticipants),
			c.InstructorName,
			c.Location,
			string(c.Status),
			strconv.FormatInt(c.EquipmentCount, 10),
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &File{
		Name:        "courses_export_" + s.now().Format("2006-01-02_150405") + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

var equipmentCSVHeader = []string{
	"ID", "Name", "Type", "Brand", "Model", "Quantity", "Available",
	"Condition", "Location", "Purchase Date", "Purchase Price",
	"Last Maintenance", "Next Maintenance", "Courses Assigned", "Active",
	"Created At",
}

// EquipmentCSV renders every matching inventory item, ignoring pagination.
func (s *Service) EquipmentCSV(ctx context.Context, f repository.EquipmentFilters) (*File, error) {
	items, err := s.equipment.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)

	if err := w.Write(equipmentCSVHeader); err != nil {
		return nil, err
	}
	for _, e := range items {
		price := ""
		if e.PurchasePrice != nil {
			price = strconv.FormatFloat(*e.PurchasePrice, 'f', 2, 64)
		}
		active := "No"
		if e.IsActive {
			active = "Yes"
		}
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			e.Type,
			e.Brand,
			e.Model,
			strconv.Itoa(e.Quantity),
			strconv.Itoa(e.AvailableQuantity),
			string(e.Condition),
			e.Location,
			e.PurchaseDate,
			price,
			e.LastMaintenance,
			e.NextMaintenance,
			strconv.FormatInt(e.CoursesCount, 10),
			active,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &File{
		Name:        "equipment_export_" + s.now().Format("2006-01-02_150405") + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

// CoursesReport renders the printable course report. The page auto-opens the
// browser's print dialog; saving as PDF is left to the browser.
func (s *Service) CoursesReport(ctx context.Context, f repository.CourseFilters) (*File, error) {
	courses, err := s.courses.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			c.Name,
			c.Category,
			c.CourseDate,
			c.StartTime,
			fmt.Sprintf("%d min", c.DurationMinutes),
			c.InstructorName,
			title(string(c.Status)),
		})
	}

	body, err := s.renderReport(reportData{
		Title:    "Courses Report",
		Filename: "courses_report_" + s.now().Format("2006-01-02"),
		Columns:  []string{"Name", "Category", "Date", "Time", "Duration", "Instructor", "Status"},
		Rows:     rows,
	})
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        "courses_report_" + s.now().Format("2006-01-02") + ".html",
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}

// EquipmentReport renders the printable inventory report.
func (s *Service) EquipmentReport(ctx context.Context, f repository.EquipmentFilters) (*File, error) {
	items, err := s.equipment.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(items))
	for _, e := range items {
		active := "No"
		if e.IsActive {
			active = "Yes"
		}
		rows = append(rows, []string{
			e.Name,
			e.Type,
			orDash(e.Brand),
			strconv.Itoa(e.Quantity),
			title(string(e.Condition)),
			orDash(e.Location),
			active,
		})
	}

	body, err := s.renderReport(reportData{
		Title:    "Equipment Report",
		Filename: "equipment_report_" + s.now().Format("2006-01-02"),
		Columns:  []string{"Name", "Type", "Brand", "Qty", "Condition", "Location", "Active"},
		Rows:     rows,
	})
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        "equipment_report_" + s.now().Format("2006-01-02") + ".html",
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}

type reportData struct {
	Title       string
	Filename    string
	GeneratedOn string
	Year        int
	Columns     []string
	Rows        [][]string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; font-size: 12px; margin: 20px; }
.header { text-align: center; margin-bottom: 30px; }
.header h1 { color: #4F46E5; margin: 0; font-size: 24px; }
.header p { color: #666; margin: 5px 0 0; }
.data-table { width: 100%; border-collapse: collapse; margin-top: 20px; }
.data-table th, .data-table td { border: 1px solid #ddd; padding: 8px; text-align: left; }
.data-table th { background-color: #4F46E5; color: white; font-weight: bold; }
.data-table tr:nth-child(even) { background-color: #f9f9f9; }
.footer { margin-top: 30px; text-align: center; color: #666; font-size: 10px; }
</style>
<style media="print">
@page { margin: 1cm; }
body { -webkit-print-color-adjust: exact !important; print-color-adjust: exact !important; }
</style>
<script>
window.onload = function() {
	document.title = {{.Filename}};
	setTimeout(function() { window.print(); }, 500);
}
</script>
</head>
<body>
<div class="header">
<h1>{{.Title}}</h1>
<p>Generated on {{.GeneratedOn}}</p>
</div>
<table class="data-table">
<thead>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
<div class="footer">
<p>Gym Management Platform &copy; {{.Year}}</p>
</div>
</body>
</html>
`))

func (s *Service) renderReport(data reportData) ([]byte, error) {
	now := s.now()
	data.GeneratedOn = now.Format("January 2, 2006 at 3:04 PM")
	data.Year = now.Year()

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
