package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"gymadmin/internal/config"
	"gymadmin/internal/database"
	"gymadmin/internal/domain"
	"gymadmin/internal/modules/dashboard"
	"gymadmin/internal/repository"
)

// Prints the dashboard snapshot as terminal tables. Handy for ops checks
// without going through the HTTP API.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	svc := dashboard.NewService(
		repository.NewCourseRepository(db),
		repository.NewEquipmentRepository(db),
		repository.NewAssignmentRepository(db),
		cfg.LowStockThreshold,
	)

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	color.Cyan("\n=== Gym Dashboard (%s) ===", snap.GeneratedAt.Format("2006-01-02 15:04"))

	printOverview(snap)
	printCoursesByStatus(snap.Courses)
	printEquipmentByType(snap.Equipment)
	printUpcoming(snap.UpcomingCourses)
	printAttention(snap)
}

func printOverview(snap *dashboard.Snapshot) {
	color.Yellow("\nOverview")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Courses", strconv.FormatInt(snap.Courses.Total, 10)})
	table.Append([]string{"Courses today", strconv.FormatInt(snap.Courses.Today, 10)})
	table.Append([]string{"Courses upcoming", strconv.FormatInt(snap.Courses.Upcoming, 10)})
	table.Append([]string{"Equipment items", strconv.FormatInt(snap.Equipment.Total, 10)})
	table.Append([]string{"Equipment units", strconv.FormatInt(snap.Equipment.TotalQuantity, 10)})
	table.Append([]string{"Assignments", strconv.FormatInt(snap.Assignments.Total, 10)})
	table.Append([]string{"Units assigned", strconv.FormatInt(snap.Assignments.TotalAssigned, 10)})
	table.Render()
}

func printCoursesByStatus(stats *repository.CourseStats) {
	color.Yellow("\nCourses by Status")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Status", "Count"})
	for status, label := range domain.CourseStatusLabels {
		table.Append([]string{label, strconv.FormatInt(stats.ByStatus[string(status)], 10)})
	}
	table.Render()
}

func printEquipmentByType(stats *repository.EquipmentStats) {
	color.Yellow("\nEquipment by Type")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Type", "Items", "Units"})
	for _, tc := range stats.ByType {
		table.Append([]string{
			tc.Type,
			strconv.FormatInt(tc.Count, 10),
			strconv.FormatInt(tc.TotalQuantity, 10),
		})
	}
	table.Render()
}

func printUpcoming(courses []domain.Course) {
	color.Yellow("\nUpcoming Courses")
	if len(courses) == 0 {
		fmt.Println("none scheduled")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Time", "Name", "Instructor", "Participants"})
	for _, c := range courses {
		table.Append([]string{
			c.CourseDate,
			c.StartTime,
			c.Name,
			c.InstructorName,
			fmt.Sprintf("%d/%d", c.CurrentParticipants, c.MaxParticipants),
		})
	}
	table.Render()
}

func printAttention(snap *dashboard.Snapshot) {
	if snap.Equipment.LowStock > 0 {
		color.Red("\nLow Stock (%d)", snap.Equipment.LowStock)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Type", "Quantity"})
		for _, e := range snap.LowStock {
			table.Append([]string{e.Name, e.Type, strconv.Itoa(e.Quantity)})
		}
		table.Render()
	}

	if snap.Equipment.MaintenanceDue > 0 {
		color.Red("\nMaintenance Due (%d)", snap.Equipment.MaintenanceDue)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Next Maintenance", "Condition"})
		for _, e := range snap.MaintenanceDue {
			table.Append([]string{e.Name, e.NextMaintenance, string(e.Condition)})
		}
		table.Render()
	}

	if snap.Equipment.LowStock == 0 && snap.Equipment.MaintenanceDue == 0 {
		color.Green("\nNo equipment needs attention.")
	}
}
