package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"gymadmin/internal/config"
	"gymadmin/internal/database"
	"gymadmin/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM course_equipment")
	db.Exec("DELETE FROM courses")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		Email:        "admin@gym.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin / admin123")

	staff := make([]domain.User, 0, 3)
	for i, name := range []string{"marta", "denis", "olga"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
		u := domain.User{
			Username:     name,
			Email:        fmt.Sprintf("%s@gym.local", name),
			PasswordHash: string(hash),
			Role:         domain.RoleStaff,
			IsActive:     i < 2, // one deactivated account for login tests
		}
		db.Create(&u)
		staff = append(staff, u)
	}

	// ================== COURSES ==================
	log.Println("Creating courses...")

	instructors := []string{"Anna Weber", "Tom Keller", "Mia Brandt", "Jonas Vogt"}
	courses := make([]domain.Course, 0, 12)
	for i := 0; i < 12; i++ {
		days := rand.Intn(45) - 15 // -15..+29 days around today
		date := time.Now().AddDate(0, 0, days).Format("2006-01-02")

		status := domain.CourseScheduled
		switch {
		case days < -1:
			status = domain.CourseCompleted
		case days == -1 && rand.Intn(2) == 0:
			status = domain.CourseCancelled
		}

		maxP := 10 + rand.Intn(30)
		course := domain.Course{
			Name:                fmt.Sprintf("%s Session %d", domain.CourseCategories[i%len(domain.CourseCategories)], i+1),
			Category:            domain.CourseCategories[i%len(domain.CourseCategories)],
			Description:         "Group training session",
			CourseDate:          date,
			StartTime:           fmt.Sprintf("%02d:00", 8+rand.Intn(12)),
			DurationMinutes:     30 + 15*rand.Intn(7),
			MaxParticipants:     maxP,
			CurrentParticipants: rand.Intn(maxP + 1),
			InstructorName:      instructors[rand.Intn(len(instructors))],
			Location:            domain.DefaultCourseLocation,
			Status:              status,
		}
		db.Create(&course)
		courses = append(courses, course)
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")

	price := func(v float64) *float64 { return &v }
	items := []domain.Equipment{
		{Name: "Yoga Mat", Type: "Yoga", Brand: "Manduka", Quantity: 40, AvailableQuantity: 40, Condition: domain.ConditionGood, PurchasePrice: price(89.90), IsActive: true},
		{Name: "Kettlebell 16kg", Type: "Weights", Brand: "Rogue", Quantity: 12, AvailableQuantity: 12, Condition: domain.ConditionExcellent, PurchasePrice: price(45.00), IsActive: true},
		{Name: "Spin Bike", Type: "Cardio", Brand: "Keiser", Model: "M3i", Quantity: 15, AvailableQuantity: 15, Condition: domain.ConditionGood, PurchasePrice: price(1899.00), IsActive: true},
		{Name: "Boxing Gloves", Type: "Combat", Quantity: 20, AvailableQuantity: 20, Condition: domain.ConditionFair, IsActive: true},
		{Name: "Resistance Bands", Type: "Accessories", Quantity: 4, AvailableQuantity: 4, Condition: domain.ConditionGood, IsActive: true},
		{Name: "Rowing Machine", Type: "Cardio", Brand: "Concept2", Quantity: 6, AvailableQuantity: 6, Condition: domain.ConditionNeedsRepair, IsActive: false},
	}
	for i := range items {
		items[i].Location = domain.DefaultEquipmentLocation
		if items[i].Condition == domain.ConditionNeedsRepair || i%3 == 0 {
			items[i].NextMaintenance = time.Now().AddDate(0, 0, 7+rand.Intn(21)).Format("2006-01-02")
		}
		db.Create(&items[i])
	}

	// ================== ASSIGNMENTS ==================
	log.Println("Linking equipment to courses...")

	created := 0
	for _, c := range courses {
		for _, item := range items {
			if !item.IsActive || item.Type != c.Category && rand.Intn(3) != 0 {
				continue
			}
			a := domain.Assignment{
				CourseID:       c.ID,
				EquipmentID:    item.ID,
				QuantityNeeded: 1 + rand.Intn(8),
				AssignedBy:     &admin.ID,
				AssignedAt:     time.Now(),
			}
			if db.Create(&a).Error == nil {
				created++
			}
		}
	}

	log.Printf("Seed done: %d courses, %d equipment items, %d assignments", len(courses), len(items), created)
}
