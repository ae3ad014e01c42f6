package main

import (
	"flag"
	"log"
	"os"
	"time"

	"churchtrack.com/churchtrack/backend/db"
	"churchtrack.com/churchtrack/backend/models"
	"churchtrack.com/churchtrack/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a development database with an admin account, a week of services
// and check-ins, and optionally a pre-registration roster imported from a
// CSV file (columns: name, phone, email, notes).
func main() {
	pendingCSV := flag.String("pending", "", "CSV file of pending users to import")
	flag.Parse()

	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "root:development@tcp(localhost:3306)/churchtrack?parseTime=true"
	}

	conn, err := db.Connect(dsn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := conn.AutoMigrate(
		&models.User{}, &models.Service{},
		&models.Attendance{}, &models.PendingUser{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	seedUsers(conn)
	seedServices(conn)
	seedAttendance(conn)

	if *pendingCSV != "" {
		importPendingUsers(conn, *pendingCSV)
	}
}

func seedUsers(conn *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("development"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := []models.User{
		{Username: "admin", Password: string(hash), Name: "Administrator", Role: "ADMIN"},
		{Username: "minsu", Password: string(hash), Name: "Kim Minsu", Role: "MEMBER"},
		{Username: "jiyeon", Password: string(hash), Name: "Park Jiyeon", Role: "MEMBER"},
		{Username: "david", Password: string(hash), Name: "David Lee", Role: "MEMBER"},
	}
	for _, u := range users {
		if err := conn.Where("username = ?", u.Username).FirstOrCreate(&u).Error; err != nil {
			log.Fatalf("failed to seed user %s: %v", u.Username, err)
		}
	}
	log.Printf("seeded %d users", len(users))
}

func seedServices(conn *gorm.DB) {
	sunday := nextSunday()
	services := []models.Service{
		{Name: "Sunday Worship", ServiceTime: sunday.Add(11 * time.Hour), Type: "SUNDAY", Active: true},
		{Name: "Early Morning Prayer", ServiceTime: sunday.AddDate(0, 0, -4).Add(6 * time.Hour), Type: "DAWN", Active: true},
		{Name: "Wednesday Service", ServiceTime: sunday.AddDate(0, 0, -4).Add(19 * time.Hour), Type: "WEDNESDAY", Active: false},
	}
	for _, s := range services {
		if err := conn.Where("name = ?", s.Name).FirstOrCreate(&s).Error; err != nil {
			log.Fatalf("failed to seed service %s: %v", s.Name, err)
		}
	}
	log.Printf("seeded %d services", len(services))
}

func seedAttendance(conn *gorm.DB) {
	var members []models.User
	if err := conn.Where("role = ?", "MEMBER").Find(&members).Error; err != nil {
		log.Fatalf("failed to fetch members: %v", err)
	}
	var services []models.Service
	if err := conn.Find(&services).Error; err != nil {
		log.Fatalf("failed to fetch services: %v", err)
	}

	statuses := []string{"PRESENT", "LATE", "ABSENT"}
	var rows []models.Attendance
	for _, svc := range services {
		for i, member := range members {
			rows = append(rows, models.Attendance{
				UserID:    member.ID,
				ServiceID: svc.ID,
				Status:    statuses[i%len(statuses)],
				Latitude:  utils.Ptr(37.5665 + float64(i)*0.0001),
				Longitude: utils.Ptr(126.9780 + float64(i)*0.0001),
				Distance:  utils.Ptr(float64(12 + i*37)),
				CheckedAt: svc.ServiceTime.Add(time.Duration(i*7-5) * time.Minute),
			})
		}
	}
	if err := conn.Create(&rows).Error; err != nil {
		log.Fatalf("failed to seed attendance: %v", err)
	}
	log.Printf("seeded %d attendance records", len(rows))
}

func importPendingUsers(conn *gorm.DB, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	records, err := utils.ParseCSV(f)
	if err != nil {
		log.Fatalf("failed to parse %s: %v", path, err)
	}

	count := 0
	for _, record := range records {
		if len(record) < 3 {
			continue // short line
		}
		row := models.PendingUser{Name: record[0], Active: true}
		if record[1] != "" {
			row.Phone = utils.Ptr(record[1])
		}
		if record[2] != "" {
			row.Email = utils.Ptr(record[2])
		}
		if len(record) > 3 && record[3] != "" {
			row.Notes = utils.Ptr(record[3])
		}
		if err := conn.Create(&row).Error; err != nil {
			log.Fatalf("failed to import pending user %s: %v", row.Name, err)
		}
		count++
	}
	log.Printf("imported %d pending users", count)
}

func nextSunday() time.Time {
	now := time.Now().Truncate(24 * time.Hour)
	for now.Weekday() != time.Sunday {
		now = now.AddDate(0, 0, 1)
	}
	return now
}
