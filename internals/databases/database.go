package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"timetable_backend/internals/configs"
	classModel "timetable_backend/internals/features/school/academics/classes/model"
	roomModel "timetable_backend/internals/features/school/academics/rooms/model"
	subjectModel "timetable_backend/internals/features/school/academics/subjects/model"
	teacherModel "timetable_backend/internals/features/school/academics/teachers/model"
	sessionModel "timetable_backend/internals/features/school/timetable/sessions/model"
	userModel "timetable_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=timetable&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer friendly
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// TunePool sizes the underlying sql.DB pool for a small app instance.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("⚠️ TunePool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// AutoMigrate keeps the schema in sync with the registered models. Ordered
// so FK targets exist before their referrers.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&subjectModel.SubjectModel{},
		&teacherModel.TeacherModel{},
		&roomModel.RoomModel{},
		&roomModel.LabModel{},
		&sessionModel.ClassSessionModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
