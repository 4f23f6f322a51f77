package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"schooldir/internal/auth"
	"schooldir/internal/config"
	"schooldir/internal/db"
	"schooldir/internal/model"
	"schooldir/internal/repository"
)

// sampleSchools gives a fresh install something to list.
var sampleSchools = []model.School{
	{
		Name:    "Greenwood High",
		Address: "12 Forest Lane",
		City:    "Springfield",
		State:   "Illinois",
		Contact: "5551230001",
		EmailID: "office@greenwoodhigh.example",
		Image:   "/schoolImages/seed-greenwood.jpg",
	},
	{
		Name:    "Riverside Academy",
		Address: "88 Bank Street",
		City:    "Portland",
		State:   "Oregon",
		Contact: "5551230002",
		EmailID: "admin@riverside.example",
		Image:   "/schoolImages/seed-riverside.jpg",
	},
	{
		Name:    "Hilltop Public School",
		Address: "3 Summit Road",
		City:    "Denver",
		State:   "Colorado",
		Contact: "5551230003",
		EmailID: "contact@hilltop.example",
		Image:   "/schoolImages/seed-hilltop.jpg",
	},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.School{}, &model.Favourite{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	schools := repository.NewSchoolRepository(gormDB)

	if err := seedAdmin(ctx, users); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	count, err := schools.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count schools: %v", err)
	}
	if count > 0 {
		log.Printf("Schools already present (%d), skipping sample data", count)
		return
	}

	for i := range sampleSchools {
		if err := schools.Create(ctx, &sampleSchools[i]); err != nil {
			log.Fatalf("Failed to insert sample school %q: %v", sampleSchools[i].Name, err)
		}
	}
	log.Printf("Seeded %d sample schools", len(sampleSchools))
}

// seedAdmin creates the admin account from ADMIN_USERNAME / ADMIN_EMAIL /
// ADMIN_PASSWORD if no user with that username exists yet.
func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@schooldir.local")
	password := envOr("ADMIN_PASSWORD", "admin123")

	existing, err := users.FindByUsernameOrEmail(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		log.Printf("Admin user %q already exists, skipping", username)
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Seeded admin user %q (id=%d)", username, admin.ID)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
