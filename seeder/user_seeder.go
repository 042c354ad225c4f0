package seeder

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"dayflow-backend/models"
	"dayflow-backend/pkg/password"
	"dayflow-backend/repository"
)

// SeedUsers inserts a demo admin and a handful of employees. Existing emails
// are left alone so the seeder can run on every start.
func SeedUsers(userRepo repository.UserRepository) {
	log.Println("Seeding users...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hashedPassword, err := password.HashPassword("Password123")
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	adminEmail := "admin@dayflow.io"
	admin, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && admin != nil {
		log.Println("Admin user already exists, skipping")
	} else {
		newAdmin := &models.User{
			EmployeeID: "EMP001",
			FirstName:  "Amara",
			LastName:   "Okafor",
			Email:      adminEmail,
			Password:   hashedPassword,
			Role:       models.RoleAdmin,
			Phone:      "+1-555-0100",
			Address:    "1 Admin Plaza, Springfield",
		}
		if _, err := userRepo.CreateUser(ctx, newAdmin); err != nil {
			log.Printf("Failed to seed admin user: %v", err)
		} else {
			log.Printf("Seeded admin user %s", newAdmin.Email)
		}
	}

	employees := []struct {
		firstName string
		lastName  string
	}{
		{"Priya", "Sharma"},
		{"Daniel", "Kim"},
		{"Lucia", "Moreno"},
		{"Tomasz", "Nowak"},
		{"Aisha", "Hassan"},
		{"Ethan", "Walker"},
		{"Mei", "Lin"},
		{"Oliver", "Brandt"},
		{"Sofia", "Rossi"},
	}

	for i, emp := range employees {
		employeeID := fmt.Sprintf("EMP%03d", i+2)
		email := fmt.Sprintf("%s.%s@dayflow.io", strings.ToLower(emp.firstName), strings.ToLower(emp.lastName))

		existing, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existing != nil {
			continue
		}

		newEmployee := &models.User{
			EmployeeID: employeeID,
			FirstName:  emp.firstName,
			LastName:   emp.lastName,
			Email:      email,
			Password:   hashedPassword,
			Role:       models.RoleEmployee,
			Phone:      fmt.Sprintf("+1-555-01%02d", i+1),
			Address:    fmt.Sprintf("%d Main Street, Springfield", 100+i),
		}

		if _, err := userRepo.CreateUser(ctx, newEmployee); err != nil {
			log.Printf("Failed to seed user %s: %v", email, err)
		} else {
			log.Printf("Seeded user %s (%s)", email, employeeID)
		}
	}

	log.Println("User seeding finished")
}
