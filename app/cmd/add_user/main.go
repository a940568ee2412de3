package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/config"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email admin@example.com -password secret [-first-name Jane] [-last-name Doe]")
		os.Exit(1)
	}

	// Initialize database connection
	config.Init()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	store := database.NewStore(config.GetDB())
	id, err := store.InsertAdminUser(&models.AdminUser{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		IsAdmin:   true,
	})
	if err != nil {
		fmt.Printf("Error creating admin user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin user created successfully: %s (%s)\n", *email, id)
}
