package main

import (
	"context"
	"log"

	"github.com/leadbook/leadbook/internal/config"
	"github.com/leadbook/leadbook/internal/database"
)

var sampleUsers = []map[string]interface{}{
	{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"industry":  "Engineering",
	},
	{
		"firstName": "Grace",
		"lastName":  "Hopper",
		"email":     "grace@example.com",
		"number":    "0123456789",
		"message":   "Looking forward to the newsletter.",
	},
}

// Drops and recreates the users table, then inserts sample rows.
func main() {
	config.LoadConfig()

	ctx := context.Background()

	db, err := database.InitializePostgresDB(ctx)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Reseed(ctx); err != nil {
		log.Fatalf("Error recreating users table: %v", err)
	}
	log.Println("User table created!")

	for _, fields := range sampleUsers {
		u, err := db.CreateUser(ctx, fields)
		if err != nil {
			log.Fatalf("Error inserting sample user: %v", err)
		}
		log.Printf("Inserted user %d (%s)\n", u.UserID, u.Email)
	}

	log.Println("Database seeded successfully!")
}
