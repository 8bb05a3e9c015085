package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("⚠️  WARNING: This will DELETE ALL BUSINESS DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all rentals and their device links")
	fmt.Println("  - Delete all service tickets")
	fmt.Println("  - Delete all ledger entries")
	fmt.Println("  - Delete all customers")
	fmt.Println("  - Reset device rent counters")
	fmt.Println("  - Reset all ID sequences")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	// Load environment variables
	godotenv.Load()

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "toolrental_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("🔄 Resetting database...")

	ctx := context.Background()

	statements := []string{
		"DELETE FROM financial_devices",
		"DELETE FROM financials",
		"DELETE FROM service_devices",
		"DELETE FROM services",
		"DELETE FROM rental_devices",
		"DELETE FROM rentals",
		"DELETE FROM customers",
		"UPDATE devices SET rent_count = 0",
		"ALTER SEQUENCE customers_id_seq RESTART WITH 1",
		"ALTER SEQUENCE rentals_id_seq RESTART WITH 1",
		"ALTER SEQUENCE rental_devices_id_seq RESTART WITH 1",
		"ALTER SEQUENCE financials_id_seq RESTART WITH 1",
		"ALTER SEQUENCE financial_devices_id_seq RESTART WITH 1",
		"ALTER SEQUENCE services_id_seq RESTART WITH 1",
		"ALTER SEQUENCE service_devices_id_seq RESTART WITH 1",
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalf("Failed: %s: %v", stmt, err)
		}
	}

	fmt.Println("✓ Database reset complete")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
