// Command main runs the database seeder for PescArt.
package main

import (
	"flag"
	"log"

	"pescart/internal/config"
	"pescart/internal/database"
	"pescart/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of anglers to create")
	perUser := flag.Int("records", 5, "Number of fishing records per angler")
	verified := flag.Float64("verified", 0.7, "Share of records created as verified (0-1)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	seedValue := flag.Int64("seed", 0, "Random seed (0 picks one)")
	locationsOnly := flag.Bool("locations-only", false, "Only insert the reference fishing locations")
	flag.Parse()

	log.Println("PescArt database seeder")
	log.Printf("Target: %d anglers, %d records each, verified=%.2f, clean=%v\n",
		*numUsers, *perUser, *verified, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *locationsOnly {
		if err := seed.Locations(db); err != nil {
			log.Fatalf("Location seeding failed: %v", err)
		}
		log.Println("Reference locations are in place.")
		return
	}

	s := seed.NewSeeder(db, *seedValue)
	if err := s.Run(seed.Options{
		NumUsers:       *numUsers,
		RecordsPerUser: *perUser,
		VerifiedRatio:  *verified,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Printf("All demo anglers have the password: %s", seed.DemoPassword)
}
