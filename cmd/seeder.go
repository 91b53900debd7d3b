package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample employees, shifts and attendance for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"attendance", "shifts", "activity_log", "employees"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		employees := []struct {
			Name       string
			Gender     string
			Email      string
			Department string
		}{
			{"Ada Lovelace", "Female", "ada@example.com", "Engineering"},
			{"Grace Hopper", "Female", "grace@example.com", "Engineering"},
			{"Alan Turing", "Male", "alan@example.com", "Research"},
			{"Katherine Johnson", "Female", "katherine@example.com", "Analytics"},
			{"Dennis Ritchie", "Male", "dennis@example.com", "Engineering"},
		}

		today := time.Now().Format("2006-01-02")

		for _, e := range employees {
			var exists int
			row := db.Raw("SELECT 1 FROM employees WHERE email = ?", e.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("employee %s already exists; skipping\n", e.Email)
				continue
			}

			if err := db.Exec(
				"INSERT INTO employees (name, gender, email, department, created_at) VALUES (?, ?, ?, ?, ?)",
				e.Name, e.Gender, e.Email, e.Department, time.Now(),
			).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Email, err)
			}

			var id int64
			if err := db.Raw("SELECT id FROM employees WHERE email = ?", e.Email).Row().Scan(&id); err != nil {
				log.Fatalf("failed to lookup employee id for %s: %v", e.Email, err)
			}

			if err := db.Exec(
				"INSERT INTO shifts (employee_id, shift_type, assigned_date) VALUES (?, ?, ?)",
				id, "Morning", today,
			).Error; err != nil {
				log.Fatalf("failed to insert shift for %s: %v", e.Email, err)
			}

			if err := db.Exec(
				"INSERT INTO attendance (employee_id, date, present) VALUES (?, ?, ?)",
				id, today, true,
			).Error; err != nil {
				log.Fatalf("failed to insert attendance for %s: %v", e.Email, err)
			}

			fmt.Printf("Seeded employee: %s\n", e.Email)
		}

		fmt.Println("Sample data seeded successfully")
	},
}
