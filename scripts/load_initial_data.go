// Command load_initial_data seeds the database from a YAML file:
// zone metadata, personnel and optionally repair requests. Existing rows
// with the same id are replaced, so the script is safe to re-run.
//
// Usage:
//
//	go run scripts/load_initial_data.go [seed-file]
//
// The seed file defaults to scripts/initial_data.yaml.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"roadworks-backend/internal/config"
	"roadworks-backend/internal/database"
	"roadworks-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm/clause"
)

type ZonalData struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	ManagerID   string `yaml:"manager_id,omitempty"`
	AssistantID string `yaml:"assistant_id,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type UserData struct {
	ID                 string `yaml:"id"`
	Name               string `yaml:"name"`
	Role               string `yaml:"role"`
	Zonal              string `yaml:"zonal"`
	RegistrationNumber string `yaml:"registration_number,omitempty"`
	Email              string `yaml:"email,omitempty"`
}

type RequestData struct {
	ID           string  `yaml:"id"`
	Protocol     string  `yaml:"protocol"`
	SEINumber    string  `yaml:"sei_number,omitempty"`
	Contract     string  `yaml:"contract,omitempty"`
	Description  string  `yaml:"description,omitempty"`
	Latitude     float64 `yaml:"latitude,omitempty"`
	Longitude    float64 `yaml:"longitude,omitempty"`
	Address      string  `yaml:"address,omitempty"`
	VisitDate    string  `yaml:"visit_date,omitempty"`
	Status       string  `yaml:"status"`
	TechnicianID string  `yaml:"technician_id"`
	Zonal        string  `yaml:"zonal"`
}

type SeedFile struct {
	Zonals   []ZonalData   `yaml:"zonals"`
	Users    []UserData    `yaml:"users"`
	Requests []RequestData `yaml:"requests,omitempty"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	path := "scripts/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	upsert := clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}

	for _, z := range seed.Zonals {
		zone := models.Zone(z.ID)
		if !zone.IsValid() {
			log.Fatalf("Unknown zone %q in seed file", z.ID)
		}
		zonal := models.ZonalMetadata{
			ID:          zone,
			Name:        z.Name,
			ManagerID:   optional(z.ManagerID),
			AssistantID: optional(z.AssistantID),
			Description: optional(z.Description),
		}
		if zonal.Name == "" {
			zonal.Name = zone.DefaultName()
		}
		if err := db.Clauses(upsert).Create(&zonal).Error; err != nil {
			log.Fatalf("Failed to seed zonal %s: %v", z.ID, err)
		}
	}
	fmt.Printf("Seeded %d zonals\n", len(seed.Zonals))

	for _, u := range seed.Users {
		user := models.User{
			ID:                 u.ID,
			Name:               u.Name,
			Role:               u.Role,
			Zonal:              models.Zone(u.Zonal),
			RegistrationNumber: optional(u.RegistrationNumber),
			Email:              optional(u.Email),
		}
		if user.ID == "" {
			user.ID = "u_" + uuid.NewString()
		}
		if !user.Zonal.IsValid() {
			log.Fatalf("Unknown zone %q for user %s", u.Zonal, u.Name)
		}
		if err := db.Clauses(upsert).Create(&user).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Name, err)
		}
	}
	fmt.Printf("Seeded %d users\n", len(seed.Users))

	for _, r := range seed.Requests {
		status := models.RequestStatus(r.Status)
		if r.Status == "" {
			status = models.StatusOpen
		}
		if !status.IsValid() {
			log.Fatalf("Unknown status %q for request %s", r.Status, r.Protocol)
		}
		req := models.RepairRequest{
			ID:          r.ID,
			Protocol:    r.Protocol,
			SEINumber:   r.SEINumber,
			Contract:    r.Contract,
			Description: r.Description,
			Location: models.Location{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
				Address:   r.Address,
			},
			VisitDate:    r.VisitDate,
			Status:       status,
			TechnicianID: r.TechnicianID,
			Zonal:        models.Zone(r.Zonal),
			CreatedAt:    time.Now(),
		}
		if req.ID == "" {
			req.ID = "req_" + uuid.NewString()
		}
		if err := db.Clauses(upsert).Create(&req).Error; err != nil {
			log.Fatalf("Failed to seed request %s: %v", r.Protocol, err)
		}
	}
	fmt.Printf("Seeded %d requests\n", len(seed.Requests))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
