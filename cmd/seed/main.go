package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"receptionist-backend/internal/auth"
	"receptionist-backend/internal/config"
	"receptionist-backend/internal/database"
	"receptionist-backend/internal/database/models"
	"receptionist-backend/internal/repository"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seeds a demo tenant from a YAML file so a fresh environment has a
// working login and some inbox content. Existing slugs are skipped, so
// re-running is safe.

type TenantData struct {
	Name          string                 `yaml:"name"`
	Slug          string                 `yaml:"slug"`
	Branding      map[string]interface{} `yaml:"branding,omitempty"`
	BusinessHours map[string]interface{} `yaml:"business_hours,omitempty"`
	Users         []UserData             `yaml:"users"`
	Conversations []ConversationData     `yaml:"conversations,omitempty"`
	Appointments  []AppointmentData      `yaml:"appointments,omitempty"`
}

type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
}

type ConversationData struct {
	CustomerContact string                 `yaml:"customer_contact,omitempty"`
	Status          string                 `yaml:"status"`
	Metadata        map[string]interface{} `yaml:"metadata,omitempty"`
	Messages        []MessageData          `yaml:"messages,omitempty"`
}

type MessageData struct {
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}

type AppointmentData struct {
	CustomerName          string `yaml:"customer_name"`
	StartInHours          int    `yaml:"start_in_hours"`
	DurationMin           int    `yaml:"duration_min"`
	Status                string `yaml:"status"`
	FromFirstConversation bool   `yaml:"from_first_conversation,omitempty"`
}

type SeedFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	path := "seed/demo.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := loadSeedFile(db, path); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	log.Println("Seeding completed")
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	tenants := repository.NewTenantRepository(db)
	users := repository.NewUserRepository(db)
	conversations := repository.NewConversationRepository(db)
	messages := repository.NewMessageRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	subscriptions := repository.NewSubscriptionRepository(db)

	for _, td := range file.Tenants {
		if _, err := tenants.GetBySlug(td.Slug); err == nil {
			log.Printf("Tenant %q already exists, skipping", td.Slug)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check tenant %q: %w", td.Slug, err)
		}

		tenant := &models.Tenant{
			Name:          td.Name,
			Slug:          td.Slug,
			Branding:      td.Branding,
			BusinessHours: td.BusinessHours,
		}
		if err := tenants.Create(tenant); err != nil {
			return fmt.Errorf("create tenant %q: %w", td.Slug, err)
		}

		if err := subscriptions.Create(&models.Subscription{
			TenantID: tenant.ID,
			Plan:     models.SubscriptionPlanFree,
			Status:   "active",
		}); err != nil {
			return fmt.Errorf("create subscription for %q: %w", td.Slug, err)
		}

		for _, ud := range td.Users {
			hash, err := auth.HashPassword(ud.Password)
			if err != nil {
				return fmt.Errorf("hash password for %q: %w", ud.Email, err)
			}
			if err := users.Create(&models.User{
				TenantID:     &tenant.ID,
				Email:        ud.Email,
				PasswordHash: hash,
				Name:         ud.Name,
				Role:         models.UserRole(ud.Role),
			}); err != nil {
				return fmt.Errorf("create user %q: %w", ud.Email, err)
			}
		}

		var firstConversation *models.Conversation
		for _, cd := range td.Conversations {
			conv := &models.Conversation{
				CustomerContact: cd.CustomerContact,
				Status:          models.ConversationStatus(cd.Status),
				Metadata:        cd.Metadata,
				UpdatedAt:       time.Now(),
			}
			if err := conversations.Create(tenant.ID, conv); err != nil {
				return fmt.Errorf("create conversation for %q: %w", td.Slug, err)
			}
			if firstConversation == nil {
				firstConversation = conv
			}

			for _, md := range cd.Messages {
				if err := messages.Create(tenant.ID, &models.Message{
					ConversationID: conv.ID,
					Role:           models.MessageRole(md.Role),
					Content:        md.Content,
				}); err != nil {
					return fmt.Errorf("create message for %q: %w", td.Slug, err)
				}
			}
		}

		for _, ad := range td.Appointments {
			start := time.Now().Add(time.Duration(ad.StartInHours) * time.Hour)
			appt := &models.Appointment{
				CustomerName: ad.CustomerName,
				StartTime:    start,
				EndTime:      start.Add(time.Duration(ad.DurationMin) * time.Minute),
				Status:       models.AppointmentStatus(ad.Status),
			}
			if ad.FromFirstConversation && firstConversation != nil {
				appt.ConversationID = &firstConversation.ID
			}
			if err := appointments.Create(tenant.ID, appt); err != nil {
				return fmt.Errorf("create appointment for %q: %w", td.Slug, err)
			}
		}

		log.Printf("Seeded tenant %q", td.Slug)
	}

	return nil
}
