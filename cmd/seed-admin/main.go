// Command seed-admin migrates the schema and creates the initial admin
// account without going through the HTTP setup endpoint. Useful for
// deployments where /api/setup is not exposed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sdp-site.backend/internal/config"
	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/infrastructure/models"
	"sdp-site.backend/internal/infrastructure/repositories"
	"sdp-site.backend/pkg/crypto"
)

func main() {
	email := flag.String("email", "", "admin email (defaults to ADMIN_EMAIL)")
	password := flag.String("password", "", "admin password (defaults to ADMIN_PASSWORD)")
	name := flag.String("name", "", "admin display name (defaults to ADMIN_NAME)")
	migrate := flag.Bool("migrate", true, "run schema migration before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	if *email == "" {
		*email = cfg.Admin.Email
	}
	if *password == "" {
		*password = cfg.Admin.Password
	}
	if *name == "" {
		*name = cfg.Admin.Name
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{PrepareStmt: false})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if *migrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		fmt.Println("schema migrated")
	}

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(db)

	if _, err := userRepo.GetByEmail(ctx, *email); err == nil {
		fmt.Printf("admin %s already exists, nothing to do\n", *email)
		return
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		log.Fatalf("lookup failed: %v", err)
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		log.Fatalf("hashing failed: %v", err)
	}

	admin := &entities.User{
		Email:        *email,
		Name:         *name,
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("admin %s created (id %d)\n", admin.Email, admin.ID)
}
