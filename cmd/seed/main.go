package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/utkarshp579/career-orbit/internal/config"
	"github.com/utkarshp579/career-orbit/internal/db"
	"github.com/utkarshp579/career-orbit/internal/logger"
	"github.com/utkarshp579/career-orbit/internal/model"
	"github.com/utkarshp579/career-orbit/internal/repository"
)

// seedUser is one demo account for local development.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Industry string
}

var seedUsers = []seedUser{
	{Name: "Asha Demo", Email: "asha@example.com", Password: "password123", Industry: "Software Development"},
	{Name: "Ben Demo", Email: "ben@example.com", Password: "password123", Industry: "Fintech"},
	{Name: "Chitra Demo", Email: "chitra@example.com", Password: "password123", Industry: ""},
}

func main() {
	_ = godotenv.Load()
	log := logger.New()
	log.Info().Msg("starting seed script")

	cfg := config.Load()
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := gormDB.AutoMigrate(&model.IndustryInsight{}, &model.User{}); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	insightRepo := repository.NewInsightRepository(gormDB)

	created, skipped := 0, 0
	for _, su := range seedUsers {
		if _, err := userRepo.FindByEmail(ctx, su.Email); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("email", su.Email).Msg("lookup failed")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}

		user := &model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hash),
			Skills:       model.StringList{},
		}
		if su.Industry != "" {
			industry := su.Industry
			user.Industry = &industry

			// Keep the soft foreign key satisfiable before any generation runs.
			if _, err := insightRepo.FindByIndustry(ctx, industry); errors.Is(err, gorm.ErrRecordNotFound) {
				if _, err := insightRepo.CreatePlaceholder(ctx, industry); err != nil {
					log.Fatal().Err(err).Str("industry", industry).Msg("create placeholder insight")
				}
			}
		}

		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Str("email", su.Email).Msg("create user")
		}
		created++
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed completed")
}
