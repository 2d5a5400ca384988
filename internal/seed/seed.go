package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Naveen0030/eims-clg-portal/internal/app/models"
	appRepos "github.com/Naveen0030/eims-clg-portal/internal/app/repositories"
	"github.com/Naveen0030/eims-clg-portal/internal/config"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@eims.edu"
	defaultAdminPassword = "admin@123"
)

// CreateDefaultData creates the default administrator account if it doesn't
// exist. Every other account is created through sign-up or by the admin.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	adminEmail := config.GetEnv("ADMIN_EMAIL", defaultAdminEmail)
	adminPassword := config.GetEnv("ADMIN_PASSWORD", defaultAdminPassword)

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", adminEmail).Msg("Default admin already present")
		return nil
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		FullName:   "Administrator",
		Email:      adminEmail,
		Password:   hashedPassword,
		Category:   appModels.CategoryAdmin,
		Department: "Administration",
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		// A concurrent boot may have created it in the meantime
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
