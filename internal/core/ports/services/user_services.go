package services

import (
	"context"

	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
