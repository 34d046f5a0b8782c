package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"commercehub/internal/auth"
	"commercehub/internal/model"
	"commercehub/internal/repository"
)

// authService implements AuthService.
type authService struct {
	customerRepo repository.CustomerRepository
	tokens       *auth.TokenManager
	logger       zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	customerRepo repository.CustomerRepository,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		customerRepo: customerRepo,
		tokens:       tokens,
		logger:       logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new customer account and returns a signed token.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("email", email).Msg("registration with existing email")
		return nil, model.ErrEmailExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}

	customer := &model.Customer{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		ClientType:   req.ClientType,
		CreatedAt:    time.Now(),
	}

	// The repository maps a unique violation to ErrEmailExists, which closes
	// the race between the existence check above and the insert.
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(customer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customer.ID.String()).
		Str("client_type", string(customer.ClientType)).
		Msg("customer registered")

	return &model.AuthResponse{Token: token, Customer: *customer}, nil
}

// Login authenticates a customer and returns a signed token.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	// Same error for unknown email and wrong password, so login attempts
	// cannot probe which emails are registered.
	if customer == nil || !auth.CheckPassword(req.Password, customer.PasswordHash) {
		s.logger.Debug().Str("email", email).Msg("failed login attempt")
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(customer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customer.ID.String()).
		Msg("customer logged in")

	return &model.AuthResponse{Token: token, Customer: *customer}, nil
}

// validateRegisterRequest validates the registration request.
func validateRegisterRequest(req *model.RegisterRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "request is required")
	}

	if strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "name is required")
	}

	if strings.TrimSpace(req.Email) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "email is required")
	}

	if len(req.Password) < 8 {
		return model.NewDomainError(model.ErrCodeValidation, "password must be at least 8 characters")
	}

	if !req.ClientType.Valid() {
		return model.ErrInvalidClientType
	}

	return nil
}
