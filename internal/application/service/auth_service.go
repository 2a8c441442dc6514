package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/internal/domain/session"
	"github.com/sangkips/electrostore-api/pkg/apperror"
	"github.com/sangkips/electrostore-api/pkg/utils"
	"go.uber.org/zap"
)

const usernameAttempts = 5

// AuthService handles authentication-related operations
type AuthService struct {
	customerRepo    repository.CustomerRepository
	adminRepo       repository.AdminRepository
	credentialRepo  repository.CredentialRepository
	credentialStore CredentialStore
	jwtManager      *utils.JWTManager
	logger          *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	customerRepo repository.CustomerRepository,
	adminRepo repository.AdminRepository,
	credentialRepo repository.CredentialRepository,
	credentialStore CredentialStore,
	jwtManager *utils.JWTManager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		customerRepo:    customerRepo,
		adminRepo:       adminRepo,
		credentialRepo:  credentialRepo,
		credentialStore: credentialStore,
		jwtManager:      jwtManager,
		logger:          logger.Named("auth"),
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Session      session.Session
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// SignupInput represents the customer registration input
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   *string
	Username  string
	Password  string
}

// SignupOutput is the new customer together with its tokens
type SignupOutput struct {
	Customer *entity.Customer
	LoginOutput
}

// Signup creates a customer account and logs it in
func (s *AuthService) Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	username, err := s.pickUsername(ctx, input)
	if err != nil {
		return nil, err
	}

	hash, err := s.credentialStore.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Name:    strings.TrimSpace(input.FirstName + " " + input.LastName),
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		Address: input.Address,
	}
	credential := &entity.Credential{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.customerRepo.CreateWithCredential(ctx, customer, credential); err != nil {
		return nil, err
	}

	s.logger.Info("customer signed up", zap.String("customer_id", customer.ID.String()), zap.String("username", username))

	out, err := s.issue(session.New(customer.ID, session.KindCustomer, username))
	if err != nil {
		return nil, err
	}
	return &SignupOutput{Customer: customer, LoginOutput: *out}, nil
}

// pickUsername honours a requested username or generates a free one
func (s *AuthService) pickUsername(ctx context.Context, input *SignupInput) (string, error) {
	if requested := strings.ToLower(strings.TrimSpace(input.Username)); requested != "" {
		taken, err := s.credentialRepo.UsernameExists(ctx, requested)
		if err != nil {
			return "", err
		}
		if taken {
			return "", apperror.NewConflictError("Username already taken")
		}
		return requested, nil
	}

	for range usernameAttempts {
		candidate := utils.GenerateUsername(input.FirstName, input.LastName)
		taken, err := s.credentialRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", apperror.NewConflictError("Could not generate a unique username, please choose one")
}

// Login authenticates a customer
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	return s.login(ctx, input, session.KindCustomer)
}

// AdminLogin authenticates an admin
func (s *AuthService) AdminLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	return s.login(ctx, input, session.KindAdmin)
}

func (s *AuthService) login(ctx context.Context, input *LoginInput, kind session.Kind) (*LoginOutput, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))

	credential, err := s.credentialStore.Verify(ctx, username, input.Password)
	if err != nil {
		return nil, err
	}
	// A valid login for the other kind is reported exactly like a wrong password
	if credential == nil || credential.IsAdmin() != (kind == session.KindAdmin) || credential.SubjectID() == uuid.Nil {
		s.logger.Info("login rejected", zap.String("username", username), zap.String("kind", string(kind)))
		return nil, apperror.ErrInvalidCredentials
	}

	if err := s.credentialRepo.TouchLogin(ctx, credential.ID); err != nil {
		s.logger.Warn("failed to record login time", zap.Error(err))
	}

	return s.issue(session.New(credential.SubjectID(), kind, credential.Username))
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	subjectID, claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	kind, ok := session.ParseKind(claims.Kind)
	if !ok {
		return nil, apperror.ErrInvalidToken
	}

	// The subject must still exist
	switch kind {
	case session.KindAdmin:
		admin, err := s.adminRepo.GetByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, apperror.ErrInvalidToken
		}
	case session.KindCustomer:
		customer, err := s.customerRepo.GetByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.ErrInvalidToken
		}
	}

	return s.issue(session.New(subjectID, kind, claims.Username))
}

func (s *AuthService) issue(sess session.Session) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(sess.SubjectID, string(sess.Kind), sess.Username, sess.Permissions)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(sess.SubjectID, string(sess.Kind), sess.Username)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		Session:      sess,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.AccessExpiry().Seconds()),
	}, nil
}

// SessionFromToken validates an access token and rebuilds its session
func (s *AuthService) SessionFromToken(token string) (session.Session, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return session.Session{}, apperror.ErrInvalidToken
	}
	kind, ok := session.ParseKind(claims.Kind)
	if !ok || claims.SubjectID == uuid.Nil {
		return session.Session{}, apperror.ErrInvalidToken
	}
	return session.Session{
		SubjectID:   claims.SubjectID,
		Kind:        kind,
		Username:    claims.Username,
		Permissions: claims.Permissions,
	}, nil
}
