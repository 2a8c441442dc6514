package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore checks login secrets. Secrets are stored as bcrypt hashes
// only; anything else found in storage is a legacy plaintext value that is
// upgraded the first time it verifies.
type CredentialStore interface {
	Hash(password string) (string, error)
	// Verify returns the credential for username when password matches,
	// or nil when either is wrong
	Verify(ctx context.Context, username, password string) (*entity.Credential, error)
}

type bcryptCredentialStore struct {
	credentialRepo repository.CredentialRepository
	cost           int
	logger         *zap.Logger
	// dummyHash keeps unknown usernames as slow as wrong passwords
	dummyHash []byte
}

// NewCredentialStore creates a bcrypt backed credential store
func NewCredentialStore(credentialRepo repository.CredentialRepository, cost int, logger *zap.Logger) CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("electrostore"), cost)
	return &bcryptCredentialStore{
		credentialRepo: credentialRepo,
		cost:           cost,
		logger:         logger.Named("credentials"),
		dummyHash:      dummy,
	}
}

func (s *bcryptCredentialStore) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	return string(bytes), err
}

func (s *bcryptCredentialStore) Verify(ctx context.Context, username, password string) (*entity.Credential, error) {
	credential, err := s.credentialRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, nil
	}

	if isBcryptHash(credential.PasswordHash) {
		if bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)) != nil {
			return nil, nil
		}
		return credential, nil
	}

	if subtle.ConstantTimeCompare([]byte(credential.PasswordHash), []byte(password)) != 1 {
		return nil, nil
	}

	hash, err := s.Hash(password)
	if err != nil {
		return nil, err
	}
	if err := s.credentialRepo.UpdatePasswordHash(ctx, credential.ID, hash); err != nil {
		// The login itself is valid; the upgrade is retried next time
		s.logger.Warn("failed to upgrade legacy password", zap.String("username", username), zap.Error(err))
	} else {
		credential.PasswordHash = hash
		s.logger.Info("upgraded legacy password to bcrypt", zap.String("username", username))
	}
	return credential, nil
}

func isBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil && strings.HasPrefix(s, "$2")
}
