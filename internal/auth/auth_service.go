package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/jsonstore"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CredentialsFile holds the known users with bcrypt password hashes.
const CredentialsFile = "login.json"

var ErrInvalidCredentials = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid credentials",
	http.StatusUnauthorized,
)

type credential struct {
	User         string `json:"user"`
	PasswordHash string `json:"passwordHash"`
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	store     *jsonstore.Store
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewService(store *jsonstore.Store, jwtSecret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
		logger:    l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var creds []credential
	if err := s.store.Read(ctx, CredentialsFile, &creds); err != nil {
		if errors.Is(err, jsonstore.ErrNotFound) {
			// no users provisioned yet: indistinguishable from a bad login
			s.logger.Warn("login attempted with no credentials file")
			return LoginResponse{}, ErrInvalidCredentials
		}
		s.logger.Error("read credentials failed", zap.Error(err))
		return LoginResponse{}, apperror.Wrap(err, apperror.CodePersistence,
			"Could not verify credentials", http.StatusInternalServerError)
	}

	var match *credential
	for i := range creds {
		if creds[i].User == req.User {
			match = &creds[i]
			break
		}
	}
	if match == nil {
		s.logger.Warn("login unknown user", zap.String("user", req.User))
		return LoginResponse{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("user", req.User))
		return LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(match.User)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return LoginResponse{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Could not complete login", http.StatusInternalServerError)
	}

	s.logger.Info("login success", zap.String("user", match.User))
	return LoginResponse{
		Success: true,
		User:    UserResponse{User: match.User},
		Token:   token,
	}, nil
}

func (s *service) issueToken(user string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
