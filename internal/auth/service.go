package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNoSession          = errors.New("no session")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidArgument    = errors.New("invalid argument")
)

const minPasswordLength = 6

// Service resolves request credentials to an authenticated identity and
// manages the session lifecycle behind it.
type Service struct {
	repo       Repository
	sessionTTL time.Duration
	bcryptCost int
}

func NewService(repo Repository, sessionTTL time.Duration, bcryptCost int) *Service {
	if sessionTTL == 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, sessionTTL: sessionTTL, bcryptCost: bcryptCost}
}

type Credentials struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (s *Service) SignUp(ctx context.Context, name, email, password string) (*Credentials, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidArgument
	}
	if len(password) < minPasswordLength {
		return nil, ErrInvalidArgument
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExist) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return s.openSession(ctx, u)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidArgument
	}
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.openSession(ctx, u)
}

// SignOut deletes the session; an unknown token is a no-op.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, token)
}

// Resolve maps a bearer token to the identity behind it. Expired sessions
// are removed on sight.
func (s *Service) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	sess, u, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return nil, ErrNoSession
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.repo.DeleteSession(ctx, token)
		return nil, ErrNoSession
	}
	return &Identity{UserID: u.ID, Name: u.Name}, nil
}

func (s *Service) openSession(ctx context.Context, u *User) (*Credentials, error) {
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	return &Credentials{User: u, Token: sess.Token}, nil
}
