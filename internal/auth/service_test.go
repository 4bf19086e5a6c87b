package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memRepo struct {
	users    map[string]*User
	sessions map[string]*Session
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]*User{}, sessions: map[string]*Session{}}
}

func (m *memRepo) CreateUser(ctx context.Context, u *User) error {
	if _, ok := m.users[u.Email]; ok {
		return ErrAlreadyExist
	}
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *memRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) CreateSession(ctx context.Context, s *Session) error {
	cp := *s
	m.sessions[s.Token] = &cp
	return nil
}

func (m *memRepo) GetSession(ctx context.Context, token string) (*Session, *User, error) {
	s, ok := m.sessions[token]
	if !ok {
		return nil, nil, ErrNotFound
	}
	for _, u := range m.users {
		if u.ID == s.UserID {
			sc, uc := *s, *u
			return &sc, &uc, nil
		}
	}
	return nil, nil, ErrNotFound
}

func (m *memRepo) DeleteSession(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

// cost 4 = bcrypt.MinCost, keeps hashing fast in tests
func newTestService(repo Repository, ttl time.Duration) *Service {
	return NewService(repo, ttl, 4)
}

func TestSignUpSignInRoundTrip(t *testing.T) {
	svc := newTestService(newMemRepo(), time.Hour)
	ctx := context.Background()

	creds, err := svc.SignUp(ctx, "Ada", "Ada@Example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, creds.Token)
	require.Equal(t, "ada@example.com", creds.User.Email)

	id, err := svc.Resolve(ctx, creds.Token)
	require.NoError(t, err)
	require.Equal(t, creds.User.ID, id.UserID)
	require.Equal(t, "Ada", id.Name)

	again, err := svc.SignIn(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, creds.User.ID, again.User.ID)
}

func TestSignUp_Validation(t *testing.T) {
	svc := newTestService(newMemRepo(), time.Hour)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "", "a@b.c", "secret123")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.SignUp(ctx, "Ada", "not-an-email", "secret123")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.SignUp(ctx, "Ada", "a@b.c", "short")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc := newTestService(newMemRepo(), time.Hour)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "Imposter", "ada@example.com", "secret456")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignIn_WrongPassword(t *testing.T) {
	svc := newTestService(newMemRepo(), time.Hour)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "ada@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.SignIn(ctx, "nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolve_ExpiredSession(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, -time.Minute) // sessions born expired
	ctx := context.Background()

	creds, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, creds.Token)
	require.ErrorIs(t, err, ErrNoSession)
	// expired session is removed on sight
	require.NotContains(t, repo.sessions, creds.Token)
}

func TestSignOut_Idempotent(t *testing.T) {
	svc := newTestService(newMemRepo(), time.Hour)
	ctx := context.Background()

	creds, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, creds.Token))
	require.NoError(t, svc.SignOut(ctx, creds.Token))
	require.NoError(t, svc.SignOut(ctx, ""))

	_, err = svc.Resolve(ctx, creds.Token)
	require.ErrorIs(t, err, ErrNoSession)
}
