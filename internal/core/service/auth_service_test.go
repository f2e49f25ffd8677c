package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/claranceatgalvanize/embridge/internal/auth/password"
	"github.com/claranceatgalvanize/embridge/internal/auth/token"
	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

type stubAuthRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Name == user.Name {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo *stubAuthRepo) (*AuthService, *token.Issuer) {
	issuer := token.NewIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer), issuer
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc, issuer := newTestAuthService(repo)

	raw, err := svc.Register(context.Background(), "A", "a@x.com", "secret")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Name != "A" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	stored := repo.users["a@x.com"]
	if stored.PasswordHash == "secret" || stored.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", stored.PasswordHash)
	}
	if stored.PasswordSalt == "" {
		t.Fatalf("expected salt to be stored")
	}
	if !password.Verify("secret", stored.PasswordSalt, stored.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newTestAuthService(repo)

	cases := [][3]string{
		{"", "a@x.com", "pass"},
		{"A", "", "pass"},
		{"A", "a@x.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), c[0], c[1], c[2]); err != domain.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput for %v, got %v", c, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "bob", "bob@x.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "bob@x.com", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc, issuer := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "carol", "carol@x.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	raw, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Email != "carol@x.com" || claims.Name != "carol" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), "dave", "dave@x.com", "goodpass")
	if _, err := svc.Login(context.Background(), "dave@x.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), "erin", "erin@x.com", "goodpass")

	wrongPass := func() error {
		_, err := svc.Login(context.Background(), "erin@x.com", "badpass")
		return err
	}()
	unknown := func() error {
		_, err := svc.Login(context.Background(), "ghost@x.com", "whatever")
		return err
	}()

	if wrongPass != domain.ErrInvalidCredentials || unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v and %v", wrongPass, unknown)
	}
}

func TestAuthService_Login_MissingSaltFailsClosed(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newTestAuthService(repo)

	// Legacy record without a salt must never authenticate.
	repo.users["old@x.com"] = &domain.User{
		ID: "u9", Name: "old", Email: "old@x.com",
		PasswordSalt: "", PasswordHash: "deadbeef",
	}

	if _, err := svc.Login(context.Background(), "old@x.com", "anything"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubAuthRepo()
	svc, issuer := newTestAuthService(repo)

	raw, err := svc.Register(context.Background(), "frank", "frank@x.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}

	user, err := svc.Profile(context.Background(), claims.Subject)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Email != "frank@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
