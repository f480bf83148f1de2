package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

type stubOperatorRepo struct {
	operators map[string]*domain.Operator
	err       error
}

func newStubOperatorRepo() *stubOperatorRepo {
	return &stubOperatorRepo{operators: make(map[string]*domain.Operator)}
}

func (r *stubOperatorRepo) add(t *testing.T, id int64, username, password, name, email string) {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	r.operators[username] = &domain.Operator{
		ID: id, Username: username, PasswordHash: hash, Name: name, Email: email,
	}
}

func (r *stubOperatorRepo) FindByUsername(_ context.Context, username string) (*domain.Operator, error) {
	if r.err != nil {
		return nil, r.err
	}
	op, ok := r.operators[username]
	if !ok {
		return nil, domain.ErrOperatorNotFound
	}
	clone := *op
	return &clone, nil
}

func newTestAuthService(t *testing.T, repo *stubOperatorRepo) *AuthService {
	t.Helper()
	return NewAuthService(repo, newTestCodec(t), zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubOperatorRepo()
	repo.add(t, 5, "mario.rossi", "password123", "Mario Rossi", "mario@example.com")
	svc := newTestAuthService(t, repo)

	token, op, err := svc.Login(context.Background(), "mario.rossi", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}
	if op == nil || op.ID != 5 || op.Username != "mario.rossi" {
		t.Fatalf("unexpected operator: %+v", op)
	}
	if op.PasswordHash != "" {
		t.Error("sanitized operator must not carry the password hash")
	}

	claims := newTestCodec(t).Verify(token)
	if claims == nil {
		t.Fatal("issued token does not verify")
	}
	if claims.OperatorID != 5 {
		t.Errorf("token operator id: got %d, want 5", claims.OperatorID)
	}
}

func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	repo := newStubOperatorRepo()
	repo.add(t, 1, "mario.rossi", "password123", "Mario Rossi", "")
	svc := newTestAuthService(t, repo)

	_, _, wrongPassword := svc.Login(context.Background(), "mario.rossi", "nope")
	_, _, unknownUser := svc.Login(context.Background(), "ghost", "nope")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Error("wrong password and unknown user must be indistinguishable")
	}
}

func TestAuthService_Login_CaseSensitiveUsername(t *testing.T) {
	repo := newStubOperatorRepo()
	repo.add(t, 1, "mario.rossi", "password123", "Mario Rossi", "")
	svc := newTestAuthService(t, repo)

	if _, _, err := svc.Login(context.Background(), "Mario.Rossi", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for differently-cased username, got %v", err)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestAuthService(t, newStubOperatorRepo())

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_StoreFailureStaysDistinct(t *testing.T) {
	repo := newStubOperatorRepo()
	repo.err = errors.New("connection refused")
	svc := newTestAuthService(t, repo)

	_, _, err := svc.Login(context.Background(), "mario.rossi", "password123")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Error("infrastructure failures must not be reported as bad credentials")
	}
}
