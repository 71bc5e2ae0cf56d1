package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	pkgAuth "github.com/anandaputra/tokoku/internal/pkg/auth"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domainErrors.ErrInvalidCredentials
	}
	return nil
}

type stubStrategy struct{}

func (stubStrategy) IssueToken(userID uuid.UUID, role model.Role) (string, error) {
	return userID.String() + ":" + string(role), nil
}

func (stubStrategy) ParseToken(token string) (pkgAuth.Principal, error) {
	return pkgAuth.Principal{}, pkgAuth.ErrInvalidToken
}

func (stubStrategy) Name() string { return "stub" }

func TestRegisterAlwaysCreatesCustomer(t *testing.T) {
	var createdRole model.Role
	users := stubUserRepository{createFn: func(_ context.Context, login, hash string, role model.Role) (*model.User, error) {
		createdRole = role
		return &model.User{ID: uuid.New(), Login: login, PasswordHash: hash, Role: role}, nil
	}}

	uc := NewAuthUseCase(users, stubHasher{}, stubStrategy{})

	usr, token, err := uc.Register(context.Background(), "andi", "rahasia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if createdRole != model.RoleCustomer {
		t.Fatalf("registration must always create CUSTOMER, got %s", createdRole)
	}
	if token == "" || usr.Login != "andi" {
		t.Fatalf("unexpected result: %+v token=%q", usr, token)
	}
}

func TestRegisterRejectsBlankCredentials(t *testing.T) {
	uc := NewAuthUseCase(stubUserRepository{}, stubHasher{}, stubStrategy{})

	if _, _, err := uc.Register(context.Background(), "  ", "pw"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestRegisterPropagatesDuplicate(t *testing.T) {
	users := stubUserRepository{createFn: func(context.Context, string, string, model.Role) (*model.User, error) {
		return nil, domainErrors.ErrAlreadyExists
	}}
	uc := NewAuthUseCase(users, stubHasher{}, stubStrategy{})

	if _, _, err := uc.Register(context.Background(), "andi", "pw"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	users := stubUserRepository{getByLoginFn: func(context.Context, string) (*model.User, error) {
		return &model.User{ID: uuid.New(), Login: "andi", PasswordHash: "hashed:benar"}, nil
	}}
	uc := NewAuthUseCase(users, stubHasher{}, stubStrategy{})

	if _, _, err := uc.Authenticate(context.Background(), "andi", "salah"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthenticateUnknownUserMasksNotFound(t *testing.T) {
	users := stubUserRepository{getByLoginFn: func(context.Context, string) (*model.User, error) {
		return nil, domainErrors.ErrNotFound
	}}
	uc := NewAuthUseCase(users, stubHasher{}, stubStrategy{})

	if _, _, err := uc.Authenticate(context.Background(), "ghost", "pw"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthenticateSuccessIssuesToken(t *testing.T) {
	id := uuid.New()
	users := stubUserRepository{getByLoginFn: func(context.Context, string) (*model.User, error) {
		return &model.User{ID: id, Login: "andi", PasswordHash: "hashed:benar", Role: model.RoleAdmin}, nil
	}}
	uc := NewAuthUseCase(users, stubHasher{}, stubStrategy{})

	_, token, err := uc.Authenticate(context.Background(), "andi", "benar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != id.String()+":ADMIN" {
		t.Fatalf("unexpected token %q", token)
	}
}
