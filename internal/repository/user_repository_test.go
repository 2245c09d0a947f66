package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/courtbook/courtbook/internal/model"
)

func TestUserCreate_NormalizesEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	user := &model.User{
		Email:        "  Alice@Example.COM ",
		PasswordHash: "x",
		Name:         "Alice",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email = %q, want normalized form", user.Email)
	}

	found, err := repo.FindByEmail(context.Background(), "ALICE@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("found %s, want %s", found.ID, user.ID)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	if err := repo.Create(context.Background(), &model.User{Email: "alice@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(context.Background(), &model.User{Email: "Alice@Example.com", PasswordHash: "y"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserFind_Missing(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
