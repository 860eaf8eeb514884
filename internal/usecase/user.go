package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/yamori/recipebook/internal/domain"
)

type UserUsecase struct {
	repo UserRepository
}

func NewUserUsecase(repo UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

// Register creates a user with a bcrypt-hashed password.
func (u *UserUsecase) Register(ctx context.Context, email, name, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	return u.repo.Create(ctx, domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
}

func (u *UserUsecase) Get(ctx context.Context, id int64) (domain.User, error) {
	return u.repo.Get(ctx, id)
}

// UpdateProfile changes name and/or password of the requester. Nil means
// leave as is.
func (u *UserUsecase) UpdateProfile(ctx context.Context, id int64, name, password *string) (domain.User, error) {
	user, err := u.repo.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if name != nil {
		user.Name = *name
	}
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		user.PasswordHash = string(hash)
	}

	return u.repo.Update(ctx, user)
}
