package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"gorm.io/gorm"
)

type UserRepository struct {
	*db.DB
}

func NewUserRepository(db *db.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	entity := toUserEntity(u)
	if err := r.Write(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return toUserModel(entity), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var entity UserEntity
	if err := r.Read(ctx).First(&entity, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toUserModel(&entity), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var entity UserEntity
	if err := r.Read(ctx).Where("email = ?", email).First(&entity).Error; err != nil {
		return nil, notFound(err)
	}
	return toUserModel(&entity), nil
}
