package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ikormushev/manjabook/pkg/model"
)

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Preload("Profile").First(&user, userID)
	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Preload("Profile").Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Preload("Profile").Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

// AddUser creates the user and its profile together.
func (r *Repository) AddUser(ctx context.Context, username string, email string, passwordHash string) (*model.User, error) {
	user := model.User{
		UUID:         uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Active:       true,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations).Create(&user); result.Error != nil {
			return result.Error
		}

		user.Profile = model.Profile{UserID: user.ID}

		if result := tx.Create(&user.Profile); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetProfiles(ctx context.Context, search string) ([]*model.User, error) {
	var users []*model.User

	query := r.DB.WithContext(ctx).Preload("Profile").Where("active = ?", true)
	if search != "" {
		query = query.Where("username ILIKE ?", "%"+search+"%")
	}

	if result := query.Find(&users); result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, userID uint, pictureURL string) (*model.User, error) {
	result := r.DB.WithContext(ctx).Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Update("picture_url", pictureURL)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.GetUserByID(ctx, userID)
}

// DeactivateUser marks the account inactive instead of deleting it. Recipes
// keep their creator reference; only login is affected.
func (r *Repository) DeactivateUser(ctx context.Context, userID uint) error {
	result := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("active", false)

	return result.Error
}
