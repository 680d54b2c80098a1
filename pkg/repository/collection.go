package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ikormushev/manjabook/pkg/model"
)

type CollectionRepository interface {
	AddCollection(ctx context.Context, collection model.RecipesCollection, recipeIDs []uint) (*model.RecipesCollection, error)
	GetCollections(ctx context.Context, viewerID *uint) ([]*model.RecipesCollection, error)
	GetCollectionByID(ctx context.Context, collectionID uint) (*model.RecipesCollection, error)
	UpdateCollection(ctx context.Context, collectionID uint, collection model.RecipesCollection, recipeIDs []uint) (*model.RecipesCollection, error)
	DeleteCollection(ctx context.Context, collectionID uint) error
	SaveCollection(ctx context.Context, profileID uint, collectionID uint) (*model.SavedRecipesCollection, error)
	UnsaveCollection(ctx context.Context, profileID uint, collectionID uint) error
	GetSavedCollections(ctx context.Context, profileID uint) ([]*model.SavedRecipesCollection, error)
}

// AddCollection creates the collection and bookmarks it for its creator in
// the same transaction.
func (r *Repository) AddCollection(ctx context.Context, collection model.RecipesCollection, recipeIDs []uint) (*model.RecipesCollection, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := attachRecipes(tx, &collection, recipeIDs); err != nil {
			return err
		}

		if result := tx.Create(&collection); result.Error != nil {
			return result.Error
		}

		saved := model.SavedRecipesCollection{
			UserID:              collection.CreatedByID,
			RecipesCollectionID: collection.ID,
			SavedAt:             time.Now(),
		}
		result := tx.Create(&saved)

		return result.Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetCollectionByID(ctx, collection.ID)
}

// GetCollections lists public collections plus the viewer's private ones.
func (r *Repository) GetCollections(ctx context.Context, viewerID *uint) ([]*model.RecipesCollection, error) {
	var collections []*model.RecipesCollection

	query := r.DB.WithContext(ctx).Preload("CreatedBy").
		Preload("CreatedBy.User").Preload("Recipes")
	if viewerID != nil {
		query = query.Where("is_private = ? OR created_by_id = ?", false, *viewerID)
	} else {
		query = query.Where("is_private = ?", false)
	}

	if result := query.Find(&collections); result.Error != nil {
		r.Logger.Error("error getting collections", zap.Error(result.Error))

		return nil, result.Error
	}

	return collections, nil
}

func (r *Repository) GetCollectionByID(ctx context.Context, collectionID uint) (*model.RecipesCollection, error) {
	var collection model.RecipesCollection

	result := r.DB.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.User").
		Preload("Recipes").
		Preload("Recipes.RecipeProducts").
		First(&collection, collectionID)
	if result.Error != nil {
		return nil, result.Error
	}

	return &collection, nil
}

func (r *Repository) UpdateCollection(ctx context.Context, collectionID uint, updated model.RecipesCollection, recipeIDs []uint) (*model.RecipesCollection, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var collection model.RecipesCollection

		if result := tx.First(&collection, collectionID); result.Error != nil {
			return result.Error
		}

		collection.Name = updated.Name
		collection.ImageURL = updated.ImageURL
		collection.IsPrivate = updated.IsPrivate

		if result := tx.Save(&collection); result.Error != nil {
			return result.Error
		}

		var recipes []model.Recipe

		if len(recipeIDs) > 0 {
			if result := tx.Find(&recipes, recipeIDs); result.Error != nil {
				return result.Error
			}
		}

		return tx.Model(&collection).Association("Recipes").Replace(recipes)
	})
	if err != nil {
		return nil, err
	}

	return r.GetCollectionByID(ctx, collectionID)
}

func (r *Repository) DeleteCollection(ctx context.Context, collectionID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("recipes_collection_id = ?", collectionID).Delete(&model.SavedRecipesCollection{}); result.Error != nil {
			return result.Error
		}

		result := tx.Delete(&model.RecipesCollection{}, collectionID)

		return result.Error
	})
}

// SaveCollection bookmarks a collection for a profile; saving twice keeps the
// single existing bookmark.
func (r *Repository) SaveCollection(ctx context.Context, profileID uint, collectionID uint) (*model.SavedRecipesCollection, error) {
	saved := model.SavedRecipesCollection{
		UserID:              profileID,
		RecipesCollectionID: collectionID,
		SavedAt:             time.Now(),
	}

	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&saved); result.Error != nil {
		return nil, result.Error
	}

	if saved.ID == 0 {
		result := r.DB.WithContext(ctx).
			Where("user_id = ? AND recipes_collection_id = ?", profileID, collectionID).
			First(&saved)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	return &saved, nil
}

func (r *Repository) UnsaveCollection(ctx context.Context, profileID uint, collectionID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND recipes_collection_id = ?", profileID, collectionID).
		Delete(&model.SavedRecipesCollection{})

	return result.Error
}

func (r *Repository) GetSavedCollections(ctx context.Context, profileID uint) ([]*model.SavedRecipesCollection, error) {
	var saved []*model.SavedRecipesCollection

	result := r.DB.WithContext(ctx).
		Preload("RecipesCollection").
		Preload("RecipesCollection.CreatedBy").
		Preload("RecipesCollection.CreatedBy.User").
		Preload("RecipesCollection.Recipes").
		Where("user_id = ?", profileID).
		Find(&saved)
	if result.Error != nil {
		return nil, result.Error
	}

	return saved, nil
}

func attachRecipes(tx *gorm.DB, collection *model.RecipesCollection, recipeIDs []uint) error {
	if len(recipeIDs) == 0 {
		return nil
	}

	var recipes []model.Recipe

	if result := tx.Find(&recipes, recipeIDs); result.Error != nil {
		return result.Error
	}

	collection.Recipes = recipes

	return nil
}
