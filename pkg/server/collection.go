package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ikormushev/manjabook/pkg/auth"
	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/repository"
)

type CollectionServer struct {
	repository repository.CollectionRepository
	auth       *auth.Manager
	logger     *zap.Logger
}

func NewCollectionServer(repository repository.CollectionRepository, authManager *auth.Manager, logger *zap.Logger) *CollectionServer {
	return &CollectionServer{repository: repository, auth: authManager, logger: logger}
}

func (c *CollectionServer) RegisterRoutes(api *gin.RouterGroup) {
	collections := api.Group("/collections")
	collections.GET("", c.auth.OptionalAuth(), c.ListCollections)
	collections.GET("/:id", c.auth.OptionalAuth(), c.GetCollection)
	collections.POST("", c.auth.RequireAuth(), c.CreateCollection)
	collections.PUT("/:id", c.auth.RequireAuth(), c.UpdateCollection)
	collections.DELETE("/:id", c.auth.RequireAuth(), c.DeleteCollection)
	collections.POST("/:id/save", c.auth.RequireAuth(), c.SaveCollection)
	collections.DELETE("/:id/save", c.auth.RequireAuth(), c.UnsaveCollection)

	api.GET("/saved-collections", c.auth.RequireAuth(), c.ListSavedCollections)
}

type collectionRequest struct {
	Name      string `binding:"required" json:"name"`
	ImageURL  string `json:"image"`
	IsPrivate bool   `json:"is_private"`
	Recipes   []uint `json:"recipes"`
}

func (request *collectionRequest) toModel() model.RecipesCollection {
	return model.RecipesCollection{
		Name:      request.Name,
		ImageURL:  request.ImageURL,
		IsPrivate: request.IsPrivate,
	}
}

func (c *CollectionServer) ListCollections(ginCtx *gin.Context) {
	var viewerID *uint
	if user, ok := auth.UserFromContext(ginCtx); ok {
		viewerID = &user.Profile.ID
	}

	collections, err := c.repository.GetCollections(ginCtx.Request.Context(), viewerID)
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	responses := make([]CollectionResponse, 0, len(collections))
	for _, collection := range collections {
		responses = append(responses, CollectionFromModel(collection))
	}

	ginCtx.JSON(http.StatusOK, responses)
}

func (c *CollectionServer) GetCollection(ginCtx *gin.Context) {
	collection, ok := c.visibleCollection(ginCtx)
	if !ok {
		return
	}

	ginCtx.JSON(http.StatusOK, CollectionFromModel(collection))
}

func (c *CollectionServer) CreateCollection(ginCtx *gin.Context) {
	user, ok := auth.UserFromContext(ginCtx)
	if !ok {
		ginCtx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})

		return
	}

	var request collectionRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	collection := request.toModel()
	collection.CreatedByID = user.Profile.ID

	created, err := c.repository.AddCollection(ginCtx.Request.Context(), collection, request.Recipes)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusCreated, CollectionFromModel(created))
}

func (c *CollectionServer) UpdateCollection(ginCtx *gin.Context) {
	collection, ok := c.ownedCollection(ginCtx)
	if !ok {
		return
	}

	var request collectionRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	updated, err := c.repository.UpdateCollection(ginCtx.Request.Context(), collection.ID, request.toModel(), request.Recipes)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusOK, CollectionFromModel(updated))
}

func (c *CollectionServer) DeleteCollection(ginCtx *gin.Context) {
	collection, ok := c.ownedCollection(ginCtx)
	if !ok {
		return
	}

	if err := c.repository.DeleteCollection(ginCtx.Request.Context(), collection.ID); err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ginCtx.Status(http.StatusNoContent)
}

// SaveCollection bookmarks a collection for the caller. Saving twice is a
// no-op.
func (c *CollectionServer) SaveCollection(ginCtx *gin.Context) {
	user, _ := auth.UserFromContext(ginCtx)

	collection, ok := c.visibleCollection(ginCtx)
	if !ok {
		return
	}

	saved, err := c.repository.SaveCollection(ginCtx.Request.Context(), user.Profile.ID, collection.ID)
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ginCtx.JSON(http.StatusCreated, SavedCollectionFromModel(saved))
}

func (c *CollectionServer) UnsaveCollection(ginCtx *gin.Context) {
	user, _ := auth.UserFromContext(ginCtx)

	collectionID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	if err := c.repository.UnsaveCollection(ginCtx.Request.Context(), user.Profile.ID, collectionID); err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	ginCtx.Status(http.StatusNoContent)
}

func (c *CollectionServer) ListSavedCollections(ginCtx *gin.Context) {
	user, _ := auth.UserFromContext(ginCtx)

	saved, err := c.repository.GetSavedCollections(ginCtx.Request.Context(), user.Profile.ID)
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	responses := make([]SavedCollectionResponse, 0, len(saved))
	for _, entry := range saved {
		responses = append(responses, SavedCollectionFromModel(entry))
	}

	ginCtx.JSON(http.StatusOK, responses)
}

// visibleCollection loads the collection from the path parameter and hides
// private collections from everyone but their creator.
func (c *CollectionServer) visibleCollection(ginCtx *gin.Context) (*model.RecipesCollection, bool) {
	collectionID, err := parseIDParam(ginCtx)
	if err != nil {
		return nil, false
	}

	collection, err := c.repository.GetCollectionByID(ginCtx.Request.Context(), collectionID)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return nil, false
	}

	if collection.IsPrivate && !c.ownsCollection(ginCtx, collection) {
		ginCtx.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})

		return nil, false
	}

	return collection, true
}

func (c *CollectionServer) ownedCollection(ginCtx *gin.Context) (*model.RecipesCollection, bool) {
	collection, ok := c.visibleCollection(ginCtx)
	if !ok {
		return nil, false
	}

	if !c.ownsCollection(ginCtx, collection) {
		ginCtx.JSON(http.StatusForbidden, gin.H{"error": "only the creator can modify this collection"})

		return nil, false
	}

	return collection, true
}

func (c *CollectionServer) ownsCollection(ginCtx *gin.Context, collection *model.RecipesCollection) bool {
	user, ok := auth.UserFromContext(ginCtx)
	if !ok {
		return false
	}

	return collection.CreatedByID == user.Profile.ID
}
