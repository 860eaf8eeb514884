package rest

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yamori/recipebook/internal/domain"
	"github.com/yamori/recipebook/internal/present/rest/middleware"
	"github.com/yamori/recipebook/internal/present/rest/presenter"
	"github.com/yamori/recipebook/internal/service"
	"github.com/yamori/recipebook/internal/usecase"
)

type Handler struct {
	users       *usecase.UserUsecase
	tags        *usecase.OwnedAttributes[domain.Tag]
	ingredients *usecase.OwnedAttributes[domain.Ingredient]
	recipes     *usecase.RecipeUsecase
	auth        *service.AuthService
}

func NewHandler(
	users *usecase.UserUsecase,
	tags *usecase.OwnedAttributes[domain.Tag],
	ingredients *usecase.OwnedAttributes[domain.Ingredient],
	recipes *usecase.RecipeUsecase,
	auth *service.AuthService,
) *Handler {
	return &Handler{
		users:       users,
		tags:        tags,
		ingredients: ingredients,
		recipes:     recipes,
		auth:        auth,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	api := e.Group("/api/v1", auth.IdentifyRequester)

	api.POST("/user/create", h.handleCreateUser)
	api.POST("/user/token", h.handleCreateToken)

	me := api.Group("/user/me", auth.RequireUser)
	me.GET("", h.handleMe)
	me.PATCH("", h.handleUpdateMe)

	recipe := api.Group("/recipe", auth.RequireUser)
	recipe.GET("/tags", h.handleListTags)
	recipe.POST("/tags", h.handleCreateTag)
	recipe.GET("/ingredients", h.handleListIngredients)
	recipe.POST("/ingredients", h.handleCreateIngredient)
	recipe.GET("/recipes", h.handleListRecipes)
	recipe.POST("/recipes", h.handleCreateRecipe)
	recipe.GET("/recipes/:id", h.handleRetrieveRecipe)
	recipe.PUT("/recipes/:id", h.handleUpdateRecipe)
	recipe.PATCH("/recipes/:id", h.handlePartialUpdateRecipe)
	recipe.DELETE("/recipes/:id", h.handleDestroyRecipe)
	recipe.POST("/recipes/:id/upload-image", h.handleUploadImage)
}

// --- users ---

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=5"`
}

func (h *Handler) handleCreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.Created(c, user)
}

type tokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleCreateToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	token, err := h.auth.IssueToken(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"token": token})
}

func (h *Handler) handleMe(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.Get(ctx, requesterID(c))
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, user)
}

type updateMeRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" validate:"omitempty,min=5"`
}

func (h *Handler) handleUpdateMe(c echo.Context) error {
	ctx := c.Request().Context()

	var req updateMeRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.UpdateProfile(ctx, requesterID(c), req.Name, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, user)
}

// --- tags / ingredients ---

type attributeRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) handleListTags(c echo.Context) error {
	ctx := c.Request().Context()

	tags, err := h.tags.List(ctx, requesterID(c))
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, tags)
}

func (h *Handler) handleCreateTag(c echo.Context) error {
	ctx := c.Request().Context()

	var req attributeRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	tag, err := h.tags.Create(ctx, requesterID(c), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.Created(c, tag)
}

func (h *Handler) handleListIngredients(c echo.Context) error {
	ctx := c.Request().Context()

	ingredients, err := h.ingredients.List(ctx, requesterID(c))
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, ingredients)
}

func (h *Handler) handleCreateIngredient(c echo.Context) error {
	ctx := c.Request().Context()

	var req attributeRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	ingredient, err := h.ingredients.Create(ctx, requesterID(c), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.Created(c, ingredient)
}

// --- recipes ---

type recipeRequest struct {
	Title       string  `json:"title" validate:"required"`
	TimeMinutes int     `json:"time_minutes" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	Link        string  `json:"link"`
	Tags        []int64 `json:"tags"`
	Ingredients []int64 `json:"ingredients"`
}

type recipePatchRequest struct {
	Title       *string  `json:"title"`
	TimeMinutes *int     `json:"time_minutes" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Link        *string  `json:"link"`
	Tags        *[]int64 `json:"tags"`
	Ingredients *[]int64 `json:"ingredients"`
}

func (h *Handler) handleListRecipes(c echo.Context) error {
	ctx := c.Request().Context()

	tagIDs, err := parseIDList(c.QueryParam("tags"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid tags parameter")
	}
	ingredientIDs, err := parseIDList(c.QueryParam("ingredients"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid ingredients parameter")
	}

	recipes, err := h.recipes.List(ctx, requesterID(c), usecase.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, presenter.Recipes(recipes))
}

func (h *Handler) handleRetrieveRecipe(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := recipeID(c)
	if err != nil {
		return presenter.NotFound(c, "recipe not found")
	}

	rec, err := h.recipes.Get(ctx, requesterID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, presenter.Recipe(domain.ActionRetrieve, rec))
}

func (h *Handler) handleCreateRecipe(c echo.Context) error {
	ctx := c.Request().Context()

	var req recipeRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	rec, err := h.recipes.Create(ctx, requesterID(c), usecase.RecipeInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		return respondError(c, err)
	}
	return presenter.Created(c, presenter.Recipe(domain.ActionCreate, rec))
}

func (h *Handler) handleUpdateRecipe(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := recipeID(c)
	if err != nil {
		return presenter.NotFound(c, "recipe not found")
	}

	var req recipeRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	// PUT replaces every mutable field; absent lists clear the relations.
	tags := req.Tags
	if tags == nil {
		tags = []int64{}
	}
	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []int64{}
	}

	rec, err := h.recipes.Update(ctx, requesterID(c), id, usecase.RecipePatch{
		Title:         &req.Title,
		TimeMinutes:   &req.TimeMinutes,
		Price:         &req.Price,
		Link:          &req.Link,
		TagIDs:        &tags,
		IngredientIDs: &ingredients,
	})
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, presenter.Recipe(domain.ActionUpdate, rec))
}

func (h *Handler) handlePartialUpdateRecipe(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := recipeID(c)
	if err != nil {
		return presenter.NotFound(c, "recipe not found")
	}

	var req recipePatchRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	rec, err := h.recipes.Update(ctx, requesterID(c), id, usecase.RecipePatch{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, presenter.Recipe(domain.ActionPartialUpdate, rec))
}

func (h *Handler) handleDestroyRecipe(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := recipeID(c)
	if err != nil {
		return presenter.NotFound(c, "recipe not found")
	}

	if err := h.recipes.Delete(ctx, requesterID(c), id); err != nil {
		return respondError(c, err)
	}
	return presenter.NoContent(c)
}

func (h *Handler) handleUploadImage(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := recipeID(c)
	if err != nil {
		return presenter.NotFound(c, "recipe not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return presenter.ValidationFailed(c, domain.NewFieldError("image", "no file was submitted"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	rec, err := h.recipes.AttachImage(ctx, requesterID(c), id, data)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, presenter.Recipe(domain.ActionUploadImage, rec))
}

// --- helpers ---

func requesterID(c echo.Context) int64 {
	id, _ := c.Request().Context().Value(domain.RequesterIDCtxKey).(int64)
	return id
}

func recipeID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// parseIDList converts a comma-separated list of identifiers to int64s.
// An empty input yields nil, meaning no filter.
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func respondError(c echo.Context, err error) error {
	var ve domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return presenter.ValidationFailed(c, ve)
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return presenter.Unauthorized(c, "invalid credentials")
	default:
		return presenter.InternalError(c, err)
	}
}
