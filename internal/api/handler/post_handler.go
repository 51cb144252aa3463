package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/content-api/internal/api/middleware"
	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. The acting principal
// is read from the context where the authentication middleware memoized it.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type postRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required"`
}

// pageParams reads and clamps the page/limit query values so the response
// envelope matches the page the service actually serves.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = ports.DefaultPageLimit
	}
	if limit > ports.MaxPageLimit {
		limit = ports.MaxPageLimit
	}
	return page, limit
}

type listPostsResponse struct {
	Posts []*domain.Post `json:"posts"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type listActivityResponse struct {
	Activity []*domain.Activity `json:"activity"`
}

// List handles GET /v1/posts.
//
// @Summary      List posts visible to the caller
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Rows per page (max 100)"
// @Success      200    {object}  listPostsResponse
// @Failure      401    {object}  map[string]string
// @Router       /v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	posts, total, err := h.service.List(c.Request().Context(), middleware.PrincipalFrom(c), ports.ListPostsFilter{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return c.JSON(http.StatusOK, listPostsResponse{Posts: posts, Total: total, Page: page, Limit: limit})
}

// Get handles GET /v1/posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Post
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /v1/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post content"
// @Success      201   {object}  domain.Post
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]map[string]string
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), middleware.PrincipalFrom(c), ports.CreatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /v1/posts/:id.
//
// @Summary      Update a post (owner or admin)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post content"
// @Success      200   {object}  domain.Post
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]map[string]string
// @Router       /v1/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"), ports.UpdatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /v1/posts/:id.
//
// @Summary      Delete a post (owner or admin)
// @Tags         posts
// @Security     BearerAuth
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Activity handles GET /v1/posts/:id/activity.
//
// @Summary      Recent audit entries for a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listActivityResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/posts/{id}/activity [get]
func (h *PostHandler) Activity(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.Activity(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.Activity{}
	}
	return c.JSON(http.StatusOK, listActivityResponse{Activity: entries})
}
