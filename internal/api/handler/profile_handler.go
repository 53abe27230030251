package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

type createProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	PhotoURL    string `json:"photo_url"`
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type profileResponse struct {
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

// ProfileHandler handles the dashboard profile and theme preference routes.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /v1/profile.
//
// @Summary      Create the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      createProfileRequest  true  "Profile fields"
// @Success      201      {object}  profileResponse
// @Failure      400      {object}  errorResponse
// @Router       /v1/profile [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.CreateProfile(c.Request().Context(), identity, req.DisplayName, req.PhotoURL)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProfileResponse(profile))
}

// Get handles GET /v1/profile.
//
// @Summary      Fetch the caller's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Update handles PATCH /v1/profile.
//
// @Summary      Update profile fields
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      updateProfileRequest  true  "Fields to change"
// @Success      200      {object}  profileResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	profile, err := h.service.UpdateProfile(c.Request().Context(), identity, ports.ProfilePatch{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Theme handles GET /v1/profile/theme.
//
// @Summary      Fetch the caller's theme preference
// @Tags         profile
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /v1/profile/theme [get]
func (h *ProfileHandler) Theme(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	theme, err := h.service.Theme(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}

// SetTheme handles PUT /v1/profile/theme.
//
// @Summary      Persist the caller's theme preference
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      themeRequest  true  "light or dark"
// @Success      200      {object}  themeResponse
// @Failure      400      {object}  errorResponse
// @Router       /v1/profile/theme [put]
func (h *ProfileHandler) SetTheme(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetTheme(c.Request().Context(), identity, req.Theme); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, themeResponse{Theme: req.Theme})
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		Email:       p.Email,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}
