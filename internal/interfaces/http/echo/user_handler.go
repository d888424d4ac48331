package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/creations-admin/internal/application/account"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
)

type UserHandler struct {
	getProfile    app.GetProfile
	updateProfile app.UpdateProfile
	updateRole    app.UpdateUserRole
	listProfiles  app.ListProfiles
}

type updateRoleRequest struct {
	Role string `json:"role" form:"role"`
}

type updateProfileRequest struct {
	Username  string `json:"username" form:"username"`
	FullName  string `json:"full_name" form:"full_name"`
	Website   string `json:"website" form:"website"`
	AvatarURL string `json:"avatar_url" form:"avatar_url"`
}

func NewUserHandler(getProfile app.GetProfile, updateProfile app.UpdateProfile, updateRole app.UpdateUserRole, listProfiles app.ListProfiles) *UserHandler {
	return &UserHandler{
		getProfile:    getProfile,
		updateProfile: updateProfile,
		updateRole:    updateRole,
		listProfiles:  listProfiles,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	out, err := h.listProfiles.Execute(c.Request().Context(), principalFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *UserHandler) GetAccount(c echo.Context) error {
	principal := principalFrom(c)
	if !principal.IsAuthenticated() {
		return writeError(c, account.ErrUnauthenticated)
	}

	out, err := h.getProfile.Execute(c.Request().Context(), app.GetProfileInput{ID: principal.UserID})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *UserHandler) UpdateAccount(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	out, err := h.updateProfile.Execute(c.Request().Context(), principalFrom(c), app.UpdateProfileInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	out, err := h.updateRole.Execute(c.Request().Context(), principalFrom(c), app.UpdateUserRoleInput{
		UserID: c.Param("id"),
		Role:   req.Role,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
