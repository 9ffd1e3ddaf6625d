package http

import (
	"net/http"

	"fueldelivery/internal/core/application/usecases/commands"
	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/station"
	"fueldelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type registerUserForm struct {
	Name     string `form:"name" validate:"required,max=255"`
	Email    string `form:"email" validate:"required,email"`
	Mobile   string `form:"mobile" validate:"required,max=50"`
	Password string `form:"password" validate:"required"`
}

type registerStationForm struct {
	Name            string   `form:"name" validate:"required,max=255"`
	Email           string   `form:"email" validate:"required,email"`
	Mobile          string   `form:"mobile" validate:"required,max=50"`
	Password        string   `form:"password" validate:"required"`
	ConfirmPassword string   `form:"confirmPassword"`
	StationName     string   `form:"stationName" validate:"required,max=255"`
	Address         string   `form:"address" validate:"required,max=500"`
	FuelTypes       []string `form:"fuelTypes" validate:"required,min=1"`
}

type loginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type principalResponse struct {
	Role string `json:"role"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// bindForm decodes and validates a form body.
func bindForm(c echo.Context, form any) error {
	if err := c.Bind(form); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("form", err)
	}
	return c.Validate(form)
}

// RegisterUser handles POST /register.
func (s *Server) RegisterUser(c echo.Context) error {
	var form registerUserForm
	if err := bindForm(c, &form); err != nil {
		return s.fail(c, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, form.Name, form.Email, form.Mobile, form.Password)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: userID.String()})
}

// RegisterStation handles POST /manager/register. The new station's inventory is
// seeded in the same transaction.
func (s *Server) RegisterStation(c echo.Context) error {
	var form registerStationForm
	if err := bindForm(c, &form); err != nil {
		return s.fail(c, err)
	}

	stationID := kernel.NewUUID()
	cmd, err := commands.NewRegisterStationCommand(stationID, station.Profile{
		ManagerName: form.Name,
		Email:       form.Email,
		Mobile:      form.Mobile,
		StationName: form.StationName,
		Address:     form.Address,
	}, form.FuelTypes, form.Password, form.ConfirmPassword)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.RegisterStation.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: stationID.String()})
}

// LoginUser handles POST /login.
func (s *Server) LoginUser(c echo.Context) error {
	return s.login(c, identity.RoleUser)
}

// LoginManager handles POST /manager/login.
func (s *Server) LoginManager(c echo.Context) error {
	return s.login(c, identity.RoleManager)
}

func (s *Server) login(c echo.Context, role identity.Role) error {
	var form loginForm
	if err := bindForm(c, &form); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewAuthenticateQuery(role, form.Email, form.Password)
	if err != nil {
		return s.fail(c, err)
	}
	principal, err := s.queries.Authenticate.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.signIn(c, principal); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, principalResponse{
		Role: principal.Role().String(),
		ID:   principal.ID().String(),
		Name: principal.Name(),
	})
}

// Logout handles POST /logout.
func (s *Server) Logout(c echo.Context) error {
	if err := s.signOut(c); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
