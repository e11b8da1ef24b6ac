package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"bygg-tools-backend/controllers"
	authhandler "bygg-tools-backend/lib/auth"
	companyhandler "bygg-tools-backend/lib/company"
	apimodels "bygg-tools-backend/models/api"
	authapimodels "bygg-tools-backend/models/api/auth"
	companyapimodels "bygg-tools-backend/models/api/company"
)

type authController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authController{}
	app.Route("auth", func(authRoute fiber.Router) {
		authRoute.Post("login", controller.Login)
		authRoute.Post("refresh", controller.Refresh)
		authRoute.Post("register", controller.Register)
		authRoute.Get("verify-email", controller.VerifyEmail)
		authRoute.Post("reset-password", controller.ResetPassword)
		authRoute.Post("set-password", controller.SetPassword)
	})
}

// @Summary Logg inn
// @Tags Autentisering
// @Description Logg inn med e-post og passord
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authController) Login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

// @Summary Forny tilgangstoken
// @Tags Autentisering
// @Description Utsted nytt tokenpar fra et gyldig refresh-token
// @Param	body	body	authapimodels.RefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authController) Refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := authhandler.Instance.Refresh(payload.RefreshToken)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

type registerRequest struct {
	Company companyapimodels.CreateCompany `json:"company"`
	Admin   companyapimodels.CreateUser    `json:"admin"`
}

// @Summary Registrer bedrift
// @Tags Autentisering
// @Description Registrer en ny bedrift med administratorkonto
// @Param	body	body	registerRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authController) Register(ctx *fiber.Ctx) error {
	var payload registerRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Company.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Admin.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID, err := companyhandler.Instance.Register(ctx.Context(), payload.Company, payload.Admin)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(companyID))
}

// @Summary Bekreft e-post
// @Tags Autentisering
// @Description Bekreft e-postadressen med tilsendt kode
// @Param	code	query	string	true	"verification code"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/auth/verify-email [get]
func (c *authController) VerifyEmail(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("verification code is not specified"))
	}
	if err := authhandler.Instance.VerifyEmail(code); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Be om nytt passord
// @Tags Autentisering
// @Description Send tilbakestillingskode til kontoens e-postadresse
// @Param	body	body	authapimodels.ResetPasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/auth/reset-password [post]
func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.ResetPasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.RequestPasswordReset(payload.Email); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Sett nytt passord
// @Tags Autentisering
// @Description Sett passord med koden fra e-posten
// @Param	body	body	authapimodels.SetPasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/auth/set-password [post]
func (c *authController) SetPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.SetPasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.SetPassword(payload.Code, payload.Password); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
