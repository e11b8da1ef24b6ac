package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"bygg-tools-backend/controllers"
	companyhandler "bygg-tools-backend/lib/company"
	"bygg-tools-backend/middleware"
	apimodels "bygg-tools-backend/models/api"
	companyapimodels "bygg-tools-backend/models/api/company"
)

type companyController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyController{}
	app.Route("company", func(companyRoute fiber.Router) {
		companyRoute.Use(middleware.AuthorizationRequired())
		companyRoute.Use(middleware.RbacMiddleware())
		companyRoute.Get("", controller.GetCompany)
		companyRoute.Put("", controller.UpdateCompany)
	})
}

// @Summary Hent bedrift
// @Tags Bedrift
// @Description Hent bedriftsprofilen til innlogget bruker
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company [get]
func (c *companyController) GetCompany(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	company, err := companyhandler.Instance.GetByID(companyID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(company))
}

// @Summary Oppdater bedrift
// @Tags Bedrift
// @Description Oppdater bedriftsprofilen
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		companyapimodels.CreateCompany	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company [put]
func (c *companyController) UpdateCompany(ctx *fiber.Ctx) error {
	var payload companyapimodels.CreateCompany
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := companyhandler.Instance.Update(companyID, payload); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
