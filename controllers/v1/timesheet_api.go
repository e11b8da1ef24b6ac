package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"bygg-tools-backend/controllers"
	xlsexport "bygg-tools-backend/lib/export/xls"
	timesheethandler "bygg-tools-backend/lib/timesheet"
	"bygg-tools-backend/middleware"
	apimodels "bygg-tools-backend/models/api"
	timesheetapimodels "bygg-tools-backend/models/api/timesheet"
)

type timesheetController struct {
	controllers.BaseAPIController
}

func InitTimesheetApiRouters(app *fiber.App) {
	controller := timesheetController{}
	app.Route("timesheet", func(timesheetRoute fiber.Router) {
		timesheetRoute.Use(middleware.AuthorizationRequired())
		timesheetRoute.Use(middleware.RbacMiddleware())
		timesheetRoute.Post("", controller.AddEntry)
		timesheetRoute.Get("my", controller.MyEntries)
		timesheetRoute.Get("totals", controller.ProjectTotals)
		timesheetRoute.Get("totals/export", controller.ExportTotals)
		timesheetRoute.Delete(":id", controller.DeleteEntry)
		timesheetRoute.Get("project/:id", controller.ProjectEntries)
		timesheetRoute.Get("project/:id/export", controller.ExportProjectEntries)
	})
}

// @Summary Før timer
// @Tags Timeføring
// @Description Registrer en timeføring på et prosjekt
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		timesheetapimodels.AddTimeEntry	true	"request body"
// @Success 201 {object} apimodels.Response{data=timesheetapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet [post]
func (c *timesheetController) AddEntry(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.AddTimeEntry
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	entry, err := timesheethandler.Instance.Add(companyID, userID, payload)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(entry))
}

// @Summary Slett timeføring
// @Tags Timeføring
// @Description Slett en egen timeføring
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"time entry ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/{id} [delete]
func (c *timesheetController) DeleteEntry(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	if err := timesheethandler.Instance.Delete(companyID, userID, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mine timeføringer
// @Tags Timeføring
// @Description Hent innlogget brukers timeføringer
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.TimeEntryView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/my [get]
func (c *timesheetController) MyEntries(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	list, err := timesheethandler.Instance.ListByUser(companyID, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Timeføringer per prosjekt
// @Tags Timeføring
// @Description Hent alle timeføringer på et prosjekt
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"project ID"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/project/{id} [get]
func (c *timesheetController) ProjectEntries(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	list, err := timesheethandler.Instance.ListByProject(companyID, id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Timer per prosjekt
// @Tags Timeføring
// @Description Hent samlet timeforbruk per prosjekt
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.ProjectHours}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/totals [get]
func (c *timesheetController) ProjectTotals(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	list, err := timesheethandler.Instance.ProjectTotals(companyID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Eksporter timeføringer
// @Tags Timeføring
// @Description Last ned prosjektets timeføringer som xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"project ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/project/{id}/export [get]
func (c *timesheetController) ExportProjectEntries(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	list, err := timesheethandler.Instance.ListByProject(companyID, id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportTimeEntries(list)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return c.sendXlsx(ctx, "timeforinger", buf.Bytes())
}

// @Summary Eksporter timer per prosjekt
// @Tags Timeføring
// @Description Last ned samlet timeforbruk per prosjekt som xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/totals/export [get]
func (c *timesheetController) ExportTotals(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	list, err := timesheethandler.Instance.ProjectTotals(companyID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportProjectTotals(list)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return c.sendXlsx(ctx, "prosjekttimer", buf.Bytes())
}

func (c *timesheetController) sendXlsx(ctx *fiber.Ctx, name string, data []byte) error {
	fileName := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(data)
}
