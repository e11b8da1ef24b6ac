package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"bygg-tools-backend/controllers"
	pdfexport "bygg-tools-backend/lib/export/pdf"
	formshandler "bygg-tools-backend/lib/forms"
	workflowhandler "bygg-tools-backend/lib/workflow"
	"bygg-tools-backend/middleware"
	"bygg-tools-backend/models"
	apimodels "bygg-tools-backend/models/api"
	formapimodels "bygg-tools-backend/models/api/form"
)

type formController struct {
	controllers.BaseAPIController
}

func InitFormApiRouters(app *fiber.App) {
	controller := formController{}
	app.Route("forms", func(formsRoute fiber.Router) {
		formsRoute.Use(middleware.AuthorizationRequired())
		formsRoute.Use(middleware.RbacMiddleware())
		formsRoute.Post("deviation", controller.CreateDeviation)
		formsRoute.Post("change", controller.CreateChange)
		formsRoute.Post("sja", controller.CreateSJA)
		formsRoute.Post("list", controller.ListForms)
		formsRoute.Route(":id", func(formIDRoute fiber.Router) {
			formIDRoute.Get("", controller.GetForm)
			formIDRoute.Delete("", controller.DeleteForm)
			formIDRoute.Put("status", controller.ChangeStatus)
			formIDRoute.Put("solution", controller.RecordSolution)
			formIDRoute.Put("archive", controller.Archive)
			formIDRoute.Get("pdf", controller.ExportPdf)
		})
	})
}

// @Summary Send inn avviksskjema
// @Tags Skjema
// @Description Registrer et nytt avvik
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		formapimodels.CreateDeviationRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=formapimodels.FormSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/deviation [post]
func (c *formController) CreateDeviation(ctx *fiber.Ctx) error {
	var payload formapimodels.CreateDeviationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	form, err := formshandler.Instance.CreateDeviation(companyID, userID, payload)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(form))
}

// @Summary Send inn endringsskjema
// @Tags Skjema
// @Description Registrer en ny endringsmelding
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		formapimodels.CreateChangeRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=formapimodels.FormSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/change [post]
func (c *formController) CreateChange(ctx *fiber.Ctx) error {
	var payload formapimodels.CreateChangeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	form, err := formshandler.Instance.CreateChange(companyID, userID, payload)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(form))
}

// @Summary Send inn SJA-skjema
// @Tags Skjema
// @Description Registrer en ny sikker jobb-analyse
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		formapimodels.CreateSJARequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=formapimodels.FormSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/sja [post]
func (c *formController) CreateSJA(ctx *fiber.Ctx) error {
	var payload formapimodels.CreateSJARequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	form, err := formshandler.Instance.CreateSJA(companyID, userID, payload)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(form))
}

// @Summary Skjemaliste
// @Tags Skjema
// @Description Hent skjema for skjematavlen, filtrert på type og status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		formapimodels.ListFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]formapimodels.FormSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/list [post]
func (c *formController) ListForms(ctx *fiber.Ctx) error {
	var payload formapimodels.ListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	list, err := workflowhandler.Instance.ListByStatus(companyID, payload)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Hent skjema
// @Tags Skjema
// @Description Hent et skjema etter ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"form ID"
// @Param 	form_type 		query 		string  true 	"form type (AVVIK/ENDRING/SJA)"
// @Success 200 {object} apimodels.Response{data=formapimodels.FormSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id} [get]
func (c *formController) GetForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	formType, err := c.getFormType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	form, err := formshandler.Instance.GetByID(companyID, id, formType)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(form))
}

// @Summary Endre skjemastatus
// @Tags Skjema
// @Description Flytt skjemaet til en ny status, innlogget bruker blir saksbehandler
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"form ID"
// @Param	body				body		formapimodels.ChangeStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=formapimodels.FormSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id}/status [put]
func (c *formController) ChangeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload formapimodels.ChangeStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	form, err := workflowhandler.Instance.ChangeStatus(companyID, id, payload.FormType, payload.Status, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(form))
}

// @Summary Registrer løsning
// @Tags Skjema
// @Description Registrer løsningstekst på et skjema under behandling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"form ID"
// @Param	body				body		formapimodels.SolutionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=formapimodels.FormSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id}/solution [put]
func (c *formController) RecordSolution(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload formapimodels.SolutionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	form, err := workflowhandler.Instance.RecordSolution(companyID, id, payload.FormType, payload.Solution, payload.Notes)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(form))
}

// @Summary Arkiver skjema
// @Tags Skjema
// @Description Arkiver et ferdig behandlet skjema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"form ID"
// @Param 	form_type 		query 		string  true 	"form type (AVVIK/ENDRING/SJA)"
// @Success 200 {object} apimodels.Response{data=formapimodels.FormSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id}/archive [put]
func (c *formController) Archive(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	formType, err := c.getFormType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	form, err := workflowhandler.Instance.Archive(companyID, id, formType, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(form))
}

// @Summary Slett skjema
// @Tags Skjema
// @Description Slett et skjema permanent
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"form ID"
// @Param 	form_type 		query 		string  true 	"form type (AVVIK/ENDRING/SJA)"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id} [delete]
func (c *formController) DeleteForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	formType, err := c.getFormType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := workflowhandler.Instance.Delete(companyID, id, formType); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eksporter skjema som PDF
// @Tags Skjema
// @Description Last ned skjemaet som PDF-dokument
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"form ID"
// @Param 	form_type 		query 		string  true 	"form type (AVVIK/ENDRING/SJA)"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id}/pdf [get]
func (c *formController) ExportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	formType, err := c.getFormType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	form, err := formshandler.Instance.GetByID(companyID, id, formType)
	if err != nil {
		return errorResponse(ctx, err)
	}
	pdfBytes, err := pdfexport.GenerateFormPdf(form)
	if err != nil {
		return errorResponse(ctx, err)
	}
	fileName := form.Number
	if fileName == "" {
		fileName = form.ID
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(pdfBytes)
}

func (c *formController) getFormType(ctx *fiber.Ctx) (models.FormType, error) {
	formType := models.FormType(ctx.Query("form_type"))
	if !formType.IsValid() {
		return "", fmt.Errorf("unknown form type: %s", formType)
	}
	return formType, nil
}
