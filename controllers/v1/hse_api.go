package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"bygg-tools-backend/controllers"
	hsehandler "bygg-tools-backend/lib/hse"
	"bygg-tools-backend/middleware"
	apimodels "bygg-tools-backend/models/api"
)

type hseController struct {
	controllers.BaseAPIController
}

func InitHseApiRouters(app *fiber.App) {
	controller := hseController{}
	app.Route("hse", func(hseRoute fiber.Router) {
		hseRoute.Use(middleware.AuthorizationRequired())
		hseRoute.Use(middleware.RbacMiddleware())
		hseRoute.Get("handbook", controller.GetHandbook)
		hseRoute.Post("handbook", controller.UploadHandbook)
		hseRoute.Post("documents", controller.UploadDocument)
		hseRoute.Post("documents/list", controller.ListDocuments)
		hseRoute.Route("documents/:id", func(docIDRoute fiber.Router) {
			docIDRoute.Get("", controller.GetDocument)
			docIDRoute.Delete("", controller.DeleteDocument)
		})
	})
}

type hseDocumentView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}

// @Summary Hent HMS-håndbok
// @Tags HMS
// @Description Last ned bedriftens HMS-håndbok
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hse/handbook [get]
func (c *hseController) GetHandbook(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	data, err := hsehandler.Instance.GetHandbook(ctx.Context(), companyID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="hms-handbok.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Last opp HMS-håndbok
// @Tags HMS
// @Description Last opp eller erstatt bedriftens HMS-håndbok
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	file 			formData 	file  	true 	"file"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hse/handbook [post]
func (c *hseController) UploadHandbook(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is not attached"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer file.Close()

	companyID := middleware.GetUserCompany(ctx)
	if err := hsehandler.Instance.UploadHandbook(ctx.Context(), companyID, fileHeader.Filename, file, fileHeader.Size); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}

// @Summary Last opp HMS-dokument
// @Tags HMS
// @Description Last opp et HMS-dokument
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	name 			formData 	string 	true 	"document name"
// @Param 	file 			formData 	file  	true 	"file"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hse/documents [post]
func (c *hseController) UploadDocument(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is not attached"))
	}
	name := ctx.FormValue("name")
	if name == "" {
		name = fileHeader.Filename
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer file.Close()

	companyID := middleware.GetUserCompany(ctx)
	id, err := hsehandler.Instance.UploadDocument(ctx.Context(), companyID, name, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary HMS-dokumentliste
// @Tags HMS
// @Description Hent bedriftens HMS-dokumenter
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hse/documents/list [post]
func (c *hseController) ListDocuments(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	docs, err := hsehandler.Instance.ListDocuments(companyID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	views := make([]hseDocumentView, 0, len(docs))
	for _, doc := range docs {
		views = append(views, hseDocumentView{
			ID:       doc.ID,
			Name:     doc.Name,
			FileName: doc.FileName,
			Size:     doc.Size,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(views))
}

// @Summary Hent HMS-dokument
// @Tags HMS
// @Description Last ned et HMS-dokument
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hse/documents/{id} [get]
func (c *hseController) GetDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	fileName, data, err := hsehandler.Instance.GetDocument(ctx.Context(), companyID, id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/octet-stream")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Slett HMS-dokument
// @Tags HMS
// @Description Slett et HMS-dokument
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hse/documents/{id} [delete]
func (c *hseController) DeleteDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := hsehandler.Instance.DeleteDocument(ctx.Context(), companyID, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
