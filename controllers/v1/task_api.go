package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bygg-tools-backend/controllers"
	filestorage "bygg-tools-backend/lib/file-storage"
	taskhandler "bygg-tools-backend/lib/task"
	"bygg-tools-backend/middleware"
	apimodels "bygg-tools-backend/models/api"
	taskapimodels "bygg-tools-backend/models/api/task"
)

type taskController struct {
	controllers.BaseAPIController
}

func InitTaskApiRouters(app *fiber.App) {
	controller := taskController{}
	app.Route("tasks", func(tasksRoute fiber.Router) {
		tasksRoute.Use(middleware.AuthorizationRequired())
		tasksRoute.Use(middleware.RbacMiddleware())
		tasksRoute.Route(":id", func(taskIDRoute fiber.Router) {
			taskIDRoute.Get("", controller.GetTask)
			taskIDRoute.Put("", controller.UpdateTask)
			taskIDRoute.Delete("", controller.DeleteTask)
			taskIDRoute.Post("comments", controller.AddComment)
			taskIDRoute.Post("files", controller.UploadFile)
		})
	})
}

// @Summary Hent oppgave
// @Tags Oppgaver
// @Description Hent en oppgave etter ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"task ID"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id} [get]
func (c *taskController) GetTask(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	task, err := taskhandler.Instance.GetByID(companyID, id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(task))
}

// @Summary Oppdater oppgave
// @Tags Oppgaver
// @Description Oppdater en oppgave, inkludert status for oppgavetavlen
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"task ID"
// @Param	body				body		taskapimodels.UpdateTask	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id} [put]
func (c *taskController) UpdateTask(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.UpdateTask
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := taskhandler.Instance.Update(companyID, id, payload); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Slett oppgave
// @Tags Oppgaver
// @Description Slett en oppgave
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"task ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id} [delete]
func (c *taskController) DeleteTask(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := taskhandler.Instance.Delete(companyID, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Kommenter oppgave
// @Tags Oppgaver
// @Description Legg til en kommentar på oppgaven
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"task ID"
// @Param	body				body		taskapimodels.AddComment	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id}/comments [post]
func (c *taskController) AddComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.AddComment
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	if err := taskhandler.Instance.AddComment(companyID, id, userID, payload); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}

// @Summary Last opp vedlegg
// @Tags Oppgaver
// @Description Last opp en fil som vedlegg til oppgaven
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"task ID"
// @Param 	file 			formData 	file  	true 	"file"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id}/files [post]
func (c *taskController) UploadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
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
	objectKey := fmt.Sprintf("tasks/%s/%s-%s", id, uuid.NewString(), fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if err := filestorage.Instance.UploadFile(ctx.Context(), companyID, objectKey, file, fileHeader.Size, contentType); err != nil {
		return errorResponse(ctx, err)
	}
	if err := taskhandler.Instance.AttachFile(companyID, id, fileHeader.Filename, objectKey, fileHeader.Size); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}
