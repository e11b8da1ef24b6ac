package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"bygg-tools-backend/controllers"
	projecthandler "bygg-tools-backend/lib/project"
	taskhandler "bygg-tools-backend/lib/task"
	"bygg-tools-backend/middleware"
	apimodels "bygg-tools-backend/models/api"
	projectapimodels "bygg-tools-backend/models/api/project"
	taskapimodels "bygg-tools-backend/models/api/task"
)

type projectController struct {
	controllers.BaseAPIController
}

func InitProjectApiRouters(app *fiber.App) {
	controller := projectController{}
	app.Route("projects", func(projectsRoute fiber.Router) {
		projectsRoute.Use(middleware.AuthorizationRequired())
		projectsRoute.Use(middleware.RbacMiddleware())
		projectsRoute.Post("", controller.CreateProject)
		projectsRoute.Post("list", controller.ListProjects)
		projectsRoute.Route(":id", func(projectIDRoute fiber.Router) {
			projectIDRoute.Get("", controller.GetProject)
			projectIDRoute.Put("", controller.UpdateProject)
			projectIDRoute.Delete("", controller.DeleteProject)
			projectIDRoute.Put("members/:userId", controller.AddMember)
			projectIDRoute.Post("tasks", controller.CreateTask)
			projectIDRoute.Post("tasks/list", controller.ListTasks)
		})
	})
}

// @Summary Opprett prosjekt
// @Tags Prosjekter
// @Description Opprett et nytt prosjekt
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		projectapimodels.CreateProject	true	"request body"
// @Success 201 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects [post]
func (c *projectController) CreateProject(ctx *fiber.Ctx) error {
	var payload projectapimodels.CreateProject
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	project, err := projecthandler.Instance.Create(companyID, payload)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(project))
}

// @Summary Prosjektliste
// @Tags Prosjekter
// @Description Hent bedriftens prosjekter, filtrert på status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		projectapimodels.ListFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/list [post]
func (c *projectController) ListProjects(ctx *fiber.Ctx) error {
	var payload projectapimodels.ListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	projects, err := projecthandler.Instance.List(companyID, payload.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(projects))
}

// @Summary Hent prosjekt
// @Tags Prosjekter
// @Description Hent et prosjekt etter ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"project ID"
// @Success 200 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [get]
func (c *projectController) GetProject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	project, err := projecthandler.Instance.GetByID(companyID, id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(project))
}

// @Summary Oppdater prosjekt
// @Tags Prosjekter
// @Description Oppdater prosjektdata
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"project ID"
// @Param	body				body		projectapimodels.UpdateProject	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [put]
func (c *projectController) UpdateProject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.UpdateProject
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := projecthandler.Instance.Update(companyID, id, payload); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Slett prosjekt
// @Tags Prosjekter
// @Description Slett et prosjekt
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"project ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [delete]
func (c *projectController) DeleteProject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := projecthandler.Instance.Delete(companyID, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Legg til prosjektmedlem
// @Tags Prosjekter
// @Description Legg en ansatt til prosjektet
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"project ID"
// @Param 	userId 			path 		string  true 	"user ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id}/members/{userId} [put]
func (c *projectController) AddMember(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := ctx.Params("userId")
	if userID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("user id is not specified"))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := projecthandler.Instance.AddMember(companyID, id, userID); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Opprett oppgave
// @Tags Oppgaver
// @Description Opprett en ny oppgave i prosjektet
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"project ID"
// @Param	body				body		taskapimodels.CreateTask	true	"request body"
// @Success 201 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id}/tasks [post]
func (c *projectController) CreateTask(ctx *fiber.Ctx) error {
	projectID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.CreateTask
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.ProjectID = projectID
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	task, err := taskhandler.Instance.Create(companyID, userID, payload)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(task))
}

// @Summary Oppgaveliste
// @Tags Oppgaver
// @Description Hent oppgavene i prosjektet for oppgavetavlen
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"project ID"
// @Success 200 {object} apimodels.Response{data=[]taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id}/tasks/list [post]
func (c *projectController) ListTasks(ctx *fiber.Ctx) error {
	projectID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	tasks, err := taskhandler.Instance.ListByProject(companyID, projectID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tasks))
}
