package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"bygg-tools-backend/controllers"
	notification "bygg-tools-backend/lib/notification"
	usershandler "bygg-tools-backend/lib/users"
	"bygg-tools-backend/middleware"
	apimodels "bygg-tools-backend/models/api"
	companyapimodels "bygg-tools-backend/models/api/company"
)

type profileController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileController{}
	app.Route("profile", func(profileRoute fiber.Router) {
		profileRoute.Use(middleware.AuthorizationRequired())
		profileRoute.Use(middleware.RbacMiddleware())
		profileRoute.Get("", controller.GetProfile)
		profileRoute.Put("", controller.UpdateProfile)
		profileRoute.Get("notifications", controller.ListNotifications)
		profileRoute.Put("notifications/:id/read", controller.MarkNotificationRead)
	})
}

type notificationView struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Url     string `json:"url"`
}

// @Summary Min profil
// @Tags Profil
// @Description Hent innlogget brukers profil
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyUser}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *profileController) GetProfile(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	user, err := usershandler.Instance.GetByID(companyID, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

// @Summary Oppdater profil
// @Tags Profil
// @Description Oppdater innlogget brukers profil
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		companyapimodels.UpdateUser	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [put]
func (c *profileController) UpdateProfile(ctx *fiber.Ctx) error {
	var payload companyapimodels.UpdateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	if err := usershandler.Instance.UpdateUser(companyID, userID, payload); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mine varsler
// @Tags Profil
// @Description Hent uleste varsler for innlogget bruker
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/notifications [get]
func (c *profileController) ListNotifications(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := notification.Instance.ListForUser(userID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	views := make([]notificationView, 0, len(list))
	for _, rec := range list {
		views = append(views, notificationView{
			ID:      rec.ID,
			Message: rec.Message,
			Url:     rec.Url,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(views))
}

// @Summary Marker varsel som lest
// @Tags Profil
// @Description Marker et varsel som lest
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"notification ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/notifications/{id}/read [put]
func (c *profileController) MarkNotificationRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := notification.Instance.MarkRead(userID, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
