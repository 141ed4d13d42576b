package publicapi

import (
	"talentflow-backend/controllers"
	candidatehandler "talentflow-backend/lib/candidate"
	jobhandler "talentflow-backend/lib/job"
	"talentflow-backend/middleware"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	candidateapimodels "talentflow-backend/models/api/candidate"
	jobapimodels "talentflow-backend/models/api/job"

	"github.com/gofiber/fiber/v2"
)

type publicJobApiController struct {
	controllers.BaseAPIController
}

func InitPublicJobApiRouters(app *fiber.App) {
	controller := publicJobApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("my_applications", middleware.AuthorizationRequired(), controller.myApplications)
		router.Get(":slug", controller.getBySlug)
		router.Post(":id/apply", middleware.AuthorizationRequired(), controller.apply)
	})
}

// @Summary List
// @Tags Job board
// @Description Active job postings, filtered and paginated
// @Param	body body	 jobapimodels.JobListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/job/list [post]
func (c *publicJobApiController) list(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	// the board never shows archived jobs
	payload.Status = models.JobStatusActive
	page, limit := payload.GetPage()
	list, rowCount, err := jobhandler.Instance.List(payload.JobFilter, page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get by slug
// @Tags Job board
// @Description Job posting by its URL slug
// @Param   slug          		path    string  true         "job slug"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/job/{slug} [get]
func (c *publicJobApiController) getBySlug(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")
	if slug == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job slug is not specified"))
	}
	resp, err := jobhandler.Instance.GetBySlug(slug)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get job")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Apply
// @Tags Job board
// @Description Apply for an active job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.ApplyRequest	true	"request body"
// @Param   id          		path    string  true         "job ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/job/{id}/apply [post]
func (c *publicJobApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.ApplyRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	recID, hMsg, err := candidatehandler.Instance.Apply(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to apply for job")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary My applications
// @Tags Job board
// @Description Applications submitted by the authorized user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.CandidateView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/job/my_applications [get]
func (c *publicJobApiController) myApplications(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := candidatehandler.Instance.ListByUser(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
