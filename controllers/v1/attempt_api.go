package apiv1

import (
	"talentflow-backend/controllers"
	"talentflow-backend/lib/assessment/attempt"
	"talentflow-backend/middleware"
	apimodels "talentflow-backend/models/api"
	assessmentapimodels "talentflow-backend/models/api/assessment"

	"github.com/gofiber/fiber/v2"
)

type attemptApiController struct {
	controllers.BaseAPIController
}

func InitAttemptApiRouters(app *fiber.App) {
	controller := attemptApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.snapshot)
			idRoute.Put("draft", controller.saveDraft)
			idRoute.Delete("draft", controller.clearDraft)
			idRoute.Post("submit", controller.submit)
		})
	})
}

// @Summary Snapshot
// @Tags Assessment attempt
// @Description Assessment form with the caller's submission state and draft
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "job ID"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.AttemptView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/job/{id} [get]
func (c *attemptApiController) snapshot(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, hMsg, err := attempt.Instance.Snapshot(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get assessment")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Save draft
// @Tags Assessment attempt
// @Description Autosave in-progress answers
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 assessmentapimodels.DraftRequest	true	"request body"
// @Param   id          		path    string  true         "job ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/job/{id}/draft [put]
func (c *attemptApiController) saveDraft(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.DraftRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	hMsg, err := attempt.Instance.SaveDraft(userID, id, payload.Answers)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to save draft")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Clear draft
// @Tags Assessment attempt
// @Description Remove the autosaved draft
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "job ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/job/{id}/draft [delete]
func (c *attemptApiController) clearDraft(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	hMsg, err := attempt.Instance.ClearDraft(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to clear draft")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Submit
// @Tags Assessment attempt
// @Description Validate and record the final answer set
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 assessmentapimodels.SubmitRequest	true	"request body"
// @Param   id          		path    string  true         "job ID"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.ResponseView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/job/{id}/submit [post]
func (c *attemptApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.SubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, hMsg, err := attempt.Instance.Submit(userID, id, payload.Answers)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to submit assessment")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
