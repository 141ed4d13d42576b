package apiv1

import (
	"talentflow-backend/controllers"
	assessmenthandler "talentflow-backend/lib/assessment"
	apimodels "talentflow-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type assessmentApiController struct {
	controllers.BaseAPIController
}

func InitAssessmentApiRouters(app *fiber.App) {
	controller := assessmentApiController{}
	app.Route("assessment", func(router fiber.Router) {
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("submissions", controller.submissions)
			idRoute.Get("submissions/export", controller.exportSubmissions)
		})
	})
}

// @Summary Submissions
// @Tags Assessment
// @Description Submitted responses for an assessment, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "assessment ID"
// @Success 200 {object} apimodels.Response{data=[]assessmentapimodels.ResponseView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/assessment/{id}/submissions [get]
func (c *assessmentApiController) submissions(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := assessmenthandler.Instance.Submissions(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list submissions")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export submissions
// @Tags Assessment
// @Description Export submitted responses as an XLSX file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "assessment ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/assessment/{id}/submissions/export [get]
func (c *assessmentApiController) exportSubmissions(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, hMsg, err := assessmenthandler.Instance.ExportSubmissions(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export submissions")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="submissions.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
