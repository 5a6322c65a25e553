package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-tracker/pkg/response"
)

// Parse godoc
// @Summary     Parse a voice transcript
// @Description Extracts title, description, priority, status, due date and the auto-create flag from spoken text.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Transcript"
// @Success     200  {object} response.Resp{data=commandResp}
// @Failure     400  {object} response.Resp "No text provided"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/voice/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		if mapped := h.mapError(err); mapped != nil {
			err = mapped
		}
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		mapped := h.mapError(err)
		if mapped == nil {
			h.l.Errorf(ctx, "uc.Parse: %v", err)
			response.InternalError(c, err)
			return
		}
		response.Error(c, mapped)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Test godoc
// @Summary     Parse the sample transcripts
// @Description Runs the fixed sample transcripts through the parser and returns input/parsed pairs.
// @Tags        Voice
// @Produce     json
// @Success     200 {object} response.Resp{data=[]sampleResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/voice/test [POST]
func (h *handler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TestSamples(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.TestSamples: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newTestResp(output))
}
