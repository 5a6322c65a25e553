package http

import (
	"strings"

	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return voice.ErrEmptyInput
	}
	return nil
}

func (r parseReq) toInput() voice.ParseInput {
	return voice.ParseInput{Text: r.Text}
}

// --- Response DTOs ---

type commandResp struct {
	Transcript  string             `json:"transcript"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	DueDate     *response.DateTime `json:"dueDate"`
	Priority    string             `json:"priority"`
	Status      string             `json:"status"`
	AutoCreate  bool               `json:"autoCreate"`
}

func newCommandResp(cmd voice.ParsedCommand) commandResp {
	resp := commandResp{
		Transcript:  cmd.Transcript,
		Title:       cmd.Title,
		Description: cmd.Description,
		Priority:    string(cmd.Priority),
		Status:      string(cmd.Status),
		AutoCreate:  cmd.AutoCreate,
	}
	if cmd.DueDate != nil {
		d := response.DateTime(*cmd.DueDate)
		resp.DueDate = &d
	}
	return resp
}

func (h *handler) newParseResp(out voice.ParseOutput) commandResp {
	return newCommandResp(out.Command)
}

type sampleResp struct {
	Input  string      `json:"input"`
	Parsed commandResp `json:"parsed"`
}

func (h *handler) newTestResp(out voice.TestSamplesOutput) []sampleResp {
	res := make([]sampleResp, len(out.Samples))
	for i, s := range out.Samples {
		res[i] = sampleResp{
			Input:  s.Input,
			Parsed: newCommandResp(s.Parsed),
		}
	}
	return res
}
