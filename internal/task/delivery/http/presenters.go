package http

import (
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	"personal-task-management/pkg/nlparse"
	"personal-task-management/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title             string   `json:"title"              binding:"required,min=1,max=255"`
	Description       string   `json:"description"        binding:"max=2000"`
	DueDate           string   `json:"due_date"           binding:"omitempty,datetime=2006-01-02"`
	DueTime           string   `json:"due_time"           binding:"omitempty,datetime=15:04"`
	Priority          string   `json:"priority"           binding:"omitempty,oneof=low medium high"`
	Tags              []string `json:"tags"`
	Category          string   `json:"category"           binding:"max=100"`
	Location          string   `json:"location"           binding:"max=255"`
	EstimatedDuration int      `json:"estimated_duration" binding:"omitempty,min=0"`
	Notes             string   `json:"notes"              binding:"max=2000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:             r.Title,
		Description:       r.Description,
		DueDate:           parseDate(r.DueDate),
		DueTime:           r.DueTime,
		Priority:          r.Priority,
		Tags:              r.Tags,
		Category:          r.Category,
		Location:          r.Location,
		EstimatedDuration: r.EstimatedDuration,
		Notes:             r.Notes,
	}
}

// ---

type voiceCreateReq struct {
	Utterance string `json:"utterance" binding:"required,min=1,max=1000"`
}

func (r voiceCreateReq) validate() error { return nil }

func (r voiceCreateReq) toInput() task.VoiceCreateInput {
	return task.VoiceCreateInput{Utterance: r.Utterance}
}

// ---

type parseReq struct {
	Utterance string `json:"utterance" binding:"required,min=1,max=1000"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{Utterance: r.Utterance}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Tag      string `form:"tag"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:   r.Status,
		Priority: r.Priority,
		Tag:      r.Tag,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

// ---

type updateReq struct {
	ID                string   `json:"-"` // populated from URI param
	Title             string   `json:"title"              binding:"omitempty,min=1,max=255"`
	Description       string   `json:"description"        binding:"omitempty,max=2000"`
	DueDate           string   `json:"due_date"           binding:"omitempty,datetime=2006-01-02"`
	ClearDueDate      bool     `json:"clear_due_date"`
	DueTime           string   `json:"due_time"           binding:"omitempty,datetime=15:04"`
	Priority          string   `json:"priority"           binding:"omitempty,oneof=low medium high"`
	Tags              []string `json:"tags"`
	Category          string   `json:"category"           binding:"omitempty,max=100"`
	Location          string   `json:"location"           binding:"omitempty,max=255"`
	EstimatedDuration int      `json:"estimated_duration" binding:"omitempty,min=0"`
	Notes             string   `json:"notes"              binding:"omitempty,max=2000"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		DueDate:           parseDate(r.DueDate),
		ClearDueDate:      r.ClearDueDate,
		DueTime:           r.DueTime,
		Priority:          r.Priority,
		Tags:              r.Tags,
		Category:          r.Category,
		Location:          r.Location,
		EstimatedDuration: r.EstimatedDuration,
		Notes:             r.Notes,
	}
}

// ---

type updateStatusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

func (r updateStatusReq) validate() error { return nil }

func (r updateStatusReq) toInput() task.UpdateStatusInput {
	return task.UpdateStatusInput{ID: r.ID, Status: r.Status}
}

// parseDate converts a validated "2006-01-02" string to a date pointer.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}

// --- Response DTOs ---

type taskResp struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	Tags              []string   `json:"tags"`
	Category          string     `json:"category"`
	Location          string     `json:"location,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	DueDate           string     `json:"due_date,omitempty"`
	DueTime           string     `json:"due_time,omitempty"`
	EstimatedDuration int        `json:"estimated_duration,omitempty"`
	ActualDuration    int        `json:"actual_duration,omitempty"`
	VoiceCreated      bool       `json:"voice_created"`
	VoiceConfidence   float64    `json:"voice_confidence,omitempty"`
	AISuggested       bool       `json:"ai_suggested"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Status:            t.Status,
		Priority:          t.Priority,
		Tags:              t.Tags,
		Category:          t.Category,
		Location:          t.Location,
		Notes:             t.Notes,
		DueTime:           t.DueTime,
		EstimatedDuration: t.EstimatedDuration,
		ActualDuration:    t.ActualDuration,
		VoiceCreated:      t.VoiceCreated,
		VoiceConfidence:   t.VoiceConfidence,
		AISuggested:       t.AISuggested,
		CompletedAt:       t.CompletedAt,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(response.DateFormat)
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type draftResp struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	DueDate           string   `json:"due_date,omitempty"`
	DueTime           string   `json:"due_time,omitempty"`
	Priority          string   `json:"priority"`
	Tags              []string `json:"tags"`
	Category          string   `json:"category"`
	Location          string   `json:"location,omitempty"`
	EstimatedDuration int      `json:"estimated_duration,omitempty"`
	Confidence        float64  `json:"confidence"`
	Status            string   `json:"status"`
}

type parseResp struct {
	Draft draftResp `json:"draft"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{Draft: newDraftResp(out.Draft)}
}

func newDraftResp(d nlparse.Draft) draftResp {
	resp := draftResp{
		Title:             d.Title,
		Description:       d.Description,
		DueTime:           d.DueTime,
		Priority:          d.Priority,
		Tags:              d.Tags,
		Category:          d.Category,
		Location:          d.Location,
		EstimatedDuration: d.EstimatedDuration,
		Confidence:        d.Confidence,
		Status:            d.Status,
	}
	if d.DueDate != nil {
		resp.DueDate = d.DueDate.Format(response.DateFormat)
	}
	return resp
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(out task.ToggleOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task)}
}
