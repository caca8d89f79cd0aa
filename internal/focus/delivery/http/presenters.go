package http

import (
	"time"

	"personal-task-management/internal/focus"
	"personal-task-management/internal/model"
)

// --- Request DTOs ---

type startReq struct {
	TaskID      string `json:"task_id"`
	SessionType string `json:"session_type" binding:"omitempty,oneof=pomodoro deep_work break custom"`
	Notes       string `json:"notes"        binding:"max=2000"`
}

func (r startReq) validate() error { return nil }

func (r startReq) toInput() focus.StartInput {
	return focus.StartInput{
		TaskID:      r.TaskID,
		SessionType: r.SessionType,
		Notes:       r.Notes,
	}
}

// ---

type listReq struct {
	TaskID string `form:"task_id"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() focus.ListInput {
	return focus.ListInput{
		TaskID: r.TaskID,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	ID              string     `json:"id"`
	TaskID          string     `json:"task_id,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	SessionType     string     `json:"session_type"`
	Interruptions   int        `json:"interruptions"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func newSessionResp(s model.FocusSession) sessionResp {
	return sessionResp{
		ID:              s.ID,
		TaskID:          s.TaskID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		SessionType:     s.SessionType,
		Interruptions:   s.Interruptions,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
	}
}

type startResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newStartResp(out focus.StartOutput) startResp {
	return startResp{Session: newSessionResp(out.Session)}
}

type endResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newEndResp(out focus.EndOutput) endResp {
	return endResp{Session: newSessionResp(out.Session)}
}

type interruptResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newInterruptResp(out focus.InterruptOutput) interruptResp {
	return interruptResp{Session: newSessionResp(out.Session)}
}

type listResp struct {
	Sessions []sessionResp `json:"sessions"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out focus.ListOutput) listResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return listResp{
		Sessions: sessions,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}
