package http

import (
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/reminder"
)

// --- Request DTOs ---

type createReq struct {
	TaskID   string    `json:"task_id"   binding:"required"`
	RemindAt time.Time `json:"remind_at" binding:"required"`
	Type     string    `json:"type"      binding:"omitempty,oneof=notification email sms"`
	Message  string    `json:"message"   binding:"max=500"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() reminder.CreateInput {
	return reminder.CreateInput{
		TaskID:   r.TaskID,
		RemindAt: r.RemindAt,
		Type:     r.Type,
		Message:  r.Message,
	}
}

// ---

type listReq struct {
	TaskID string `form:"task_id"`
	Sent   *bool  `form:"sent"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() reminder.ListInput {
	return reminder.ListInput{
		TaskID: r.TaskID,
		Sent:   r.Sent,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type reminderResp struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	RemindAt  time.Time `json:"remind_at"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Sent      bool      `json:"sent"`
	CreatedAt time.Time `json:"created_at"`
}

func newReminderResp(r model.Reminder) reminderResp {
	return reminderResp{
		ID:        r.ID,
		TaskID:    r.TaskID,
		RemindAt:  r.RemindAt,
		Type:      r.Type,
		Message:   r.Message,
		Sent:      r.Sent,
		CreatedAt: r.CreatedAt,
	}
}

type createResp struct {
	Reminder reminderResp `json:"reminder"`
}

func (h *handler) newCreateResp(out reminder.CreateOutput) createResp {
	return createResp{Reminder: newReminderResp(out.Reminder)}
}

type listResp struct {
	Reminders []reminderResp `json:"reminders"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

func (h *handler) newListResp(out reminder.ListOutput) listResp {
	reminders := make([]reminderResp, len(out.Reminders))
	for i, r := range out.Reminders {
		reminders[i] = newReminderResp(r)
	}
	return listResp{
		Reminders: reminders,
		Total:     out.Total,
		Limit:     out.Limit,
		Offset:    out.Offset,
	}
}

type dueResp struct {
	Reminders []reminderResp `json:"reminders"`
}

func (h *handler) newDueResp(out reminder.DueOutput) dueResp {
	reminders := make([]reminderResp, len(out.Reminders))
	for i, r := range out.Reminders {
		reminders[i] = newReminderResp(r)
	}
	return dueResp{Reminders: reminders}
}
