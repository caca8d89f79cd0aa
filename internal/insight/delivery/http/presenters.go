package http

import (
	"personal-task-management/internal/insight"
)

// --- Request DTOs ---

type metricsReq struct {
	Days int `form:"days" binding:"omitempty,min=1,max=90"`
}

func (r metricsReq) validate() error { return nil }

func (r metricsReq) toInput() insight.MetricsInput {
	return insight.MetricsInput{Days: r.Days}
}

// --- Response DTOs ---

type metricsResp struct {
	ProductivityScore int `json:"productivity_score"`
	CompletionRate    int `json:"completion_rate"`
	VoiceUsageRate    int `json:"voice_usage_rate"`
	Days              int `json:"days"`
}

func (h *handler) newMetricsResp(out insight.MetricsOutput) metricsResp {
	return metricsResp{
		ProductivityScore: out.Metrics.ProductivityScore,
		CompletionRate:    out.Metrics.CompletionRate,
		VoiceUsageRate:    out.Metrics.VoiceUsageRate,
		Days:              out.Days,
	}
}

type suggestionResp struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type suggestionsResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

func (h *handler) newSuggestionsResp(out insight.SuggestionsOutput) suggestionsResp {
	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = suggestionResp{
			Kind:        s.Kind,
			Title:       s.Title,
			Description: s.Description,
			Priority:    s.Priority,
		}
	}
	return suggestionsResp{Suggestions: suggestions}
}

type tipResp struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type tipsResp struct {
	Tips []tipResp `json:"tips"`
}

func (h *handler) newTipsResp(out insight.TipsOutput) tipsResp {
	tips := make([]tipResp, len(out.Tips))
	for i, tip := range out.Tips {
		tips[i] = tipResp{Title: tip.Title, Description: tip.Description}
	}
	return tipsResp{Tips: tips}
}
