package insight

import "time"

// Static productivity tips shown alongside personalized suggestions.
// The catalog rotates by day; there is no computation behind it.
var tipCatalog = []Tip{
	{
		Title:       "Batch similar tasks",
		Description: "Group calls, emails and errands together to cut context switching.",
	},
	{
		Title:       "Two-minute rule",
		Description: "If a task takes under two minutes, do it now instead of tracking it.",
	},
	{
		Title:       "Plan tomorrow tonight",
		Description: "Pick your top three tasks for tomorrow before ending the day.",
	},
	{
		Title:       "Protect your focus blocks",
		Description: "Schedule deep work sessions and silence notifications during them.",
	},
	{
		Title:       "Review weekly",
		Description: "Spend ten minutes each week clearing stale tasks and reprioritizing.",
	},
	{
		Title:       "Use voice capture",
		Description: "Dictate tasks the moment they come to mind so nothing slips away.",
	},
}

// tipsPerDay is how many catalog entries are surfaced at once.
const tipsPerDay = 3

// RotateTips returns the day's slice of the static catalog. The selection
// depends only on the calendar day, so repeated calls within a day agree.
func RotateTips(now time.Time) []Tip {
	start := now.YearDay() % len(tipCatalog)
	tips := make([]Tip, 0, tipsPerDay)
	for i := 0; i < tipsPerDay; i++ {
		tips = append(tips, tipCatalog[(start+i)%len(tipCatalog)])
	}
	return tips
}
