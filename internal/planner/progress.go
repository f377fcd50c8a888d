package planner

import (
	"math"

	"studyplan/internal/service"
)

// Summarize builds a Progress with the completion rate rounded to the
// nearest percent. An empty collection has rate 0.
func Summarize(total, completed int) service.Progress {
	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return service.Progress{Total: total, Completed: completed, Rate: rate}
}

type threshold struct {
	min     int
	message string
}

// Descending; the first entry whose min is <= rate wins.
var messages = []threshold{
	{100, "Perfect! You're a study superstar! ✨"},
	{80, "Amazing progress! Keep it up! 🌟"},
	{60, "Great work! You're doing well! 💖"},
	{40, "Good start! Keep going! 🌸"},
	{20, "Nice beginning! You can do it! 💪"},
	{0, "Ready to start your study journey? 🚀"},
}

// MotivationalMessage returns the message for the highest threshold not
// above rate. Negative rates get the lowest message.
func MotivationalMessage(rate int) string {
	for _, th := range messages {
		if th.min <= rate {
			return th.message
		}
	}
	return messages[len(messages)-1].message
}

var milestones = []service.Achievement{
	{Count: 1, Title: "First Step!", Icon: "🌱", Description: "Completed your first task"},
	{Count: 5, Title: "Getting Started!", Icon: "🌸", Description: "5 tasks completed"},
	{Count: 10, Title: "Study Warrior!", Icon: "⚔️", Description: "10 tasks completed"},
	{Count: 20, Title: "Academic Hero!", Icon: "🏆", Description: "20 tasks completed"},
	{Count: 50, Title: "Study Master!", Icon: "👑", Description: "50 tasks completed"},
}

// Achievements returns every milestone reached with completed tasks,
// in ascending order.
func Achievements(completed int) []service.Achievement {
	var earned []service.Achievement
	for _, m := range milestones {
		if m.Count <= completed {
			earned = append(earned, m)
		}
	}
	return earned
}

// Milestones returns the full milestone table.
func Milestones() []service.Achievement {
	return append([]service.Achievement(nil), milestones...)
}
