package task

// MotivationMessages is the fixed set GET /motivation draws from.
var MotivationMessages = []string{
	"Let's just start with 10 focused minutes. We can always stop after that.",
	"Tiny progress is still progress. I'm proud of you.",
	"Breaks are part of productivity, not the opposite of it.",
	"Your future self is already thanking you for showing up today.",
	"You don't need to be perfect; just keep moving gently forward.",
	"Deep breath. You've handled harder days than this.",
}
