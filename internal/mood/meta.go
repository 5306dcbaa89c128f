// Package mood maps the five mood scores to their display metadata.
package mood

// Score labels, emoji and colors for the 1-5 scale. Out-of-range scores fall
// back to neutral values; scores are never clamped.

var labels = map[int]string{
	1: "Very Sad",
	2: "Sad",
	3: "Neutral",
	4: "Happy",
	5: "Very Happy",
}

var emojis = map[int]string{
	1: "😢",
	2: "😔",
	3: "😐",
	4: "😊",
	5: "😄",
}

var colors = map[int]string{
	1: "#FF6B6B",
	2: "#FFA726",
	3: "#FFD93D",
	4: "#6BCF7F",
	5: "#4ECDC4",
}

var suggestions = map[int]string{
	1: "Be kind to yourself today. Try deep breathing or a short walk. Remember, this feeling will pass.",
	2: "Small steps matter. Consider talking to a friend or listening to your favorite music.",
	3: "Balance is key. Maybe try a new hobby or activity to boost your mood.",
	4: "Great energy! Share your positivity with others or enjoy your favorite activity.",
	5: "Amazing! Your positive mindset is shining. Keep spreading the good vibes!",
}

// Label returns the scale label for a score.
func Label(score int) string {
	if v, ok := labels[score]; ok {
		return v
	}
	return "Neutral"
}

// Emoji returns the emoji for a score.
func Emoji(score int) string {
	if v, ok := emojis[score]; ok {
		return v
	}
	return "😐"
}

// Color returns the calendar cell color for a score.
func Color(score int) string {
	if v, ok := colors[score]; ok {
		return v
	}
	return "#CCCCCC"
}

// Suggestion returns the post-save suggestion text for a score.
func Suggestion(score int) string {
	if v, ok := suggestions[score]; ok {
		return v
	}
	return "Take a moment to appreciate today."
}
