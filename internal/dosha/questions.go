package dosha

import "github.com/ayurnest/ayurnest-backend/pkg/enums"

// Option is one selectable quiz answer tagged with the base dosha it counts
// toward.
type Option struct {
	Label string      `json:"label"`
	Dosha enums.Dosha `json:"dosha"`
}

// Question is one quiz prompt with its three options.
type Question struct {
	Index   int      `json:"index"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

var questions = []Question{
	{
		Index:  0,
		Prompt: "How would you describe your body frame?",
		Options: []Option{
			{Label: "Thin and light, I find it hard to gain weight", Dosha: enums.DoshaVata},
			{Label: "Medium build with good muscle tone", Dosha: enums.DoshaPitta},
			{Label: "Broad and sturdy, I gain weight easily", Dosha: enums.DoshaKapha},
		},
	},
	{
		Index:  1,
		Prompt: "What best matches your skin?",
		Options: []Option{
			{Label: "Dry, rough, or cool to the touch", Dosha: enums.DoshaVata},
			{Label: "Warm, sensitive, prone to redness", Dosha: enums.DoshaPitta},
			{Label: "Smooth, oily, and thick", Dosha: enums.DoshaKapha},
		},
	},
	{
		Index:  2,
		Prompt: "How is your appetite most days?",
		Options: []Option{
			{Label: "Irregular, I sometimes forget to eat", Dosha: enums.DoshaVata},
			{Label: "Strong, I get irritable when meals are late", Dosha: enums.DoshaPitta},
			{Label: "Steady but mild, I can skip meals easily", Dosha: enums.DoshaKapha},
		},
	},
	{
		Index:  3,
		Prompt: "What does your sleep look like?",
		Options: []Option{
			{Label: "Light and easily disturbed", Dosha: enums.DoshaVata},
			{Label: "Sound but short, I wake up alert", Dosha: enums.DoshaPitta},
			{Label: "Deep and long, I wake up slowly", Dosha: enums.DoshaKapha},
		},
	},
	{
		Index:  4,
		Prompt: "How do you usually respond to stress?",
		Options: []Option{
			{Label: "I worry and my mind races", Dosha: enums.DoshaVata},
			{Label: "I get impatient or frustrated", Dosha: enums.DoshaPitta},
			{Label: "I withdraw and avoid confrontation", Dosha: enums.DoshaKapha},
		},
	},
}

// Questions returns the full quiz in order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionCount is the fixed quiz length.
func QuestionCount() int {
	return len(questions)
}
