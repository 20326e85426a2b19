package content

import "github.com/ayurnest/ayurnest-backend/pkg/enums"

// RoutineStep is one entry in a dosha-specific daily routine.
type RoutineStep struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Detail   string `json:"detail"`
}

// Routine is the recommended daily rhythm for one base dosha.
type Routine struct {
	Dosha enums.Dosha   `json:"dosha"`
	Steps []RoutineStep `json:"steps"`
}

var routines = map[enums.Dosha]Routine{
	enums.DoshaVata: {
		Dosha: enums.DoshaVata,
		Steps: []RoutineStep{
			{Time: "06:00", Activity: "Wake gently", Detail: "Rise at the same time daily; avoid jolting alarms."},
			{Time: "06:30", Activity: "Warm oil massage", Detail: "Self-massage with warm sesame oil before a warm shower."},
			{Time: "07:30", Activity: "Grounding breakfast", Detail: "Warm porridge with ghee and stewed fruit."},
			{Time: "12:30", Activity: "Main meal", Detail: "Cooked, mildly spiced lunch eaten without screens."},
			{Time: "18:00", Activity: "Gentle movement", Detail: "Slow yoga or a short walk; avoid intense evening exercise."},
			{Time: "21:30", Activity: "Wind down", Detail: "Warm milk with nutmeg; bed by ten."},
		},
	},
	enums.DoshaPitta: {
		Dosha: enums.DoshaPitta,
		Steps: []RoutineStep{
			{Time: "05:30", Activity: "Early rise", Detail: "Wake before the sun while the air is cool."},
			{Time: "06:00", Activity: "Cooling practice", Detail: "Moonlight or shade walks, cooling breathwork."},
			{Time: "08:00", Activity: "Moderate breakfast", Detail: "Sweet fruit, grains, avoid coffee on an empty stomach."},
			{Time: "12:00", Activity: "Main meal", Detail: "Largest meal at noon when digestion peaks."},
			{Time: "17:30", Activity: "Exercise", Detail: "Swim or cycle in the cooler part of the day."},
			{Time: "22:00", Activity: "Cool down", Detail: "No heated debates or work email before bed."},
		},
	},
	enums.DoshaKapha: {
		Dosha: enums.DoshaKapha,
		Steps: []RoutineStep{
			{Time: "05:00", Activity: "Early rise", Detail: "Up before six to avoid morning heaviness."},
			{Time: "05:30", Activity: "Vigorous exercise", Detail: "Brisk movement daily; sweat a little every morning."},
			{Time: "08:00", Activity: "Light breakfast", Detail: "Skip or keep very light; ginger tea helps."},
			{Time: "12:30", Activity: "Main meal", Detail: "Warm, spiced lunch; largest meal of the day."},
			{Time: "18:30", Activity: "Light dinner", Detail: "Soup or steamed vegetables, finished early."},
			{Time: "22:00", Activity: "Sleep", Detail: "Avoid daytime naps; they aggravate kapha."},
		},
	},
}

// RoutineFor returns the daily routine for a base dosha.
func RoutineFor(dosha enums.Dosha) (Routine, bool) {
	routine, ok := routines[dosha]
	return routine, ok
}

// Routines returns every routine in canonical dosha order.
func Routines() []Routine {
	return []Routine{
		routines[enums.DoshaVata],
		routines[enums.DoshaPitta],
		routines[enums.DoshaKapha],
	}
}
