package config

import (
	_ "embed"
)

//go:embed defaults/content.yaml
var defaultContentYAML []byte

// DefaultContent returns the built-in content used when the embedded YAML
// cannot be parsed.
func DefaultContent() Content {
	return Content{
		Quiz: QuizContent{
			FinalTitle: "You are now a PATER of the Mysteries",
			FinalText:  "The torch is passed. The stars align. You wear the golden cloak of wisdom.",
			Stages: []StageConfig{
				{Name: "Corax", Symbol: "🐦", Question: "What creature is associated with the Corax stage?", Options: []string{"Crow", "Bull", "Lion"}, Answer: "Crow"},
				{Name: "Nymphus", Symbol: "💍", Question: "What does the Nymphus stage represent?", Options: []string{"Sun", "War", "Marriage"}, Answer: "Marriage"},
				{Name: "Miles", Symbol: "⚔", Question: "What is a Miles in Mithraism?", Options: []string{"A farmer", "A priest", "A soldier"}, Answer: "A soldier"},
				{Name: "Leo", Symbol: "🦁", Question: "Which element is associated with Leo?", Options: []string{"Fire", "Water", "Earth"}, Answer: "Fire"},
				{Name: "Perses", Symbol: "🌑", Question: "What does Perses symbolize?", Options: []string{"Moon", "Star Wisdom", "Darkness"}, Answer: "Star Wisdom"},
				{Name: "Heliodromus", Symbol: "☀", Question: "What is the role of Heliodromus?", Options: []string{"Bull Slayer", "Moon Watcher", "Sun Runner"}, Answer: "Sun Runner"},
				{Name: "Pater", Symbol: "🧙", Question: "What happens at the Pater stage?", Options: []string{"War", "Sacrifice", "Enlightenment"}, Answer: "Enlightenment"},
			},
		},
		Stars: StarsContent{
			Hint:       "Hint: Think about Mithra's symbolic battles.",
			FinalTitle: "Welcome to the Mysteries of the Sky",
			FinalText:  "As Mithras mastered the bull, so the stars shape our destiny.",
			Constellations: []ConstellationConfig{
				{Name: "Taurus", Question: "What does Taurus represent in Mithraism?", Options: []string{"The Bull of Heaven", "Messenger of the Moon", "God of War"}, Answer: "The Bull of Heaven", X: 30, Y: 40},
				{Name: "Canis Major", Question: "What is Canis Major associated with?", Options: []string{"Guardian of the Bull", "Star of the King", "Solar Chariot"}, Answer: "Guardian of the Bull", X: 70, Y: 60},
			},
		},
		Wheel: WheelContent{
			Fortunes: []string{
				"Fortuna smiles upon your endeavors.",
				"A twist of fate is near, be ready.",
				"A golden opportunity lies ahead.",
				"Tread carefully, luck is a double-edged sword.",
				"Your path is favored by the gods.",
				"Expect the unexpected. Fortuna sees all.",
				"Now is the time to take a bold leap.",
				"You are guided by unseen forces of prosperity.",
			},
		},
	}
}
