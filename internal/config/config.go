// Package config provides the kiosk's tuning constants and the YAML-based
// content (quiz stages, constellations, fortunes) for the three mini-games.
package config

import "time"

// Tuning constants. These are compiled in and not read from content files.
const (
	WarnDelay    = 240 * time.Second // Idle time before the warning banner
	TimeoutDelay = 300 * time.Second // Idle time before resetting to the menu

	AnswerFeedbackDuration = 2000 * time.Millisecond // Quiz correct/incorrect banner
	WrongClickDuration     = 600 * time.Millisecond  // Sky flash on a missed tap
	CompletionDelay        = 1000 * time.Millisecond // Last constellation to final screen

	TapTolerance = 10.0 // Half-width of a target's square hit region, in percent

	SpinDuration = 5000 * time.Millisecond
	FullSpins    = 5
)

// Content holds everything the mini-games display.
type Content struct {
	Quiz  QuizContent  `yaml:"quiz"`
	Stars StarsContent `yaml:"stars"`
	Wheel WheelContent `yaml:"wheel"`
}

// QuizContent defines the Quiz of Mithras stages.
type QuizContent struct {
	Stages     []StageConfig `yaml:"stages"`
	FinalTitle string        `yaml:"final_title"`
	FinalText  string        `yaml:"final_text"`
}

// StageConfig is one grade of the quiz.
type StageConfig struct {
	Name     string   `yaml:"name"`
	Symbol   string   `yaml:"symbol"`
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Answer   string   `yaml:"answer"`
}

// StarsContent defines the Starry Sky Mystery targets.
type StarsContent struct {
	Constellations []ConstellationConfig `yaml:"constellations"`
	Hint           string                `yaml:"hint"`
	FinalTitle     string                `yaml:"final_title"`
	FinalText      string                `yaml:"final_text"`
}

// ConstellationConfig is one discoverable constellation.
// X and Y are percentages of the sky area.
type ConstellationConfig struct {
	Name     string   `yaml:"name"`
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Answer   string   `yaml:"answer"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
}

// WheelContent lists the Fortune Wheel outcomes in wedge order.
type WheelContent struct {
	Fortunes []string `yaml:"fortunes"`
}
