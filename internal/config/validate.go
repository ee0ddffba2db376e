package config

import (
	"errors"
	"fmt"
	"slices"
)

// Content validation errors.
var (
	ErrNoStages         = errors.New("quiz has no stages")
	ErrNoConstellations = errors.New("star map has no constellations")
	ErrNoFortunes       = errors.New("wheel has no fortunes")
	ErrAnswerNotOption  = errors.New("answer is not one of the options")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrOutOfRange       = errors.New("position outside 0-100")
)

// Validate checks the content for problems that would make a game unplayable.
func (c Content) Validate() error {
	if err := c.Quiz.Validate(); err != nil {
		return err
	}
	if err := c.Stars.Validate(); err != nil {
		return err
	}
	return c.Wheel.Validate()
}

// Validate checks the quiz stages.
func (q QuizContent) Validate() error {
	if len(q.Stages) == 0 {
		return ErrNoStages
	}
	for i, s := range q.Stages {
		if err := checkQuestion(s.Options, s.Answer); err != nil {
			return fmt.Errorf("stage %d (%s): %w", i+1, s.Name, err)
		}
	}
	return nil
}

// Validate checks the constellations.
func (s StarsContent) Validate() error {
	if len(s.Constellations) == 0 {
		return ErrNoConstellations
	}
	seen := make(map[string]bool, len(s.Constellations))
	for i, c := range s.Constellations {
		if seen[c.Name] {
			return fmt.Errorf("constellation %d: %w %q", i+1, ErrDuplicateName, c.Name)
		}
		seen[c.Name] = true
		if c.X < 0 || c.X > 100 || c.Y < 0 || c.Y > 100 {
			return fmt.Errorf("constellation %d (%s): %w", i+1, c.Name, ErrOutOfRange)
		}
		if err := checkQuestion(c.Options, c.Answer); err != nil {
			return fmt.Errorf("constellation %d (%s): %w", i+1, c.Name, err)
		}
	}
	return nil
}

// Validate checks the fortunes.
func (w WheelContent) Validate() error {
	if len(w.Fortunes) == 0 {
		return ErrNoFortunes
	}
	return nil
}

func checkQuestion(options []string, answer string) error {
	if len(options) == 0 {
		return errors.New("no options")
	}
	if !slices.Contains(options, answer) {
		return fmt.Errorf("%w: %q", ErrAnswerNotOption, answer)
	}
	return nil
}
