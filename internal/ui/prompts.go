package ui

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNonInteractive is returned when a prompt is needed but prompting is disabled
var ErrNonInteractive = errors.New("input required but running non-interactively")

// PromptInputRequired prompts for required input (cannot be empty)
func (u *UI) PromptInputRequired(prompt string) (string, error) {
	if u.nonInteractive {
		return "", ErrNonInteractive
	}

	var result string
	p := &survey.Input{
		Message: prompt,
	}

	err := survey.AskOne(p, &result, survey.WithValidator(survey.Required))
	return strings.TrimSpace(result), err
}
