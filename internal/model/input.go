package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ModelInput mirrors the JSON problem description consumed by the CLI and the
// external renderers.
type ModelInput struct {
	Classes  []ClassInput   `mapstructure:"classes" validate:"dive"`
	Subjects []SubjectInput `mapstructure:"subjects" validate:"dive"`
	Teachers []TeacherInput `mapstructure:"teachers" validate:"dive"`
}

type ClassInput struct {
	Class    string   `mapstructure:"class" validate:"required"`
	Subjects []string `mapstructure:"subjects"`
}

type SubjectInput struct {
	Subject string `mapstructure:"Subject" validate:"required"`
	Periods uint64 `mapstructure:"Periods" validate:"gt=0"`
}

type TeacherInput struct {
	Teacher string `mapstructure:"Teacher" validate:"required"`
	Subject string `mapstructure:"Subject" validate:"required"`
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var input ModelInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ModelInput{}, err
	}

	return input, nil
}
