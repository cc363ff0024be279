package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func consistentInput() ModelInput {
	return ModelInput{
		Classes: []ClassInput{
			{Class: "Grade 10A", Subjects: []string{"Math", "English"}},
			{Class: "Grade 10B", Subjects: []string{"Math"}},
		},
		Subjects: []SubjectInput{
			{Subject: "Math", Periods: 5},
			{Subject: "English", Periods: 4},
		},
		Teachers: []TeacherInput{
			{Teacher: "T1", Subject: "Math"},
			{Teacher: "T2", Subject: " English "},
		},
	}
}

func kindOf(t *testing.T, err error) ValidationKind {
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr), "expected a ValidationError, got %v", err)
	return validationErr.Kind
}

func TestValidate(t *testing.T) {
	t.Run("normalizes a consistent description", func(t *testing.T) {
		// Act
		descriptor, err := Validate(consistentInput(), 40)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, []string{"Grade 10A", "Grade 10B"}, descriptor.Classes)
		assert.Equal(t, []string{"Math", "English"}, descriptor.Subjects)
		assert.Equal(t, []string{"T1", "T2"}, descriptor.Teachers)
		assert.Equal(t, []uint64{5, 4}, descriptor.Periods)
		// Teacher subject keys are whitespace-trimmed before cross-referencing
		assert.Equal(t, []uint64{0, 1}, descriptor.TeacherOf)
		assert.Equal(t, [][]uint64{{0, 1}, {0}}, descriptor.Curriculum)
	})

	t.Run("rejects a class referencing an undefined subject", func(t *testing.T) {
		input := consistentInput()
		input.Classes[0].Subjects = append(input.Classes[0].Subjects, "History")

		_, err := Validate(input, 40)

		assert.Equal(t, UnknownSubject, kindOf(t, err))
	})

	t.Run("rejects a subject without a teacher", func(t *testing.T) {
		input := consistentInput()
		input.Teachers = input.Teachers[:1]

		_, err := Validate(input, 40)

		assert.Equal(t, MissingTeacher, kindOf(t, err))
	})

	t.Run("rejects a subject with two teachers", func(t *testing.T) {
		input := consistentInput()
		input.Teachers = append(input.Teachers, TeacherInput{Teacher: "T3", Subject: "Math"})

		_, err := Validate(input, 40)

		assert.Equal(t, MissingTeacher, kindOf(t, err))
	})

	t.Run("rejects a class with no subjects", func(t *testing.T) {
		input := consistentInput()
		input.Classes[1].Subjects = nil

		_, err := Validate(input, 40)

		assert.Equal(t, EmptyClass, kindOf(t, err))
	})

	t.Run("rejects a subject requiring more periods than the week has", func(t *testing.T) {
		input := consistentInput()
		input.Subjects[0].Periods = 41

		_, err := Validate(input, 40)

		assert.Equal(t, OverCapacity, kindOf(t, err))
	})

	t.Run("unknown subjects outrank missing teachers", func(t *testing.T) {
		input := consistentInput()
		input.Classes[0].Subjects = append(input.Classes[0].Subjects, "History")
		input.Teachers = nil

		_, err := Validate(input, 40)

		assert.Equal(t, UnknownSubject, kindOf(t, err))
	})

	t.Run("rejects structurally malformed input before the domain checks", func(t *testing.T) {
		input := consistentInput()
		input.Subjects[0].Periods = 0

		_, err := Validate(input, 40)

		assert.NotNil(t, err)
		var validationErr *ValidationError
		assert.False(t, errors.As(err, &validationErr))
	})
}
