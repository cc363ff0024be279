package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type ValidationKind string

const (
	UnknownSubject ValidationKind = "unknown subject"
	MissingTeacher ValidationKind = "missing teacher"
	EmptyClass     ValidationKind = "empty class"
	OverCapacity   ValidationKind = "over capacity"
)

// ValidationError reports the first violated consistency rule of a problem
// description. It is raised before any decision variable is created.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v", err.Kind, err.Detail)
}

// Descriptor is the normalized, cross-referenced problem description handed
// to the model builder. Classes, subjects and teachers are addressed by
// compact ids (their position in the name slices).
type Descriptor struct {
	Classes  []string
	Subjects []string
	Teachers []string

	Periods    []uint64   // subject id → required weekly periods
	TeacherOf  []uint64   // subject id → teacher id
	Curriculum [][]uint64 // class id → subject ids, input order preserved
}

// Validate checks a raw problem description and normalizes it into a
// Descriptor. Checks run in severity order and short-circuit on the first
// violation. Pure function of its input.
func Validate(input ModelInput, slots uint64) (Descriptor, error) {
	if err := validator.New().Struct(input); err != nil {
		return Descriptor{}, fmt.Errorf("malformed input: %w", err)
	}

	descriptor := Descriptor{}

	subjectIds := make(map[string]uint64, len(input.Subjects))
	for _, subject := range input.Subjects {
		id, ok := subjectIds[subject.Subject]
		if !ok {
			id = uint64(len(descriptor.Subjects))
			subjectIds[subject.Subject] = id
			descriptor.Subjects = append(descriptor.Subjects, subject.Subject)
			descriptor.Periods = append(descriptor.Periods, 0)
		}
		descriptor.Periods[id] = subject.Periods // Last definition wins, as in a keyed overwrite
	}

	for _, class := range input.Classes {
		for _, name := range class.Subjects {
			if _, ok := subjectIds[name]; !ok {
				return Descriptor{}, &ValidationError{
					Kind:   UnknownSubject,
					Detail: fmt.Sprintf("class %v references subject %v which is not defined", class.Class, name),
				}
			}
		}
	}

	// Teacher rows carry occasional whitespace around the subject key
	owners := make(map[uint64][]string, len(descriptor.Subjects))
	for _, teacher := range input.Teachers {
		subjectId, ok := subjectIds[strings.TrimSpace(teacher.Subject)]
		if !ok {
			continue // Assignment for a subject no class can reference
		}
		owners[subjectId] = append(owners[subjectId], teacher.Teacher)
	}

	descriptor.TeacherOf = make([]uint64, len(descriptor.Subjects))
	teacherIds := make(map[string]uint64)
	for id, name := range descriptor.Subjects {
		assigned := owners[uint64(id)]
		if len(assigned) == 0 {
			return Descriptor{}, &ValidationError{
				Kind:   MissingTeacher,
				Detail: fmt.Sprintf("subject %v has no assigned teacher", name),
			}
		} else if len(assigned) > 1 {
			return Descriptor{}, &ValidationError{
				Kind:   MissingTeacher,
				Detail: fmt.Sprintf("subject %v has %v assigned teachers, want exactly one", name, len(assigned)),
			}
		}

		teacherId, ok := teacherIds[assigned[0]]
		if !ok {
			teacherId = uint64(len(descriptor.Teachers))
			teacherIds[assigned[0]] = teacherId
			descriptor.Teachers = append(descriptor.Teachers, assigned[0])
		}
		descriptor.TeacherOf[id] = teacherId
	}

	for _, class := range input.Classes {
		if len(class.Subjects) == 0 {
			return Descriptor{}, &ValidationError{
				Kind:   EmptyClass,
				Detail: fmt.Sprintf("class %v has no subjects to schedule", class.Class),
			}
		}

		row := lo.Uniq(lo.Map(class.Subjects, func(name string, _ int) uint64 {
			return subjectIds[name]
		}))
		descriptor.Classes = append(descriptor.Classes, class.Class)
		descriptor.Curriculum = append(descriptor.Curriculum, row)
	}

	for id, required := range descriptor.Periods {
		if required > slots {
			return Descriptor{}, &ValidationError{
				Kind:   OverCapacity,
				Detail: fmt.Sprintf("subject %v requires %v periods but the week only has %v slots", descriptor.Subjects[id], required, slots),
			}
		}
	}

	return descriptor, nil
}
