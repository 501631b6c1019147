package scenarios

import (
	"math"

	"go.trai.ch/delta/internal/engine/lookup"
)

// LetterGrade wires a keyed input of numeric grades and a derived function
// rounding them onto a four-point letter scale.
type LetterGrade struct {
	Engine *lookup.Engine
	Grades lookup.InputMapID[string, float64]
	Letter lookup.DerivedID[string, string]
}

var gradeScale = []string{"D", "C", "B", "A"}

// NewLetterGrade builds a fresh engine with the letter-grade graph
// registered.
func NewLetterGrade() *LetterGrade {
	e := lookup.New()
	grades := lookup.NewInputMap[string, float64](e, "grades")

	letter := lookup.NewDerived(e, "letter", func(ctx *lookup.Ctx, name string) (string, error) {
		g, err := lookup.ReadInputMap(ctx, grades, name)
		if err != nil {
			return "", err
		}
		idx := int(math.Round(g)) - 1
		if idx < 0 {
			idx = 0
		}
		if idx > len(gradeScale)-1 {
			idx = len(gradeScale) - 1
		}
		return gradeScale[idx], nil
	})

	return &LetterGrade{Engine: e, Grades: grades, Letter: letter}
}

// SetGrade writes one student's grade.
func (s *LetterGrade) SetGrade(name string, value float64) {
	lookup.SetInputMap(s.Engine, s.Grades, name, value)
}

// DeleteGrade removes one student's grade.
func (s *LetterGrade) DeleteGrade(name string) {
	lookup.DeleteInputMap(s.Engine, s.Grades, name)
}

// QueryLetter queries the derived letter grade for one student.
func (s *LetterGrade) QueryLetter(name string) (string, error) {
	ctx := lookup.NewSession(s.Engine)
	return lookup.CallDerived(ctx, s.Letter, name)
}
