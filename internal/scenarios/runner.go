package scenarios

import (
	"fmt"
)

// Logger defines the logging methods Run needs. It mirrors
// ports.Logger so any ports.Logger implementation satisfies it without
// internal/scenarios importing internal/core/ports.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// Run executes every step of script against a freshly built LetterGrade
// graph, logging each query's outcome through log, and returns the graph
// for further inspection by the caller.
func Run(script *Script, log Logger) (*LetterGrade, error) {
	grade := NewLetterGrade()

	for _, step := range script.Steps {
		switch {
		case step.SetGrade != nil:
			grade.SetGrade(step.SetGrade.Name, step.SetGrade.Value)
			log.Info(fmt.Sprintf("set_grade %s=%.2f", step.SetGrade.Name, step.SetGrade.Value))

		case step.DeleteGrade != nil:
			grade.DeleteGrade(step.DeleteGrade.Name)
			log.Info(fmt.Sprintf("delete_grade %s", step.DeleteGrade.Name))

		case step.QueryLetter != nil:
			v, err := grade.QueryLetter(step.QueryLetter.Name)
			if err != nil {
				log.Warn(fmt.Sprintf("query_letter %s failed: %v", step.QueryLetter.Name, err))
				continue
			}
			log.Info(fmt.Sprintf("query_letter %s=%s", step.QueryLetter.Name, v))
		}
	}

	return grade, nil
}
