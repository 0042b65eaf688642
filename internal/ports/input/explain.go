package input

import "friendly/internal/domain/entities"

type ExplainUseCase interface {
	GenericExplanation(exception string) string
	PythonException(exception, value string) string
	LikelyCause(report entities.Report) entities.Cause
	SourceInfo(frame entities.Frame, lastCall bool) string
	Explain(report entities.Report) entities.Explanation
}
