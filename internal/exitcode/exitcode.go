package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	FetchError      = 3
	PersistError    = 4
	AnalyzeError    = 5
	PartialSuccess  = 6
)
