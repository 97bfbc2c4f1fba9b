package gats

// Task identifies the administrative task a global-tag operation belongs to.
type Task int

const (
	// TaskUnknown is the zero value for unrecognized task names.
	TaskUnknown Task = iota
	// TaskMain is the main GT line ("master" is a legacy alias).
	TaskMain
	// TaskValidation covers validation GTs.
	TaskValidation
	// TaskOnline covers the online GT.
	TaskOnline
	// TaskPrompt covers prompt calibration.
	TaskPrompt
	// TaskData covers data (re)processing.
	TaskData
	// TaskMC covers run-dependent MC production.
	TaskMC
	// TaskAnalysis covers analysis tools.
	TaskAnalysis
)

// String returns a stable textual representation for Task.
func (t Task) String() string {
	switch t {
	case TaskMain:
		return "main"
	case TaskValidation:
		return "validation"
	case TaskOnline:
		return "online"
	case TaskPrompt:
		return "prompt"
	case TaskData:
		return "data"
	case TaskMC:
		return "mc"
	case TaskAnalysis:
		return "analysis"
	default:
		return "unknown"
	}
}

// ParseTask maps free-form task names to a Task.
// "master" is accepted as an alias of main for backward compatibility.
func ParseTask(s string) Task {
	switch toTok(s) {
	case "main", "master":
		return TaskMain
	case "validation":
		return TaskValidation
	case "online":
		return TaskOnline
	case "prompt":
		return TaskPrompt
	case "data":
		return TaskData
	case "mc":
		return TaskMC
	case "analysis":
		return TaskAnalysis
	default:
		return TaskUnknown
	}
}

// UploadTag returns the GT that uploads for the given task go into. An
// empty name with ok=true means the client should create a fresh GT per
// upload request; ok=false marks an unknown task.
func UploadTag(task Task) (string, bool) {
	switch task {
	case TaskMain, TaskValidation, TaskOnline, TaskPrompt, TaskData, TaskMC, TaskAnalysis:
		// every current task creates a new GT per upload request
		return "", true
	default:
		return "", false
	}
}
