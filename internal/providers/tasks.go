package providers

import "fmt"

// Task is one of the text commands. All of them share the completion
// endpoint and differ only in prompt template and parameter policy.
type Task int

const (
	TaskGenerate Task = iota
	TaskSummarize
	TaskFindBug
	TaskGrammar
)

// Defaults used by the CLI flags and by BuildCompletion for zero options.
const (
	DefaultTextModel    = "davinci"
	DefaultGrammarModel = "text-davinci-002"
	DefaultImageModel   = "image-alpha-001"
	DefaultImageSize    = "256x256"
	DefaultLanguage     = "python"

	// CodeModel is always used for bug finding, whatever model was asked for.
	CodeModel = "davinci-codex"
)

// TextOptions are the caller-controlled knobs of a text task. Zero values
// select the task's default; fields a task fixes are ignored.
type TextOptions struct {
	Model       string
	MaxTokens   int
	Temperature *float64
	Language    string
}

type taskPolicy struct {
	label        string
	defaultModel string
	fixedModel   string
	maxTokens    int
	fixMaxTokens bool
	temperature  *float64
	fixTemp      bool
	noTemp       bool
	render       func(input string, o TextOptions) string
}

var taskPolicies = map[Task]taskPolicy{
	TaskGenerate: {
		label:        "Output:",
		defaultModel: DefaultTextModel,
		maxTokens:    2048,
		temperature:  Float(0.5),
		render:       func(in string, _ TextOptions) string { return in },
	},
	TaskSummarize: {
		label:        "Summary:",
		defaultModel: DefaultTextModel,
		maxTokens:    50,
		noTemp:       true,
		render: func(in string, _ TextOptions) string {
			return fmt.Sprintf("Please summarize the following text:\n\n%s\n\nSummary:", in)
		},
	},
	TaskFindBug: {
		label:       "Bug Description:",
		fixedModel:  CodeModel,
		maxTokens:   1024,
		temperature: Float(0.7),
		render: func(in string, o TextOptions) string {
			lang := o.Language
			if lang == "" {
				lang = DefaultLanguage
			}
			return fmt.Sprintf("Find a bug in the following %s code:\n\n%s\n\nBug description:", lang, in)
		},
	},
	TaskGrammar: {
		label:        "Output:",
		defaultModel: DefaultGrammarModel,
		maxTokens:    2048,
		fixMaxTokens: true,
		temperature:  Float(0.5),
		fixTemp:      true,
		render: func(in string, _ TextOptions) string {
			return fmt.Sprintf("Please correct the following text for grammar errors:\n%s", in)
		},
	},
}

// BuildCompletion turns a text task and its input into a TextCompletion
// spec.
func BuildCompletion(task Task, input string, o TextOptions) RequestSpec {
	pol, ok := taskPolicies[task]
	if !ok {
		pol = taskPolicies[TaskGenerate]
	}

	spec := RequestSpec{
		Kind:   TextCompletion,
		Prompt: pol.render(input, o),
	}

	switch {
	case pol.fixedModel != "":
		spec.Model = pol.fixedModel
	case o.Model != "":
		spec.Model = o.Model
	default:
		spec.Model = pol.defaultModel
	}

	spec.MaxTokens = pol.maxTokens
	if o.MaxTokens > 0 && !pol.fixMaxTokens {
		spec.MaxTokens = o.MaxTokens
	}

	switch {
	case pol.noTemp:
	case o.Temperature != nil && !pol.fixTemp:
		spec.Temperature = Float(*o.Temperature)
	case pol.temperature != nil:
		spec.Temperature = Float(*pol.temperature)
	}
	return spec
}

// Label is the heading printed before a task's output.
func (t Task) Label() string {
	if pol, ok := taskPolicies[t]; ok {
		return pol.label
	}
	return "Output:"
}

// IgnoresModel reports whether the task overrides the caller's model.
func (t Task) IgnoresModel() bool {
	return taskPolicies[t].fixedModel != ""
}
