package input

// Kind is the type tag of a question. The empty Kind marks a question that
// is skipped.
type Kind string

const (
	KindText      Kind = "text"
	KindPassword  Kind = "password"
	KindInvisible Kind = "invisible"
	KindNumber    Kind = "number"
	KindConfirm   Kind = "confirm"
	KindToggle    Kind = "toggle"
	KindSelect    Kind = "select"
	KindList      Kind = "list"
)

// Kinds lists every question type Prompt can run.
var Kinds = []Kind{
	KindText, KindPassword, KindInvisible, KindNumber,
	KindConfirm, KindToggle, KindSelect, KindList,
}

// Question configures one prompt of a sequence. Only the fields relevant to
// Type are read.
type Question struct {
	Name    string
	Type    Kind
	Message string

	// InitialText is the default for text, password, invisible and list.
	InitialText string
	// InitialNumber is the default for number.
	InitialNumber *float64
	// InitialBool is the default for confirm and toggle.
	InitialBool bool
	// InitialIndex is the first highlighted choice for select.
	InitialIndex *int

	Choices []Choice
	Hint    string

	// Style changes the echo of a text question.
	Style     InputStyle
	Separator string

	Float bool
	Round *int
	Min   *float64
	Max   *float64

	Active   string
	Inactive string
}
