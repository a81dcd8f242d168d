package keys

// Action is what a prompt does in response to a key.
type Action int

const (
	First Action = iota + 1
	Last
	ActionAbort
	Reset
	Submit
	ActionDelete
	DeleteForward
	Exit
	Next
	NextPage
	PrevPage
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionHome
	ActionEnd
)

var actionNames = map[Action]string{
	First:         "first",
	Last:          "last",
	ActionAbort:   "abort",
	Reset:         "reset",
	Submit:        "submit",
	ActionDelete:  "delete",
	DeleteForward: "deleteForward",
	Exit:          "exit",
	Next:          "next",
	NextPage:      "nextPage",
	PrevPage:      "prevPage",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionHome:    "home",
	ActionEnd:     "end",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
