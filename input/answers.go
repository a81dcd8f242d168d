package input

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Answers maps question names to answers. Iteration follows the order the
// names were first answered; setting a name again replaces its value.
type Answers struct {
	m *orderedmap.OrderedMap[string, Value]
}

// NewAnswers returns an empty answer set.
func NewAnswers() *Answers {
	return &Answers{m: orderedmap.New[string, Value]()}
}

// Set stores v under name.
func (a *Answers) Set(name string, v Value) {
	a.m.Set(name, v)
}

// Get returns the answer stored under name.
func (a *Answers) Get(name string) (Value, bool) {
	return a.m.Get(name)
}

// Len returns the number of answers.
func (a *Answers) Len() int {
	return a.m.Len()
}

// Names returns the answered names in order.
func (a *Answers) Names() []string {
	names := make([]string, 0, a.m.Len())
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Map returns the answers as plain Go values.
func (a *Answers) Map() map[string]any {
	out := make(map[string]any, a.m.Len())
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value.Interface()
	}
	return out
}

// MarshalYAML encodes the answers as a mapping in answer order.
func (a *Answers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		key := &yaml.Node{}
		key.SetString(pair.Key)

		value := &yaml.Node{}
		if err := value.Encode(pair.Value.Interface()); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
