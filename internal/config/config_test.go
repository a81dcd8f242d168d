package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/betterhyq/promptt/input"
	"github.com/betterhyq/promptt/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeQuestionnaire writes content to a file named name in a temp dir.
func writeQuestionnaire(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write questionnaire: %v", err)
	}
	return path
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func TestLoadQuestionnaire_YAML(t *testing.T) {
	path := writeQuestionnaire(t, "questions.yaml", `
questions:
  - name: project
    type: text
    message: Project name
    initial: myapp
  - name: port
    type: number
    message: Port
    initial: "8080"
    min: 1
    max: 65535
  - name: ratio
    type: number
    message: Ratio
    float: true
    round: 3
  - name: tidy
    type: confirm
    message: Run go mod tidy?
    initial: true
  - name: database
    type: select
    message: Database
    hint: Pick one
    initial: sqlite
    choices:
      - PostgreSQL
      - title: SQLite
        value: sqlite
        description: Single file, no server
      - title: Oracle
        disabled: true
  - name: tags
    type: list
    message: Tags
    separator: ";"
    initial: [web, api]
  - name: token
    type: text
    style: password
    message: API token
  - name: dark
    type: toggle
    message: Dark mode
    active: enabled
    inactive: disabled
  - name: note
    message: Skipped entry
`)

	got, err := LoadQuestionnaire(path)
	require.NoError(t, err)

	want := []input.Question{
		{Name: "project", Type: input.KindText, Message: "Project name", InitialText: "myapp"},
		{Name: "port", Type: input.KindNumber, Message: "Port", InitialNumber: floatPtr(8080), Min: floatPtr(1), Max: floatPtr(65535)},
		{Name: "ratio", Type: input.KindNumber, Message: "Ratio", Float: true, Round: intPtr(3)},
		{Name: "tidy", Type: input.KindConfirm, Message: "Run go mod tidy?", InitialBool: true},
		{
			Name:         "database",
			Type:         input.KindSelect,
			Message:      "Database",
			Hint:         "Pick one",
			InitialIndex: intPtr(1),
			Choices: []input.Choice{
				{Title: "PostgreSQL", Value: "PostgreSQL"},
				{Title: "SQLite", Value: "sqlite", Description: "Single file, no server"},
				{Title: "Oracle", Value: "Oracle", Disabled: true},
			},
		},
		{Name: "tags", Type: input.KindList, Message: "Tags", Separator: ";", InitialText: "web;api"},
		{Name: "token", Type: input.KindText, Message: "API token", Style: input.StylePassword},
		{Name: "dark", Type: input.KindToggle, Message: "Dark mode", Active: "enabled", Inactive: "disabled"},
		{Name: "note", Message: "Skipped entry"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadQuestionnaire_JSON(t *testing.T) {
	path := writeQuestionnaire(t, "questions.json", `{
  "questions": [
    {"name": "size", "type": "select", "message": "Size", "initial": 2, "choices": ["S", "M", "L"]}
  ]
}`)

	got, err := LoadQuestionnaire(path)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, input.KindSelect, got[0].Type)
	require.NotNil(t, got[0].InitialIndex)
	assert.Equal(t, 2, *got[0].InitialIndex)
	assert.Len(t, got[0].Choices, 3)
}

func TestLoadQuestionnaire_Round(t *testing.T) {
	path := writeQuestionnaire(t, "q.yaml", `
questions:
  - name: whole
    type: number
    message: Whole
    float: true
    round: 0
  - name: unset
    type: number
    message: Unset
    float: true
`)

	got, err := LoadQuestionnaire(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Round)
	assert.Equal(t, 0, *got[0].Round)
	assert.Nil(t, got[1].Round)
}

func TestLoadQuestionnaire_TypeIsCaseInsensitive(t *testing.T) {
	path := writeQuestionnaire(t, "q.yaml", `
questions:
  - name: ok
    type: Confirm
    message: Ok?
`)

	got, err := LoadQuestionnaire(path)
	require.NoError(t, err)
	assert.Equal(t, input.KindConfirm, got[0].Type)
}

func TestLoadQuestionnaire_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no questions",
			content: "title: nothing here\n",
			wantErr: "has no questions",
		},
		{
			name: "unknown style",
			content: `
questions:
  - name: a
    type: text
    message: A
    style: shouty
`,
			wantErr: `unknown style "shouty"`,
		},
		{
			name: "choice without title",
			content: `
questions:
  - name: a
    type: select
    message: A
    choices:
      - value: x
`,
			wantErr: "has no title",
		},
		{
			name: "select initial out of range",
			content: `
questions:
  - name: a
    type: select
    message: A
    initial: 5
    choices: [x, y]
`,
			wantErr: "index 5 out of range for 2 choices",
		},
		{
			name: "select initial matches nothing",
			content: `
questions:
  - name: a
    type: select
    message: A
    initial: z
    choices: [x, y]
`,
			wantErr: `"z" matches no choice`,
		},
		{
			name: "number initial not a number",
			content: `
questions:
  - name: a
    type: number
    message: A
    initial: lots
`,
			wantErr: "question 1 (a): initial:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeQuestionnaire(t, "q.yaml", tt.content)

			_, err := LoadQuestionnaire(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadQuestionnaire_UnknownType(t *testing.T) {
	tests := []struct {
		typ     string
		wantErr string
	}{
		{"selct", `prompt type "selct" is not defined (did you mean "select"?)`},
		{"Txt", `prompt type "txt" is not defined (did you mean "text"?)`},
		{"slider", `prompt type "slider" is not defined`},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			path := writeQuestionnaire(t, "q.yaml", "questions:\n  - name: a\n    type: "+tt.typ+"\n    message: A\n")

			_, err := LoadQuestionnaire(path)
			require.ErrorIs(t, err, input.ErrUnknownType)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.typ == "slider" {
				assert.NotContains(t, err.Error(), "did you mean")
			}
		})
	}
}

func TestLoadQuestionnaire_MissingFile(t *testing.T) {
	_, err := LoadQuestionnaire(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading questionnaire")
}

func TestParseInteractive(t *testing.T) {
	tests := []struct {
		in      string
		want    Interactive
		wantErr bool
	}{
		{"auto", InteractiveAuto, false},
		{"", InteractiveAuto, false},
		{"ALWAYS", InteractiveAlways, false},
		{" never ", InteractiveNever, false},
		{"sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInteractive(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings(NewViper())
	require.NoError(t, err)

	assert.Equal(t, Settings{Interactive: InteractiveAuto, LogLevel: logger.LevelDebug}, s)
}

func TestLoadSettings_Environment(t *testing.T) {
	t.Setenv("PROMPTT_INTERACTIVE", "never")
	t.Setenv("PROMPTT_VERBOSE", "true")
	t.Setenv("PROMPTT_LOG_LEVEL", "warn")

	s, err := LoadSettings(NewViper())
	require.NoError(t, err)

	assert.Equal(t, Settings{Interactive: InteractiveNever, Verbose: true, LogLevel: logger.LevelWarn}, s)
}

func TestLoadSettings_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("PROMPTT_INTERACTIVE", "never")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("interactive", "auto", "")
	require.NoError(t, fs.Parse([]string{"--interactive=always"}))

	v := NewViper()
	require.NoError(t, v.BindPFlag("interactive", fs.Lookup("interactive")))

	s, err := LoadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, InteractiveAlways, s.Interactive)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("PROMPTT_INTERACTIVE", "maybe")

	_, err := LoadSettings(NewViper())
	assert.ErrorContains(t, err, "invalid interactive mode")

	t.Setenv("PROMPTT_INTERACTIVE", "auto")
	t.Setenv("PROMPTT_LOG_LEVEL", "loud")

	_, err = LoadSettings(NewViper())
	assert.ErrorContains(t, err, "unknown log level")
}
