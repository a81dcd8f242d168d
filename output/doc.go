// Package output prints styled status lines for the promptt CLI.
//
// # Usage
//
//	p := output.New(os.Stderr)
//	p.Success("Saved answers to answers.yml")
//	p.Info("Next steps:")
//	p.Step("promptt run answers.yml")
//	p.Error("questionnaire has no questions")
//
// # Verbose Mode
//
// Verbose lines only print once verbose mode is on:
//
//	p.SetVerbose(true)
//	p.Verbose("Loaded 4 questions from setup.yml")
//
// # Styling
//
//   - Success: tick, green bold
//   - Error: cross, red bold
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: gray (when enabled)
package output
