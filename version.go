// Package promptt holds build metadata for the promptt toolkit. The prompts
// live in the input package.
package promptt

// Version is the current release.
const Version = "0.3.0"
