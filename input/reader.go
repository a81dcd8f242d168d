package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// LineReader is the input prompts consume. *bufio.Reader satisfies it.
//
// Callers running several prompts against one stream should pass the same
// LineReader to each; wrapping a plain io.Reader per prompt would drop
// whatever the previous prompt buffered.
type LineReader interface {
	io.Reader
	io.ByteScanner
	ReadString(delim byte) (string, error)
}

func lineReader(r io.Reader) LineReader {
	if lr, ok := r.(LineReader); ok {
		return lr
	}
	return bufio.NewReader(r)
}

// readLine reads one answer line. A last line without a trailing newline is
// still an answer; end of input with nothing read is an error.
func readLine(in LineReader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return line, nil
}
