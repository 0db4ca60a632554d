// Package frontmatter parses YAML frontmatter blocks from the head of
// markdown documents.
//
// A frontmatter block is delimited by lines containing only "---". The text
// between the delimiters is unmarshaled as YAML into the caller's metadata
// struct; everything after the closing delimiter is returned as the body.
// Both LF and CRLF line endings are accepted.
package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for frontmatter parsing.
var (
	// ErrMissingFrontmatter is returned by MustParse when the document does
	// not start with a frontmatter block.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrUnterminated is returned when an opening delimiter has no matching
	// closing delimiter.
	ErrUnterminated = errors.New("missing closing frontmatter delimiter")
)

const delimiter = "---"

// Parse extracts a YAML frontmatter block and body from r. If no block is
// present, matter is left zero and the full content is returned as the body.
func Parse[T any](r io.Reader, matter *T) ([]byte, error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but fails with ErrMissingFrontmatter when the
// document has no frontmatter block.
func MustParse[T any](r io.Reader, matter *T) ([]byte, error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	br := bufio.NewReader(r)

	first, err := readLine(br)
	if err != nil && err != io.EOF {
		return nil, err
	}

	if strings.TrimRight(first, "\r\n") != delimiter {
		if required {
			return nil, ErrMissingFrontmatter
		}
		rest, rerr := io.ReadAll(br)
		if rerr != nil {
			return nil, rerr
		}
		return append([]byte(first), rest...), nil
	}

	var block bytes.Buffer
	closed := false
	for {
		line, rerr := readLine(br)
		if strings.TrimRight(line, "\r\n") == delimiter {
			closed = true
			break
		}
		block.WriteString(line)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}
	}

	if !closed {
		if required {
			return nil, ErrUnterminated
		}
		// Treat the whole document as body when the block never closes.
		return append([]byte(first), block.Bytes()...), nil
	}

	if err := yaml.Unmarshal(block.Bytes(), matter); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// readLine reads one line including its terminator. It returns io.EOF along
// with any final unterminated line.
func readLine(br *bufio.Reader) (string, error) {
	return br.ReadString('\n')
}
