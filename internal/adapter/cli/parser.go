package cli

import (
	"fmt"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

// Parser splits a raw input line into a command keyword and its arguments
// using shell-word semantics: whitespace separates tokens, single and double
// quotes group words, and quotes can be backslash-escaped.
type Parser struct {
	parser *shellwords.Parser
}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{parser: shellwords.NewParser()}
}

// Parse tokenizes one line. The first token is uppercased into the command
// keyword; the remaining tokens are passed through verbatim. A blank line
// returns an empty command and no arguments. Malformed quoting is reported
// with a detail the caller surfaces to the user as-is.
func (p *Parser) Parse(line string) (string, []string, error) {
	tokens, err := p.parser.Parse(line)
	if err != nil {
		return "", nil, fmt.Errorf("Invalid command format: %v", err)
	}
	if len(tokens) == 0 {
		return "", nil, nil
	}
	return strings.ToUpper(tokens[0]), tokens[1:], nil
}
