package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUppercasesKeywordOnly(t *testing.T) {
	p := NewParser()

	command, args, err := p.Parse("register User1")
	require.NoError(t, err)
	assert.Equal(t, "REGISTER", command)
	assert.Equal(t, []string{"User1"}, args, "arguments pass through verbatim")
}

func TestParseDoubleQuotedArguments(t *testing.T) {
	p := NewParser()

	command, args, err := p.Parse(`CREATE_LISTING user1 "Phone model 8" "Black color, brand new" 1000 "Electronics"`)
	require.NoError(t, err)
	assert.Equal(t, "CREATE_LISTING", command)
	assert.Equal(t, []string{"user1", "Phone model 8", "Black color, brand new", "1000", "Electronics"}, args)
}

func TestParseSingleQuotedArguments(t *testing.T) {
	p := NewParser()

	_, args, err := p.Parse(`REGISTER 'a user'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a user"}, args)
}

func TestParseEscapedQuotes(t *testing.T) {
	p := NewParser()

	_, args, err := p.Parse(`REGISTER "She said \"hello\""`)
	require.NoError(t, err)
	assert.Equal(t, []string{`She said "hello"`}, args)
}

func TestParseBlankLine(t *testing.T) {
	p := NewParser()

	command, args, err := p.Parse("")
	require.NoError(t, err)
	assert.Empty(t, command)
	assert.Empty(t, args)
}

func TestParseUnclosedQuote(t *testing.T) {
	p := NewParser()

	_, _, err := p.Parse(`REGISTER "unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid command format")
}
