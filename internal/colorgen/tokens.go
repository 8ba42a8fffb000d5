package colorgen

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// token is a lexed CSS token with its 1-based source position.
type token struct {
	tt     css.TokenType
	text   string
	line   int
	column int
}

// tokenize lexes the whole source. Positions are tracked by counting
// newlines in every token's text, so comments and strings spanning lines
// keep later positions correct.
func tokenize(source string) []token {
	lexer := css.NewLexer(parse.NewInputString(source))

	var toks []token
	line, column := 1, 1
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		text := string(data)
		toks = append(toks, token{tt: tt, text: text, line: line, column: column})

		if n := strings.Count(text, "\n"); n > 0 {
			line += n
			column = len(text) - strings.LastIndex(text, "\n")
		} else {
			column += len(text)
		}
	}

	return toks
}

// isTrivia reports tokens that may appear between any two significant tokens.
func isTrivia(t token) bool {
	return t.tt == css.WhitespaceToken || t.tt == css.CommentToken
}

// skipTrivia returns the index of the first non-trivia token at or after i.
func skipTrivia(toks []token, i int) int {
	for i < len(toks) && isTrivia(toks[i]) {
		i++
	}
	return i
}

// propertyName returns the custom property name if t names one.
func propertyName(t token) (string, bool) {
	switch t.tt {
	case css.CustomPropertyNameToken, css.IdentToken:
		if strings.HasPrefix(t.text, "--") {
			return t.text, true
		}
	}
	return "", false
}

// isFunction reports whether t opens a call to the named function (case-insensitive).
func isFunction(t token, name string) bool {
	return t.tt == css.FunctionToken && strings.EqualFold(strings.TrimSuffix(t.text, "("), name)
}

// captureCall returns the verbatim text of the function call opened by toks[i],
// up to and including its balancing closing parenthesis, and the index of
// that parenthesis. It gives up at a declaration or block boundary.
func captureCall(toks []token, i int) (string, int, bool) {
	if i >= len(toks) || toks[i].tt != css.FunctionToken {
		return "", i, false
	}

	var b strings.Builder
	depth := 0
	for j := i; j < len(toks); j++ {
		t := toks[j]
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken:
			return "", j, false
		}
		b.WriteString(t.text)
		if depth == 0 {
			return b.String(), j, true
		}
	}

	return "", len(toks), false
}

// declarationValue collects the raw value following a property name at
// toks[i] up to the terminating semicolon or closing brace at depth 0.
// Returns the trimmed value and the index of the terminator.
func declarationValue(toks []token, i int) (string, int, bool) {
	j := skipTrivia(toks, i)
	if j >= len(toks) || toks[j].tt != css.ColonToken {
		return "", j, false
	}

	var b strings.Builder
	depth := 0
	for j++; j < len(toks); j++ {
		t := toks[j]
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.SemicolonToken, css.RightBraceToken:
			if depth <= 0 {
				return strings.TrimSpace(b.String()), j, true
			}
		}
		b.WriteString(t.text)
	}

	return strings.TrimSpace(b.String()), len(toks), true
}

// trailingComment returns the text of a comment following toks[i] on the
// same line, without its delimiters.
func trailingComment(toks []token, i int) string {
	for j := i + 1; j < len(toks); j++ {
		t := toks[j]
		switch {
		case t.tt == css.WhitespaceToken && !strings.Contains(t.text, "\n"):
			continue
		case t.tt == css.CommentToken:
			text := strings.TrimPrefix(t.text, "/*")
			text = strings.TrimSuffix(text, "*/")
			return strings.TrimSpace(text)
		default:
			return ""
		}
	}
	return ""
}
