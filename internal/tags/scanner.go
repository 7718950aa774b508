package tags

import (
	"bytes"
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
	"strings"
)

const (
	spaceToken = iota
	elementEndToken
	keyEndToken
	bracedToken
	quotedToken
)

var (
	spaceMatcher      = parsly.NewToken(spaceToken, "space", matcher.NewWhiteSpace())
	elementEndMatcher = parsly.NewToken(elementEndToken, ",", matcher.NewTerminator(',', true))
	keyEndMatcher     = parsly.NewToken(keyEndToken, "=", matcher.NewTerminator('=', true))
	bracedMatcher     = parsly.NewToken(bracedToken, "{...}", matcher.NewBlock('{', '}', '\\'))
	quotedMatcher     = parsly.NewToken(quotedToken, "'...'", matcher.NewQuote('\'', '\\'))
)

// element represents a single tag element, value is empty for a bare element
type element struct {
	key   string
	value string
}

// split splits encoded tag into coma separated elements, a value containing
// a coma has to be wrapped with braces or single quotes
func split(encoded string) []element {
	var ret []element
	cursor := parsly.NewCursor("", []byte(encoded), 0)
	for cursor.Pos < len(cursor.Input) {
		if elem := scanElement(cursor); elem.key != "" {
			ret = append(ret, elem)
		}
	}
	return ret
}

func scanElement(cursor *parsly.Cursor) element {
	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex == -1 || (comaIndex != -1 && comaIndex < eqIndex) {
		return element{key: strings.TrimSpace(scanValue(cursor))}
	}
	match := cursor.MatchAny(keyEndMatcher)
	if match.Code != keyEndToken {
		cursor.Pos = len(cursor.Input)
		return element{}
	}
	key := match.Text(cursor)
	return element{key: strings.TrimSpace(key[:len(key)-1]), value: scanValue(cursor)}
}

func scanValue(cursor *parsly.Cursor) string {
	match := cursor.MatchAfterOptional(spaceMatcher, bracedMatcher, quotedMatcher, elementEndMatcher)
	switch match.Code {
	case bracedToken, quotedToken:
		value := match.Text(cursor)
		cursor.MatchAny(elementEndMatcher)
		return value[1 : len(value)-1]
	case elementEndToken:
		value := match.Text(cursor)
		return value[:len(value)-1]
	}
	if cursor.Pos >= len(cursor.Input) {
		return ""
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return value
}
