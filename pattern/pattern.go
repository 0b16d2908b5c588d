package pattern

import (
	"regexp"
	"strings"
)

// NoCapture is the sentinel captureGroupIndex meaning "no capture group;
// the whole match is the slice label."
const NoCapture = -1

// Pattern is an immutable compiled glob-like matcher. Construct one with
// [Parse]; the zero value is not usable.
type Pattern struct {
	raw          string
	regex        *regexp.Regexp
	captureIndex int // NoCapture, or the regex submatch index of the capture group
	explicitName string
}

// String returns the original, unparsed pattern text.
func (p *Pattern) String() string {
	return p.raw
}

// CaptureIndex returns the regex submatch index of the pattern's capture
// group, or [NoCapture] if the pattern has none.
func (p *Pattern) CaptureIndex() int {
	return p.captureIndex
}

// ExplicitName returns the pattern's trailing "=name" label, or "" if none
// was given.
func (p *Pattern) ExplicitName() string {
	return p.explicitName
}

// Match applies the pattern to a class name. The second return value
// reports whether the pattern matched; when it does, the first return
// value is the slice label: the explicit name if set, else the captured
// group text, else the entire class name.
func (p *Pattern) Match(className string) (string, bool) {
	sub := p.regex.FindStringSubmatch(className)
	if sub == nil {
		return "", false
	}
	if p.explicitName != "" {
		return p.explicitName, true
	}
	if p.captureIndex != NoCapture {
		return sub[p.captureIndex], true
	}
	return className, true
}

// token kinds produced while scanning a pattern string.
type tokenKind uint8

const (
	tokLiteral tokenKind = iota
	tokDot
	tokStar1
	tokStar2
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	r    rune // only meaningful for tokLiteral
}

// Parse compiles a pattern string into a [Pattern]. Returns a *ParseError
// wrapping one of this package's sentinel errors on failure.
func Parse(s string) (*Pattern, error) {
	if s == "" {
		return nil, newParseError(s, ErrEmptyPattern)
	}

	core, explicitName, err := splitExplicitName(s)
	if err != nil {
		return nil, newParseError(s, err)
	}

	toks, err := tokenize(core)
	if err != nil {
		return nil, newParseError(s, err)
	}

	captureCount := 0
	for _, t := range toks {
		if t.kind == tokLParen {
			captureCount++
		}
	}
	if captureCount > 1 {
		return nil, newParseError(s, ErrMultipleCaptures)
	}
	if captureCount == 1 && explicitName != "" {
		return nil, newParseError(s, ErrExplicitNameWithCapture)
	}
	if err := checkBalancedCapture(toks); err != nil {
		return nil, newParseError(s, err)
	}
	if err := checkDoubleStarAdjacency(toks); err != nil {
		return nil, newParseError(s, err)
	}

	regexSrc, captureIndex := buildRegex(toks)
	compiled, err := regexp.Compile(regexSrc)
	if err != nil {
		// Tokenization guarantees a well-formed regex; a failure here would
		// be an internal bug, not a user input error.
		panic("pattern.Parse: internal regex build failure: " + err.Error())
	}

	return &Pattern{
		raw:          s,
		regex:        compiled,
		captureIndex: captureIndex,
		explicitName: explicitName,
	}, nil
}

// splitExplicitName separates a trailing "=name" suffix from the core
// pattern. Only the last '=' in the string is treated as the name
// separator; an earlier '=' is an ordinary literal character.
func splitExplicitName(s string) (core, name string, err error) {
	idx := strings.LastIndexByte(s, '=')
	if idx < 0 {
		return s, "", nil
	}
	name = s[idx+1:]
	if name == "" {
		return "", "", ErrEmptyExplicitName
	}
	return s[:idx], name, nil
}

func tokenize(core string) ([]token, error) {
	runes := []rune(core)
	toks := make([]token, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.':
			toks = append(toks, token{kind: tokDot})
		case '(':
			toks = append(toks, token{kind: tokLParen})
		case ')':
			toks = append(toks, token{kind: tokRParen})
		case '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				toks = append(toks, token{kind: tokStar2})
				i++
			} else {
				toks = append(toks, token{kind: tokStar1})
			}
		default:
			toks = append(toks, token{kind: tokLiteral, r: runes[i]})
		}
	}
	return toks, nil
}

func checkBalancedCapture(toks []token) error {
	depth := 0
	for _, t := range toks {
		switch t.kind {
		case tokLParen:
			depth++
			if depth > 1 {
				return ErrUnbalancedCapture
			}
		case tokRParen:
			depth--
			if depth < 0 {
				return ErrUnbalancedCapture
			}
		}
	}
	if depth != 0 {
		return ErrUnbalancedCapture
	}
	return nil
}

func checkDoubleStarAdjacency(toks []token) error {
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].kind == tokStar2 && toks[i+1].kind == tokStar2 {
			return ErrDoubleStarAdjacency
		}
	}
	return nil
}

// buildRegex translates tokens into an anchored regex source string, and
// reports the submatch index of the capture group (or [NoCapture]).
func buildRegex(toks []token) (string, int) {
	var b strings.Builder
	b.WriteByte('^')
	captureIndex := NoCapture
	groupsSeen := 0
	for _, t := range toks {
		switch t.kind {
		case tokDot:
			b.WriteString(`\.`)
		case tokStar1:
			b.WriteString(`[^.]*`)
		case tokStar2:
			b.WriteString(`.*`)
		case tokLParen:
			groupsSeen++
			captureIndex = groupsSeen
			b.WriteByte('(')
		case tokRParen:
			b.WriteByte(')')
		case tokLiteral:
			b.WriteString(regexp.QuoteMeta(string(t.r)))
		}
	}
	b.WriteByte('$')
	return b.String(), captureIndex
}
