package css

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses inline CSS found in style attributes of slide markup.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseInline parses content of a style attribute into ordered declarations.
// Malformed declarations are skipped.
func (p *Parser) ParseInline(style string) Declarations {
	if strings.TrimSpace(style) == "" {
		return nil
	}

	input := parse.NewInputString(style)
	parser := css.NewParser(input, true)

	var decls Declarations
	for start := 0; ; {
		gt, _, data := parser.Next()
		end := min(parser.Offset(), len(style))
		source := style[min(start, end):end]
		start = end

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("CSS parse error", zap.String("style", style), zap.Error(err))
			}
			return decls

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) > 0 {
				decls = append(decls, Declaration{
					Property: strings.ToLower(string(data)),
					Value:    p.parsePropertyValue(values, sourceValue(source)),
				})
			}

		case css.CustomPropertyGrammar:
			var sb strings.Builder
			for _, v := range parser.Values() {
				sb.Write(v.Data)
			}
			raw := strings.TrimSpace(sb.String())
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    Value{Raw: raw, Keyword: raw},
				Custom:   true,
			})

		default:
			p.log.Debug("Skipping unexpected CSS grammar in inline style", zap.Stringer("grammar", gt))
		}
	}
}

// sourceValue returns value part of a declaration as written, parser drops
// whitespace around commas inside functions.
func sourceValue(decl string) string {
	_, value, ok := strings.Cut(decl, ":")
	if !ok {
		return ""
	}
	value = strings.TrimSpace(value)
	return strings.TrimSpace(strings.TrimSuffix(value, ";"))
}

// parsePropertyValue converts CSS tokens to a Value. Raw keeps source text
// when it is known.
func (p *Parser) parsePropertyValue(tokens []css.Token, source string) Value {
	if len(tokens) == 0 {
		return Value{}
	}

	raw := source
	if len(raw) == 0 {
		var rawParts []string
		for _, t := range tokens {
			if t.TokenType != css.WhitespaceToken {
				rawParts = append(rawParts, string(t.Data))
			} else if len(rawParts) > 0 {
				rawParts = append(rawParts, " ")
			}
		}
		raw = strings.TrimSpace(strings.Join(rawParts, ""))
	}

	val := Value{Raw: raw}

	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = Unquote(string(t.Data))
		case css.HashToken:
			val.Keyword = string(t.Data)
		}
		return val
	}

	// functions (rgb(), url()) and multi-value properties
	val.Keyword = raw
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// Unquote removes surrounding quotes from a string.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
