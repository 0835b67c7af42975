// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package field

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Template is a single pass line preprocessor for playfield sources.
//
// Rows pass through verbatim, except that 'x' character quotes and
// $(...) compile-time expressions are rewritten into push sequences.
// Lines starting with '.' are directives, and lines starting with ';'
// are comments. Plain sources never take this path, so program text
// that needs literal quote or $( spans loads with Load instead.
type Template struct {
	Verbose bool // If set, verbosely log template expansion.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":     "0",
	"CELL_EMPTY": fmt.Sprintf("%v", CELL_EMPTY),
	"CELL_EOF":   fmt.Sprintf("%v", CELL_EOF),
}

// Predefine defines a new equate or redefines an existing equate.
func (tmpl *Template) Predefine(equ string, value string) {
	if tmpl.predefine == nil {
		tmpl.predefine = map[string]string{equ: value}
	} else {
		tmpl.predefine[equ] = value
	}
}

// valueOf returns the integer value of an equate string.
func (tmpl *Template) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// parenEval does compile-time $(...) evaluations.
func (tmpl *Template) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range tmpl.Equate {
		var value64 int64
		value64, err = tmpl.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return value, nil
}

// EncodePush returns a code sequence that leaves value on the stack.
// Single digits push themselves, larger values use a digit product
// when one exists, and anything else folds in decimal digits with a
// scale-by-ten step per digit.
func EncodePush(value int64) (code string) {
	if value < 0 {
		return "0" + EncodePush(-value) + "-"
	}

	if value < 10 {
		return string(rune('0' + value))
	}

	for a := int64(9); a >= 2; a-- {
		for b := int64(9); b >= 2; b-- {
			if a*b == value {
				return EncodePush(a) + EncodePush(b) + "*"
			}
		}
	}

	digits := strconv.FormatInt(value, 10)
	code = string(digits[0])
	for _, digit := range digits[1:] {
		code += "25**" + string(digit) + "+"
	}
	return
}

// quoteRe matches 'x' character quotes, with a limited escape set.
var quoteRe = regexp.MustCompile(`'\\?[^']'`)

// exprRe matches $() compile-time expressions.
var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)

// substitute rewrites 'x' quotes and $() expressions in a line. Row
// substitutions encode as push sequences; directive substitutions stay
// decimal.
func (tmpl *Template) substitute(line string, encode bool) (out string, err error) {
	emit := func(value int64) string {
		if encode {
			return EncodePush(value)
		}
		return fmt.Sprintf("%v", value)
	}

	out = quoteRe.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return emit(int64(str[0]))
	})

	out = exprRe.ReplaceAllStringFunc(out, func(str string) string {
		value, _err := tmpl.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return emit(value)
	})

	return
}

// parseDirective handles a '.' directive line.
func (tmpl *Template) parseDirective(line string) (err error) {
	text_comment := strings.Split(line, ";")
	line = strings.TrimSpace(text_comment[0])

	line, err = tmpl.substitute(line, false)
	if err != nil {
		return
	}

	words := slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })
	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".equ":
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := tmpl.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		tmpl.Equate[words[1]] = words[2]
	default:
		err = ErrDirectiveInvalid
	}

	return
}

// Expand expands template text into playfield source text.
func (tmpl *Template) Expand(input io.Reader) (src string, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	tmpl.Equate = maps.Clone(sysEquate)
	for attr, val := range tmpl.predefine {
		tmpl.Equate[attr] = val
	}

	var rows []string
	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if tmpl.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		tmpl.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ";") {
			continue
		}
		if strings.HasPrefix(trimmed, ".") {
			err = tmpl.parseDirective(trimmed)
			if err != nil {
				return
			}
			continue
		}

		var row string
		row, err = tmpl.substitute(line, true)
		if err != nil {
			return
		}
		rows = append(rows, row)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	src = strings.Join(rows, "\n")
	return
}

// Parse expands template text and loads the result as a playfield.
func (tmpl *Template) Parse(input io.Reader) (fd *Field, err error) {
	src, err := tmpl.Expand(input)
	if err != nil {
		return
	}

	fd, err = Load(src)
	return
}
