// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Vocabulary holds the symbolic names of one lexer and one parser.
type Vocabulary struct {
	Lexer      string
	Parser     string
	TokenNames map[int]string // token type to name
	RuleNames  map[int]string // rule index to name
}

// TokenName returns the name of a token type.
func (v *Vocabulary) TokenName(ttype int) (string, bool) {
	if v != nil {
		if name, ok := v.TokenNames[ttype]; ok {
			return name, true
		}
	}
	if ttype == -1 {
		return "EOF", true
	}
	return "", false
}

// RuleName returns the name of a rule index.
func (v *Vocabulary) RuleName(index int) (string, bool) {
	if v == nil {
		return "", false
	}
	name, ok := v.RuleNames[index]
	return name, ok
}

// Registry maps lexer and parser identifiers to their name tables.
// It is built by the caller and passed to each renderer; there is no
// package level registry.
type Registry struct {
	tokens map[string]map[int]string
	rules  map[string]map[int]string
}

func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]map[int]string),
		rules:  make(map[string]map[int]string),
	}
}

// AddLexer registers the token names of a lexer.
func (r *Registry) AddLexer(id string, names map[int]string) {
	r.tokens[id] = names
}

// AddParser registers the rule names of a parser, in rule index order.
func (r *Registry) AddParser(id string, rules []string) {
	names := make(map[int]string, len(rules))
	for i, rule := range rules {
		names[i] = rule
	}
	r.rules[id] = names
}

// Lookup returns the vocabulary for a lexer and parser pair.
// Unknown identifiers give empty tables.
func (r *Registry) Lookup(lexer, parser string) *Vocabulary {
	v := &Vocabulary{Lexer: lexer, Parser: parser}
	if r != nil {
		v.TokenNames = r.tokens[lexer]
		v.RuleNames = r.rules[parser]
	}
	return v
}

// LoadTokensFile reads an ANTLR .tokens file.
func LoadTokensFile(path string) (map[int]string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	names, err := ParseTokens(fp)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return names, nil
}

// ParseTokens reads lines of the form NAME=type or 'literal'=type.
// When a type has both, the symbolic name is kept.
func ParseTokens(r io.Reader) (map[int]string, error) {
	names := make(map[int]string)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		eq := strings.LastIndexByte(line, '=')
		if eq <= 0 {
			return nil, errors.Errorf("line %d: missing '='", lineNo)
		}
		name, value := line[:eq], line[eq+1:]
		ttype, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: token type %q", lineNo, value)
		}
		if _, ok := names[ttype]; ok && strings.HasPrefix(name, "'") {
			continue
		}
		names[ttype] = name
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
