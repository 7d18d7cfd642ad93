// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import "fmt"

type Option func(r *Renderer) error

// WithStyle selects the output style.
func WithStyle(style Style) Option {
	return func(r *Renderer) error {
		if style < Antlr || style > Block {
			return fmt.Errorf("unknown style %d", style)
		}
		r.style = style
		return nil
	}
}

// WithPrefix sets text written at the start of every output line,
// usually the file name followed by ": ".
func WithPrefix(prefix string) Option {
	return func(r *Renderer) error {
		r.prefix = prefix
		return nil
	}
}

// WithVocabulary sets the tables used to turn numeric rule and token
// indices into names. A nil vocabulary leaves names unchanged.
func WithVocabulary(vocab *Vocabulary) Option {
	return func(r *Renderer) error {
		r.vocab = vocab
		return nil
	}
}

// WithIndent sets the string used for one level of indentation.
func WithIndent(indent string) Option {
	return func(r *Renderer) error {
		r.indent = indent
		return nil
	}
}
