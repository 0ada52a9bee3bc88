// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/ettle/strcase
// Copyright (c) 2020 Liyan David Chang under the MIT License

// Package strcase provides functions for manipulating the case of strings.
// It is based on https://github.com/ettle/strcase, which is Copyright
// (c) 2020 Liyan David Chang under the MIT License. Words are split at
// lower-to-upper case changes, at the end of acronyms (HTMLView is html
// and view), and at delimiters such as spaces, dashes and underscores.
package strcase

import (
	"strings"
	"unicode"
)

// ToKebab returns words in kebab-case (lower case words with dashes).
// Also known as dash-case.
func ToKebab(s string) string {
	return convert(s, '-')
}

// SplitAction defines if and how to split a string.
type SplitAction int

const (
	// Noop continues to the next character.
	Noop SplitAction = iota
	// Split starts a new word at the current character.
	Split
	// SkipSplit drops the current character and starts a new word after it.
	SkipSplit
)

func isDelimiter(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// splitAt returns how to split at the current character
// given the characters around it.
func splitAt(prev, curr, next rune) SplitAction {
	switch {
	case isDelimiter(curr):
		return SkipSplit
	case !unicode.IsUpper(curr):
		return Noop
	case unicode.IsLower(prev) || unicode.IsDigit(prev):
		return Split
	case unicode.IsUpper(prev) && unicode.IsLower(next):
		return Split
	}
	return Noop
}

// convert returns the lower-cased words of the input
// joined by the given delimiter.
func convert(input string, delimiter rune) string {
	runes := []rune(strings.TrimSpace(input))
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(runes) + 4)

	inWord := false
	var prev, curr rune
	next := runes[0]
	for i := range runes {
		prev = curr
		curr = next
		if i+1 == len(runes) {
			next = 0
		} else {
			next = runes[i+1]
		}

		switch splitAt(prev, curr, next) {
		case SkipSplit:
			if inWord {
				b.WriteRune(delimiter)
			}
			inWord = false
			continue
		case Split:
			if inWord {
				b.WriteRune(delimiter)
			}
			inWord = false
		}
		b.WriteRune(unicode.ToLower(curr))
		inWord = true
	}
	return strings.TrimRight(b.String(), string(delimiter))
}
