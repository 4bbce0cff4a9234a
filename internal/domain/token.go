/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import "strings"

// TokenKind discriminates the command token variants. Tokens are parsed
// once at the sequence boundary and matched on Kind afterwards; consumers
// must not sniff string prefixes themselves.
type TokenKind int

const (
	// TokenAction is a plain command identifier resolved against the
	// host's action catalog at render time.
	TokenAction TokenKind = iota
	// TokenSeparator is a visual divider.
	TokenSeparator
	// TokenSpacer is a layout-only filler used by the button panel.
	TokenSpacer
	// TokenMenuPlaceholder is an unbound submenu slot.
	TokenMenuPlaceholder
	// TokenMenuRef is a bound submenu reference.
	TokenMenuRef
	// TokenGlobalDefault splices the global default command sequence.
	TokenGlobalDefault
	// TokenCollapse is the synthetic collapse control emitted while
	// expanding a submenu inline; it is never persisted.
	TokenCollapse
)

// Token is one parsed element of a menu's command sequence.
// Action is set for TokenAction; Menu for TokenMenuRef and TokenCollapse.
type Token struct {
	Kind   TokenKind
	Action string
	Menu   Domain
}

// ParseToken classifies a raw command string. Unknown strings fall back
// to TokenAction so they round-trip verbatim; a menu reference that does
// not parse as a domain is likewise preserved as a plain action and will
// render as an unavailable placeholder.
func ParseToken(raw string) Token {
	switch raw {
	case SeparatorToken:
		return Token{Kind: TokenSeparator}
	case SpacerToken:
		return Token{Kind: TokenSpacer}
	case MenuToken:
		return Token{Kind: TokenMenuPlaceholder}
	case GlobalDefaultToken:
		return Token{Kind: TokenGlobalDefault}
	}
	if rest, ok := strings.CutPrefix(raw, CollapsePrefix); ok {
		if d, ok := ParseDomain(rest); ok && d.UUID != "" {
			return Token{Kind: TokenCollapse, Menu: d}
		}
		return Token{Kind: TokenAction, Action: raw}
	}
	if strings.HasPrefix(raw, MenuToken+".") {
		if d, ok := ParseDomain(raw); ok && d.UUID != "" {
			return Token{Kind: TokenMenuRef, Menu: d}
		}
		return Token{Kind: TokenAction, Action: raw}
	}
	return Token{Kind: TokenAction, Action: raw}
}

// ParseCommands parses a whole raw command sequence.
func ParseCommands(cmds []string) []Token {
	if len(cmds) == 0 {
		return nil
	}
	out := make([]Token, len(cmds))
	for i, c := range cmds {
		out[i] = ParseToken(c)
	}
	return out
}

// String renders the persisted form of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenSeparator:
		return SeparatorToken
	case TokenSpacer:
		return SpacerToken
	case TokenMenuPlaceholder:
		return MenuToken
	case TokenMenuRef:
		return t.Menu.String()
	case TokenGlobalDefault:
		return GlobalDefaultToken
	case TokenCollapse:
		return CollapsePrefix + t.Menu.String()
	default:
		return t.Action
	}
}
