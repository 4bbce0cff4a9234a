/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package domain defines the data model of the cube menu: dotted domain
// paths addressing menu groups in the preference tree, the command token
// vocabulary, and declarative menu definitions.
package domain

import "strings"

// Reserved token vocabulary. These strings are a wire-level contract with
// hosts and with persisted preference trees; they must not change.
const (
	MenuToken          = "CPMenu"
	SeparatorToken     = "CPSeparator"
	SpacerToken        = "CPSpacer"
	GlobalDefaultToken = "CPGlobalDefault"
	CollapsePrefix     = "CPCollapse"
)

// GlobalWorkbench is the workbench-independent fallback scope.
const GlobalWorkbench = "GlobalPanel"

// GlobalDefaultDomain addresses the always-present fallback menu.
const GlobalDefaultDomain = "CPMenu.System.GlobalPanel.GlobalDefault"

// Scope selects one of the top-level branches of the menu tree.
type Scope string

const (
	// ScopeUser holds persistent, user-editable menus.
	ScopeUser Scope = "User"
	// ScopeSystem holds ephemeral menus registered at session start.
	ScopeSystem Scope = "System"
	// ScopeToolbar is a copy-source pseudo scope; it never holds groups.
	ScopeToolbar Scope = "Toolbar"
)

// Domain is a parsed dotted path of the form CPMenu.<Scope>.<Workbench>[.<Uuid>].
// The three-segment form (empty UUID) addresses a scope+workbench base;
// the four-segment form addresses one menu group. For the Toolbar scope
// the third segment carries the toolbar name in the Workbench field.
type Domain struct {
	Scope     Scope
	Workbench string
	UUID      string
}

// String renders the dotted path form.
func (d Domain) String() string {
	parts := []string{MenuToken, string(d.Scope), d.Workbench}
	if d.UUID != "" {
		parts = append(parts, d.UUID)
	}
	return strings.Join(parts, ".")
}

// Base returns the domain with the UUID cleared.
func (d Domain) Base() Domain {
	d.UUID = ""
	return d
}

// ParseDomain parses a dotted domain path. It accepts the base (three
// segment) and menu (four segment) forms and reports failure for
// anything else; it never panics on malformed input.
func ParseDomain(s string) (Domain, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 && len(parts) != 4 {
		return Domain{}, false
	}
	if parts[0] != MenuToken {
		return Domain{}, false
	}
	scope := Scope(parts[1])
	switch scope {
	case ScopeUser, ScopeSystem, ScopeToolbar:
	default:
		return Domain{}, false
	}
	d := Domain{Scope: scope, Workbench: parts[2]}
	if d.Workbench == "" {
		return Domain{}, false
	}
	if len(parts) == 4 {
		d.UUID = parts[3]
		if d.UUID == "" {
			return Domain{}, false
		}
	}
	return d, true
}

// ValidSegment reports whether s may be used as a workbench name or menu
// id. The path delimiter and the command list delimiter are both
// forbidden; this is a hard invariant of the storage format, not a
// cosmetic check.
func ValidSegment(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, ".,")
}

// MenuDefinition is the declarative registration record accepted by the
// public AddMenu entry point and by definition files.
type MenuDefinition struct {
	Workbench string   `json:"workbench" yaml:"workbench"`
	UUID      string   `json:"uuid" yaml:"uuid"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Commands  []string `json:"commands,omitempty" yaml:"commands,omitempty"`
	Default   bool     `json:"default,omitempty" yaml:"default,omitempty"`
}

// SplitCommands splits a persisted comma-joined command sequence. The
// empty string yields a nil slice, not [""].
func SplitCommands(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// JoinCommands joins a command sequence for persistence.
func JoinCommands(cmds []string) string {
	return strings.Join(cmds, ",")
}
