/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders the configured menus into shareable artifacts.
package export

import (
	"sort"

	"cubemenu/internal/domain"
	"cubemenu/internal/host"
	"cubemenu/internal/menu"
	"cubemenu/internal/registry"
)

// Reference is a printable snapshot of the configured menus.
type Reference struct {
	Workbenches []WorkbenchRef
}

// WorkbenchRef groups the menus of one workbench, User scope first.
type WorkbenchRef struct {
	Name  string
	Menus []MenuRef
}

// MenuRef is one menu with its resolved entries.
type MenuRef struct {
	Name    string
	Scope   domain.Scope
	Default bool
	Entries []Entry
}

// Entry is one rendered line: an action label, a separator, or a
// submenu reference by display name.
type Entry struct {
	Label     string
	Separator bool
	Submenu   bool
}

// BuildReference collects every configured menu across both scopes.
// Workbenches are sorted by name; menus keep their stored order.
// actions may be nil, in which case raw command names are printed.
func BuildReference(reg *registry.Registry, actions host.ActionCatalog) Reference {
	r := menu.NewResolver(reg)
	seen := map[string]bool{}
	var names []string
	for _, scope := range []domain.Scope{domain.ScopeUser, domain.ScopeSystem} {
		s, ok := reg.Root().Lookup(string(scope))
		if !ok {
			continue
		}
		for _, wb := range s.Groups() {
			if !seen[wb] {
				seen[wb] = true
				names = append(names, wb)
			}
		}
	}
	sort.Strings(names)

	var ref Reference
	for _, wb := range names {
		wref := WorkbenchRef{Name: wb}
		for _, scope := range []domain.Scope{domain.ScopeUser, domain.ScopeSystem} {
			def := reg.Base(scope, wb).GetString("default")
			for _, id := range reg.Index(scope, wb) {
				d := domain.Domain{Scope: scope, Workbench: wb, UUID: id}
				wref.Menus = append(wref.Menus, MenuRef{
					Name:    r.Name(d.String()),
					Scope:   scope,
					Default: def == d.String(),
					Entries: buildEntries(r, actions, d.String()),
				})
			}
		}
		if len(wref.Menus) > 0 {
			ref.Workbenches = append(ref.Workbenches, wref)
		}
	}
	return ref
}

func buildEntries(r *menu.Resolver, actions host.ActionCatalog, domainPath string) []Entry {
	var out []Entry
	for _, cmd := range r.Resolve(domainPath) {
		tok := domain.ParseToken(cmd)
		switch tok.Kind {
		case domain.TokenSeparator, domain.TokenSpacer:
			out = append(out, Entry{Separator: true})
		case domain.TokenMenuPlaceholder:
			// placeholder carries nothing printable
		case domain.TokenMenuRef:
			out = append(out, Entry{Label: r.Name(tok.Menu.String()), Submenu: true})
		default:
			label := tok.Action
			if actions != nil {
				if a, ok := actions.Lookup(tok.Action); ok && a.Label != "" {
					label = a.Label
				}
			}
			out = append(out, Entry{Label: label})
		}
	}
	return out
}
