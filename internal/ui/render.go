/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package ui renders resolved menus as Fyne menu trees and hosts the
// desktop shell. Menu construction lives outside the build-tagged app
// files so it stays testable headless.
package ui

import (
	"fyne.io/fyne/v2"

	"cubemenu/internal/domain"
	"cubemenu/internal/host"
	"cubemenu/internal/menu"
)

// Invoker executes a host action by name when a menu item is chosen.
type Invoker func(name string)

// BuildMenu renders the menu at domainPath into a Fyne menu tree.
// Submenu references become child menus; separators and spacers become
// separator items. A reference to a missing menu is dropped, and
// reference cycles terminate with an empty child. Child menus are
// populated eagerly rather than on first show: Fyne menus carry no
// about-to-show hook, so the visited set bounds the recursion instead.
func BuildMenu(r *menu.Resolver, actions host.ActionCatalog, domainPath string, invoke Invoker) *fyne.Menu {
	return buildMenu(r, actions, domainPath, invoke, map[string]bool{})
}

func buildMenu(r *menu.Resolver, actions host.ActionCatalog, domainPath string, invoke Invoker, visited map[string]bool) *fyne.Menu {
	m := fyne.NewMenu(r.Name(domainPath))
	if visited[domainPath] {
		return m
	}
	visited[domainPath] = true
	defer delete(visited, domainPath)

	for _, cmd := range r.Resolve(domainPath) {
		tok := domain.ParseToken(cmd)
		switch tok.Kind {
		case domain.TokenSeparator, domain.TokenSpacer:
			m.Items = append(m.Items, fyne.NewMenuItemSeparator())
		case domain.TokenMenuPlaceholder, domain.TokenCollapse:
			// panel-only tokens, nothing to show in a menu
		case domain.TokenMenuRef:
			sub := tok.Menu.String()
			if r.Group(sub) == nil {
				continue
			}
			child := buildMenu(r, actions, sub, invoke, visited)
			item := fyne.NewMenuItem(child.Label, nil)
			item.ChildMenu = child
			m.Items = append(m.Items, item)
		default:
			m.Items = append(m.Items, actionItem(actions, tok.Action, invoke))
		}
	}
	return m
}

// PanelItems renders the flattened cube panel of domainPath. Spacers
// mark row breaks for the caller's grid; collapse tokens become items
// that fold their menu back together.
type PanelItem struct {
	Label    string
	Action   string // host action name, "" for structural items
	RowBreak bool
	Collapse string // domain to collapse, "" otherwise
	Expand   string // domain to expand in place, "" otherwise
}

func PanelItems(r *menu.Resolver, actions host.ActionCatalog, domainPath string) []PanelItem {
	var out []PanelItem
	for _, cmd := range r.ResolvePanel(domainPath) {
		tok := domain.ParseToken(cmd)
		switch tok.Kind {
		case domain.TokenSpacer:
			out = append(out, PanelItem{RowBreak: true})
		case domain.TokenCollapse:
			out = append(out, PanelItem{Label: "<", Collapse: tok.Menu.String()})
		case domain.TokenMenuRef:
			out = append(out, PanelItem{Label: r.Name(tok.Menu.String()), Expand: tok.Menu.String()})
		default:
			label := tok.Action
			if actions != nil {
				if a, ok := actions.Lookup(tok.Action); ok && a.Label != "" {
					label = a.Label
				}
			}
			out = append(out, PanelItem{Label: label, Action: tok.Action})
		}
	}
	return out
}

func actionItem(actions host.ActionCatalog, name string, invoke Invoker) *fyne.MenuItem {
	label := name
	if actions != nil {
		if a, ok := actions.Lookup(name); ok && a.Label != "" {
			label = a.Label
		}
	}
	return fyne.NewMenuItem(label, func() {
		if invoke != nil {
			invoke(name)
		}
	})
}
