/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package menu

import (
	"cubemenu/internal/domain"
	"cubemenu/internal/host"
	"cubemenu/internal/registry"
)

// Mutator implements the edit-time operations of the preferences
// dialog. Every method addresses the stored command sequence of one
// menu domain; row arguments index into that sequence. Mutations on
// absent domains are no-ops, reorder methods additionally return the
// row that should stay selected afterwards.
type Mutator struct {
	reg      *registry.Registry
	toolbars host.ToolbarCatalog
}

// NewMutator returns a mutator over reg. toolbars may be nil when
// toolbar copying is not offered.
func NewMutator(reg *registry.Registry, toolbars host.ToolbarCatalog) *Mutator {
	return &Mutator{reg: reg, toolbars: toolbars}
}

// Commands reads the stored sequence of a menu domain.
func (m *Mutator) Commands(domainPath string) []string {
	g := m.reg.FindGroup(domainPath)
	if g == nil {
		return nil
	}
	return domain.SplitCommands(g.GetString("commands"))
}

// SetCommands replaces the stored sequence of a menu domain.
func (m *Mutator) SetCommands(domainPath string, cmds []string) {
	if g := m.reg.FindGroup(domainPath); g != nil {
		g.SetString("commands", domain.JoinCommands(cmds))
	}
}

// MoveUp swaps the entry at row with its predecessor and returns the
// row now holding the moved entry. The first row is a no-op.
func (m *Mutator) MoveUp(domainPath string, row int) int {
	cmds := m.Commands(domainPath)
	if row <= 0 || row >= len(cmds) {
		return row
	}
	cmds[row-1], cmds[row] = cmds[row], cmds[row-1]
	m.SetCommands(domainPath, cmds)
	return row - 1
}

// MoveDown swaps the entry at row with its successor and returns the
// row now holding the moved entry. The last row is a no-op.
func (m *Mutator) MoveDown(domainPath string, row int) int {
	cmds := m.Commands(domainPath)
	if row < 0 || row >= len(cmds)-1 {
		return row
	}
	cmds[row], cmds[row+1] = cmds[row+1], cmds[row]
	m.SetCommands(domainPath, cmds)
	return row + 1
}

// Insert places cmd directly after row and returns the new entry's row.
// With row out of range the entry is appended. An empty cmd is refused.
func (m *Mutator) Insert(domainPath string, row int, cmd string) int {
	if cmd == "" {
		return row
	}
	cmds := m.Commands(domainPath)
	at := row + 1
	if at < 0 || at > len(cmds) {
		at = len(cmds)
	}
	cmds = append(cmds[:at:at], append([]string{cmd}, cmds[at:]...)...)
	m.SetCommands(domainPath, cmds)
	return at
}

// Remove deletes the entry at row. The returned selection stays on the
// same row unless the last entry was removed, in which case it moves up
// one.
func (m *Mutator) Remove(domainPath string, row int) int {
	cmds := m.Commands(domainPath)
	if row < 0 || row >= len(cmds) {
		return row
	}
	cmds = append(cmds[:row], cmds[row+1:]...)
	m.SetCommands(domainPath, cmds)
	if row >= len(cmds) {
		return len(cmds) - 1
	}
	return row
}

// Bind overwrites the token at row with a reference to child,
// completing the insert-placeholder-then-bind workflow of the editor.
// The token there must be the bare CPMenu placeholder or an existing
// reference being retargeted. Binding a menu to itself or to an absent
// target is refused; deeper cycles are tolerated here and broken at
// render time.
func (m *Mutator) Bind(parent string, row int, child string) {
	if parent == child {
		return
	}
	if m.reg.FindGroup(parent) == nil || m.reg.FindGroup(child) == nil {
		return
	}
	cmds := m.Commands(parent)
	if row < 0 || row >= len(cmds) {
		return
	}
	switch domain.ParseToken(cmds[row]).Kind {
	case domain.TokenMenuPlaceholder, domain.TokenMenuRef:
	default:
		return
	}
	cmds[row] = child
	m.SetCommands(parent, cmds)
}

// NewMenu creates an empty menu named "New menu" under the given
// scope+workbench base and returns its domain, or "" for a bad base.
func (m *Mutator) NewMenu(scope domain.Scope, workbench string) string {
	base := domain.Domain{Scope: scope, Workbench: workbench}
	g, d := m.reg.NewGroup(base.String())
	if g == nil {
		return ""
	}
	g.SetString("name", "New menu")
	return d.String()
}

// CopyMenu creates a new menu under targetBase holding a copy of the
// source's commands and name. The source is either an existing menu
// domain or a toolbar pseudo domain (CPMenu.Toolbar.<name>), whose
// commands come from the host's toolbar catalog. It returns the new
// menu's domain, or "" when the source yields nothing to copy.
func (m *Mutator) CopyMenu(source string, targetScope domain.Scope, targetWorkbench string) string {
	var name string
	var cmds []string
	if d, ok := domain.ParseDomain(source); ok && d.Scope == domain.ScopeToolbar {
		if m.toolbars == nil {
			return ""
		}
		name = d.Workbench
		cmds = m.toolbars.Commands(d.Workbench)
		if cmds == nil {
			return ""
		}
	} else {
		g := m.reg.FindGroup(source)
		if g == nil {
			return ""
		}
		name = g.GetString("name")
		cmds = domain.SplitCommands(g.GetString("commands"))
	}
	base := domain.Domain{Scope: targetScope, Workbench: targetWorkbench}
	g, d := m.reg.NewGroup(base.String())
	if g == nil {
		return ""
	}
	g.SetString("name", name)
	g.SetString("commands", domain.JoinCommands(cmds))
	return d.String()
}

// Rename sets the display name of a menu.
func (m *Mutator) Rename(domainPath, name string) {
	if g := m.reg.FindGroup(domainPath); g != nil {
		g.SetString("name", name)
	}
}

// Delete removes a menu group. References to it elsewhere stay in place
// and resolve to nothing.
func (m *Mutator) Delete(domainPath string) {
	m.reg.DeleteGroup(domainPath)
}

// SetDefault records domainPath as the User-scope default for its
// workbench, overriding any System default during resolution.
func (m *Mutator) SetDefault(domainPath string) {
	d, ok := domain.ParseDomain(domainPath)
	if !ok || d.UUID == "" || m.reg.FindGroup(domainPath) == nil {
		return
	}
	m.reg.Base(domain.ScopeUser, d.Workbench).SetString("default", domainPath)
}

// ClearDefault drops the User-scope default of a workbench, restoring
// the fall-through to System and global defaults.
func (m *Mutator) ClearDefault(workbench string) {
	m.reg.Base(domain.ScopeUser, workbench).RemString("default")
}

// ResetWorkbench discards all User-scope state of a workbench and
// reseeds the base so the editor has something to show.
func (m *Mutator) ResetWorkbench(workbench string) {
	m.reg.Base(domain.ScopeUser, workbench).Clear()
	m.reg.DefaultGroup(domain.ScopeUser, workbench)
}

// SetActive records child as the last submenu opened under parent.
func (m *Mutator) SetActive(parent, child string) {
	if g := m.reg.FindGroup(parent); g != nil {
		g.SetString("active", child)
	}
}

// SetExpanded toggles inline expansion of a menu on the cube panel.
func (m *Mutator) SetExpanded(domainPath string, expanded bool) {
	g := m.reg.FindGroup(domainPath)
	if g == nil {
		return
	}
	if expanded {
		g.SetBool("Expand", true)
	} else {
		g.RemBool("Expand")
	}
}

// SetGlobal switches the shared-panel mode on the root group.
func (m *Mutator) SetGlobal(on bool) {
	if on {
		m.reg.Root().SetBool("Global", true)
	} else {
		m.reg.Root().RemBool("Global")
	}
}
