/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package menu is the menu-domain composition engine: declarative
// registration of menu definitions, resolution of a workbench's active
// menu into a flat command sequence, and the edit-time mutations that
// keep the preference tree consistent.
package menu

import (
	"strings"

	"cubemenu/internal/domain"
	"cubemenu/internal/registry"
)

// AddMenu registers a declarative menu definition under the System
// scope and returns the resulting domain path. It is the public entry
// point for extensions to contribute menus at startup:
//
//	dom, ok := menu.AddMenu(reg, domain.MenuDefinition{
//		Workbench: "StartWorkbench",
//		UUID:      "StartDemo",
//		Name:      "Demo",
//		Commands:  []string{"Std_ViewFront", "CPSeparator", "Std_ViewTop"},
//	})
//
// The returned domain is itself usable as a submenu reference in other
// definitions. Registration is an idempotent upsert keyed by
// (workbench, uuid). If workbench or uuid is missing or contains the
// path or list delimiter, nothing is written and ok is false.
func AddMenu(reg *registry.Registry, def domain.MenuDefinition) (string, bool) {
	if !domain.ValidSegment(def.Workbench) || !domain.ValidSegment(def.UUID) {
		return "", false
	}
	d := domain.Domain{Scope: domain.ScopeSystem, Workbench: def.Workbench, UUID: def.UUID}
	g := reg.Ensure(d)
	g.SetString("name", def.Name)
	if def.Commands != nil {
		g.SetString("commands", domain.JoinCommands(sanitizeCommands(def.Commands)))
	}
	if def.Default {
		reg.Base(domain.ScopeSystem, def.Workbench).SetString("default", d.String())
	}
	return d.String(), true
}

// sanitizeCommands drops tokens that would corrupt the stored sequence:
// anything carrying the list delimiter, and dotted tokens other than
// submenu references. The rules are lexical; they guard the storage
// format, not the token semantics.
func sanitizeCommands(cmds []string) []string {
	var out []string
	for _, cmd := range cmds {
		switch {
		case strings.HasPrefix(cmd, domain.MenuToken) && !strings.Contains(cmd, ","):
			out = append(out, cmd)
		case !strings.Contains(cmd, ".") && !strings.Contains(cmd, ","):
			out = append(out, cmd)
		}
	}
	return out
}
