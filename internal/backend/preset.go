/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package backend

import (
	"cubemenu/internal/domain"
	"cubemenu/internal/registry"
)

// ExportPreset captures the User-scope menus of one workbench as a
// publishable preset. Menu ids are preserved so references between the
// exported menus keep resolving after import on another machine.
func ExportPreset(reg *registry.Registry, name, workbench string) Preset {
	def := reg.Base(domain.ScopeUser, workbench).GetString("default")
	var menus []domain.MenuDefinition
	for _, id := range reg.Index(domain.ScopeUser, workbench) {
		d := domain.Domain{Scope: domain.ScopeUser, Workbench: workbench, UUID: id}
		g := reg.FindGroup(d.String())
		if g == nil {
			continue
		}
		menus = append(menus, domain.MenuDefinition{
			Workbench: workbench,
			UUID:      id,
			Name:      g.GetString("name"),
			Commands:  domain.SplitCommands(g.GetString("commands")),
			Default:   def == d.String(),
		})
	}
	return Preset{Name: name, Workbench: workbench, Menus: menus}
}

// ImportPreset installs a preset's menus into the User scope of its
// workbench. Existing menus with the same id are overwritten; others
// are left alone. It returns the number of menus written.
func ImportPreset(reg *registry.Registry, p Preset) int {
	n := 0
	for _, def := range p.Menus {
		if !domain.ValidSegment(def.Workbench) || !domain.ValidSegment(def.UUID) {
			continue
		}
		d := domain.Domain{Scope: domain.ScopeUser, Workbench: def.Workbench, UUID: def.UUID}
		g := reg.Ensure(d)
		g.SetString("name", def.Name)
		g.SetString("commands", domain.JoinCommands(def.Commands))
		if def.Default {
			reg.Base(domain.ScopeUser, def.Workbench).SetString("default", d.String())
		}
		n++
	}
	return n
}
