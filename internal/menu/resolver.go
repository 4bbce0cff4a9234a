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
	"cubemenu/internal/prefs"
	"cubemenu/internal/registry"
)

// Resolver turns stored menu domains into flat command sequences.
// It is read-only with respect to the preference tree.
type Resolver struct {
	reg *registry.Registry
}

func NewResolver(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Workbench maps the host's active workbench to the workbench whose
// menus should be shown. When the global flag is set on the root group,
// every workbench collapses onto the shared global panel.
func (r *Resolver) Workbench(active string) string {
	if r.reg.Root().GetBool("Global", false) {
		return domain.GlobalWorkbench
	}
	if active == "" {
		return domain.GlobalWorkbench
	}
	return active
}

// TopDomain reports the domain of the menu to show for a workbench.
// Precedence is the User default, then the System default, then the
// built-in global default. Only the presence of a default string is
// considered; a default that names a deleted menu still wins here and
// resolves to an empty sequence.
func (r *Resolver) TopDomain(workbench string) string {
	if d := r.reg.Base(domain.ScopeUser, workbench).GetString("default"); d != "" {
		return d
	}
	if d := r.reg.Base(domain.ScopeSystem, workbench).GetString("default"); d != "" {
		return d
	}
	return domain.GlobalDefaultDomain
}

// Resolve returns the command sequence stored at domainPath with any
// CPGlobalDefault token replaced by the global default's commands.
// The splice is single level: global-default tokens inside the spliced
// sequence are dropped rather than expanded again. A missing or
// malformed domain resolves to an empty sequence.
func (r *Resolver) Resolve(domainPath string) []string {
	g := r.reg.FindGroup(domainPath)
	if g == nil {
		return nil
	}
	raw := domain.SplitCommands(g.GetString("commands"))
	var out []string
	for _, cmd := range raw {
		if cmd != domain.GlobalDefaultToken {
			out = append(out, cmd)
			continue
		}
		for _, gc := range r.globalDefault() {
			if gc != domain.GlobalDefaultToken {
				out = append(out, gc)
			}
		}
	}
	return out
}

func (r *Resolver) globalDefault() []string {
	g := r.reg.FindGroup(domain.GlobalDefaultDomain)
	if g == nil {
		return nil
	}
	return domain.SplitCommands(g.GetString("commands"))
}

// ResolveTop resolves the workbench's active top-level menu. It returns
// the chosen domain alongside the command sequence so callers can
// record selections against it.
func (r *Resolver) ResolveTop(workbench string) (string, []string) {
	d := r.TopDomain(workbench)
	return d, r.Resolve(d)
}

// ResolvePanel flattens a menu into the button sequence shown on the
// cube panel. Separators and bare menu placeholders carry no button and
// are dropped. A submenu reference stays a single button while
// collapsed; when its group is marked Expand the reference is replaced
// by the submenu's own commands, one level only, with separators and
// any nested menu tokens stripped, followed by a collapse token for
// folding it back. The collapse token is placed before a trailing
// spacer so the spacer keeps closing the row.
func (r *Resolver) ResolvePanel(domainPath string) []string {
	var out []string
	for _, cmd := range r.Resolve(domainPath) {
		tok := domain.ParseToken(cmd)
		switch tok.Kind {
		case domain.TokenSeparator, domain.TokenMenuPlaceholder:
			// no button
		case domain.TokenMenuRef:
			sub := tok.Menu.String()
			g := r.reg.FindGroup(sub)
			if g == nil {
				continue
			}
			if !g.GetBool("Expand", false) {
				out = append(out, cmd)
				continue
			}
			inner := r.expandOnce(sub)
			collapse := domain.CollapsePrefix + sub
			if n := len(inner); n > 0 && inner[n-1] == domain.SpacerToken {
				inner = append(inner[:n-1], collapse, domain.SpacerToken)
			} else {
				inner = append(inner, collapse)
			}
			out = append(out, inner...)
		default:
			out = append(out, cmd)
		}
	}
	return out
}

// expandOnce flattens one submenu for inline display. Actions and
// spacers survive; separators, placeholders, and menu references of
// any kind are stripped, so expansion never recurses and a
// self-referencing menu cannot loop.
func (r *Resolver) expandOnce(domainPath string) []string {
	var out []string
	for _, cmd := range r.Resolve(domainPath) {
		switch domain.ParseToken(cmd).Kind {
		case domain.TokenSeparator, domain.TokenMenuPlaceholder, domain.TokenMenuRef:
		default:
			out = append(out, cmd)
		}
	}
	return out
}

// ActiveDomain reports the last submenu opened under the given menu, or
// the menu itself when nothing was recorded or the record went stale.
func (r *Resolver) ActiveDomain(domainPath string) string {
	g := r.reg.FindGroup(domainPath)
	if g == nil {
		return domainPath
	}
	if a := g.GetString("active"); a != "" && r.reg.FindGroup(a) != nil {
		return a
	}
	return domainPath
}

// Name reports the display name stored on a menu group, falling back to
// its uuid segment when unnamed.
func (r *Resolver) Name(domainPath string) string {
	g := r.reg.FindGroup(domainPath)
	if g == nil {
		return ""
	}
	if n := g.GetString("name"); n != "" {
		return n
	}
	if d, ok := domain.ParseDomain(domainPath); ok {
		return d.UUID
	}
	return ""
}

// Group exposes the backing preference group of a resolved domain.
func (r *Resolver) Group(domainPath string) prefs.Group {
	return r.reg.FindGroup(domainPath)
}
