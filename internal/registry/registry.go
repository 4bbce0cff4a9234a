/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package registry maps dotted menu domains onto groups of the
// preference tree: lookup, creation with stable ids, deletion, and the
// ordered sibling index kept per workbench base group. Lookups on
// malformed or absent domains return nil, never an error; a broken
// menu must not take the host UI down with it.
package registry

import (
	"github.com/google/uuid"

	"cubemenu/internal/domain"
	"cubemenu/internal/prefs"
)

// RootGroupName is the add-on's branch in the host preference tree.
const RootGroupName = "CubeMenu"

// Registry addresses menu groups below one preference root.
type Registry struct {
	root prefs.Group
}

// New returns a registry over the add-on root group of store.
func New(store prefs.Store) *Registry {
	return &Registry{root: store.Root().Group(RootGroupName)}
}

// Root exposes the add-on root group (mode flags such as "Global" live here).
func (r *Registry) Root() prefs.Group { return r.root }

// Scope returns the top-level branch for a scope, creating it if absent.
func (r *Registry) Scope(s domain.Scope) prefs.Group {
	return r.root.Group(string(s))
}

// Base returns the (scope, workbench) base group, creating it if absent.
func (r *Registry) Base(scope domain.Scope, workbench string) prefs.Group {
	return r.Scope(scope).Group(workbench)
}

// FindGroup resolves a four-segment menu domain to its group. It
// returns nil for malformed paths, base-form paths, the Toolbar pseudo
// scope, and any absent segment; it never creates groups.
func (r *Registry) FindGroup(domainPath string) prefs.Group {
	d, ok := domain.ParseDomain(domainPath)
	if !ok || d.UUID == "" || d.Scope == domain.ScopeToolbar {
		return nil
	}
	scope, ok := r.root.Lookup(string(d.Scope))
	if !ok {
		return nil
	}
	base, ok := scope.Lookup(d.Workbench)
	if !ok {
		return nil
	}
	g, ok := base.Lookup(d.UUID)
	if !ok {
		return nil
	}
	return g
}

// Ensure returns the group for a four-segment domain, creating the path
// if needed. Used by the declarative registration API, where the caller
// supplies the id.
func (r *Registry) Ensure(d domain.Domain) prefs.Group {
	g := r.Base(d.Scope, d.Workbench).Group(d.UUID)
	g.SetString("uuid", d.UUID)
	return g
}

// NewGroup creates a new menu group under a scope+workbench base domain
// with a freshly generated id, initializes it empty, and appends it to
// the sibling index. It returns nil and the zero domain when baseDomain
// is not a usable base path.
func (r *Registry) NewGroup(baseDomain string) (prefs.Group, domain.Domain) {
	d, ok := domain.ParseDomain(baseDomain)
	if !ok || d.UUID != "" || d.Scope == domain.ScopeToolbar {
		return nil, domain.Domain{}
	}
	base := r.Base(d.Scope, d.Workbench)
	uid := uuid.NewString()
	for {
		if _, exists := base.Lookup(uid); !exists {
			break
		}
		uid = uuid.NewString()
	}
	d.UUID = uid
	g := base.Group(uid)
	g.SetString("uuid", uid)
	g.SetString("name", "")
	g.SetString("commands", "")
	return g, d
}

// DeleteGroup removes the group addressed by a menu domain together
// with its index entry. Menus elsewhere that still reference the domain
// are left untouched; dangling references resolve to empty at render
// time, not at delete time.
func (r *Registry) DeleteGroup(domainPath string) {
	d, ok := domain.ParseDomain(domainPath)
	if !ok || d.UUID == "" || d.Scope == domain.ScopeToolbar {
		return
	}
	scope, ok := r.root.Lookup(string(d.Scope))
	if !ok {
		return
	}
	base, ok := scope.Lookup(d.Workbench)
	if !ok {
		return
	}
	base.RemGroup(d.UUID)
}

// Index lists the menu ids under a scope+workbench base in insertion
// order. Consumers that need sorted display sort explicitly.
func (r *Registry) Index(scope domain.Scope, workbench string) []string {
	s, ok := r.root.Lookup(string(scope))
	if !ok {
		return nil
	}
	base, ok := s.Lookup(workbench)
	if !ok {
		return nil
	}
	return base.Groups()
}

// DefaultGroup ensures the workbench base is usable after a reset or
// first visit: at least one (empty) menu group exists, and a recorded
// default that no longer resolves is dropped. It never invents a new
// default, so resolution keeps falling through to System or the global
// default until the user picks one.
func (r *Registry) DefaultGroup(scope domain.Scope, workbench string) {
	base := r.Base(scope, workbench)
	if len(base.Groups()) == 0 {
		g, _ := r.NewGroup(domain.Domain{Scope: scope, Workbench: workbench}.String())
		if g != nil {
			g.SetString("name", "New menu")
		}
	}
	if def := base.GetString("default"); def != "" && r.FindGroup(def) == nil {
		base.RemString("default")
	}
}
