/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package menu

import (
	"reflect"
	"testing"

	"cubemenu/internal/domain"
	"cubemenu/internal/host"
)

func TestMoveUpDownBoundaries(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	dom := addMenu(t, reg, "Wb", "M", "A", "B", "C")

	if got := m.MoveUp(dom, 0); got != 0 {
		t.Fatalf("MoveUp at top returned %d", got)
	}
	if got := m.MoveDown(dom, 2); got != 2 {
		t.Fatalf("MoveDown at bottom returned %d", got)
	}
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("boundary moves changed sequence: %v", got)
	}

	if got := m.MoveUp(dom, 2); got != 1 {
		t.Fatalf("MoveUp returned %d, want 1", got)
	}
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"A", "C", "B"}) {
		t.Fatalf("after MoveUp: %v", got)
	}
	if got := m.MoveDown(dom, 0); got != 1 {
		t.Fatalf("MoveDown returned %d, want 1", got)
	}
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"C", "A", "B"}) {
		t.Fatalf("after MoveDown: %v", got)
	}
}

func TestInsertAfterRow(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	dom := addMenu(t, reg, "Wb", "M", "A", "B")

	if got := m.Insert(dom, 0, "X"); got != 1 {
		t.Fatalf("Insert returned row %d, want 1", got)
	}
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"A", "X", "B"}) {
		t.Fatalf("after Insert: %v", got)
	}
	// Out-of-range row appends.
	if got := m.Insert(dom, 99, "Z"); got != 3 {
		t.Fatalf("append Insert returned %d, want 3", got)
	}
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"A", "X", "B", "Z"}) {
		t.Fatalf("after append: %v", got)
	}
	m.Insert(dom, 0, "")
	if got := m.Commands(dom); len(got) != 4 {
		t.Fatalf("empty insert changed sequence: %v", got)
	}
}

func TestRemoveSelection(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	dom := addMenu(t, reg, "Wb", "M", "A", "B", "C")

	if got := m.Remove(dom, 1); got != 1 {
		t.Fatalf("Remove mid returned %d, want 1", got)
	}
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("after mid remove: %v", got)
	}
	if got := m.Remove(dom, 1); got != 0 {
		t.Fatalf("Remove last returned %d, want 0", got)
	}
	if got := m.Remove(dom, 5); got != 5 {
		t.Fatalf("out-of-range Remove returned %d", got)
	}
}

func TestBindOverwritesPlaceholderInPlace(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	sub := addMenu(t, reg, "Wb", "Sub", "X")
	dom := addMenu(t, reg, "Wb", "M", "A", domain.MenuToken, "B")

	m.Bind(dom, 1, sub)
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"A", sub, "B"}) {
		t.Fatalf("after Bind: %v", got)
	}
}

func TestBindRetargetsExistingReference(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	sub1 := addMenu(t, reg, "Wb", "Sub1")
	sub2 := addMenu(t, reg, "Wb", "Sub2")
	dom := addMenu(t, reg, "Wb", "M", "A", sub1)

	m.Bind(dom, 1, sub2)
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"A", sub2}) {
		t.Fatalf("after rebind: %v", got)
	}
}

func TestBindRefusals(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	sub := addMenu(t, reg, "Wb", "Sub")
	dom := addMenu(t, reg, "Wb", "M", "A", domain.MenuToken)

	m.Bind(dom, 1, dom)                   // self
	m.Bind(dom, 1, "CPMenu.User.Wb.gone") // absent target
	m.Bind(dom, 0, sub)                   // row holds an action, not a placeholder
	m.Bind(dom, 5, sub)                   // out of range
	if got := m.Commands(dom); !reflect.DeepEqual(got, []string{"A", domain.MenuToken}) {
		t.Fatalf("refused binds changed sequence: %v", got)
	}
}

func TestNewMenuAndDelete(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	r := NewResolver(reg)

	dom := m.NewMenu(domain.ScopeUser, "Wb")
	if dom == "" {
		t.Fatalf("NewMenu failed")
	}
	if got := r.Name(dom); got != "New menu" {
		t.Fatalf("new menu name = %q", got)
	}
	parent := addMenu(t, reg, "Wb", "P", dom)

	m.Delete(dom)
	if reg.FindGroup(dom) != nil {
		t.Fatalf("menu survived Delete")
	}
	// The stale reference stays stored but renders to nothing.
	if got := m.Commands(parent); !reflect.DeepEqual(got, []string{dom}) {
		t.Fatalf("delete rewrote referencing menu: %v", got)
	}
	if got := r.ResolvePanel(parent); got != nil {
		t.Fatalf("stale reference rendered: %v", got)
	}
}

func TestCopyMenuFromMenu(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	src := addMenu(t, reg, "Wb", "Src", "A", "B")
	reg.FindGroup(src).SetString("name", "Views")

	dom := m.CopyMenu(src, domain.ScopeUser, "OtherWb")
	if dom == "" {
		t.Fatalf("CopyMenu failed")
	}
	d, _ := domain.ParseDomain(dom)
	if d.Scope != domain.ScopeUser || d.Workbench != "OtherWb" {
		t.Fatalf("copy landed at %q", dom)
	}
	g := reg.FindGroup(dom)
	if got := g.GetString("name"); got != "Views" {
		t.Fatalf("copied name = %q", got)
	}
	if got := g.GetString("commands"); got != "A,B" {
		t.Fatalf("copied commands = %q", got)
	}
}

func TestCopyMenuFromToolbar(t *testing.T) {
	reg := newTestRegistry(t)
	tb := &host.StaticToolbars{
		Names:    []string{"View"},
		Contents: map[string][]string{"View": {"Std_ViewFitAll", "Std_ViewZoomIn"}},
	}
	m := NewMutator(reg, tb)

	dom := m.CopyMenu("CPMenu.Toolbar.View", domain.ScopeUser, "Wb")
	if dom == "" {
		t.Fatalf("toolbar copy failed")
	}
	g := reg.FindGroup(dom)
	if got := g.GetString("name"); got != "View" {
		t.Fatalf("toolbar copy name = %q", got)
	}
	if got := g.GetString("commands"); got != "Std_ViewFitAll,Std_ViewZoomIn" {
		t.Fatalf("toolbar copy commands = %q", got)
	}

	if got := m.CopyMenu("CPMenu.Toolbar.Nope", domain.ScopeUser, "Wb"); got != "" {
		t.Fatalf("unknown toolbar copied to %q", got)
	}
}

func TestDefaultLifecycle(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	r := NewResolver(reg)
	sys := addMenu(t, reg, "Wb", "S", "Std_S")
	reg.Base(domain.ScopeSystem, "Wb").SetString("default", sys)
	user := m.NewMenu(domain.ScopeUser, "Wb")
	m.SetCommands(user, []string{"Std_U"})

	m.SetDefault(user)
	if dom, _ := r.ResolveTop("Wb"); dom != user {
		t.Fatalf("SetDefault not honored: %q", dom)
	}
	m.ClearDefault("Wb")
	if dom, _ := r.ResolveTop("Wb"); dom != sys {
		t.Fatalf("ClearDefault did not restore System default: %q", dom)
	}
	m.SetDefault("CPMenu.User.Wb.gone")
	if dom, _ := r.ResolveTop("Wb"); dom != sys {
		t.Fatalf("SetDefault accepted absent menu: %q", dom)
	}
}

func TestResetWorkbenchReseeds(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	a := m.NewMenu(domain.ScopeUser, "Wb")
	b := m.NewMenu(domain.ScopeUser, "Wb")
	m.SetDefault(a)
	_ = b

	m.ResetWorkbench("Wb")
	ids := reg.Index(domain.ScopeUser, "Wb")
	if len(ids) != 1 {
		t.Fatalf("reset left %d menus, want 1 seed", len(ids))
	}
	if got := reg.Base(domain.ScopeUser, "Wb").GetString("default"); got != "" {
		t.Fatalf("reset kept default %q", got)
	}
}

func TestSetExpandedRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMutator(reg, nil)
	dom := addMenu(t, reg, "Wb", "M")

	m.SetExpanded(dom, true)
	if !reg.FindGroup(dom).GetBool("Expand", false) {
		t.Fatalf("expanded flag not set")
	}
	m.SetExpanded(dom, false)
	if reg.FindGroup(dom).GetBool("Expand", false) {
		t.Fatalf("expanded flag not cleared")
	}
}
