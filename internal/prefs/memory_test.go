/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package prefs

import (
	"reflect"
	"testing"
)

func TestGroupOrderIsInsertionOrder(t *testing.T) {
	s := NewMemStore()
	base := s.Root().Group("CubeMenu").Group("User").Group("Wb")
	base.Group("c")
	base.Group("a")
	base.Group("b")
	if got, want := base.Groups(), []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Groups() = %v, want %v", got, want)
	}
	// Re-accessing an existing child must not reorder.
	base.Group("a")
	if got, want := base.Groups(), []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Groups() after re-access = %v, want %v", got, want)
	}
}

func TestTypedNamespacesAreIndependent(t *testing.T) {
	s := NewMemStore()
	g := s.Root().Group("g")
	g.SetString("x", "str")
	g.SetBool("x", true)
	g.SetInt("x", 7)
	g.SetUnsigned("x", 9)
	if g.GetString("x") != "str" || !g.GetBool("x", false) || g.GetInt("x", 0) != 7 || g.GetUnsigned("x", 0) != 9 {
		t.Fatalf("typed namespaces interfered with each other")
	}
	g.RemBool("x")
	if g.GetString("x") != "str" {
		t.Fatalf("RemBool removed the string value")
	}
	if g.GetBool("x", false) {
		t.Fatalf("bool survived RemBool")
	}
}

func TestGetDefaults(t *testing.T) {
	s := NewMemStore()
	g := s.Root().Group("g")
	if g.GetString("missing") != "" {
		t.Fatalf("missing string should be empty")
	}
	if !g.GetBool("missing", true) {
		t.Fatalf("missing bool should yield default")
	}
	if g.GetInt("missing", 42) != 42 {
		t.Fatalf("missing int should yield default")
	}
}

func TestLookupDoesNotCreate(t *testing.T) {
	s := NewMemStore()
	g := s.Root().Group("g")
	if _, ok := g.Lookup("child"); ok {
		t.Fatalf("Lookup created or found a non-existent child")
	}
	if len(g.Groups()) != 0 {
		t.Fatalf("Lookup must not create groups")
	}
}

func TestRemGroupAndClear(t *testing.T) {
	s := NewMemStore()
	g := s.Root().Group("g")
	g.Group("a")
	g.Group("b")
	g.SetString("k", "v")
	g.RemGroup("a")
	if got, want := g.Groups(), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Groups() after RemGroup = %v, want %v", got, want)
	}
	g.RemGroup("a") // absent: no-op
	g.Clear()
	if len(g.Groups()) != 0 || g.GetString("k") != "" {
		t.Fatalf("Clear left residue")
	}
}

func TestDump(t *testing.T) {
	s := NewMemStore()
	g := s.Root().Group("CubeMenu")
	g.SetString("k", "v")
	g.Group("User").Group("Wb").SetBool("Expand", true)
	d := Dump(s.Root())
	groups, ok := d["groups"].(map[string]any)
	if !ok {
		t.Fatalf("dump missing groups: %#v", d)
	}
	cm, ok := groups["CubeMenu"].(map[string]any)
	if !ok {
		t.Fatalf("dump missing CubeMenu: %#v", groups)
	}
	strs, ok := cm["strings"].(map[string]string)
	if !ok || strs["k"] != "v" {
		t.Fatalf("dump missing string value: %#v", cm)
	}
}
