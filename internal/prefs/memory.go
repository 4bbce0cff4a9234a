/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package prefs

// MemStore is an in-memory preference tree. It backs tests and hosts
// that bring their own persistence, and serves as the working copy of
// the SQLite store.
type MemStore struct {
	root *group
	// onChange, when set, runs after every mutation. The SQLite store
	// uses it to write through.
	onChange func()
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	s := &MemStore{}
	s.root = newGroup(s, "")
	return s
}

// Root returns the tree root.
func (s *MemStore) Root() Group { return s.root }

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error { return nil }

func (s *MemStore) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

type group struct {
	store    *MemStore
	name     string
	strings  map[string]string
	bools    map[string]bool
	ints     map[string]int
	uints    map[string]uint32
	children map[string]*group
	order    []string
}

func newGroup(s *MemStore, name string) *group {
	return &group{store: s, name: name}
}

func (g *group) Name() string { return g.name }

func (g *group) GetString(key string) string { return g.strings[key] }

func (g *group) SetString(key, value string) {
	if g.strings == nil {
		g.strings = map[string]string{}
	}
	g.strings[key] = value
	g.store.changed()
}

func (g *group) RemString(key string) {
	if _, ok := g.strings[key]; ok {
		delete(g.strings, key)
		g.store.changed()
	}
}

func (g *group) GetBool(key string, def bool) bool {
	if v, ok := g.bools[key]; ok {
		return v
	}
	return def
}

func (g *group) SetBool(key string, v bool) {
	if g.bools == nil {
		g.bools = map[string]bool{}
	}
	g.bools[key] = v
	g.store.changed()
}

func (g *group) RemBool(key string) {
	if _, ok := g.bools[key]; ok {
		delete(g.bools, key)
		g.store.changed()
	}
}

func (g *group) GetInt(key string, def int) int {
	if v, ok := g.ints[key]; ok {
		return v
	}
	return def
}

func (g *group) SetInt(key string, v int) {
	if g.ints == nil {
		g.ints = map[string]int{}
	}
	g.ints[key] = v
	g.store.changed()
}

func (g *group) RemInt(key string) {
	if _, ok := g.ints[key]; ok {
		delete(g.ints, key)
		g.store.changed()
	}
}

func (g *group) GetUnsigned(key string, def uint32) uint32 {
	if v, ok := g.uints[key]; ok {
		return v
	}
	return def
}

func (g *group) SetUnsigned(key string, v uint32) {
	if g.uints == nil {
		g.uints = map[string]uint32{}
	}
	g.uints[key] = v
	g.store.changed()
}

func (g *group) RemUnsigned(key string) {
	if _, ok := g.uints[key]; ok {
		delete(g.uints, key)
		g.store.changed()
	}
}

func (g *group) Group(name string) Group {
	if c, ok := g.children[name]; ok {
		return c
	}
	if g.children == nil {
		g.children = map[string]*group{}
	}
	c := newGroup(g.store, name)
	g.children[name] = c
	g.order = append(g.order, name)
	g.store.changed()
	return c
}

func (g *group) Lookup(name string) (Group, bool) {
	c, ok := g.children[name]
	if !ok {
		return nil, false
	}
	return c, true
}

func (g *group) Groups() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

func (g *group) RemGroup(name string) {
	if _, ok := g.children[name]; !ok {
		return
	}
	delete(g.children, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.store.changed()
}

func (g *group) Clear() {
	g.strings = nil
	g.bools = nil
	g.ints = nil
	g.uints = nil
	g.children = nil
	g.order = nil
	g.store.changed()
}
