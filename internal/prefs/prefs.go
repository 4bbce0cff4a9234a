/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package prefs adapts the host's hierarchical preference store: a tree
// of named groups, each holding typed scalars (string, bool, int,
// unsigned) and ordered child groups. Two implementations are provided:
// a plain in-memory tree and an SQLite-backed tree that survives
// restarts. Child enumeration order is insertion order and is stored
// explicitly, so it is deterministic across store implementations.
package prefs

// Group is one node of the preference tree. Getters with no default
// return the zero value when the key is absent; typed namespaces are
// independent (a bool named "x" does not shadow a string named "x").
type Group interface {
	// Name is the group's own name ("" for a store root).
	Name() string

	GetString(key string) string
	SetString(key, value string)
	RemString(key string)

	GetBool(key string, def bool) bool
	SetBool(key string, v bool)
	RemBool(key string)

	GetInt(key string, def int) int
	SetInt(key string, v int)
	RemInt(key string)

	GetUnsigned(key string, def uint32) uint32
	SetUnsigned(key string, v uint32)
	RemUnsigned(key string)

	// Group returns the named child, creating it if absent.
	Group(name string) Group
	// Lookup returns the named child without creating it.
	Lookup(name string) (Group, bool)
	// Groups lists child names in insertion order.
	Groups() []string
	// RemGroup removes the named child and its whole subtree.
	RemGroup(name string)
	// Clear removes all values and all children of this group.
	Clear()
}

// Store owns a preference tree.
type Store interface {
	Root() Group
	Close() error
}
