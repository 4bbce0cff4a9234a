/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package host declares the narrow read-only interfaces through which
// the menu engine consumes its host application: the live action
// catalog, the workbench catalog, and toolbar command lists used as
// copy sources. The engine never creates, owns, or executes commands.
package host

// Action describes one invocable host command, by identifier.
type Action struct {
	Name    string // stable identifier, e.g. "Std_ViewFront"
	Label   string // display text
	Tooltip string
}

// ActionCatalog is the host's mapping of identifiers to live commands.
type ActionCatalog interface {
	Lookup(name string) (Action, bool)
	List() []Action
}

// Workbench is one mode/context of the host application.
type Workbench struct {
	Name  string // class name used in domain paths
	Label string // display text
}

// WorkbenchCatalog enumerates workbenches and reports the active one.
type WorkbenchCatalog interface {
	List() []Workbench
	Active() string
}

// ToolbarCatalog exposes the host's live toolbars as command lists, so
// a toolbar can be copied into a fresh menu.
type ToolbarCatalog interface {
	List() []string
	Commands(name string) []string
}
