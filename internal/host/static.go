/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package host

// StaticActions is a fixed in-memory action catalog for tests and for
// running the app without an embedding host.
type StaticActions struct {
	byName map[string]Action
	order  []string
}

// NewStaticActions builds a catalog from a fixed action list.
func NewStaticActions(actions []Action) *StaticActions {
	c := &StaticActions{byName: make(map[string]Action, len(actions))}
	for _, a := range actions {
		if _, ok := c.byName[a.Name]; !ok {
			c.order = append(c.order, a.Name)
		}
		c.byName[a.Name] = a
	}
	return c
}

func (c *StaticActions) Lookup(name string) (Action, bool) {
	a, ok := c.byName[name]
	return a, ok
}

func (c *StaticActions) List() []Action {
	out := make([]Action, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.byName[n])
	}
	return out
}

// StaticWorkbenches is a fixed workbench catalog.
type StaticWorkbenches struct {
	Items    []Workbench
	ActiveWb string
}

func (c *StaticWorkbenches) List() []Workbench { return c.Items }
func (c *StaticWorkbenches) Active() string    { return c.ActiveWb }

// StaticToolbars is a fixed toolbar catalog.
type StaticToolbars struct {
	Names    []string
	Contents map[string][]string
}

func (c *StaticToolbars) List() []string { return c.Names }

func (c *StaticToolbars) Commands(name string) []string {
	return c.Contents[name]
}
