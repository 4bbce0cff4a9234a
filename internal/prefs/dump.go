/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package prefs

// Dump renders the subtree rooted at g as nested maps, for crash reports
// and diagnostics. Values of the four typed namespaces are grouped under
// "strings"/"bools"/"ints"/"unsigned"; children under "groups".
func Dump(g Group) map[string]any {
	out := map[string]any{}
	if m, ok := g.(*group); ok {
		if len(m.strings) > 0 {
			out["strings"] = copyMap(m.strings)
		}
		if len(m.bools) > 0 {
			out["bools"] = copyMap(m.bools)
		}
		if len(m.ints) > 0 {
			out["ints"] = copyMap(m.ints)
		}
		if len(m.uints) > 0 {
			out["unsigned"] = copyMap(m.uints)
		}
	}
	names := g.Groups()
	if len(names) > 0 {
		children := map[string]any{}
		for _, name := range names {
			if c, ok := g.Lookup(name); ok {
				children[name] = Dump(c)
			}
		}
		out["groups"] = children
	}
	return out
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
