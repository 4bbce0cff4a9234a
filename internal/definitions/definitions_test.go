/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package definitions

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cubemenu/internal/domain"
	"cubemenu/internal/menu"
	"cubemenu/internal/prefs"
	"cubemenu/internal/registry"
)

func TestInstallGlobalDefault(t *testing.T) {
	reg := registry.New(prefs.NewMemStore())
	Install(reg)

	r := menu.NewResolver(reg)
	dom, cmds := r.ResolveTop("AnyWorkbench")
	if dom != domain.GlobalDefaultDomain {
		t.Fatalf("fallback domain = %q", dom)
	}
	if !reflect.DeepEqual(cmds, GlobalDefaultCommands) {
		t.Fatalf("global default commands = %v", cmds)
	}
	// Reinstall must not duplicate the group.
	Install(reg)
	if got := reg.Index(domain.ScopeSystem, domain.GlobalWorkbench); len(got) != 1 {
		t.Fatalf("reinstall duplicated groups: %v", got)
	}
}

func TestParseAndRegisterFile(t *testing.T) {
	doc := `
menus:
  - workbench: PartDesignWorkbench
    uuid: Views
    name: View menu
    commands: [Std_ViewFront, CPSeparator, Std_ViewTop]
    default: true
  - workbench: PartDesignWorkbench
    uuid: Extra
`
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Menus) != 2 {
		t.Fatalf("parsed %d menus, want 2", len(f.Menus))
	}

	reg := registry.New(prefs.NewMemStore())
	if n := f.Register(reg); n != 2 {
		t.Fatalf("Register accepted %d, want 2", n)
	}
	r := menu.NewResolver(reg)
	dom, cmds := r.ResolveTop("PartDesignWorkbench")
	if dom != "CPMenu.System.PartDesignWorkbench.Views" {
		t.Fatalf("default domain = %q", dom)
	}
	want := []string{"Std_ViewFront", "CPSeparator", "Std_ViewTop"}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("commands = %v, want %v", cmds, want)
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not yaml", ": ["},
		{"missing menus", "other: 1"},
		{"missing uuid", "menus:\n  - workbench: Wb"},
		{"wrong command type", "menus:\n  - workbench: Wb\n    uuid: X\n    commands: [1, 2]"},
		{"unknown key", "menus:\n  - workbench: Wb\n    uuid: X\n    extra: true"},
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc.doc)); err == nil {
			t.Fatalf("%s: Parse accepted invalid document", tc.name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menus.yaml")
	doc := "menus:\n  - workbench: Wb\n    uuid: M\n    commands: [Std_A]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg := registry.New(prefs.NewMemStore())
	n, err := LoadFile(reg, path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if n != 1 {
		t.Fatalf("registered %d, want 1", n)
	}

	if _, err := LoadFile(reg, filepath.Join(dir, "absent.yaml")); err == nil || !strings.Contains(err.Error(), "read menu definitions") {
		t.Fatalf("missing file error = %v", err)
	}
}
