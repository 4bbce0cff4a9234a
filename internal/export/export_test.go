/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"os"
	"path/filepath"
	"testing"

	"cubemenu/internal/domain"
	"cubemenu/internal/host"
	"cubemenu/internal/menu"
	"cubemenu/internal/prefs"
	"cubemenu/internal/registry"
)

func buildTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(prefs.NewMemStore())
	sub, ok := menu.AddMenu(reg, domain.MenuDefinition{Workbench: "PartDesignWorkbench", UUID: "Extras", Name: "Extras", Commands: []string{"Std_ViewTop"}})
	if !ok {
		t.Fatalf("AddMenu failed")
	}
	_, ok = menu.AddMenu(reg, domain.MenuDefinition{
		Workbench: "PartDesignWorkbench",
		UUID:      "Main",
		Name:      "Main",
		Commands:  []string{"Std_ViewFront", "CPSeparator", sub},
		Default:   true,
	})
	if !ok {
		t.Fatalf("AddMenu failed")
	}
	return reg
}

func TestBuildReference(t *testing.T) {
	reg := buildTestRegistry(t)
	actions := host.NewStaticActions([]host.Action{
		{Name: "Std_ViewFront", Label: "Front view"},
	})

	ref := BuildReference(reg, actions)
	if len(ref.Workbenches) != 1 || ref.Workbenches[0].Name != "PartDesignWorkbench" {
		t.Fatalf("workbenches = %+v", ref.Workbenches)
	}
	menus := ref.Workbenches[0].Menus
	if len(menus) != 2 {
		t.Fatalf("got %d menus, want 2", len(menus))
	}
	var main *MenuRef
	for i := range menus {
		if menus[i].Name == "Main" {
			main = &menus[i]
		}
	}
	if main == nil {
		t.Fatalf("menu Main missing: %+v", menus)
	}
	if !main.Default {
		t.Fatalf("Main not marked default")
	}
	if len(main.Entries) != 3 {
		t.Fatalf("entries = %+v", main.Entries)
	}
	if main.Entries[0].Label != "Front view" {
		t.Fatalf("action label = %q, want catalog label", main.Entries[0].Label)
	}
	if !main.Entries[1].Separator {
		t.Fatalf("second entry not a separator")
	}
	if !main.Entries[2].Submenu || main.Entries[2].Label != "Extras" {
		t.Fatalf("submenu entry = %+v", main.Entries[2])
	}
}

func TestExportReferencePDF(t *testing.T) {
	reg := buildTestRegistry(t)
	ref := BuildReference(reg, nil)

	out := filepath.Join(t.TempDir(), "menus.pdf")
	if err := ExportReferencePDF(ref, out, PDFOptions{}); err != nil {
		t.Fatalf("ExportReferencePDF error: %v", err)
	}
	st, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if st.Size() == 0 {
		t.Fatalf("empty pdf written")
	}
}
