/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package session

import (
	"path/filepath"
	"testing"

	"cubemenu/internal/domain"
	"cubemenu/internal/host"
	"cubemenu/internal/prefs"
	"cubemenu/internal/registry"
)

func TestStartInstallsGlobalDefault(t *testing.T) {
	s, err := Start(Options{Store: prefs.NewMemStore()})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Close()

	if s.Registry.FindGroup(domain.GlobalDefaultDomain) == nil {
		t.Fatalf("global default not installed")
	}
	if _, cmds := s.Resolver.ResolveTop("AnyWb"); len(cmds) == 0 {
		t.Fatalf("fallback resolution empty")
	}
}

func TestStartRequiresStore(t *testing.T) {
	if _, err := Start(Options{}); err == nil {
		t.Fatalf("Start accepted empty options")
	}
}

func TestCloseRemovesSystemScope(t *testing.T) {
	store := prefs.NewMemStore()
	s, err := Start(Options{Store: store})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	root := store.Root().Group(registry.RootGroupName)
	if _, ok := root.Lookup(string(domain.ScopeSystem)); ok {
		t.Fatalf("System scope survived Close")
	}
}

func TestClosePrunesEmptyUserWorkbenches(t *testing.T) {
	store := prefs.NewMemStore()
	s, err := Start(Options{Store: store})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	kept := s.Mutator.NewMenu(domain.ScopeUser, "KeptWb")
	s.Registry.Base(domain.ScopeUser, "EmptyWb")
	if err := s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	root := store.Root().Group(registry.RootGroupName)
	user, ok := root.Lookup(string(domain.ScopeUser))
	if !ok {
		t.Fatalf("User scope gone")
	}
	if _, ok := user.Lookup("EmptyWb"); ok {
		t.Fatalf("empty workbench not pruned")
	}
	if _, ok := user.Lookup("KeptWb"); !ok {
		t.Fatalf("workbench with menus pruned, had %q", kept)
	}
}

func TestUserStateSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Start(Options{StorePath: path})
	if err != nil {
		t.Fatalf("first Start error: %v", err)
	}
	dom := s.Mutator.NewMenu(domain.ScopeUser, "Wb")
	s.Mutator.SetCommands(dom, []string{"Std_A", "Std_B"})
	s.Mutator.SetDefault(dom)
	if err := s.Close(); err != nil {
		t.Fatalf("first Close error: %v", err)
	}

	s, err = Start(Options{StorePath: path})
	if err != nil {
		t.Fatalf("second Start error: %v", err)
	}
	defer s.Close()
	gotDom, cmds := s.Resolver.ResolveTop("Wb")
	if gotDom != dom {
		t.Fatalf("restart default = %q, want %q", gotDom, dom)
	}
	if len(cmds) != 2 || cmds[0] != "Std_A" {
		t.Fatalf("restart commands = %v", cmds)
	}
}

func TestActiveWorkbench(t *testing.T) {
	s, err := Start(Options{
		Store:       prefs.NewMemStore(),
		Workbenches: &host.StaticWorkbenches{ActiveWb: "PartDesignWorkbench"},
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Close()

	if got := s.ActiveWorkbench(); got != "PartDesignWorkbench" {
		t.Fatalf("ActiveWorkbench = %q", got)
	}
	s.Mutator.SetGlobal(true)
	if got := s.ActiveWorkbench(); got != domain.GlobalWorkbench {
		t.Fatalf("global mode ActiveWorkbench = %q", got)
	}
}
