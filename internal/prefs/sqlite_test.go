/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package prefs

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.sqlite")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	root := s.Root().Group("CubeMenu")
	root.SetBool("Global", true)
	base := root.Group("User").Group("PartDesign")
	base.SetString("default", "CPMenu.User.PartDesign.one")
	g := base.Group("one")
	g.SetString("uuid", "one")
	g.SetString("name", "Views")
	g.SetString("commands", "Std_ViewFront,CPSeparator,Std_ViewTop")
	g.SetBool("Expand", true)
	g.SetInt("weight", 3)
	g.SetUnsigned("color", 4278190080)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer func() { _ = s2.Close() }()
	root2 := s2.Root().Group("CubeMenu")
	if !root2.GetBool("Global", false) {
		t.Fatalf("Global bool did not survive reopen")
	}
	base2, ok := root2.Group("User").Lookup("PartDesign")
	if !ok {
		t.Fatalf("workbench group missing after reopen")
	}
	if got, want := base2.GetString("default"), "CPMenu.User.PartDesign.one"; got != want {
		t.Fatalf("default = %q, want %q", got, want)
	}
	g2, ok := base2.Lookup("one")
	if !ok {
		t.Fatalf("menu group missing after reopen")
	}
	if got, want := g2.GetString("commands"), "Std_ViewFront,CPSeparator,Std_ViewTop"; got != want {
		t.Fatalf("commands = %q, want %q", got, want)
	}
	if !g2.GetBool("Expand", false) || g2.GetInt("weight", 0) != 3 || g2.GetUnsigned("color", 0) != 4278190080 {
		t.Fatalf("typed values did not survive reopen")
	}
}

func TestSQLiteSiblingOrderSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.sqlite")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	base := s.Root().Group("CubeMenu").Group("User").Group("Wb")
	for _, n := range []string{"zz", "aa", "mm"} {
		base.Group(n)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer func() { _ = s2.Close() }()
	base2 := s2.Root().Group("CubeMenu").Group("User").Group("Wb")
	if got, want := base2.Groups(), []string{"zz", "aa", "mm"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("sibling order after reopen = %v, want %v", got, want)
	}
}

func TestSQLiteOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("Open(\"\") should fail")
	}
}
