/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package definitions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	gojsonschema "github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"cubemenu/internal/domain"
	"cubemenu/internal/menu"
	"cubemenu/internal/registry"
)

//go:embed menus.schema.json
var menusSchema []byte

// File is one menu definition document.
type File struct {
	Menus []domain.MenuDefinition `json:"menus" yaml:"menus"`
}

// Parse decodes and schema-validates a YAML menu definition document.
func Parse(data []byte) (*File, error) {
	// Round-trip through generic YAML so the schema validator sees
	// plain JSON types.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse menu definitions: %w", err)
	}
	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize menu definitions: %w", err)
	}
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(menusSchema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate menu definitions: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("invalid menu definitions: %s", result.Errors()[0])
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode menu definitions: %w", err)
	}
	return &f, nil
}

// Register installs every menu of f and returns the count accepted.
// Definitions with unusable segments are skipped, not fatal; the file
// as a whole was already schema-checked.
func (f *File) Register(reg *registry.Registry) int {
	n := 0
	for _, def := range f.Menus {
		if _, ok := menu.AddMenu(reg, def); ok {
			n++
		}
	}
	return n
}

// LoadFile parses path and registers its menus.
func LoadFile(reg *registry.Registry, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read menu definitions: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return 0, err
	}
	return f.Register(reg), nil
}
