/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package session assembles the engine for one host run: it opens the
// preference store, installs the built-in and file-provided menu
// definitions, and tears session-scoped state back down on close.
package session

import (
	"fmt"
	"log/slog"

	"cubemenu/internal/definitions"
	"cubemenu/internal/domain"
	"cubemenu/internal/host"
	applog "cubemenu/internal/log"
	"cubemenu/internal/menu"
	"cubemenu/internal/prefs"
	"cubemenu/internal/registry"
	"cubemenu/internal/telemetry"
)

// Options configures Start. Exactly one of Store and StorePath should
// be set; Store wins when both are.
type Options struct {
	Store     prefs.Store // pre-opened store, not closed on Close when set
	StorePath string      // path of the SQLite preference store

	DefinitionFiles []string // extra menu definition documents

	Actions     host.ActionCatalog
	Workbenches host.WorkbenchCatalog
	Toolbars    host.ToolbarCatalog
}

// Session is the live engine of one host run.
type Session struct {
	Store    prefs.Store
	Registry *registry.Registry
	Resolver *menu.Resolver
	Mutator  *menu.Mutator

	Actions     host.ActionCatalog
	Workbenches host.WorkbenchCatalog
	Toolbars    host.ToolbarCatalog

	ownsStore bool
	log       *slog.Logger
}

// Start opens the store and installs menu definitions. System-scope
// menus registered here live only until Close.
func Start(opts Options) (*Session, error) {
	l := applog.WithComponent("session")
	store := opts.Store
	owns := false
	if store == nil {
		if opts.StorePath == "" {
			return nil, fmt.Errorf("start session: no store configured")
		}
		var err error
		store, err = prefs.Open(opts.StorePath)
		if err != nil {
			return nil, fmt.Errorf("start session: %w", err)
		}
		owns = true
	}

	reg := registry.New(store)
	definitions.Install(reg)
	for _, path := range opts.DefinitionFiles {
		n, err := definitions.LoadFile(reg, path)
		if err != nil {
			l.Warn("menu definition file skipped", slog.String("path", path), slog.Any("err", err))
			continue
		}
		l.Info("menu definitions loaded", slog.String("path", path), slog.Int("menus", n))
	}

	s := &Session{
		Store:       store,
		Registry:    reg,
		Resolver:    menu.NewResolver(reg),
		Mutator:     menu.NewMutator(reg, opts.Toolbars),
		Actions:     opts.Actions,
		Workbenches: opts.Workbenches,
		Toolbars:    opts.Toolbars,
		ownsStore:   owns,
		log:         l,
	}
	telemetry.Event("session_start", nil)
	l.Info("session started")
	return s, nil
}

// ActiveWorkbench reports the workbench whose menus should currently be
// shown, after the global-mode mapping.
func (s *Session) ActiveWorkbench() string {
	active := ""
	if s.Workbenches != nil {
		active = s.Workbenches.Active()
	}
	return s.Resolver.Workbench(active)
}

// Close drops session-scoped state and releases the store. The System
// scope is registered fresh on every start and is removed wholesale;
// User workbench groups that hold neither menus nor a default are
// pruned so abandoned workbenches do not accumulate.
func (s *Session) Close() error {
	root := s.Registry.Root()
	root.RemGroup(string(domain.ScopeSystem))

	if user, ok := root.Lookup(string(domain.ScopeUser)); ok {
		for _, wb := range user.Groups() {
			base, ok := user.Lookup(wb)
			if !ok {
				continue
			}
			if len(base.Groups()) == 0 && base.GetString("default") == "" {
				user.RemGroup(wb)
			}
		}
	}

	s.log.Info("session closed")
	if s.ownsStore {
		return s.Store.Close()
	}
	return nil
}
