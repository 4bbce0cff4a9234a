/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package definitions ships the built-in menu content: the global
// default menu installed on every start, and loading of user-provided
// menu definition files.
package definitions

import (
	"cubemenu/internal/domain"
	"cubemenu/internal/menu"
	"cubemenu/internal/registry"
)

// GlobalDefaultCommands is the menu every workbench falls back to when
// neither a User nor a System default is set.
var GlobalDefaultCommands = []string{
	"Std_ViewIsometric",
	"Std_ViewDimetric",
	"Std_ViewTrimetric",
	domain.SeparatorToken,
	"Std_OrthographicCamera",
	"Std_PerspectiveCamera",
	domain.SeparatorToken,
	"Std_SelectAll",
	"Std_BoxSelection",
	"Std_SelectVisibleObjects",
	"Std_ViewFitAll",
	"Std_ViewFitSelection",
	domain.SeparatorToken,
	"Std_ViewBoxZoom",
	"Std_ViewZoomIn",
	"Std_ViewZoomOut",
	domain.SeparatorToken,
	"Std_AxisCross",
	domain.SeparatorToken,
	"CubeMenu",
}

// Install registers the global default menu at its well-known domain
// and marks it as the System default of the global panel. Safe to call
// on every start; an existing registration is refreshed in place.
func Install(reg *registry.Registry) {
	menu.AddMenu(reg, domain.MenuDefinition{
		Workbench: domain.GlobalWorkbench,
		UUID:      "GlobalDefault",
		Name:      "Global default",
		Commands:  GlobalDefaultCommands,
		Default:   true,
	})
}
