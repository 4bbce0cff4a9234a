//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"cubemenu/internal/crash"
	"cubemenu/internal/domain"
	applog "cubemenu/internal/log"
	"cubemenu/internal/session"
	"cubemenu/internal/telemetry"
)

// Run starts the Fyne-based desktop shell over an already started session.
func Run(s *session.Session) error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	defer func() { crash.Recover(s.Store) }()

	fyneApp := app.NewWithID("cubemenu")
	w := fyneApp.NewWindow("CubeMenu")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 900)
	winH := prefs.IntWithFallback("window.height", 640)
	if winW < 600 {
		winW = 600
	}
	if winH < 420 {
		winH = 420
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	panel := container.NewVBox()

	workbench := s.ActiveWorkbench()
	activeDomain := ""

	invoke := func(name string) {
		if name == "" {
			return
		}
		if _, ok := s.Actions.Lookup(name); !ok {
			status.SetText(fmt.Sprintf("Unknown command: %s", name))
			return
		}
		telemetry.Event("command_invoked", nil)
		status.SetText(fmt.Sprintf("Invoked %s", name))
		l.Info("command invoked", slog.String("command", name))
	}

	var refreshPanel func()
	refreshPanel = func() {
		panel.Objects = nil
		dom := activeDomain
		if dom == "" {
			dom = s.Resolver.TopDomain(workbench)
		}
		row := container.NewHBox()
		for _, item := range PanelItems(s.Resolver, s.Actions, dom) {
			switch {
			case item.RowBreak:
				panel.Add(row)
				row = container.NewHBox()
			case item.Collapse != "":
				target := item.Collapse
				row.Add(widget.NewButton(item.Label, func() {
					s.Mutator.SetExpanded(target, false)
					refreshPanel()
				}))
			case item.Expand != "":
				target := item.Expand
				row.Add(widget.NewButton(item.Label, func() {
					s.Mutator.SetExpanded(target, true)
					s.Mutator.SetActive(dom, target)
					refreshPanel()
				}))
			default:
				name := item.Action
				row.Add(widget.NewButton(item.Label, func() { invoke(name) }))
			}
		}
		if len(row.Objects) > 0 {
			panel.Add(row)
		}
		panel.Refresh()
	}

	// Workbench selector mirrors the host's active workbench switch.
	var wbNames []string
	for _, wb := range s.Workbenches.List() {
		wbNames = append(wbNames, wb.Name)
	}
	wbSelect := widget.NewSelect(wbNames, func(name string) {
		workbench = s.Resolver.Workbench(name)
		activeDomain = ""
		refreshPanel()
	})
	wbSelect.SetSelected(workbench)

	globalCheck := widget.NewCheck("Global panel", func(on bool) {
		s.Mutator.SetGlobal(on)
		workbench = s.ActiveWorkbench()
		activeDomain = ""
		refreshPanel()
	})
	globalCheck.SetChecked(s.Registry.Root().GetBool("Global", false))

	editBtn := widget.NewButton("Preferences...", func() {
		showEditor(w, s, workbench, func() {
			activeDomain = ""
			refreshPanel()
		})
	})

	top := container.NewHBox(wbSelect, globalCheck, editBtn)
	w.SetContent(container.NewBorder(top, status, nil, nil, container.NewVScroll(panel)))
	refreshPanel()

	w.SetOnClosed(func() {
		prefs.SetInt("window.width", int(w.Canvas().Size().Width))
		prefs.SetInt("window.height", int(w.Canvas().Size().Height))
	})
	w.ShowAndRun()
	return nil
}

// showEditor opens the menu editing dialog for one workbench.
func showEditor(w fyne.Window, s *session.Session, workbench string, onChanged func()) {
	s.Registry.DefaultGroup(domain.ScopeUser, workbench)

	var menuDomains []string
	var menuNames []string
	reloadMenus := func() {
		menuDomains = menuDomains[:0]
		menuNames = menuNames[:0]
		for _, scope := range []domain.Scope{domain.ScopeUser, domain.ScopeSystem} {
			for _, id := range s.Registry.Index(scope, workbench) {
				d := domain.Domain{Scope: scope, Workbench: workbench, UUID: id}
				menuDomains = append(menuDomains, d.String())
				menuNames = append(menuNames, fmt.Sprintf("%s [%s]", s.Resolver.Name(d.String()), scope))
			}
		}
	}
	reloadMenus()

	current := ""
	if len(menuDomains) > 0 {
		current = menuDomains[0]
	}
	selectedRow := -1

	cmdList := widget.NewList(
		func() int { return len(s.Mutator.Commands(current)) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			cmds := s.Mutator.Commands(current)
			if i >= 0 && int(i) < len(cmds) {
				o.(*widget.Label).SetText(cmds[i])
			}
		},
	)
	cmdList.OnSelected = func(i widget.ListItemID) { selectedRow = int(i) }

	changed := func() {
		cmdList.Refresh()
		onChanged()
	}
	edited := func() {
		telemetry.Menu("edited", current)
		changed()
	}

	menuSelect := widget.NewSelect(menuNames, nil)
	menuSelect.OnChanged = func(string) {
		if i := menuSelect.SelectedIndex(); i >= 0 && i < len(menuDomains) {
			current = menuDomains[i]
			selectedRow = -1
			changed()
		}
	}
	if len(menuNames) > 0 {
		menuSelect.SetSelectedIndex(0)
	}

	var actionNames []string
	for _, a := range s.Actions.List() {
		actionNames = append(actionNames, a.Name)
	}
	actionSelect := widget.NewSelect(actionNames, nil)

	buttons := container.NewVBox(
		widget.NewButton("Move up", func() {
			if selectedRow >= 0 {
				selectedRow = s.Mutator.MoveUp(current, selectedRow)
				edited()
			}
		}),
		widget.NewButton("Move down", func() {
			if selectedRow >= 0 {
				selectedRow = s.Mutator.MoveDown(current, selectedRow)
				edited()
			}
		}),
		widget.NewButton("Remove", func() {
			if selectedRow >= 0 {
				selectedRow = s.Mutator.Remove(current, selectedRow)
				edited()
			}
		}),
		widget.NewButton("Insert action", func() {
			if actionSelect.Selected != "" {
				selectedRow = s.Mutator.Insert(current, selectedRow, actionSelect.Selected)
				edited()
			}
		}),
		widget.NewButton("Insert separator", func() {
			selectedRow = s.Mutator.Insert(current, selectedRow, domain.SeparatorToken)
			edited()
		}),
		widget.NewButton("Insert spacer", func() {
			selectedRow = s.Mutator.Insert(current, selectedRow, domain.SpacerToken)
			edited()
		}),
		widget.NewButton("Set as default", func() {
			s.Mutator.SetDefault(current)
			edited()
		}),
		widget.NewButton("New menu", func() {
			if dom := s.Mutator.NewMenu(domain.ScopeUser, workbench); dom != "" {
				reloadMenus()
				menuSelect.Options = menuNames
				menuSelect.Refresh()
				current = dom
				edited()
			}
		}),
		widget.NewButton("Delete menu", func() {
			d, ok := domain.ParseDomain(current)
			if !ok || d.Scope != domain.ScopeUser {
				return
			}
			dialog.ShowConfirm("Delete menu", "Delete this menu?", func(yes bool) {
				if !yes {
					return
				}
				s.Mutator.Delete(current)
				reloadMenus()
				menuSelect.Options = menuNames
				menuSelect.Refresh()
				if len(menuDomains) > 0 {
					current = menuDomains[0]
					menuSelect.SetSelectedIndex(0)
				} else {
					current = ""
				}
				edited()
			}, w)
		}),
	)

	content := container.NewBorder(menuSelect, nil, nil, buttons, cmdList)
	d := dialog.NewCustom("Menu preferences", "Close", content, w)
	d.Resize(fyne.NewSize(560, 420))
	d.Show()
}
