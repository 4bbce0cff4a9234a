/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"cubemenu/internal/backend"
	"cubemenu/internal/config"
	"cubemenu/internal/crash"
	"cubemenu/internal/export"
	"cubemenu/internal/host"
	applog "cubemenu/internal/log"
	"cubemenu/internal/session"
	"cubemenu/internal/ui"
	"cubemenu/internal/version"
)

func usage() {
	fmt.Println("CubeMenu — navigation cube menu engine")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cubemenu version|-v|--version            Show version")
	fmt.Println("  cubemenu ui                              Launch desktop UI (build with -tags fyne for full UI)")
	fmt.Println("  cubemenu resolve [<workbench>]           Print the resolved menu of a workbench")
	fmt.Println("  cubemenu export <out.pdf>                Export the configured menus as a PDF reference card")
	fmt.Println("  cubemenu presets list [<workbench>]      List published presets")
	fmt.Println("  cubemenu presets publish <name> <wb>     Publish the User menus of a workbench")
	fmt.Println("  cubemenu presets import <id>             Import a published preset")
	fmt.Println("  cubemenu serve                           Run the preset sharing server (needs enable_server)")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer func() { crash.Recover(nil) }()

	if dir, err := config.ConfigDir(); err == nil {
		crash.SetReportDir(dir)
	}

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("CubeMenu — navigation cube menu engine")
		fmt.Println(version.String())
	case "ui":
		runUI(l)
	case "resolve":
		wb := ""
		if len(args) >= 3 {
			wb = args[2]
		}
		runResolve(l, wb)
	case "export":
		if len(args) < 3 {
			fmt.Println("export requires <out.pdf>")
			usage()
			os.Exit(2)
		}
		runExport(l, args[2])
	case "presets":
		if len(args) < 3 {
			usage()
			os.Exit(2)
		}
		runPresets(l, args[2:])
	case "serve":
		cfg, _, _ := config.Load()
		if !cfg.General.EnableServer {
			fmt.Println("Server disabled. Set general.enable_server or CBM_ENABLE_SERVER=1.")
			os.Exit(2)
		}
		if err := backend.Start(); err != nil {
			l.Error("server failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}

func startSession(l *slog.Logger) *session.Session {
	cfg, _, err := config.Load()
	if err != nil {
		l.Error("load config failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	path, err := config.StorePath(cfg)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	s, err := session.Start(session.Options{
		StorePath:       path,
		DefinitionFiles: cfg.Store.DefinitionFiles,
		Actions:         demoActions(),
		Workbenches:     demoWorkbenches(),
		Toolbars:        demoToolbars(),
	})
	if err != nil {
		l.Error("session start failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	return s
}

func runUI(l *slog.Logger) {
	s := startSession(l)
	defer func() {
		if err := s.Close(); err != nil {
			l.Error("session close failed", slog.Any("err", err))
		}
	}()
	if err := ui.Run(s); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func runResolve(l *slog.Logger, workbench string) {
	s := startSession(l)
	defer func() { _ = s.Close() }()
	wb := s.Resolver.Workbench(workbench)
	dom, cmds := s.Resolver.ResolveTop(wb)
	fmt.Printf("Workbench: %s\nMenu: %s (%s)\n", wb, s.Resolver.Name(dom), dom)
	for _, c := range cmds {
		fmt.Println(" ", c)
	}
}

func runExport(l *slog.Logger, out string) {
	s := startSession(l)
	defer func() { _ = s.Close() }()
	ref := export.BuildReference(s.Registry, s.Actions)
	if err := export.ExportReferencePDF(ref, out, export.PDFOptions{}); err != nil {
		l.Error("export failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println("Wrote", out)
}

func runPresets(l *slog.Logger, args []string) {
	cfg, token, err := config.Load()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	client := backend.NewClient(cfg.Backend.BaseURL, token)
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Backend.TimeoutMs)*time.Millisecond)
	defer cancel()

	switch args[0] {
	case "list":
		wb := ""
		if len(args) >= 2 {
			wb = args[1]
		}
		list, err := client.ListPresets(ctx, wb)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		for _, p := range list {
			fmt.Printf("%d\t%s\t%s\t%s\n", p.ID, p.Workbench, p.Name, p.CreatedBy)
		}
	case "publish":
		if len(args) < 3 {
			fmt.Println("presets publish requires <name> and <workbench>")
			os.Exit(2)
		}
		s := startSession(l)
		p := backend.ExportPreset(s.Registry, args[1], args[2])
		_ = s.Close()
		if len(p.Menus) == 0 {
			fmt.Println("No User menus configured for", args[2])
			os.Exit(1)
		}
		id, err := client.PublishPreset(ctx, p)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Published preset", id)
	case "import":
		if len(args) < 2 {
			fmt.Println("presets import requires <id>")
			os.Exit(2)
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Println("Error: invalid preset id")
			os.Exit(2)
		}
		p, err := client.GetPreset(ctx, id)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		s := startSession(l)
		n := backend.ImportPreset(s.Registry, *p)
		if err := s.Close(); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d menus from preset %q\n", n, p.Name)
	default:
		usage()
		os.Exit(2)
	}
}

// Demo catalogs stand in for the embedding host when the binary runs on
// its own. The command set mirrors the stock view commands the global
// default references.
func demoActions() host.ActionCatalog {
	return host.NewStaticActions([]host.Action{
		{Name: "Std_ViewIsometric", Label: "Isometric"},
		{Name: "Std_ViewDimetric", Label: "Dimetric"},
		{Name: "Std_ViewTrimetric", Label: "Trimetric"},
		{Name: "Std_OrthographicCamera", Label: "Orthographic camera"},
		{Name: "Std_PerspectiveCamera", Label: "Perspective camera"},
		{Name: "Std_SelectAll", Label: "Select all"},
		{Name: "Std_BoxSelection", Label: "Box selection"},
		{Name: "Std_SelectVisibleObjects", Label: "Select visible objects"},
		{Name: "Std_ViewFitAll", Label: "Fit all"},
		{Name: "Std_ViewFitSelection", Label: "Fit selection"},
		{Name: "Std_ViewBoxZoom", Label: "Box zoom"},
		{Name: "Std_ViewZoomIn", Label: "Zoom in"},
		{Name: "Std_ViewZoomOut", Label: "Zoom out"},
		{Name: "Std_AxisCross", Label: "Axis cross"},
		{Name: "Std_ViewFront", Label: "Front"},
		{Name: "Std_ViewTop", Label: "Top"},
		{Name: "Std_ViewRight", Label: "Right"},
		{Name: "CubeMenu", Label: "Cube menu settings"},
	})
}

func demoWorkbenches() host.WorkbenchCatalog {
	return &host.StaticWorkbenches{
		Items: []host.Workbench{
			{Name: "PartDesignWorkbench", Label: "Part Design"},
			{Name: "SketcherWorkbench", Label: "Sketcher"},
			{Name: "DraftWorkbench", Label: "Draft"},
		},
		ActiveWb: "PartDesignWorkbench",
	}
}

func demoToolbars() host.ToolbarCatalog {
	return &host.StaticToolbars{
		Names: []string{"View"},
		Contents: map[string][]string{
			"View": {"Std_ViewFitAll", "Std_ViewIsometric", "Std_ViewFront", "Std_ViewTop", "Std_ViewRight"},
		},
	}
}
