/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package telemetry sends anonymous, opt-in usage events for the menu
// engine. Events never leave the process unless both the opt-in flag
// and an endpoint are configured, and they never carry menu ids or
// command payloads: the Menu helper reduces a domain path to its scope
// and workbench before queueing.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"cubemenu/internal/domain"
	applog "cubemenu/internal/log"
	"cubemenu/internal/version"
)

// Config controls the sender. Telemetry is disabled by default.
//
// Environment variables (read by FromEnv):
// - CBM_TELEMETRY_OPT_IN: "1", "true", "yes" to enable
// - CBM_TELEMETRY_URL: URL to POST JSON events to
// - CBM_TELEMETRY_TIMEOUT_MS: request timeout, default 1500ms
// - CBM_TELEMETRY_DEBUG: if set, logs send attempts
type Config struct {
	OptIn   bool
	URL     string
	Timeout time.Duration
	Debug   bool
}

func FromEnv() Config {
	cfg := Config{
		OptIn:   isOn(os.Getenv("CBM_TELEMETRY_OPT_IN")),
		URL:     strings.TrimSpace(os.Getenv("CBM_TELEMETRY_URL")),
		Timeout: 1500 * time.Millisecond,
		Debug:   os.Getenv("CBM_TELEMETRY_DEBUG") != "",
	}
	if ms := strings.TrimSpace(os.Getenv("CBM_TELEMETRY_TIMEOUT_MS")); ms != "" {
		if v, err := time.ParseDuration(ms + "ms"); err == nil {
			cfg.Timeout = v
		}
	}
	return cfg
}

func isOn(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// event is the wire record. The identifying fields stop at OS and app
// version; anything per-user or per-menu must already be stripped by
// the caller.
type event struct {
	Name    string         `json:"name"`
	Time    string         `json:"ts"`
	Version string         `json:"version"`
	OS      string         `json:"os"`
	Arch    string         `json:"arch"`
	Props   map[string]any `json:"props,omitempty"`
}

// Client queues events on a bounded channel and posts them from a
// single background goroutine. A full queue drops, a failed request
// drops; the sender must never block or fail the UI.
type Client struct {
	cfg  Config
	log  *slog.Logger
	http *http.Client

	queue chan event
	stop  chan struct{}
	once  sync.Once
}

var (
	defaultClient *Client
	defaultOnce   sync.Once
)

// InitDefault builds the package-level client from the environment on
// first use.
func InitDefault() {
	defaultOnce.Do(func() { defaultClient = New(FromEnv()) })
}

// New constructs a client and starts its sender goroutine.
func New(cfg Config) *Client {
	c := &Client{
		cfg:   cfg,
		log:   applog.WithComponent("telemetry"),
		http:  &http.Client{Timeout: cfg.Timeout},
		queue: make(chan event, 64),
		stop:  make(chan struct{}),
	}
	go c.run()
	return c
}

// Enabled reports whether events actually leave the process.
func (c *Client) Enabled() bool { return c != nil && c.cfg.OptIn && c.cfg.URL != "" }

// Enabled reports the default client's state.
func Enabled() bool {
	InitDefault()
	return defaultClient.Enabled()
}

// Event queues a named usage event. props must not identify the user
// or their menu content.
func (c *Client) Event(name string, props map[string]any) {
	if !c.Enabled() || name == "" {
		return
	}
	ev := event{
		Name:    name,
		Time:    time.Now().UTC().Format(time.RFC3339Nano),
		Version: version.String(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		Props:   props,
	}
	select {
	case c.queue <- ev:
	default:
		// queue full, drop
	}
}

// Event queues on the default client.
func Event(name string, props map[string]any) { InitDefault(); defaultClient.Event(name, props) }

// Menu queues a menu lifecycle event ("menu_"+op). Only the scope and
// workbench of the domain are reported; uuids identify user content
// and stay local.
func (c *Client) Menu(op, domainPath string) {
	var props map[string]any
	if d, ok := domain.ParseDomain(domainPath); ok {
		props = map[string]any{
			"scope":     string(d.Scope),
			"workbench": d.Workbench,
		}
	}
	c.Event("menu_"+op, props)
}

// Menu queues on the default client.
func Menu(op, domainPath string) { InitDefault(); defaultClient.Menu(op, domainPath) }

// Flush waits briefly for the queue to drain.
func (c *Client) Flush(ctx context.Context) {
	deadline := time.Now().Add(500 * time.Millisecond)
	for len(c.queue) > 0 && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return
		case <-time.After(25 * time.Millisecond):
		}
	}
}

// Close stops the sender goroutine. Queued events are dropped.
func (c *Client) Close() { c.once.Do(func() { close(c.stop) }) }

func (c *Client) run() {
	for {
		select {
		case <-c.stop:
			return
		case ev := <-c.queue:
			c.post(ev)
		}
	}
}

func (c *Client) post(ev event) {
	buf, err := json.Marshal(ev)
	if err != nil {
		return
	}
	req, err := http.NewRequest(http.MethodPost, c.cfg.URL, bytes.NewReader(buf))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		if c.cfg.Debug {
			c.log.Debug("telemetry send failed", slog.Any("err", err))
		}
		return
	}
	_ = resp.Body.Close()
	if c.cfg.Debug {
		c.log.Debug("telemetry event sent", slog.String("name", ev.Name))
	}
}
