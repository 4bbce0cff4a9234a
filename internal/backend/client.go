/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cubemenu/internal/domain"
)

// Preset is a published menu set for one workbench.
type Preset struct {
	ID        int64                   `json:"id,omitempty"`
	Name      string                  `json:"name"`
	Workbench string                  `json:"workbench"`
	Menus     []domain.MenuDefinition `json:"menus,omitempty"`
	CreatedBy string                  `json:"created_by,omitempty"`
	UpdatedAt time.Time               `json:"updated_at,omitempty"`
}

// Client is a minimal HTTP client for the preset sharing API.
type Client struct {
	BaseURL string
	Token   string // bearer token
	client  *http.Client
}

// NewClient creates a new backend client. baseURL may include a trailing slash; it will be normalized.
func NewClient(baseURL string, token string) *Client {
	b := strings.TrimRight(baseURL, "/")
	return &Client{
		BaseURL: b,
		Token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, dest any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return err
	}
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("server %s %s: %s", method, u.Path, resp.Status)
	}
	if dest == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(dest)
}

// ListPresets returns published presets, optionally filtered by workbench.
func (c *Client) ListPresets(ctx context.Context, workbench string) ([]Preset, error) {
	path := "/api/presets"
	if workbench != "" {
		path += "?workbench=" + url.QueryEscape(workbench)
	}
	var list []Preset
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetPreset fetches one preset with its full menu payload.
func (c *Client) GetPreset(ctx context.Context, id int64) (*Preset, error) {
	var p Preset
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/presets/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PublishPreset uploads a preset and returns its server id.
func (c *Client) PublishPreset(ctx context.Context, p Preset) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/presets", p, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}
