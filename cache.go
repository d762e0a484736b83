// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered help pages only change with the terminal width
	renderCacheExpiration = 30 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered markdown pages
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func renderKey(page string, width int) string {
	return fmt.Sprintf("%s@%d", page, width)
}

func CacheRender(c *cache.Cache, key string, rendered string) {
	c.Set(key, rendered, renderCacheExpiration)
}

func GetRender(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRender returns the cached page or renders and stores it.
func GetOrRender(c *cache.Cache, key string, render func() (string, error)) (string, error) {
	if page := GetRender(c, key); page != "" {
		return page, nil
	}
	page, err := render()
	if err != nil {
		return "", err
	}
	CacheRender(c, key, page)
	return page, nil
}
