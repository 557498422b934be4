// Copyright 2014 The Cayley Authors. All rights reserved.
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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config defines the behavior of one reasoning-core process. Unlike the
// teacher's Config (which selected among several persistent backends), this
// Config has exactly one optional bulk-load source: a connection string for
// the external triples(subject,predicate,object) table (spec §6).
type Config struct {
	CloudDBURL string
	LoadSize   int
	MaxDepth   int
	ListenHost string
	ListenPort string
	ReadOnly   bool
	Timeout    time.Duration
}

type config struct {
	CloudDBURL string   `json:"cloud_db_url"`
	LoadSize   int      `json:"load_size"`
	MaxDepth   int      `json:"max_depth"`
	ListenHost string   `json:"listen_host"`
	ListenPort string   `json:"listen_port"`
	ReadOnly   bool     `json:"read_only"`
	Timeout    duration `json:"timeout"`
}

func (c *Config) UnmarshalJSON(data []byte) error {
	var t config
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*c = Config{
		CloudDBURL: t.CloudDBURL,
		LoadSize:   t.LoadSize,
		MaxDepth:   t.MaxDepth,
		ListenHost: t.ListenHost,
		ListenPort: t.ListenPort,
		ReadOnly:   t.ReadOnly,
		Timeout:    time.Duration(t.Timeout),
	}
	return nil
}

func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(config{
		CloudDBURL: c.CloudDBURL,
		LoadSize:   c.LoadSize,
		MaxDepth:   c.MaxDepth,
		ListenHost: c.ListenHost,
		ListenPort: c.ListenPort,
		ReadOnly:   c.ReadOnly,
		Timeout:    duration(c.Timeout),
	})
}

// duration is a time.Duration that satisfies the json.Unmarshaler and
// json.Marshaler interfaces, tolerant of a Go duration string or a bare
// number of seconds.
type duration time.Duration

// UnmarshalJSON unmarshals a duration according to the following scheme:
//   - If the element is absent the duration is zero.
//   - If the element is parsable as a time.Duration, the parsed value is kept.
//   - If the element is parsable as a number, that number of seconds is kept.
func (d *duration) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		*d = 0
		return nil
	}
	text := string(data)
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	t, err := time.ParseDuration(text)
	if err == nil {
		*d = duration(t)
		return nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		*d = duration(time.Duration(i) * time.Second)
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	*d = duration(time.Duration(f) * time.Second)
	return err
}

func (d *duration) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Duration(*d))), nil
}

// DefaultMaxDepth mirrors proof.MaxDepth; kept independent so config does not
// import proof purely for a constant.
const DefaultMaxDepth = 10

// Load reads a JSON-encoded config from the given file, then applies
// environment overrides (CLOUD_DB_URL, MAX_DEPTH) on top. A zero value config
// with defaults applied is returned if the filename is empty.
func Load(file string) (*Config, error) {
	cfg := &Config{MaxDepth: DefaultMaxDepth, LoadSize: 10000}
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open config file %q: %v", file, err)
		}
		defer f.Close()

		dec := json.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %q: %v", file, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays CLOUD_DB_URL and MAX_DEPTH from the process environment,
// per spec §6 ("an optional bulk-load source is selected by an environment
// variable naming a connection string") and §9 ("make this an explicit
// configuration value threaded through construction; no process-wide
// singleton" — the env var is read once, here, and from then on travels as a
// field on Config).
func applyEnv(cfg *Config) {
	if v := os.Getenv("CLOUD_DB_URL"); v != "" {
		cfg.CloudDBURL = v
	}
	if v := os.Getenv("MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxDepth = n
		}
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.LoadSize <= 0 || cfg.LoadSize > 10000 {
		cfg.LoadSize = 10000
	}
}
