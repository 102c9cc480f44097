/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mison

type config struct {
	backend       Backend
	savePatterns  bool
	allowFallback bool
}

// Option configures NewParser.
type Option func(*config)

// WithBackend overrides the Backend used to build structural bitmaps.
// Default: DefaultBackend(), the fastest one the running CPU supports.
func WithBackend(b Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithSavePatterns enables recording each visited query node's observed
// field layout into a PatternTree during ModeBasic evaluation, so a later
// ModeSpeculative call can replay it.
// Default: false.
func WithSavePatterns(v bool) Option {
	return func(c *config) { c.savePatterns = v }
}

// WithAllowFallback controls whether ModeSpeculative silently falls back
// to ModeBasic when the record's layout no longer matches the recorded
// pattern, or returns ErrFailedSpeculativeParse instead.
// Default: true.
func WithAllowFallback(v bool) Option {
	return func(c *config) { c.allowFallback = v }
}

// NewParser registers paths (each of the form "$.a.b.c") into a fresh
// QueryTree and returns an Evaluator ready to run against records shaped
// like the paths describe.
func NewParser(paths []string, opts ...Option) (*Evaluator, error) {
	qt := NewQueryTree()
	for _, p := range paths {
		if err := qt.AddPath(p); err != nil {
			return nil, err
		}
	}

	cfg := config{backend: DefaultBackend(), allowFallback: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	builder := NewIndexBuilder(cfg.backend, qt.MaxLevel())
	ev := NewEvaluator(builder, qt)
	ev.SetSavePatterns(cfg.savePatterns)
	ev.SetAllowFallback(cfg.allowFallback)
	return ev, nil
}
