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

import "errors"

// ErrInvalidQuery is returned by QueryTree.AddPath when a path does not
// start with "$." or contains an empty segment (e.g. "$..x", "$.", "$").
var ErrInvalidQuery = errors.New("mison: invalid query path")

// ErrInvalidRecord is returned whenever a record fails to structurally
// index or evaluate: unbalanced brackets/braces, a field-name scan that
// runs out of quotes, a colon/comma query at a level the builder was not
// constructed for, or a leaf value that fails to parse.
var ErrInvalidRecord = errors.New("mison: invalid record")

// ErrFailedSpeculativeParse is returned by Evaluator.Parse in ModeSpeculative when
// the recorded field ordering does not match the record and fallback to
// the basic evaluator has been disabled via WithAllowFallback(false).
var ErrFailedSpeculativeParse = errors.New("mison: speculative parse failed")
