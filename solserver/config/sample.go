// Copyright 2026 The SOL Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

const apiSample = `
[api]
# The address the HTTP API listens on (host:port or ip:port or :port).
# (default "127.0.0.1:5000")
addr = "127.0.0.1:5000"
`

const engineSample = `
[engine]
# The maximum number of paths enumerated per ingress-egress pair when a
# topology is set. (default 100)
max_paths = 100
`
