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

package env

const metricsSample = `
[metrics]
# The address to export prometheus metrics on (host:port or ip:port or :port).
# The prometheus metrics can be found under /metrics.
# If not set, metrics are not exported. (default "")
prometheus = ""
`

const tracingSample = `
[tracing]
# Enable tracing. (default false)
enabled = false
# Enable debug mode. (default false)
debug = false
# Address of the local agent that handles the reported traces.
# (default: localhost:6831)
agent = "localhost:6831"
`
