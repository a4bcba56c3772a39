// Copyright 2026 go-thsort Authors
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

// Command thsbench runs the ths sorts over generated or file-supplied data,
// verifies the results and reports time and comparison counts.
//
// Usage:
//
//	thsbench run -n 1000000 --pattern few-unique --trials 8
//	thsbench run --algo static --algo std --input values.msgpack --format msgpack
//	thsbench check --algo stable values.txt
//	thsbench patterns
//
// Environment:
//
//	THS_WORKERS    default for --workers (0 uses GOMAXPROCS)
//	THS_NO_VERIFY  default for --no-verify
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
