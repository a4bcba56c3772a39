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

package main

import (
	"runtime"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// cpuFeatures lists the detected CPU features that affect sort timings,
// so runs on different machines can be told apart in the log.
func cpuFeatures() []string {
	var have map[string]bool
	switch runtime.GOARCH {
	case "amd64":
		have = map[string]bool{
			"sse4.2":   cpu.X86.HasSSE42,
			"popcnt":   cpu.X86.HasPOPCNT,
			"bmi2":     cpu.X86.HasBMI2,
			"avx2":     cpu.X86.HasAVX2,
			"avx512f":  cpu.X86.HasAVX512F,
			"avx512bw": cpu.X86.HasAVX512BW,
		}
	case "arm64":
		have = map[string]bool{
			"asimd":   cpu.ARM64.HasASIMD,
			"atomics": cpu.ARM64.HasATOMICS,
			"sve":     cpu.ARM64.HasSVE,
			"sve2":    cpu.ARM64.HasSVE2,
		}
	}
	features := lo.Keys(lo.PickBy(have, func(_ string, ok bool) bool { return ok }))
	slices.Sort(features)
	return features
}
