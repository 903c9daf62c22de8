// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine a run executes on.
type HostInfo struct {
	OS        string
	Arch      string
	CPUs      int
	GoVersion string
	Features  []string // SIMD features relevant to the arch, detected via x/sys/cpu
}

type feature struct {
	name    string
	present bool
}

// DetectHost reads the runtime and CPU feature flags.
func DetectHost() HostInfo {
	var feats []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		feats = []feature{
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		feats = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fp", cpu.ARM64.HasFP},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}

	return HostInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		GoVersion: runtime.Version(),
		Features: lo.FilterMap(feats, func(f feature, _ int) (string, bool) {
			return f.name, f.present
		}),
	}
}

// String renders "linux/amd64, 8 CPUs, go1.24.0, features: avx avx2".
func (h HostInfo) String() string {
	feats := "none"
	if len(h.Features) > 0 {
		feats = strings.Join(h.Features, " ")
	}

	return fmt.Sprintf("%s/%s, %d CPUs, %s, features: %s", h.OS, h.Arch, h.CPUs, h.GoVersion, feats)
}
