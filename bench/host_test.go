package bench_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sparsebench/bench"
)

func TestDetectHost(t *testing.T) {
	h := bench.DetectHost()
	assert.Equal(t, runtime.GOOS, h.OS)
	assert.Equal(t, runtime.GOARCH, h.Arch)
	assert.Positive(t, h.CPUs)
	assert.Equal(t, runtime.Version(), h.GoVersion)
	assert.Contains(t, h.String(), runtime.GOOS+"/"+runtime.GOARCH)
}

func TestHostInfoString(t *testing.T) {
	h := bench.HostInfo{OS: "linux", Arch: "arm64", CPUs: 4, GoVersion: "go1.24.0", Features: []string{"asimd", "fp"}}
	assert.Equal(t, "linux/arm64, 4 CPUs, go1.24.0, features: asimd fp", h.String())
}
