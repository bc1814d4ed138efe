// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sys/cpu"
)

// Environment describes the machine a Report was produced on.
type Environment struct {
	NumCPU    int
	GoVersion string
	GOOS      string
	GOARCH    string
	Features  []string // SIMD features relevant to float64 kernels
}

// DetectEnvironment inspects the running process.
func DetectEnvironment() Environment {
	return Environment{
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		Features:  cpuFeatures(),
	}
}

// cpuFeatures lists the detected float SIMD extensions.
func cpuFeatures() []string {
	var fs []string
	add := func(ok bool, name string) {
		if ok {
			fs = append(fs, name)
		}
	}
	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasFMA, "fma")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasFPHP, "fphp")
	add(cpu.ARM64.HasSVE, "sve")

	return fs
}

// Report is the outcome of Run.
type Report struct {
	Env     Environment
	Config  Config
	Results []Result
}

// Write renders the report as an aligned text table.
func (r *Report) Write(w io.Writer) error {
	features := "none"
	if len(r.Env.Features) > 0 {
		features = strings.Join(r.Env.Features, " ")
	}
	if _, err := fmt.Fprintf(w, "CPUs: %d | Go: %s | %s/%s | features: %s\n\n",
		r.Env.NumCPU, r.Env.GoVersion, r.Env.GOOS, r.Env.GOARCH, features); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "size\tmethod\tthreshold\tlevels\tbest\tmean\tspeedup\tdiff norm\tmultiplications\tadditions\t")
	for _, res := range r.Results {
		th := "-"
		if res.Method == MethodStrassen {
			th = fmt.Sprint(res.Threshold)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%v\t%v\t%.2fx\t%.3e\t%d\t%d\t\n",
			res.Size, res.Method, th, res.Levels, res.Best, res.Mean, res.Speedup,
			res.DiffNorm, res.Counts.Multiplications, res.Counts.Additions)
	}

	return tw.Flush()
}
