// Package report renders a summary of a finished run: frame counts,
// per-component update and draw timings, and memory usage.
package report

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/glsamples/game"
)

type Report struct {
	// Configuration
	Demo     string
	Renderer string
	Version  string

	// Results
	TotalTime     time.Duration
	Stats         game.Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// FramesPerSecond returns the average frame rate over the run.
func (r *Report) FramesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.Stats.Frames) / r.TotalTime.Seconds()
}

const reportTemplate = `
# Demo Run Report

## Configuration
- **Demo:** {{.Demo}}
{{- if .Renderer}}
- **Renderer:** {{.Renderer}}
{{- end}}
{{- if .Version}}
- **OpenGL:** {{.Version}}
{{- end}}

## Frames
- **Total Frames:** {{.Stats.Frames}}
- **Total Time:** {{.TotalTime}}
- **Average FPS:** {{printf "%.1f" .FramesPerSecond}}

## Components ({{.Stats.ComponentCount}})
{{- range .Stats.Components}}
### {{.Name}}
- **Update:** {{template "timing" .Update}}
- **Draw:** {{template "timing" .Draw}}
{{- end}}

## Memory Usage (MB)
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{define "timing"}}{{if .Count}}avg {{.Avg}}, min {{.Min}}, max {{.Max}} over {{.Count}} calls{{else}}n/a{{end}}{{end}}`

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"mb": func(v uint64) string {
		return fmt.Sprintf("%.2f", float64(v)/1024/1024)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
}).Parse(reportTemplate))

// Generate writes the report as Markdown.
func (r *Report) Generate(w io.Writer) error {
	return tmpl.Execute(w, r)
}
