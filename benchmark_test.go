package smack

import (
	"io"
	"strconv"
	"testing"
)

func BenchmarkLoadDeck(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Load("testdata/deck"); err != nil {
			b.Fatalf("load: %v", err)
		}
	}
}

func BenchmarkRenderDeck(b *testing.B) {
	p := loadDeck(b)
	steps := p.Steps()
	widths := []int{50, 80, 120}
	for _, width := range widths {
		b.Run(strconv.Itoa(width), func(b *testing.B) {
			r := NewRenderer(DefaultTheme())
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				step := steps[i%len(steps)]
				out := r.RenderFrame(Frame{Step: step, Position: i % len(steps), Total: len(steps), Width: width, Height: 40})
				_, _ = io.WriteString(io.Discard, out)
			}
		})
	}
}
