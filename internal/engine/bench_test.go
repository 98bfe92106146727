package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seekr/seekr/internal/types"
)

func BenchmarkSearchContent(b *testing.B) {
	dir := b.TempDir()
	payload := []byte(strings.Repeat("lorem ipsum Error dolor\n", 64))
	for i := 0; i < 128; i++ {
		name := filepath.Join(dir, fmt.Sprintf("file-%03d.txt", i))
		if err := os.WriteFile(name, payload, 0644); err != nil {
			b.Fatal(err)
		}
	}

	for _, threads := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("threads_%d", threads), func(b *testing.B) {
			cfg := Config{Root: dir, Mode: types.ModeContent, Keywords: []string{"Error", "Warn"}, Threads: threads}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Search(cfg); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(len(payload) * 128))
		})
	}
}
