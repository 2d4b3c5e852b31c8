package benchmark

import (
	"net/http"
	"os"
	"testing"
)

// Run against a local server seeded with an extract:
//
//	crashctl server &
//	crashctl import extract.json
//	CRASH_RECORD_ID=<id> go test -bench . ./benchmark/...

func targetURL(path string) string {
	base := os.Getenv("CRASHDB_URL")
	if base == "" {
		base = "http://localhost:8000"
	}
	return base + path
}

func BenchmarkFetchCrash(b *testing.B) {
	id := os.Getenv("CRASH_RECORD_ID")
	if id == "" {
		b.Skip("Set CRASH_RECORD_ID to a seeded crash record")
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r, _ := http.NewRequest("GET", targetURL("/crashes/"+id), nil)
		_, _ = http.DefaultClient.Do(r)
	}
}

func BenchmarkListCrashes(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r, _ := http.NewRequest("GET", targetURL("/crashes?limit=100"), nil)
		_, _ = http.DefaultClient.Do(r)
	}
}
