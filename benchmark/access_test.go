package benchmark

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"testing"
)

// Benchmarks a running server. Point ACCESS_BENCH_URL at it and
// ACCESS_BENCH_KEY at a valid project API key, e.g.
//
//	ACCESS_BENCH_URL=http://localhost:8080 ACCESS_BENCH_KEY=... go test -bench=. ./benchmark
func benchTarget(b *testing.B) (string, string) {
	url := os.Getenv("ACCESS_BENCH_URL")
	key := os.Getenv("ACCESS_BENCH_KEY")
	if url == "" || key == "" {
		b.Skip("set ACCESS_BENCH_URL and ACCESS_BENCH_KEY to run benchmarks")
	}
	return url, key
}

func BenchmarkAccessCheck(b *testing.B) {
	url, key := benchTarget(b)
	body := []byte(`{"user_id": "user_123", "permission": "course_ultra"}`)

	b.Run("POST /access/check", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("POST", url+"/access/check", bytes.NewReader(body))
			r.Header.Add("Authorization", fmt.Sprintf("Bearer %s", key))
			r.Header.Add("Content-Type", "application/json")
			_, _ = http.DefaultClient.Do(r)
		}
	})
}

func BenchmarkAccessGrantRevoke(b *testing.B) {
	url, key := benchTarget(b)
	grantBody := []byte(`{"user_id": "bench_user", "permission": "course_ultra"}`)

	b.Run("POST /access/grant then /access/revoke", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("POST", url+"/access/grant", bytes.NewReader(grantBody))
			r.Header.Add("Authorization", fmt.Sprintf("Bearer %s", key))
			r.Header.Add("Content-Type", "application/json")
			_, _ = http.DefaultClient.Do(r)

			r, _ = http.NewRequest("POST", url+"/access/revoke", bytes.NewReader(grantBody))
			r.Header.Add("Authorization", fmt.Sprintf("Bearer %s", key))
			r.Header.Add("Content-Type", "application/json")
			_, _ = http.DefaultClient.Do(r)
		}
	})
}
