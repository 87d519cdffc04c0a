package jsonmend_bench

import (
	"testing"

	"github.com/jsonmend/jsonmend/pkg/jsonmend"
)

// ============================================================================
// Benchmark Fixtures
// ============================================================================

const validManifest = `{
  "name": "widget",
  "version": "1.2.3",
  "description": "a useful widget",
  "scripts": {"build": "make", "test": "make test"},
  "dependencies": {"left-pad": "^1.3.0", "lodash": "^4.17.21"}
}`

const brokenManifest = `{
  name: "widget"
  "version": "1.2.3",
  "scripts": {
    "build": "make"
    "test": "make test"
  }
  "dependencies": {
    "left-pad": "^1.3.0",
  }`

// ============================================================================
// Benchmarks: Remediate
// ============================================================================

func BenchmarkRemediate_Valid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		jsonmend.Remediate(validManifest)
	}
}

func BenchmarkRemediate_Broken(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		jsonmend.Remediate(brokenManifest)
	}
}

func BenchmarkRemediate_Unfixable(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		jsonmend.Remediate("definitely not json")
	}
}

func BenchmarkRemediateManifest(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		jsonmend.RemediateManifest(brokenManifest)
	}
}
