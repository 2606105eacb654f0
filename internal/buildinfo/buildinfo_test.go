package buildinfo

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintBuildData(t *testing.T) {
	Version, BuildDate, Commit = "v1.0.0", "2026-01-02", "abc123"
	t.Cleanup(func() { Version, BuildDate, Commit = "N/A", "N/A", "N/A" })

	var buf bytes.Buffer
	PrintBuildData(&buf)

	for _, want := range []string{"Build version: v1.0.0", "Build date: 2026-01-02", "Build commit: abc123"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %q in %q", want, buf.String())
		}
	}
	if got := String(); got != "v1.0.0 (abc123, 2026-01-02)" {
		t.Fatalf("String() = %q", got)
	}
}
