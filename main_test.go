package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fundchart "github.com/fundlens/fundchart/lib"
)

func writeDataset(t *testing.T, points int) string {
	t.Helper()

	var b bytes.Buffer
	b.WriteString(`{"primary":[`)
	for i := 0; i < points; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"t":"2024-01-02T00:00:00Z","v":%d}`, 100+i%17)
	}
	b.WriteString(`],"markers":[{"t":"2024-01-02T00:00:00Z","kind":"buy","price":100}]}`)

	name := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(name, b.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestReadPayloadMaxSize(t *testing.T) {
	input := writeDataset(t, 100)

	if _, err := readPayload(input, 16); err == nil {
		t.Error("oversized input was accepted")
	}
	p, err := readPayload(input, 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Primary) != 100 {
		t.Errorf("decoded %d points; want 100", len(p.Primary))
	}
}

func TestReadPayloadMissingFile(t *testing.T) {
	if _, err := readPayload(filepath.Join(t.TempDir(), "nope.json"), -1); err == nil {
		t.Error("missing input file was accepted")
	}
}

func TestDownsampleCommand(t *testing.T) {
	input := writeDataset(t, 1000)
	output := filepath.Join(t.TempDir(), "reduced.json")

	if err := downsample(input, output, 200, -1); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var p fundchart.Payload
	if err := p.UnmarshalJSON(bytes.TrimSpace(data)); err != nil {
		t.Fatalf("decoding command output: %v", err)
	}
	if len(p.Primary) != 200 {
		t.Errorf("reduced to %d points; want 200", len(p.Primary))
	}
	if len(p.Markers) != 1 {
		t.Errorf("markers not carried through; got %d", len(p.Markers))
	}
}

func TestRenderCommand(t *testing.T) {
	input := writeDataset(t, 500)

	for _, tc := range []struct {
		format string
		magic  string
	}{
		{"png", "\x89PNG"},
		{"svg", "<svg"},
	} {
		output := filepath.Join(t.TempDir(), "chart."+tc.format)
		err := render(&renderOpts{
			input: input, output: output, format: tc.format,
			width: 900, height: 500,
			threshold: 200, target: 200, maxSize: -1,
		})
		if err != nil {
			t.Fatalf("%s: %v", tc.format, err)
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte(tc.magic)) {
			t.Errorf("%s output does not start with %q", tc.format, tc.magic)
		}
	}
}

func TestRenderCommandBadFormat(t *testing.T) {
	input := writeDataset(t, 10)
	err := render(&renderOpts{input: input, output: "stdout", format: "gif", width: 10, height: 10, maxSize: -1})
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("err = %v; want unsupported format", err)
	}
}

func TestSummaryCommand(t *testing.T) {
	input := writeDataset(t, 100)
	output := filepath.Join(t.TempDir(), "summary.txt")

	if err := summary(input, output, -1); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Series", "Portfolio", "100"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("summary output missing %q:\n%s", want, data)
		}
	}
}
