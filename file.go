package main

import (
	"fmt"
	"io"
	"os"

	fundchart "github.com/fundlens/fundchart/lib"
)

func file(name string, create bool) (*os.File, error) {
	switch name {
	case "stdin":
		return os.Stdin, nil
	case "stdout":
		return os.Stdout, nil
	default:
		if create {
			return os.Create(name)
		}
		return os.Open(name)
	}
}

// readPayload decodes a dataset payload from the named file or stdin,
// refusing inputs larger than maxSize bytes when maxSize is positive.
func readPayload(name string, maxSize int64) (*fundchart.Payload, error) {
	in, err := file(name, false)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var r io.Reader = in
	if maxSize > 0 {
		r = io.LimitReader(in, maxSize+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, fmt.Errorf("input %q exceeds -max-size=%d bytes", name, maxSize)
	}

	var p fundchart.Payload
	if err := p.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	return &p, nil
}
