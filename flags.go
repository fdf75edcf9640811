package main

import (
	"fmt"
	"math"

	"github.com/c2h5oh/datasize"
)

// maxSizeFlag parses human-readable byte sizes (e.g. 10MB) for the
// -max-size input limit. -1 disables the limit.
type maxSizeFlag struct{ n *int64 }

func (f *maxSizeFlag) Set(v string) (err error) {
	if v == "-1" {
		*(f.n) = -1
		return nil
	}

	var ds datasize.ByteSize
	if err = ds.UnmarshalText([]byte(v)); err != nil {
		return err
	}

	if ds > math.MaxInt64 {
		return fmt.Errorf("-max-size=%d overflows int64", ds)
	}

	*(f.n) = int64(ds)
	return nil
}

func (f *maxSizeFlag) String() string {
	if f.n == nil {
		return ""
	} else if *(f.n) == -1 {
		return "-1"
	}
	return datasize.ByteSize(*(f.n)).String()
}
