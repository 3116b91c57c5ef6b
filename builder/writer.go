// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// writer.go - edge-list serialisation in the "source target" line format.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/neuronet/core"
)

// WriteEdgeList writes edges one per line as "from<TAB>to". A non-empty
// header is emitted first, each of its lines prefixed with "# ".
func WriteEdgeList(w io.Writer, edges []core.Edge, header string) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
				return err
			}
		}
	}

	buf := make([]byte, 0, 48)
	for _, e := range edges {
		buf = strconv.AppendInt(buf[:0], int64(e.From), 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(e.To), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes edges to path, gzip-compressed when path ends in ".gz".
func WriteFile(path string, edges []core.Edge, header string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return WriteEdgeList(f, edges, header)
	}

	zw := gzip.NewWriter(f)
	if err := WriteEdgeList(zw, edges, header); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}
