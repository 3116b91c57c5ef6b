// SPDX-License-Identifier: MIT

package ingest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/neuronet/core"
)

var gzipMagic = []byte{0x1f, 0x8b}

// ReadFile opens path and parses it as an edge list.
func ReadFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read parses an edge list from r. Malformed lines are skipped and counted.
func Read(r io.Reader, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	br, closeFn, err := decompress(bufio.NewReaderSize(r, o.maxLineBytes), o.maxLineBytes)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	res := &Result{}
	for {
		raw, tooLong, err := readLine(br)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: line %d: %w", ErrIO, res.Lines+1, err)
		}
		if len(raw) > 0 || tooLong {
			res.Lines++
			if res.Lines%cancelCheckEvery == 0 {
				if err := o.ctx.Err(); err != nil {
					return nil, fmt.Errorf("ingest: read cancelled at line %d: %w", res.Lines, err)
				}
			}
			if tooLong {
				res.Skipped++
				o.log.Debug("skipping malformed line", "line", res.Lines, "reason", "longer than max line bytes")
			} else {
				o.consume(res, raw)
			}
		}
		if err == io.EOF {
			break
		}
	}
	if err := o.ctx.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read cancelled: %w", err)
	}

	if len(res.Edges) == 0 {
		return nil, fmt.Errorf("%w: no valid edges in %d lines (%d skipped)",
			core.ErrEmptyGraph, res.Lines, res.Skipped)
	}

	return res, nil
}

// readLine returns the next line including its terminator. A line that does
// not fit in br's buffer is drained up to and including its newline and
// reported as tooLong with a nil slice.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	line, err = br.ReadSlice('\n')
	for err == bufio.ErrBufferFull {
		tooLong = true
		_, err = br.ReadSlice('\n')
	}
	if tooLong {
		line = nil
	}
	return line, tooLong, err
}

// consume classifies one physical line and appends its edge, if any.
func (o *options) consume(res *Result, raw []byte) {
	line := strings.TrimSpace(string(raw))
	switch {
	case line == "":
	case o.isComment(line):
		res.Comments++
	default:
		e, ok := o.parseLine(line)
		if !ok {
			res.Skipped++
			o.log.Debug("skipping malformed line", "line", res.Lines, "text", truncate(line, 80))
			return
		}
		res.Edges = append(res.Edges, e)
	}
}

// decompress returns br itself, or a reader of the same buffer size over a
// gzip stream when br starts with the gzip magic bytes.
func decompress(br *bufio.Reader, size int) (*bufio.Reader, func(), error) {
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !bytes.Equal(head, gzipMagic) {
		return br, func() {}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: gzip header: %w", ErrIO, err)
	}
	return bufio.NewReaderSize(zr, size), func() { _ = zr.Close() }, nil
}

func (o *options) isComment(line string) bool {
	for _, p := range o.prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// parseLine splits line on whitespace, ',' and ';' and parses the first two
// tokens as node IDs.
func (o *options) parseLine(line string) (core.Edge, bool) {
	fields := strings.FieldsFunc(line, isSeparator)
	if len(fields) < 2 || (len(fields) > 2 && !o.extraColumns) {
		return core.Edge{}, false
	}
	from, ok := parseID(fields[0])
	if !ok {
		return core.Edge{}, false
	}
	to, ok := parseID(fields[1])
	if !ok {
		return core.Edge{}, false
	}
	return core.Edge{From: from, To: to}, true
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// parseID accepts unsigned base-10 integers that fit in an int64; signs are
// rejected, so negative IDs are malformed.
func parseID(tok string) (core.NodeID, bool) {
	v, err := strconv.ParseUint(tok, 10, 63)
	if err != nil {
		return 0, false
	}
	return core.NodeID(v), true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
