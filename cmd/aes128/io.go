package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ericlagergren/aes128/internal/codec"
)

// readInput returns the first argument, the file named by --in,
// or all of stdin, in that order.
func (e *env) readInput(c *cli.Context) ([]byte, error) {
	if c.Args().Present() {
		return []byte(c.Args().First()), nil
	}
	if name := c.String("in"); name != "" {
		p, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("unable to read input: %w", err)
		}
		return p, nil
	}
	p, err := io.ReadAll(e.stdin)
	if err != nil {
		return nil, fmt.Errorf("unable to read stdin: %w", err)
	}
	return p, nil
}

// readLines decodes each non-blank input line. Blank lines are
// not counted in error messages.
func (e *env) readLines(c *cli.Context, enc codec.Encoding) ([][]byte, error) {
	raw, err := e.readInput(c)
	if err != nil {
		return nil, err
	}
	var lines [][]byte
	s := bufio.NewScanner(bytes.NewReader(raw))
	s.Buffer(nil, 1<<20)
	n := 0
	for s.Scan() {
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 {
			continue
		}
		n++
		p, err := codec.Decode(line, enc)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		lines = append(lines, bytes.Clone(p))
	}
	return lines, s.Err()
}

func (e *env) writeOutput(p []byte, enc codec.Encoding) error {
	if _, err := e.stdout.Write(p); err != nil {
		return err
	}
	if enc != codec.Raw {
		_, err := io.WriteString(e.stdout, "\n")
		return err
	}
	return nil
}
