package main

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/ericlagergren/aes128/internal/blocks"
	"github.com/ericlagergren/aes128/internal/codec"
	"github.com/ericlagergren/aes128/internal/log"
	"github.com/ericlagergren/aes128/internal/xorcrypt"
)

func inFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "in",
		Aliases: []string{"i"},
		Usage:   "Read input from `FILE` instead of stdin",
	}
}

func (e *env) hex2b64Command() *cli.Command {
	return &cli.Command{
		Name:      "hex2b64",
		Usage:     "Re-encode hex as base64",
		UsageText: "aes128 hex2b64 [HEX]",
		Flags:     []cli.Flag{inFlag()},
		Action: func(c *cli.Context) error {
			in, err := e.readInput(c)
			if err != nil {
				return err
			}
			out, err := codec.HexToBase64(string(in))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(e.stdout, out)
			return err
		},
	}
}

func (e *env) xorCommand() *cli.Command {
	return &cli.Command{
		Name:      "xor",
		Usage:     "XOR two equal-length hex strings",
		UsageText: "aes128 xor HEX HEX",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("xor: expected two arguments")
			}
			a, err := codec.Decode([]byte(c.Args().Get(0)), codec.Hex)
			if err != nil {
				return err
			}
			b, err := codec.Decode([]byte(c.Args().Get(1)), codec.Hex)
			if err != nil {
				return err
			}
			out, err := xorcrypt.Fixed(a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(e.stdout, "%x\n", out)
			return err
		},
	}
}

func (e *env) repxorCommand() *cli.Command {
	return &cli.Command{
		Name:      "repxor",
		Usage:     "Encrypt text with repeating-key XOR and print it as hex",
		UsageText: "aes128 repxor --key KEY [TEXT]",
		Flags: []cli.Flag{
			inFlag(),
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Usage:    "XOR `KEY`",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			key := c.String("key")
			if key == "" {
				return errors.New("repxor: empty key")
			}
			in, err := e.readInput(c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(e.stdout, "%x\n", xorcrypt.Repeating(in, []byte(key)))
			return err
		},
	}
}

func (e *env) crackXORCommand() *cli.Command {
	return &cli.Command{
		Name:      "crack-xor",
		Usage:     "Recover an XOR key from English ciphertext",
		UsageText: "aes128 crack-xor [--repeating] [INPUT]",
		Description: `Without --repeating, every input line is hex and the line most likely
to be English under a single-byte key is reported. Blank lines are
skipped and not counted. With --repeating
the whole input is base64 encrypted under a repeating key.`,
		Flags: []cli.Flag{
			inFlag(),
			&cli.BoolFlag{
				Name:    "repeating",
				Aliases: []string{"r"},
				Usage:   "Break repeating-key XOR instead of single-byte XOR",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("repeating") {
				return e.crackRepeating(c)
			}
			return e.crackSingle(c)
		},
	}
}

func (e *env) crackSingle(c *cli.Context) error {
	cts, err := e.readLines(c, codec.Hex)
	if err != nil {
		return err
	}
	i, g := xorcrypt.DetectSingle(cts)
	if i < 0 {
		return errors.New("crack-xor: no input")
	}
	log.Debug().Int("lines", len(cts)).Int("line", i+1).Float64("score", g.Score).Msg("single-byte key")
	_, err = fmt.Fprintf(e.stdout, "line %d key 0x%02x: %s\n",
		i+1, g.Key, bytes.TrimRight(g.Plaintext, "\n"))
	return err
}

func (e *env) crackRepeating(c *cli.Context) error {
	in, err := e.readInput(c)
	if err != nil {
		return err
	}
	ct, err := codec.Decode(in, codec.Base64)
	if err != nil {
		return err
	}
	key, err := xorcrypt.BreakRepeating(ct)
	if err != nil {
		return err
	}
	log.Debug().Int("size", len(key)).Msg("repeating key")
	_, err = fmt.Fprintf(e.stdout, "key %q\n%s", key, xorcrypt.Repeating(ct, key))
	return err
}

func (e *env) detectECBCommand() *cli.Command {
	return &cli.Command{
		Name:      "detect-ecb",
		Usage:     "Rank hex lines by repeated 16-byte blocks",
		UsageText: "aes128 detect-ecb [INPUT]",
		Description: `Prints the 1-based line number and the number of repeated blocks for
every line with at least one repeat, most repeats first. Blank lines
are skipped and not counted.`,
		Flags: []cli.Flag{inFlag()},
		Action: func(c *cli.Context) error {
			cts, err := e.readLines(c, codec.Hex)
			if err != nil {
				return err
			}
			type hit struct{ line, n int }
			var hits []hit
			for i, ct := range cts {
				if n := blocks.CountRepeats(ct); n > 0 {
					hits = append(hits, hit{i + 1, n})
				}
			}
			sort.SliceStable(hits, func(i, j int) bool {
				return hits[i].n > hits[j].n
			})
			for _, h := range hits {
				if _, err := fmt.Fprintf(e.stdout, "%d\t%d\n", h.line, h.n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
