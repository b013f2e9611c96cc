package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ericlagergren/aes128"
	"github.com/ericlagergren/aes128/internal/blocks"
	"github.com/ericlagergren/aes128/internal/codec"
	"github.com/ericlagergren/aes128/internal/log"
)

func (e *env) cipherCommand(name, usage string, decrypt bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		UsageText: "aes128 " + name + " [options] [INPUT]",
		Description: `Reads whole 16-byte blocks from INPUT, --in or stdin and transforms
each of them on its own. No padding is added or removed: input that
does not end on a block boundary is rejected.`,
		Flags: []cli.Flag{
			inFlag(),
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "16-byte `KEY` given as text",
			},
			&cli.StringFlag{
				Name:  "key-hex",
				Usage: "16-byte key given as 32 hex digits `HEX`",
			},
			&cli.StringFlag{
				Name:    "encoding",
				Aliases: []string{"e"},
				Usage:   "Input `ENCODING` (hex, base64, raw)",
			},
			&cli.StringFlag{
				Name:    "output-encoding",
				Aliases: []string{"o"},
				Usage:   "Output `ENCODING` (hex, base64, raw)",
			},
		},
		Action: func(c *cli.Context) error {
			return e.cipherCmd(c, decrypt)
		},
	}
}

func (e *env) cipherCmd(c *cli.Context, decrypt bool) error {
	cfg := *e.cfg
	if c.IsSet("key") || c.IsSet("key-hex") {
		cfg.Key, cfg.KeyHex = c.String("key"), c.String("key-hex")
	}
	if c.IsSet("encoding") {
		cfg.Encoding = c.String("encoding")
	}
	if c.IsSet("output-encoding") {
		cfg.OutputEncoding = c.String("output-encoding")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	key, err := cfg.KeyBytes()
	if err != nil {
		return err
	}
	inEnc, _ := codec.ParseEncoding(cfg.Encoding)
	outEnc, _ := codec.ParseEncoding(cfg.OutputEncoding)

	raw, err := e.readInput(c)
	if err != nil {
		return err
	}
	src, err := codec.Decode(raw, inEnc)
	if err != nil {
		return err
	}

	ciph, err := aes128.New(key)
	if err != nil {
		return err
	}
	fn, op := blocks.Encrypter(ciph.Schedule()), "encrypt"
	if decrypt {
		fn, op = blocks.Decrypter(ciph.Schedule()), "decrypt"
	}

	start := time.Now()
	dst := make([]byte, len(src))
	st, err := blocks.Apply(c.Context, dst, src, fn, cfg.Workers)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info().
		Str("op", op).
		Uint64("blocks", st.Total()).
		Uints64("per_worker", st.Blocks).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	out, err := codec.Encode(dst, outEnc)
	if err != nil {
		return err
	}
	return e.writeOutput(out, outEnc)
}
