// Command aes128 encrypts and decrypts whole 16-byte blocks with
// AES-128 and bundles the XOR and ECB analysis tools used
// alongside it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/ericlagergren/aes128/internal/config"
	"github.com/ericlagergren/aes128/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "aes128: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// env carries what the subcommands share.
type env struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	e := &env{stdin: stdin, stdout: stdout}
	return &cli.App{
		Name:      "aes128",
		Usage:     "AES-128 single-block cipher and friends",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Minimum log `LEVEL` (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Write logs as JSON instead of console text",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Number of goroutines transforming blocks `N`",
			},
		},
		Before: func(c *cli.Context) error {
			v := viper.New()
			if c.IsSet("log-level") {
				v.Set("log_level", c.String("log-level"))
			}
			if c.IsSet("log-json") {
				v.Set("log_json", c.Bool("log-json"))
			}
			if c.IsSet("workers") {
				v.Set("workers", c.Int("workers"))
			}
			cfg, err := config.Load(v, c.String("config"))
			if err != nil {
				return err
			}
			if err := log.Setup(stderr, cfg.LogLevel, !cfg.LogJSON); err != nil {
				return err
			}
			e.cfg = cfg
			log.Debug().Interface("config", redacted(cfg)).Msg("configuration loaded")
			return nil
		},
		Commands: []*cli.Command{
			e.cipherCommand("encrypt", "Encrypt every block of the input independently", false),
			e.cipherCommand("decrypt", "Decrypt every block of the input independently", true),
			e.hex2b64Command(),
			e.xorCommand(),
			e.repxorCommand(),
			e.crackXORCommand(),
			e.detectECBCommand(),
		},
	}
}

// redacted returns cfg with key material removed.
func redacted(cfg *config.Config) config.Config {
	c := *cfg
	if c.Key != "" {
		c.Key = "<redacted>"
	}
	if c.KeyHex != "" {
		c.KeyHex = "<redacted>"
	}
	return c
}
