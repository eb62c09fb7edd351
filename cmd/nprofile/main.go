// Command nprofile encodes and decodes NIP-19 nprofile strings, and can serve
// the same as an HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"nprofile.mleku.dev/bech32encoding"
	"nprofile.mleku.dev/chk"
	"nprofile.mleku.dev/config"
	"nprofile.mleku.dev/lol"
)

const version = "v0.1.0"

type EncodeCmd struct {
	PublicKey string   `arg:"positional,required" help:"public key as 64 hex characters or an npub"`
	Relays    []string `arg:"-r,--relay,separate" help:"relay URL, repeat for more than one (default RELAYS)"`
	URI       bool     `arg:"--uri" help:"print a nostr: URI (default URI)"`
}

type DecodeCmd struct {
	NProfile string `arg:"positional,required" help:"nprofile string, bare or as a nostr: URI"`
}

type ServeCmd struct{}

type EnvCmd struct{}

type Args struct {
	Encode *EncodeCmd `arg:"subcommand:encode" help:"encode a public key and relays as an nprofile"`
	Decode *DecodeCmd `arg:"subcommand:decode" help:"decode an nprofile and print it as JSON"`
	Serve  *ServeCmd  `arg:"subcommand:serve" help:"serve the HTTP API on LISTEN:PORT"`
	Env    *EnvCmd    `arg:"subcommand:env" help:"print the configuration in .env format"`
}

func (Args) Version() string { return "nprofile " + version }

func main() {
	cfg, err := config.New()
	if chk.E(err) {
		os.Exit(1)
	}
	lol.SetLogLevel(cfg.LogLevel)
	if len(os.Args) > 1 && os.Args[1] == "help" {
		config.PrintHelp(cfg, os.Stdout)
		os.Exit(0)
	}
	var args Args
	p := arg.MustParse(&args)
	switch {
	case args.Encode != nil:
		err = encode(os.Stdout, cfg, args.Encode)
	case args.Decode != nil:
		err = decode(os.Stdout, args.Decode)
	case args.Serve != nil:
		err = serve(cfg)
	case args.Env != nil:
		config.PrintEnv(cfg, os.Stdout)
	default:
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		if reason := bech32encoding.Reason(err); reason != "" {
			_, _ = fmt.Fprintln(os.Stderr, reason)
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
