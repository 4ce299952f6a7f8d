// Command rc5 encrypts and decrypts messages of words with RC5, either from the command line or interactively.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nadoo/conflag"

	"github.com/kostyansa/rc5"
	"github.com/kostyansa/rc5/internal/shell"
	"github.com/kostyansa/rc5/internal/wordio"
)

var errUsage = errors.New("missing command")

type config struct {
	Width    uint
	Rounds   uint
	Key      string
	KeyBytes int
	Workers  int
	Verbose  bool
}

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var conf config

	flag := conflag.New(args...)
	flag.SetOutput(stderr)
	flag.UintVar(&conf.Width, "width", 16, "word width in bits, 1-64")
	flag.UintVar(&conf.Rounds, "rounds", 16, "number of rounds")
	flag.StringVar(&conf.Key, "key", "", "key words separated by spaces, decimal or 0x-prefixed hex")
	flag.IntVar(&conf.KeyBytes, "keybytes", 8, "key length in bytes, for the shell")
	flag.IntVar(&conf.Workers, "workers", 1, "number of goroutines transforming blocks, 0 for GOMAXPROCS")
	flag.BoolVar(&conf.Verbose, "verbose", false, "verbose mode")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.Output(), `Usage:
  %[1]s [flags] encrypt|decrypt [WORD...]
      transform the given words, or the words read from stdin
  %[1]s [flags] shell
      run the interactive menu

Flags:
`, args[0])
		flag.PrintDefaults()
	}

	if len(args) < 2 {
		flag.Usage()
		return errUsage
	}

	if err := flag.Parse(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if conf.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if conf.Width < 1 || conf.Width > rc5.MaxWidth {
		return rc5.ErrInvalidWidth
	}

	if flag.NArg() == 0 {
		flag.Usage()
		return errUsage
	}

	switch cmd := flag.Arg(0); cmd {
	case "shell":
		cfg := shell.Config{Width: conf.Width, Rounds: conf.Rounds, KeyBytes: conf.KeyBytes}
		return shell.New(cfg, stdin, stdout, log).Run()
	case "encrypt", "decrypt":
		return transform(cmd, &conf, flag.Args()[1:], stdin, stdout, log)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func transform(cmd string, conf *config, args []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	key, err := wordio.Parse(conf.Key, conf.Width)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("error reading message: %w", err)
		}
		text = string(b)
	}

	message, err := wordio.Parse(text, conf.Width)
	if err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}

	s, err := rc5.NewSchedule(conf.Width, conf.Rounds, key)
	if err != nil {
		return err
	}
	log.Debug("key schedule expanded", "width", s.Width(), "rounds", s.Rounds(), "subkeys", len(s.Subkeys()))

	f := s.EncryptParallel
	if cmd == "decrypt" {
		f = s.DecryptParallel
	}

	out, err := f(nil, message, conf.Workers)
	if err != nil {
		return err
	}
	log.Debug("message transformed", "op", cmd, "words", len(out), "workers", conf.Workers)

	return wordio.Write(stdout, out)
}
