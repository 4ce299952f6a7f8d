// Package shell implements an interactive menu for encrypting and decrypting messages typed in as words.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kostyansa/rc5"
	"github.com/kostyansa/rc5/internal/wordio"
)

// maxMessageWords bounds the message length a user may announce.
const maxMessageWords = 1 << 20

// Config holds the cipher parameters used for every message.
type Config struct {
	Width    uint
	Rounds   uint
	KeyBytes int
}

// KeyWords returns the number of key words to read: KeyBytes rounded up to whole words.
func (c Config) KeyWords() int {
	w := int(c.Width) //nolint:gosec // width is at most 64
	if w == 0 {
		return 1
	}
	return max(1, (8*c.KeyBytes+w-1)/w)
}

// A Shell reads commands and words from an input stream and writes prompts and results to an output stream.
type Shell struct {
	cfg Config
	in  *wordio.Scanner
	out io.Writer
	log *slog.Logger
}

// New returns a Shell. The configuration is checked when the first message is processed.
func New(cfg Config, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	return &Shell{
		cfg: cfg,
		in:  wordio.NewScanner(in),
		out: out,
		log: log,
	}
}

type operation struct {
	name   string
	result string
	f      func(message, key []uint64, width, rounds uint) ([]uint64, error)
}

var (
	encrypt = operation{"encrypt", "Encrypted message:", rc5.Encrypt} //nolint:gochecknoglobals // constant table
	decrypt = operation{"decrypt", "Decrypted message:", rc5.Decrypt} //nolint:gochecknoglobals // constant table
)

// Run prints the menu and serves commands until the exit command or the end of the input.
func (sh *Shell) Run() error {
	sh.printf("Algorithm RC5-%d/%d/%d\n", sh.cfg.Width, sh.cfg.Rounds, sh.cfg.KeyBytes)

	for {
		sh.printf("Enter 1 to encrypt a message\nEnter 2 to decrypt a message\nEnter 3 to exit\n")

		cmd, err := sh.in.Token()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		switch cmd {
		case "1":
			err = sh.serve(encrypt)
		case "2":
			err = sh.serve(decrypt)
		case "3":
			return nil
		default:
			sh.printf("Invalid command\n")
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// serve reads one message and key and prints the transformed message. Malformed input and cipher errors are
// reported to the user and are not returned.
func (sh *Shell) serve(op operation) error {
	sh.printf("Enter the message length in %d-bit words\n", sh.cfg.Width)
	n, err := sh.in.ReadUint()
	if err != nil {
		return sh.reject(op, err)
	}

	if n > maxMessageWords {
		sh.printf("Message too long: at most %d words\n", maxMessageWords)
		return nil
	}

	sh.printf("Enter the message, words separated by spaces\n")
	message, err := sh.in.ReadWords(int(n), sh.cfg.Width) //nolint:gosec // n <= maxMessageWords
	if err != nil {
		return sh.reject(op, err)
	}

	keyWords := sh.cfg.KeyWords()
	sh.printf("Enter the %d-byte key as %d words separated by spaces\n", sh.cfg.KeyBytes, keyWords)
	key, err := sh.in.ReadWords(keyWords, sh.cfg.Width)
	if err != nil {
		return sh.reject(op, err)
	}

	out, err := op.f(message, key, sh.cfg.Width, sh.cfg.Rounds)
	if err != nil {
		sh.log.Warn("operation failed", "op", op.name, "words", len(message), "err", err)
		sh.printf("Error: %v\n", err)
		return nil
	}

	sh.log.Info("operation complete", "op", op.name, "words", len(message),
		"width", sh.cfg.Width, "rounds", sh.cfg.Rounds)
	sh.printf("%s\n", op.result)
	return wordio.Write(sh.out, out)
}

// reject reports malformed words to the user and passes every other error through.
func (sh *Shell) reject(op operation, err error) error {
	if !errors.Is(err, wordio.ErrInvalidWord) && !errors.Is(err, wordio.ErrOverflow) {
		return err
	}

	sh.log.Warn("invalid input", "op", op.name, "err", err)
	sh.printf("Invalid input: %v\n", err)
	return nil
}

func (sh *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(sh.out, format, args...)
}
