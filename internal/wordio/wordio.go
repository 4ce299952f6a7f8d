// Package wordio reads and writes words as whitespace-separated text.
package wordio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrInvalidWord is returned when a token is not a non-negative integer.
	ErrInvalidWord = errors.New("wordio: invalid word")

	// ErrOverflow is returned when a word does not fit in the requested width.
	ErrOverflow = errors.New("wordio: word does not fit in width")
)

// Parse parses whitespace-separated words. Each word is decimal, or hexadecimal with a 0x prefix, and must fit in
// width bits.
func Parse(s string, width uint) ([]uint64, error) {
	fields := strings.Fields(s)
	words := make([]uint64, 0, len(fields))
	for _, f := range fields {
		x, err := ParseWord(f, width)
		if err != nil {
			return nil, err
		}
		words = append(words, x)
	}
	return words, nil
}

// ParseWord parses a single word.
func ParseWord(s string, width uint) (uint64, error) {
	x, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidWord, s, err)
	}

	if width < 64 && x>>width != 0 {
		return 0, fmt.Errorf("%w: %d exceeds %d bits", ErrOverflow, x, width)
	}
	return x, nil
}

// Format returns words as space-separated decimal numbers.
func Format(words []uint64) string {
	var sb strings.Builder
	for i, x := range words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(x, 10))
	}
	return sb.String()
}

// Write writes words to w as a single line.
func Write(w io.Writer, words []uint64) error {
	_, err := io.WriteString(w, Format(words)+"\n")
	return err
}

// A Scanner reads whitespace-separated tokens from an input stream, across line breaks.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Scanner{s: s}
}

// Token returns the next token. At the end of the input it returns io.EOF.
func (s *Scanner) Token() (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.s.Text(), nil
}

// ReadUint reads the next token as a non-negative integer.
func (s *Scanner) ReadUint() (uint64, error) {
	tok, err := s.Token()
	if err != nil {
		return 0, err
	}
	return ParseWord(tok, 64)
}

// ReadWords reads exactly n words of the given width.
func (s *Scanner) ReadWords(n int, width uint) ([]uint64, error) {
	words := make([]uint64, 0, n)
	for range n {
		tok, err := s.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		x, err := ParseWord(tok, width)
		if err != nil {
			return nil, err
		}
		words = append(words, x)
	}
	return words, nil
}
