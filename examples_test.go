package rc5_test

import (
	"encoding/hex"
	"fmt"

	"github.com/kostyansa/rc5"
)

func ExampleEncrypt() {
	// Encrypt two blocks of 16-bit words with 16 rounds and a 64-bit key.
	key := []uint64{65535, 65535, 65535, 65535}
	message := []uint64{1, 65535, 1, 65535}

	ciphertext, err := rc5.Encrypt(message, key, 16, 16)
	if err != nil {
		panic(err)
	}
	fmt.Println(ciphertext)

	plaintext, err := rc5.Decrypt(ciphertext, key, 16, 16)
	if err != nil {
		panic(err)
	}
	fmt.Println(plaintext)
	// Output:
	// [21895 50750 21895 50750]
	// [1 65535 1 65535]
}

func ExampleSchedule() {
	// Expand the key once and reuse it for many messages.
	s, err := rc5.NewSchedule(32, 12, []uint64{0x01234567, 0x89abcdef})
	if err != nil {
		panic(err)
	}

	var ciphertext []uint64
	for _, message := range [][]uint64{{1, 2}, {3, 4}} {
		ciphertext, err = s.Encrypt(ciphertext, message)
		if err != nil {
			panic(err)
		}
	}

	plaintext, err := s.Decrypt(nil, ciphertext)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(ciphertext), plaintext)
	// Output: 4 [1 2 3 4]
}

func ExampleNewCipher() {
	// RC5-32/12/16 with an all-zero key, the first test vector from the RC5 paper.
	block, err := rc5.NewCipher(make([]byte, 16), 32, 12)
	if err != nil {
		panic(err)
	}

	ct := make([]byte, block.BlockSize())
	block.Encrypt(ct, make([]byte, block.BlockSize()))
	fmt.Println(hex.EncodeToString(ct))
	// Output: 21a5dbee154b8f6d
}

func ExampleGenerateMagicNumbers() {
	p, q, err := rc5.GenerateMagicNumbers(32)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%#x %#x\n", p, q)
	// Output: 0xb7e15163 0x9e3779b9
}
