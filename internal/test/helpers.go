package test

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	// Allow spaces between bytes for readability
	hexData = strings.ReplaceAll(hexData, " ", "")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Concat joins byte slices into one buffer
func Concat(parts ...[]byte) []byte {
	var ret []byte
	for _, part := range parts {
		ret = append(ret, part...)
	}
	return ret
}

// RandomBuffers returns count buffers of size bytes from a fixed seed, so that
// statistical tests are repeatable
func RandomBuffers(seed uint64, count int, size int) [][]byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ret := make([][]byte, count)
	for i := range ret {
		buf := make([]byte, size)
		for j := range buf {
			buf[j] = byte(rng.Uint32())
		}
		ret[i] = buf
	}
	return ret
}
