package sec

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// HashHexBlake2b - fast content digest used for cache keys and ETags
func HashHexBlake2b(data []byte) string {
	checksum := blake2b.Sum256(data)
	return hex.EncodeToString(checksum[:])
}
