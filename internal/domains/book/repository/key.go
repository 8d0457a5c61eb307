package repository

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// NewID generates a 24-character hex store key: four bytes of unix seconds
// followed by eight random bytes. The timestamp prefix keeps keys roughly
// ordered by insertion time.
func NewID() string {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(buf[4:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf[:])
}
