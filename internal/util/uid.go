package util

import (
	"crypto/sha256"
	"math/big"
)

// UIDRoot is the organization root every generated UID hangs off.
const UIDRoot = "1.2.826.0.1.3680043.8.498."

// maxUIDLength is the DICOM limit for a UI value.
const maxUIDLength = 64

// GenerateDeterministicUID derives a DICOM UID from seed.
//
// The same seed always yields the same UID. The suffix is the SHA-256 of seed
// read as a decimal integer, truncated so the whole UID fits in 64 characters.
func GenerateDeterministicUID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	suffix := new(big.Int).SetBytes(sum[:]).String()

	if room := maxUIDLength - len(UIDRoot); len(suffix) > room {
		suffix = suffix[:room]
	}
	return UIDRoot + suffix
}
