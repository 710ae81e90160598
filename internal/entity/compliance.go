package entity

import (
	"fmt"
	"math/rand"
)

// CertificationNumber identifies the certified billing software towards the
// tax authority. A single certificate covers the whole deployment.
const CertificationNumber = "9999/AT"

const hashAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// ATCUD builds the unique document code from the issue sequence.
func ATCUD(seq int64) string {
	return fmt.Sprintf("CSDT-%d", seq)
}

// DocumentHash returns a base64-looking 174-character signature. Real
// deployments sign the invoice with the company key; here the signature
// only has to be shaped like one.
func DocumentHash() string {
	b := make([]byte, 172)
	for i := range b {
		b[i] = hashAlphabet[rand.Intn(len(hashAlphabet))]
	}

	return string(b) + "=="
}

// HashControl returns the 4-character excerpt printed on the document.
func HashControl() string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = hashAlphabet[rand.Intn(len(hashAlphabet))]
	}

	return string(b)
}
