package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// PubkeyToAddress public key to lowercase 0x wallet address
func PubkeyToAddress(p *secp256k1.PublicKey) string {
	data := p.SerializeUncompressed()
	return "0x" + hex.EncodeToString(Keccak256(data[1:])[12:])
}

// Keccak256 Calculate Keccak256 return byte array (32 bytes)
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// HashPersonalMessage returns the EIP-191 digest a wallet signs for personal_sign
func HashPersonalMessage(msg string) []byte {
	msg = fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(msg), msg)
	return Keccak256([]byte(msg))
}

// RecoverPersonalSigner recovers the signer address of a 65 byte personal_sign
// signature (r || s || v, v is 0/1 or 27/28)
func RecoverPersonalSigner(msg, hexSig string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(hexSig, "0x"))
	if err != nil {
		return "", fmt.Errorf("signature is not hex: %w", err)
	}
	if len(sig) != 65 {
		return "", fmt.Errorf("signature must be 65 bytes long")
	}
	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return "", fmt.Errorf("invalid Ethereum signature (V is not 27 or 28)")
	}
	// decred expects the recovery byte first
	compact := append([]byte{v + 27}, sig[:64]...)
	pub, _, err := ecdsa.RecoverCompact(compact, HashPersonalMessage(msg))
	if err != nil {
		return "", err
	}
	return PubkeyToAddress(pub), nil
}

// RandomHex returns n random bytes hex encoded
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
