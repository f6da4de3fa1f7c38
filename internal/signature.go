package internal

import (
	"encoding/hex"
	"fmt"
	"strings"

	"gitee.com/golang-module/dongle"

	"paybox/entity"
)

// Signer computes the PBX_HMAC value over an assembled parameter mapping.
// The merchant secret is the hex string issued by the Paybox back office;
// it keys the HMAC in its decoded binary form.
type Signer struct {
	secret string
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: secret}
}

// Sign serializes the mapping as key=value pairs joined by & in insertion
// order and returns the uppercase hex HMAC-SHA512 digest. The mapping must
// not contain the signature field itself.
func (s *Signer) Sign(parameters *entity.Parameters) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("merchant secret not configured")
	}
	key, err := hex.DecodeString(s.secret)
	if err != nil {
		return "", fmt.Errorf("decode merchant secret: %v", err)
	}
	digest := dongle.Encrypt.FromString(parameters.Signable()).ByHmacSha512(key).ToHexString()
	return strings.ToUpper(digest), nil
}
