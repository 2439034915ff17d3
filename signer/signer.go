// Package signer implements ECDSA signing over P-256 using the
// ladder engine for the point-multiplication step, RFC 6979
// deterministic nonce generation, and PEM-encoded EC private keys.
package signer

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"math/big"
	"os"

	"p256coz.dev"
)

var (
	// ErrInvalidPEM is returned when the key file does not contain a
	// valid EC private key block.
	ErrInvalidPEM = errors.New("signer: no valid EC private key found in file")
	// ErrNotP256 is returned when the key file holds a private key for
	// a curve other than P-256.
	ErrNotP256 = errors.New("signer: private key is not on curve P-256")
)

// LoadPrivateKey reads a PEM-encoded EC private key from path.
func LoadPrivateKey(path string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEM
	}

	key, err := x509.ParseECPrivateKey(block.Bytes)
	if err != nil {
		parsed, err2 := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err2 != nil {
			return nil, ErrInvalidPEM
		}
		ok := false
		key, ok = parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, ErrInvalidPEM
		}
	}
	if key.Curve != elliptic.P256() {
		return nil, ErrNotP256
	}
	return key, nil
}

// Signature is a raw (r, s) ECDSA signature pair.
type Signature struct {
	R, S *big.Int
}

// Bytes returns the 64-byte fixed-width big-endian encoding r||s,
// the format cmd/sign appends to its output file (not ASN.1 DER).
func (s *Signature) Bytes() []byte {
	out := make([]byte, 64)
	s.R.FillBytes(out[:32])
	s.S.FillBytes(out[32:])
	return out
}

var curveOrder = func() *big.Int {
	n, ok := new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)
	if !ok {
		panic("signer: bad curve order constant")
	}
	return n
}()

// Sign computes a deterministic (RFC 6979) ECDSA signature of digest
// (normally the 32-byte SHA-256 hash of a message) under key, using
// the ladder engine's Jacobian scalar multiplication for R = [k]G.
func Sign(key *ecdsa.PrivateKey, digest [32]byte) (*Signature, error) {
	d := key.D
	z := new(big.Int).SetBytes(digest[:])

	var dBytes [32]byte
	d.FillBytes(dBytes[:])

	for attempt := 0; ; attempt++ {
		k, err := rfc6979Nonce(dBytes[:], digest[:], attempt)
		if err != nil {
			return nil, err
		}
		if k.Sign() == 0 || k.Cmp(curveOrder) >= 0 {
			continue
		}

		var kBytes32 [32]byte
		k.FillBytes(kBytes32[:])
		reverse(kBytes32[:])
		kScalar := p256coz.ScalarFromBytes(kBytes32)

		point := p256coz.ScalarMultBaseJac(&kScalar)
		r := new(big.Int).SetBytes(point.X[:])
		r.Mod(r, curveOrder)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(k, curveOrder)
		if kInv == nil {
			continue
		}
		s := new(big.Int).Mul(r, d)
		s.Add(s, z)
		s.Mod(s, curveOrder)
		s.Mul(s, kInv)
		s.Mod(s, curveOrder)
		if s.Sign() == 0 {
			continue
		}

		half := new(big.Int).Rsh(curveOrder, 1)
		if s.Cmp(half) > 0 {
			s.Sub(curveOrder, s)
		}

		return &Signature{R: r, S: s}, nil
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// rfc6979Nonce derives the deterministic per-message nonce per
// RFC 6979 section 3.2, using HMAC-SHA256. attempt counts retries
// past the first candidate, needed if an earlier k was rejected as
// out of range or led to a degenerate signature component.
func rfc6979Nonce(privBytes, digest []byte, attempt int) (*big.Int, error) {
	v := make([]byte, 32)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, 32)

	hmacSum := func(key, msg []byte) []byte {
		mac := hmac.New(sha256.New, key)
		mac.Write(msg)
		return mac.Sum(nil)
	}

	seed := append(append([]byte{}, privBytes...), digest...)
	k = hmacSum(k, append(append(append([]byte{}, v...), 0x00), seed...))
	v = hmacSum(k, v)
	k = hmacSum(k, append(append(append([]byte{}, v...), 0x01), seed...))
	v = hmacSum(k, v)

	for i := 0; i <= attempt; i++ {
		v = hmacSum(k, v)
		if i < attempt {
			k = hmacSum(k, append(append([]byte{}, v...), 0x00))
			v = hmacSum(k, v)
		}
	}

	return new(big.Int).SetBytes(v), nil
}
