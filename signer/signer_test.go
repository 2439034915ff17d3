package signer

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestKey(t *testing.T) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	block := &pem.Block{Type: "EC PRIVATE KEY", Bytes: der}

	path := filepath.Join(t.TempDir(), "key.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))
	return path
}

func TestLoadPrivateKeyRoundTrip(t *testing.T) {
	path := writeTestKey(t)
	key, err := LoadPrivateKey(path)
	require.NoError(t, err)
	require.Equal(t, elliptic.P256(), key.Curve)
}

func TestLoadPrivateKeyRejectsOtherCurve(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	block := &pem.Block{Type: "EC PRIVATE KEY", Bytes: der}

	path := filepath.Join(t.TempDir(), "key.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))

	_, err = LoadPrivateKey(path)
	require.ErrorIs(t, err, ErrNotP256)
}

func TestSignVerifiesAgainstStdlib(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	var digest [32]byte
	for i := range digest {
		digest[i] = byte(i)
	}

	sig, err := Sign(ecKey, digest)
	require.NoError(t, err)
	require.True(t, ecdsa.Verify(&ecKey.PublicKey, digest[:], sig.R, sig.S))
}

func TestSignIsDeterministic(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	var digest [32]byte
	for i := range digest {
		digest[i] = byte(i * 7)
	}

	sig1, err := Sign(ecKey, digest)
	require.NoError(t, err)
	sig2, err := Sign(ecKey, digest)
	require.NoError(t, err)
	require.Equal(t, sig1.Bytes(), sig2.Bytes())
}
