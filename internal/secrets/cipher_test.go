package secrets

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CipherTestSuite struct {
	suite.Suite
	cipher CipherInterface
}

func TestCipherSuite(t *testing.T) {
	suite.Run(t, new(CipherTestSuite))
}

func (s *CipherTestSuite) SetupTest() {
	c, err := NewCipher("test-secret")
	s.Require().NoError(err)
	s.cipher = c
}

func (s *CipherTestSuite) TestEncryptDecrypt() {
	plaintext := []byte(`{"api_key":"k","api_secret":"s"}`)

	sealed, err := s.cipher.Encrypt(plaintext)
	s.Require().NoError(err)
	s.NotContains(sealed, "api_secret")

	opened, err := s.cipher.Decrypt(sealed)
	s.NoError(err)
	s.Equal(plaintext, opened)
}

func (s *CipherTestSuite) TestEncrypt_UsesFreshNonce() {
	a, err := s.cipher.Encrypt([]byte("same"))
	s.Require().NoError(err)
	b, err := s.cipher.Encrypt([]byte("same"))
	s.Require().NoError(err)

	s.NotEqual(a, b)
}

func (s *CipherTestSuite) TestDecrypt_WrongSecret() {
	sealed, err := s.cipher.Encrypt([]byte("payload"))
	s.Require().NoError(err)

	other, err := NewCipher("another-secret")
	s.Require().NoError(err)

	_, err = other.Decrypt(sealed)
	s.ErrorIs(err, ErrDecryptionFailed)
}

func (s *CipherTestSuite) TestDecrypt_Malformed() {
	_, err := s.cipher.Decrypt("%%%not-base64")
	s.ErrorIs(err, ErrInvalidCiphertext)

	_, err = s.cipher.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	s.ErrorIs(err, ErrCiphertextTooShort)
}

func (s *CipherTestSuite) TestNewCipher_EmptySecret() {
	_, err := NewCipher("")
	s.ErrorIs(err, ErrEmptySecret)
}
