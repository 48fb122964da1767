package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
)

// fakeKeeper seals by prefixing a marker so the round trip is observable.
type fakeKeeper struct {
	encryptErr error
	decryptErr error
	closed     bool
}

func (k *fakeKeeper) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	if k.encryptErr != nil {
		return nil, k.encryptErr
	}
	return append([]byte("sealed:"), plaintext...), nil
}

func (k *fakeKeeper) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	if k.decryptErr != nil {
		return nil, k.decryptErr
	}
	return bytes.TrimPrefix(ciphertext, []byte("sealed:")), nil
}

func (k *fakeKeeper) Close() error {
	k.closed = true
	return nil
}

type fakeKMSService struct {
	keeper  *fakeKeeper
	openErr error
	lastURI string
}

func (s *fakeKMSService) OpenKeeper(_ context.Context, keyURI string) (cryptoService.Keeper, error) {
	s.lastURI = keyURI
	if s.openErr != nil {
		return nil, s.openErr
	}
	return s.keeper, nil
}

func TestRunCreateWrapKey(t *testing.T) {
	ctx := context.Background()

	t.Run("local-mode", func(t *testing.T) {
		var out bytes.Buffer
		err := RunCreateWrapKey(ctx, nil, &out, "", "")
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "WRAP_KEY_ALGORITHM=\"aes-gcm\"")

		var encoded string
		for _, line := range strings.Split(output, "\n") {
			if strings.HasPrefix(line, "WRAP_KEY=") {
				encoded = strings.Trim(strings.TrimPrefix(line, "WRAP_KEY="), "\"")
			}
		}
		require.NotEmpty(t, encoded)

		key, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("local-mode-keys-differ", func(t *testing.T) {
		var first, second bytes.Buffer
		require.NoError(t, RunCreateWrapKey(ctx, nil, &first, "", ""))
		require.NoError(t, RunCreateWrapKey(ctx, nil, &second, "", ""))
		assert.NotEqual(t, first.String(), second.String())
	})

	t.Run("kms-mode", func(t *testing.T) {
		keeper := &fakeKeeper{}
		service := &fakeKMSService{keeper: keeper}

		var out bytes.Buffer
		err := RunCreateWrapKey(ctx, service, &out, "hashivault", "hashivault://wrap-key")
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "KMS_PROVIDER=\"hashivault\"")
		assert.Contains(t, output, "KMS_KEY_URI=\"hashivault://wrap-key\"")
		assert.NotContains(t, output, "WRAP_KEY=")
		assert.Equal(t, "hashivault://wrap-key", service.lastURI)
		assert.True(t, keeper.closed)
	})

	t.Run("kms-mode-round-trip-failure", func(t *testing.T) {
		keeper := &fakeKeeper{decryptErr: assert.AnError}
		service := &fakeKMSService{keeper: keeper}

		var out bytes.Buffer
		err := RunCreateWrapKey(ctx, service, &out, "hashivault", "hashivault://wrap-key")
		require.Error(t, err)
		require.Contains(t, err.Error(), "decrypt failed")
	})

	t.Run("missing-kms-key-uri", func(t *testing.T) {
		err := RunCreateWrapKey(ctx, nil, nil, "hashivault", "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be set together")
	})
}
