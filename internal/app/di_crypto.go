package app

import (
	"context"
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	keysService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/service"
	tokenizerService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/tokenizer/service"
)

// cryptoComponents holds the stateless crypto services; their constructors
// cannot fail so they share one initialization.
type cryptoComponents struct {
	aeadManager cryptoService.AEADManager
	keyManager  cryptoService.KeyManager
	kmsService  cryptoService.KMSService
	tokenCipher *tokenizerService.TokenCipher
}

// crypto returns the crypto service bundle.
func (c *Container) crypto() *cryptoComponents {
	c.cryptoComponentsInit.Do(func() {
		aeadManager := cryptoService.NewAEADManager()
		c.cryptoComponents = &cryptoComponents{
			aeadManager: aeadManager,
			keyManager:  cryptoService.NewKeyManager(),
			kmsService:  cryptoService.NewKMSService(),
			tokenCipher: tokenizerService.NewTokenCipher(aeadManager),
		}
	})
	return c.cryptoComponents
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	return c.crypto().aeadManager
}

// KeyManager returns the key manager service.
func (c *Container) KeyManager() cryptoService.KeyManager {
	return c.crypto().keyManager
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	return c.crypto().kmsService
}

// TokenCipher returns the token cipher service.
func (c *Container) TokenCipher() *tokenizerService.TokenCipher {
	return c.crypto().tokenCipher
}

// KeyWrapper returns the key wrapper used to protect stored document keys.
// A KMS-backed wrapper is used when a KMS provider is configured, otherwise
// the local wrap key from configuration is used.
func (c *Container) KeyWrapper() (keysService.KeyWrapper, error) {
	var err error
	c.keyWrapperInit.Do(func() {
		c.keyWrapper, err = c.initKeyWrapper()
		if err != nil {
			c.initErrors["keyWrapper"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyWrapper"]; exists {
		return nil, storedErr
	}
	return c.keyWrapper, nil
}

// initKeyWrapper creates the key wrapper based on configuration.
func (c *Container) initKeyWrapper() (keysService.KeyWrapper, error) {
	if c.config.KMSProvider != "" {
		keeper, err := c.KMSService().OpenKeeper(context.Background(), c.config.KMSKeyURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
		}
		return keysService.NewKMSKeyWrapper(keeper), nil
	}

	if c.config.WrapKey == "" {
		return nil, fmt.Errorf("WRAP_KEY must be set when no KMS provider is configured")
	}

	wrapKey, err := base64.StdEncoding.DecodeString(c.config.WrapKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wrap key: %w", err)
	}

	return keysService.NewLocalKeyWrapper(
		c.AEADManager(),
		wrapKey,
		cryptoDomain.Algorithm(c.config.WrapKeyAlgorithm),
	)
}
