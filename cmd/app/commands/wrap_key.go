package commands

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
)

// RunCreateWrapKey generates the wrap key configuration used to seal stored
// document keys. Key material is zeroed from memory after encoding.
//
// With no KMS provider, generates a cryptographically secure 32-byte wrap key
// and prints it as a WRAP_KEY environment variable for local wrapping.
//
// With kmsProvider and kmsKeyURI set, verifies the KMS keeper with an
// encrypt/decrypt round trip and prints the KMS environment variables; the
// wrap key stays inside the KMS and never touches this process.
func RunCreateWrapKey(ctx context.Context, kmsService cryptoService.KMSService, w io.Writer, kmsProvider, kmsKeyURI string) error {
	if kmsProvider != "" || kmsKeyURI != "" {
		if kmsProvider == "" || kmsKeyURI == "" {
			return fmt.Errorf(
				"--kms-provider and --kms-key-uri must be set together\n\nFor local development, use:\n  --kms-provider=localsecrets --kms-key-uri=\"base64key://<32-byte-base64-key>\"\n\nFor production, use cloud KMS providers:\n  --kms-provider=gcpkms --kms-key-uri=\"gcpkms://projects/.../cryptoKeys/...\"\n  --kms-provider=hashivault --kms-key-uri=\"hashivault://keyname\"",
			)
		}
		return verifyKMSKeeper(ctx, kmsService, w, kmsProvider, kmsKeyURI)
	}

	wrapKey := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(wrapKey); err != nil {
		return fmt.Errorf("failed to generate wrap key: %w", err)
	}
	encodedKey := base64.StdEncoding.EncodeToString(wrapKey)
	cryptoDomain.Zero(wrapKey)

	fmt.Fprintln(w, "# Wrap Key Configuration (local mode)")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "WRAP_KEY=\"%s\"\n", encodedKey)
	fmt.Fprintf(w, "WRAP_KEY_ALGORITHM=\"%s\"\n", cryptoDomain.AESGCM)

	return nil
}

// verifyKMSKeeper confirms the keeper at kmsKeyURI can seal and open key
// material before the operator commits the configuration.
func verifyKMSKeeper(ctx context.Context, kmsService cryptoService.KMSService, w io.Writer, kmsProvider, kmsKeyURI string) error {
	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			fmt.Fprintf(w, "# Warning: failed to close KMS keeper: %v\n", closeErr)
		}
	}()

	probe := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(probe); err != nil {
		return fmt.Errorf("failed to generate probe key: %w", err)
	}
	defer cryptoDomain.Zero(probe)

	ciphertext, err := keeper.Encrypt(ctx, probe)
	if err != nil {
		return fmt.Errorf("KMS keeper encrypt failed: %w", err)
	}
	recovered, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return fmt.Errorf("KMS keeper decrypt failed: %w", err)
	}
	defer cryptoDomain.Zero(recovered)
	if !bytes.Equal(probe, recovered) {
		return fmt.Errorf("KMS keeper round trip mismatch")
	}

	fmt.Fprintln(w, "# Wrap Key Configuration (KMS mode)")
	fmt.Fprintln(w, "# Keeper verified with an encrypt/decrypt round trip")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
	fmt.Fprintf(w, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)

	return nil
}
