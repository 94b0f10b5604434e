package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
)

// InitSigner builds the session signer for the configured algorithm.
//
//   - HS256 signs with AUTH_SIGNING_SECRET.
//   - EdDSA signs with the PKCS8 Ed25519 key in AUTH_SIGNING_KEY_FILE. A key
//     sealed with `memoriesctl keygen --master-key` is opened with the master
//     key at AUTH_MASTER_KEY_PATH.
func InitSigner(cfg Config, logger *slog.Logger) (jwtx.KeyPair, error) {
	switch cfg.SigningAlgorithm {
	case AlgHS256:
		signer, err := jwtx.NewSignerHS256([]byte(cfg.SigningSecret))
		if err != nil {
			return nil, &ConfigurationError{Field: "AUTH_SIGNING_SECRET", Reason: err.Error()}
		}
		logger.Info("session signer ready", "algorithm", signer.Alg())
		return signer, nil

	case AlgEdDSA:
		pemKey, err := loadSigningKey(cfg)
		if err != nil {
			return nil, err
		}
		signer, err := jwtx.NewSignerEdDSA(pemKey)
		if err != nil {
			return nil, &ConfigurationError{Field: "AUTH_SIGNING_KEY_FILE", Reason: err.Error()}
		}
		logger.Info("session signer ready", "algorithm", signer.Alg(), "key_file", cfg.SigningKeyFile)
		return signer, nil
	}

	return nil, &ConfigurationError{Field: "AUTH_SIGNING_ALGORITHM", Reason: fmt.Sprintf("unknown algorithm %q", cfg.SigningAlgorithm)}
}

func loadSigningKey(cfg Config) ([]byte, error) {
	data, err := os.ReadFile(cfg.SigningKeyFile)
	if err != nil {
		return nil, &ConfigurationError{Field: "AUTH_SIGNING_KEY_FILE", Reason: err.Error()}
	}
	if !cryptox.IsSealedKey(data) {
		return data, nil
	}

	if cfg.MasterKeyPath == "" {
		return nil, &ConfigurationError{Field: "AUTH_MASTER_KEY_PATH", Reason: "required to open a sealed signing key"}
	}
	sealer, err := cryptox.LoadKeySealer(cfg.MasterKeyPath)
	if err != nil {
		return nil, &ConfigurationError{Field: "AUTH_MASTER_KEY_PATH", Reason: err.Error()}
	}
	plain, err := sealer.Open(data)
	if err != nil {
		return nil, &ConfigurationError{Field: "AUTH_SIGNING_KEY_FILE", Reason: err.Error()}
	}
	return plain, nil
}
