package ownertoken

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"schedlink/pkg/encrypter"
	"schedlink/pkg/kvstore"
)

// tokensKey is the kv key holding the encrypted token blob.
const tokensKey = "schedlink:owner-tokens"

// Source is one tier of owner-token storage. Sources are tried in order;
// the first one that reports found wins.
type Source interface {
	Name() string
	Load(ctx context.Context) (Tokens, bool, error)
}

// storeSource reads the encrypted token blob from the durable kv store.
type storeSource struct {
	store kvstore.Store
	enc   encrypter.Encrypter
}

func (s *storeSource) Name() string { return "store" }

func (s *storeSource) Load(ctx context.Context) (Tokens, bool, error) {
	sealed, ok, err := s.store.Get(ctx, tokensKey)
	if err != nil {
		return Tokens{}, false, fmt.Errorf("failed to read tokens from store: %w", err)
	}
	if !ok {
		return Tokens{}, false, nil
	}
	return decodeTokens(s.enc, sealed)
}

// envSource carries an encrypted refresh token configured through the
// environment. It yields no access token; the resolver performs the refresh
// grant to obtain one.
type envSource struct {
	encryptedRefreshToken string
	enc                   encrypter.Encrypter
}

func (s *envSource) Name() string { return "env" }

func (s *envSource) Load(ctx context.Context) (Tokens, bool, error) {
	refreshToken, err := s.enc.Decrypt(s.encryptedRefreshToken)
	if err != nil {
		return Tokens{}, false, fmt.Errorf("failed to decrypt configured refresh token: %w", err)
	}
	return Tokens{RefreshToken: refreshToken}, true, nil
}

// memorySource holds the encrypted blob in process memory. Last tier; serves
// local development without a durable store.
type memorySource struct {
	enc encrypter.Encrypter

	mu     sync.RWMutex
	sealed string
}

func (s *memorySource) Name() string { return "memory" }

func (s *memorySource) Load(ctx context.Context) (Tokens, bool, error) {
	s.mu.RLock()
	sealed := s.sealed
	s.mu.RUnlock()

	if sealed == "" {
		return Tokens{}, false, nil
	}
	return decodeTokens(s.enc, sealed)
}

func (s *memorySource) save(sealed string) {
	s.mu.Lock()
	s.sealed = sealed
	s.mu.Unlock()
}

func decodeTokens(enc encrypter.Encrypter, sealed string) (Tokens, bool, error) {
	raw, err := enc.Decrypt(sealed)
	if err != nil {
		return Tokens{}, false, fmt.Errorf("failed to decrypt owner tokens: %w", err)
	}
	var tokens Tokens
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return Tokens{}, false, fmt.Errorf("failed to decode owner tokens: %w", err)
	}
	return tokens, true, nil
}
