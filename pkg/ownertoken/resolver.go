package ownertoken

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"schedlink/pkg/encrypter"
	"schedlink/pkg/kvstore"
)

// expirySkew is subtracted from the stored expiry so a token about to lapse
// mid-request is refreshed up front.
const expirySkew = 60 * time.Second

// Config holds the resolver's collaborators and OAuth client settings.
type Config struct {
	ClientID     string
	ClientSecret string

	// Endpoint defaults to Google's OAuth2 endpoint when zero.
	Endpoint oauth2.Endpoint

	// Store is the durable kv backend; nil means in-memory only.
	Store kvstore.Store

	// EncryptedRefreshToken is the ENCRYPTED_OWNER_REFRESH_TOKEN
	// environment value, if configured.
	EncryptedRefreshToken string

	Encrypter encrypter.Encrypter
}

// Resolver resolves the owner's access token by walking an ordered list of
// token sources, refreshing through the OAuth2 refresh grant when the access
// token is missing or expired.
type Resolver struct {
	sources []Source
	store   kvstore.Store
	memory  *memorySource
	enc     encrypter.Encrypter
	oauth   *oauth2.Config
	now     func() time.Time

	mu                   sync.RWMutex
	lastEncryptedRefresh string
}

// NewResolver builds the source chain: durable store, then encrypted
// environment refresh token, then process memory.
func NewResolver(cfg Config) *Resolver {
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}

	memory := &memorySource{enc: cfg.Encrypter}

	var sources []Source
	if cfg.Store != nil {
		sources = append(sources, &storeSource{store: cfg.Store, enc: cfg.Encrypter})
	}
	if cfg.EncryptedRefreshToken != "" {
		sources = append(sources, &envSource{
			encryptedRefreshToken: cfg.EncryptedRefreshToken,
			enc:                   cfg.Encrypter,
		})
	}
	sources = append(sources, memory)

	return &Resolver{
		sources: sources,
		store:   cfg.Store,
		memory:  memory,
		enc:     cfg.Encrypter,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
		},
		now: time.Now,
	}
}

// AccessToken returns a currently valid owner access token, refreshing it if
// necessary. Returns ErrNotConnected when no source holds usable tokens.
func (r *Resolver) AccessToken(ctx context.Context) (string, error) {
	tokens, found, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrNotConnected
	}

	if tokens.AccessToken != "" && r.now().Before(time.Unix(tokens.ExpiresAt, 0).Add(-expirySkew)) {
		return tokens.AccessToken, nil
	}

	if tokens.RefreshToken == "" {
		return "", ErrNotConnected
	}

	refreshed, err := r.refresh(ctx, tokens.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: token refresh failed: %v", ErrNotConnected, err)
	}

	if err := r.Save(ctx, refreshed); err != nil {
		return "", err
	}
	return refreshed.AccessToken, nil
}

// Save encrypts and persists the owner tokens. Without a durable store the
// blob lands in process memory and the encrypted refresh token is captured so
// the admin setup endpoint can hand it out for environment configuration.
func (r *Resolver) Save(ctx context.Context, tokens Tokens) error {
	raw, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to encode owner tokens: %w", err)
	}
	sealed, err := r.enc.Encrypt(string(raw))
	if err != nil {
		return fmt.Errorf("failed to encrypt owner tokens: %w", err)
	}

	if r.store != nil {
		if err := r.store.Set(ctx, tokensKey, sealed); err != nil {
			return fmt.Errorf("failed to persist owner tokens: %w", err)
		}
		return nil
	}

	r.memory.save(sealed)

	if tokens.RefreshToken != "" {
		encryptedRefresh, err := r.enc.Encrypt(tokens.RefreshToken)
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
		r.mu.Lock()
		r.lastEncryptedRefresh = encryptedRefresh
		r.mu.Unlock()
	}
	return nil
}

// Durable reports whether a durable store backs the resolver.
func (r *Resolver) Durable() bool {
	return r.store != nil
}

// LastEncryptedRefreshToken returns the encrypted refresh token captured by
// the most recent Save in memory-only mode, or "" when none was captured.
func (r *Resolver) LastEncryptedRefreshToken() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastEncryptedRefresh
}

func (r *Resolver) load(ctx context.Context) (Tokens, bool, error) {
	for _, src := range r.sources {
		tokens, found, err := src.Load(ctx)
		if err != nil {
			return Tokens{}, false, fmt.Errorf("token source %s: %w", src.Name(), err)
		}
		if found {
			return tokens, true, nil
		}
	}
	return Tokens{}, false, nil
}

func (r *Resolver) refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	src := r.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return Tokens{}, err
	}

	newRefresh := tok.RefreshToken
	if newRefresh == "" {
		newRefresh = refreshToken
	}

	return Tokens{
		AccessToken:  tok.AccessToken,
		RefreshToken: newRefresh,
		ExpiresAt:    tok.Expiry.Unix(),
	}, nil
}
