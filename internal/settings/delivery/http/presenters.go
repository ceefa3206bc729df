package http

import (
	"schedlink/internal/model"
	"schedlink/pkg/ownertoken"
)

// --- Request DTOs ---

type updateConfigReq struct {
	Config model.SchedConfig `json:"config" binding:"required"`
}

type saveTokensReq struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token" binding:"required"`
	ExpiresAt    int64  `json:"expires_at"`
}

func (r saveTokensReq) toTokens() ownertoken.Tokens {
	return ownertoken.Tokens{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    r.ExpiresAt,
	}
}

// --- Response DTOs ---

type setupTokenResp struct {
	// Storage is "redis" when tokens persist across restarts, "memory"
	// otherwise.
	Storage string `json:"storage"`

	// EncryptedRefreshToken is the blob to put in
	// ENCRYPTED_OWNER_REFRESH_TOKEN when running without a durable store.
	// Empty until a token set has been saved in memory mode.
	EncryptedRefreshToken string `json:"encrypted_refresh_token,omitempty"`
}

func (h *handler) newSetupTokenResp() setupTokenResp {
	resp := setupTokenResp{Storage: "memory"}
	if h.tokens.Durable() {
		resp.Storage = "redis"
		return resp
	}
	resp.EncryptedRefreshToken = h.tokens.LastEncryptedRefreshToken()
	return resp
}
