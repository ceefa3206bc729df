package settings

import "schedlink/internal/model"

// PublicConfig is the subset of the config exposed to unauthenticated
// visitors: enough to render the booking page, nothing more.
type PublicConfig struct {
	Events       []model.EventType  `json:"events"`
	Owner        PublicOwner        `json:"owner"`
	Branding     model.Branding     `json:"branding"`
	Availability PublicAvailability `json:"availability"`
}

// PublicOwner exposes only the owner's display name.
type PublicOwner struct {
	Name string `json:"name"`
}

// PublicAvailability exposes only the owner timezone.
type PublicAvailability struct {
	Timezone string `json:"timezone"`
}
