package settings

import "schedlink/internal/model"

// Defaults returns the out-of-the-box scheduling configuration used to seed
// an empty store. The owner customizes it through the admin config endpoint.
func Defaults() model.SchedConfig {
	return model.SchedConfig{
		Events: []model.EventType{
			{
				Slug:        "quick-chat",
				Title:       "15 Min Quick Chat",
				Description: "A short introductory call to see if we're a good fit.",
				Duration:    15,
				Location:    "Google Meet",
			},
			{
				Slug:        "meeting",
				Title:       "30 Min Meeting",
				Description: "A standard meeting to discuss your project or idea.",
				Duration:    30,
				Location:    "Google Meet",
			},
			{
				Slug:        "consultation",
				Title:       "60 Min Consultation",
				Description: "An in-depth session to dive deep into your needs.",
				Duration:    60,
				Location:    "Google Meet",
			},
		},
		Availability: model.AvailabilityPolicy{
			Timezone: "America/New_York",
			Schedule: model.WeeklySchedule{
				1: {Start: "09:00", End: "17:00"},
				2: {Start: "09:00", End: "17:00"},
				3: {Start: "09:00", End: "17:00"},
				4: {Start: "09:00", End: "17:00"},
				5: {Start: "09:00", End: "17:00"},
			},
			BufferMinutes:    10,
			MaxDaysInAdvance: 30,
			MinNoticeMinutes: 120,
		},
		Owner: model.Owner{
			Name:       "Your Name",
			CalendarID: "primary",
		},
		Branding: model.Branding{
			AccentColor: "#2563eb",
		},
	}
}
