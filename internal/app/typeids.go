package app

// Component TypeIDs identify each component type for the router pivot algorithm.
// Each value must be unique within the application.
const (
	// Layouts
	MainLayout_TypeID uint32 = 100

	// Pages
	HomePage_TypeID         uint32 = 200
	SignToSpeechPage_TypeID uint32 = 300
	SpeechToSignPage_TypeID uint32 = 400
	SettingsPage_TypeID     uint32 = 500

	// Shared
	PageNotFound_TypeID uint32 = 1000
)
