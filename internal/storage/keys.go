package storage

// Keys under which the application state is stored.
const (
	StorageVersion = 3

	KeyMeta          = "ps_v3_meta"
	KeyProfile       = "ps_v2_profile"
	KeySettings      = "ps_v2_settings"
	KeyHistory       = "ps_v2_history"
	KeyCardioHistory = "ps_v2_cardio_history"
	KeyActiveSession = "ps_active_session"
	KeyRestDays      = "restDayDates"
	KeyUndo          = "ps_undo"
	KeyTemplates     = "ps_custom_templates"
	KeyLastOpen      = "ps_last_open"
)

// AllKeys lists every key a reset has to clear.
var AllKeys = []string{
	KeyMeta, KeyProfile, KeySettings, KeyHistory, KeyCardioHistory,
	KeyActiveSession, KeyRestDays, KeyUndo, KeyTemplates, KeyLastOpen,
}
