package config

// DefaultNotificationTitle is used when no title is given
const DefaultNotificationTitle = "Timer Finished!"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"hours":                 0,
		"minutes":               0,
		"seconds":               0,
		"notification_title":    DefaultNotificationTitle,
		"notification_body":     "",
		"disable_notifications": false,
		"disable_sound":         false,
		"quiet":                 false,
		"non_interactive":       false,
		"simple":                false,
		"debug":                 false,
	}
}
