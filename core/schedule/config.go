package schedule

// Config holds the reset schedule.
type Config struct {
	// Timezone is the IANA zone the reset hours are defined in.
	Timezone string `mapstructure:"timezone" default:"America/New_York"`
	// MorningHour is the first daily reset hour (local time).
	MorningHour int `mapstructure:"morning_hour" default:"3"`
	// EveningHour is the second daily reset hour (local time).
	EveningHour int `mapstructure:"evening_hour" default:"15"`
}
