package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Planner
	Planner  PlannerConfig
	Roadmap  ScheduleConfig
	Schedule ScheduleConfig

	// Integrations
	Canvas         CanvasConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type PlannerConfig struct {
	Timezone         string
	KeywordRulesPath string
	RankOrder        string
}

// ScheduleConfig is shared by the roadmap and the full schedule; each view
// ignores the fields its policy does not use.
type ScheduleConfig struct {
	WorkBlockMinutes     int
	BreakBlockMinutes    int
	DayStartHour         int
	MaxDays              int
	BlocksPerDay         int
	DailyCapacityMinutes int
	EstimateSource       string
}

type CanvasConfig struct {
	BaseURL        string
	AccessToken    string
	CourseIDs      []string
	CacheTTL       time.Duration
	RequestsPerMin int
	Timeout        time.Duration
}

// Enabled reports whether live Canvas fetching is configured.
func (c CanvasConfig) Enabled() bool {
	return c.BaseURL != "" && c.AccessToken != ""
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.KeywordRulesPath = viper.GetString("planner.keyword_rules_path")
	cfg.Planner.RankOrder = viper.GetString("planner.rank_order")
	cfg.Roadmap = loadSchedule("roadmap")
	cfg.Schedule = loadSchedule("schedule")

	// Canvas
	cfg.Canvas.BaseURL = strings.TrimRight(viper.GetString("canvas.base_url"), "/")
	cfg.Canvas.AccessToken = viper.GetString("canvas.access_token")
	if canvasToken := viper.GetString("canvas_access_token"); canvasToken != "" {
		cfg.Canvas.AccessToken = canvasToken
	}
	cfg.Canvas.CourseIDs = splitList(viper.GetString("canvas.course_ids"))
	cfg.Canvas.CacheTTL = viper.GetDuration("canvas.cache_ttl")
	cfg.Canvas.RequestsPerMin = viper.GetInt("canvas.requests_per_min")
	cfg.Canvas.Timeout = viper.GetDuration("canvas.timeout")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadSchedule(prefix string) ScheduleConfig {
	return ScheduleConfig{
		WorkBlockMinutes:     viper.GetInt(prefix + ".work_block_minutes"),
		BreakBlockMinutes:    viper.GetInt(prefix + ".break_block_minutes"),
		DayStartHour:         viper.GetInt(prefix + ".day_start_hour"),
		MaxDays:              viper.GetInt(prefix + ".max_days"),
		BlocksPerDay:         viper.GetInt(prefix + ".blocks_per_day"),
		DailyCapacityMinutes: viper.GetInt(prefix + ".daily_capacity_minutes"),
		EstimateSource:       viper.GetString(prefix + ".estimate_source"),
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")
	viper.SetDefault("rate_limit.requests_per_min", 120)

	// Planner defaults
	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.keyword_rules_path", "task_keywords.json")
	viper.SetDefault("planner.rank_order", "due_first")

	viper.SetDefault("roadmap.work_block_minutes", 30)
	viper.SetDefault("roadmap.break_block_minutes", 10)
	viper.SetDefault("roadmap.day_start_hour", 10)
	viper.SetDefault("roadmap.max_days", 4)
	viper.SetDefault("roadmap.blocks_per_day", 4)
	viper.SetDefault("roadmap.estimate_source", "pert")

	viper.SetDefault("schedule.work_block_minutes", 50)
	viper.SetDefault("schedule.break_block_minutes", 10)
	viper.SetDefault("schedule.day_start_hour", 9)
	viper.SetDefault("schedule.daily_capacity_minutes", 240)
	viper.SetDefault("schedule.estimate_source", "heuristic")

	// Integrations
	viper.SetDefault("canvas.cache_ttl", "5m")
	viper.SetDefault("canvas.requests_per_min", 60)
	viper.SetDefault("canvas.timeout", "15s")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

func validate(cfg *Config) error {
	if _, err := time.LoadLocation(cfg.Planner.Timezone); err != nil {
		return fmt.Errorf("planner.timezone: %w", err)
	}
	switch cfg.Planner.RankOrder {
	case "due_first", "category_first":
	default:
		return fmt.Errorf("planner.rank_order: unknown value %q", cfg.Planner.RankOrder)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	return nil
}

// splitList splits a comma separated value since viper might not parse arrays seamlessly from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
