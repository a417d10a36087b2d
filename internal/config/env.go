package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

type BaseEnv struct {
	Env      string `envconfig:"ENV" default:"local"`
	HTTPHost string `envconfig:"HTTP_HOST" default:""`
	HTTPPort string `envconfig:"HTTP_PORT" default:"3200"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"debug"`
	APIKey   string `envconfig:"API_KEY" required:"true"`
}

type StorageEnv struct {
	Type    string `envconfig:"STORAGE_TYPE" default:"local"`
	BaseDir string `envconfig:"STORAGE_BASE_DIR" default:".showdesk/data"`
	// S3 settings (used when Type == "s3")
	S3Bucket string `envconfig:"S3_BUCKET"`
	S3Prefix string `envconfig:"S3_PREFIX" default:"showdesk/"`
	S3Region string `envconfig:"S3_REGION" default:"sa-east-1"`
}

// ScheduleEnv configures the scheduling engine: the home civil calendar,
// the home country for the venue resolver and the reminder horizon.
type ScheduleEnv struct {
	Timezone            string `envconfig:"TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	HomeCountry         string `envconfig:"HOME_COUNTRY" default:"Argentina"`
	VenueTablePath      string `envconfig:"VENUE_TABLE_PATH"`
	ReminderHorizonDays int    `envconfig:"REMINDER_HORIZON_DAYS" default:"14"`
}

type VAPIDEnv struct {
	VAPIDPublicKey  string `envconfig:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `envconfig:"VAPID_PRIVATE_KEY"`
	VAPIDContact    string `envconfig:"VAPID_CONTACT" default:"mailto:ops@showdesk.local"`
}

type Env struct {
	BaseEnv
	StorageEnv
	ScheduleEnv
	VAPIDEnv
}

const namespace = "SHOWDESK"

func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &env, nil
}

func (e *BaseEnv) SlogLevel() slog.Level {
	if e == nil {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelDebug
	}
	return level
}

func ScheduleEnvFromEnv(env *Env) *ScheduleEnv {
	return &env.ScheduleEnv
}

func VAPIDEnvFromEnv(env *Env) *VAPIDEnv {
	return &env.VAPIDEnv
}
