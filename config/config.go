package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talentflow" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"local-dev-secret" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		AdminEmail     string `default:"admin@talentflow.local" env:"AUTH_ADMIN_EMAIL"`
		AdminPassword  string `default:"admin" env:"AUTH_ADMIN_PASSWORD"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"talentflow" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	// Chaos emulates flaky production conditions for manual resilience
	// testing: random latency on matched requests plus a random write
	// failure rate. Off by default.
	Chaos struct {
		Enabled          *bool `default:"false" env:"CHAOS_ENABLED"`
		MinLatencyMs     int   `default:"200" env:"CHAOS_MIN_LATENCY_MS"`
		MaxLatencyMs     int   `default:"1200" env:"CHAOS_MAX_LATENCY_MS"`
		WriteFailPercent int   `default:"8" env:"CHAOS_WRITE_FAIL_PERCENT"`
		// the assessment-save route uses a reduced rate to keep authoring usable
		SaveFailPercent int `default:"2" env:"CHAOS_SAVE_FAIL_PERCENT"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
