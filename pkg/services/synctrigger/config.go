package synctrigger

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

var ErrMissingTaskARN = errors.New("required environment variable not set: DATASYNC_TASK_ARN")

type Config struct {
	TaskArn string `envconfig:"DATASYNC_TASK_ARN" required:"true"`
}

// FromEnv reads the trigger configuration from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrMissingTaskARN, err)
	}
	// envconfig treats a set-but-empty variable as present
	if cfg.TaskArn == "" {
		return Config{}, ErrMissingTaskARN
	}
	return cfg, nil
}
