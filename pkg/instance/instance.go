package instance

import "github.com/angelmondragon/shopadmin-backend/pkg/env"

const (
	EnvInstanceID = "SHOPADMIN_INSTANCE_ID"
	envDyno       = "DYNO"
	defaultID     = "local"
)

// GetID identifies the running process in logs. An explicit instance id wins
// over the platform dyno name.
func GetID() string {
	return env.Get(EnvInstanceID, env.Get(envDyno, defaultID))
}
