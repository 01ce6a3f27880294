package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultShutdownTimeout = 10 * time.Second

// newEnv returns a viper instance that reads straight from the process
// environment. Empty variables count as unset.
func newEnv(defaults map[string]any) *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
