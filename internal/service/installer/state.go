package installer

import "github.com/sandevgo/modelbench/internal/config"

type InstallState struct {
	Config *config.ModelsConfig
}

func NewInstallState() *InstallState {
	return &InstallState{
		Config: &config.ModelsConfig{
			APIBase: config.DefaultAPIBase,
		},
	}
}
