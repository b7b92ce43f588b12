package core

import "time"

type ModelsConfig interface {
	GetToken() string
	GetAPIBase() string
	GetRequestTimeout() time.Duration
}

type ServerConfig interface {
	GetTransport() string
	GetHTTPAddr() string
}
