package config

type InternalConfig struct {
	App App
	EMR EMR
	JWT JWT
}

type App struct {
	Env                          string
	Port                         string
	Version                      string
	Address                      string
	EndpointPrefix               string
	MaxRequests                  int
	ShutdownTimeoutInSeconds     int
	GatewayAPIKeyHash            string
	NotificationQueue            string
	CloseWorkspaceOnFailure      bool
	SearchDebounceInMilliseconds int
	SearchSessionTTLInMinutes    int
	SearchRateLimitPerSecond     int
	SearchRateBlockInSeconds     int
}

type EMR struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
