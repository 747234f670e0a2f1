package config

import "time"

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"wayfarer-api"`
	Port                          int      `env:"PORT" env-default:"3004"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10"`
	MaxHeaderBytes                int      `env:"HTTP_SERVER_MAX_HEADER_BYTES" env-default:"64000"` // 64KB
	ReadHeaderTimeoutSeconds      int      `env:"HTTP_SERVER_READ_HEADER_TIMEOUT_SECONDS" env-default:"10"`
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST,PUT,DELETE"`
	StartupMaxAttempts            int      `env:"STARTUP_MAX_ATTEMPTS" env-default:"5"`

	// Trip store (remote authoritative itinerary/cost persistence)
	TripStoreBaseURL string        `env:"TRIP_STORE_BASE_URL" env-default:"http://localhost:8090/api"`
	TripStoreAPIKey  string        `env:"TRIP_STORE_API_KEY" env-default:""`
	TripStoreTimeout time.Duration `env:"TRIP_STORE_TIMEOUT" env-default:"30s"`

	// Redis (session state)
	RedisHost     string        `env:"REDIS_HOST" env-default:"localhost"`
	RedisPort     int           `env:"REDIS_PORT" env-default:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"24h"`

	// Geocoding providers
	PlacesBaseURL      string `env:"PLACES_BASE_URL" env-default:"https://maps.googleapis.com/maps/api/place"`
	PlacesAPIKey       string `env:"PLACES_API_KEY" env-default:""`
	NominatimBaseURL   string `env:"NOMINATIM_BASE_URL" env-default:"https://nominatim.openstreetmap.org"`
	NominatimUserAgent string `env:"NOMINATIM_USER_AGENT" env-default:"wayfarer/1.0"`

	// Assistant
	OpenAIAPIKey string `env:"OPENAI_API_KEY" env-default:""`
	OpenAIModel  string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`

	// Kafka Producer settings (trip events)
	KafkaBrokers      []string `env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	KafkaEnabled      bool     `env:"KAFKA_ENABLED" env-default:"false"`
	KafkaOutputTopic  string   `env:"KAFKA_OUTPUT_TOPIC" env-default:"trip-events"`
	KafkaBatchSize    int      `env:"KAFKA_BATCH_SIZE" env-default:"100"`
	KafkaBatchTimeout int      `env:"KAFKA_BATCH_TIMEOUT_MS" env-default:"100"`
	KafkaRequiredAcks int      `env:"KAFKA_REQUIRED_ACKS" env-default:"1"`
	KafkaCompression  string   `env:"KAFKA_COMPRESSION" env-default:"snappy"`
}
