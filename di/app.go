package di

import (
	"context"
	"errors"
	"hotelhub/infras/kafka"
	"hotelhub/infras/otel"
	"hotelhub/infras/postgres"
	"hotelhub/internal/domains/contract/scanner"
	"hotelhub/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// App is the process-wide object graph built by the injector.
type App struct {
	HTTP    *http.HTTP
	Scanner *scanner.Scanner
	Otel    otel.Otel
	DB      *postgres.Connection
	Redis   *goRedis.Client
	Kafka   kafka.Client
}

// Close releases every external connection and flushes pending spans.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(
		a.Kafka.Close(),
		a.Redis.Close(),
		a.DB.Close(),
		a.Otel.Shutdown(ctx),
	)
}
