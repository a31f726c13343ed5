package handler

import (
	"hotelhub/config"
	"hotelhub/di"
	"hotelhub/shared/logger"
	"net/http"
	"sync"
)

var (
	once sync.Once
	app  http.Handler
)

// Handler serves the API from a serverless function. The expiry scanner does not run here,
// deployments schedule cmd/expire instead.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeApp().HTTP.Handler()
	})

	app.ServeHTTP(w, r)
}
