package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const RootMessage = "Backend do Painel do Facebook Ads está no ar!"

func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(RootMessage)); err != nil {
			logrus.WithError(err).Warn("error responding to root")
		}
	})
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
