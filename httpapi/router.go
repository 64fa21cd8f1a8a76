package httpapi

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/korylprince/mians-chat/relay"
)

//Config holds options for the HTTP API
type Config struct {
	//Prefix is the URL prefix the router is mounted at, without trailing slash
	Prefix string
	//AltBrand is the brand shown on the chat page
	AltBrand string
}

//NewRouter returns an HTTP router for the chat page and relay API
func NewRouter(w io.Writer, rl *relay.Relay, logger *zap.Logger, cfg *Config) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	//defaults are applied to a copy so the caller's Config is unchanged
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	cfg = &c
	if cfg.AltBrand == "" {
		cfg.AltBrand = relay.DefaultAltBrand
	}

	//construct middleware
	var m = func(h returnHandler) http.Handler {
		return logMiddleware(requestIDMiddleware(jsonMiddleware(h)), w, logger)
	}

	r := mux.NewRouter()

	r.Path("/api/chat").Handler(m(handleChat(rl)))
	r.Path("/api/chat/ws").Methods("GET").Handler(relay.NewHandler(rl, wsErrorMessage(rl), logger))
	r.Path("/healthz").Methods("GET").Handler(m(handleHealth))
	r.Path("/").Methods("GET").Handler(logMiddleware(requestIDMiddleware(handlePage(cfg.AltBrand, cfg.Prefix+"/api/chat")), w, logger))

	r.NotFoundHandler = m(notFoundHandler)

	return r
}
