package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"cgt-returns/internal/auth"
	"cgt-returns/internal/config"
	"cgt-returns/internal/emailverify"
	"cgt-returns/internal/handler"
	"cgt-returns/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("opening session store")
	}
	defer st.Close()

	var resolver auth.Resolver
	if len(cfg.AuthTokens) > 0 {
		tokens := make(map[string]auth.Principal, len(cfg.AuthTokens))
		for token, userID := range cfg.AuthTokens {
			tokens[token] = auth.Principal{UserID: userID, Name: userID}
		}
		resolver = auth.NewStaticResolver(tokens)
	} else {
		log.Warn().Msg("no auth tokens configured, running unauthenticated")
	}

	email := emailverify.New(cfg.EmailVerification.BaseURL,
		time.Duration(cfg.EmailVerification.TimeoutSeconds)*time.Second)

	h := handler.New(st, resolver, email)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Str("db", cfg.Database.Path).Msg("returns service starting")
	if err := fasthttp.ListenAndServe(addr, h.Handle); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
