// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package server exposes the engine and the game archive over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/taxi/pkg/archive"
	"laptudirm.com/x/taxi/pkg/ataxx"
	"laptudirm.com/x/taxi/pkg/engine"
)

const (
	MaxDepth        = 8
	ShutdownTimeout = 5 * time.Second
)

// Server answers move and archive requests.
type Server struct {
	config  engine.Config
	archive *archive.Archive

	router chi.Router
}

// New creates a Server searching with the given config by default. The
// archive endpoints are unavailable if store is nil.
func New(config engine.Config, store *archive.Archive) *Server {
	server := &Server{
		config:  config,
		archive: store,
		router:  chi.NewRouter(),
	}

	r := server.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/api/move", server.move)

	r.Route("/api/games", func(r chi.Router) {
		r.Use(server.requireArchive)
		r.Get("/", server.listGames)
		r.Get("/{id}", server.getGame)
	})

	return server
}

func (server *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	server.router.ServeHTTP(w, r)
}

// ListenAndServe serves requests on the given address until the context
// is cancelled, and then shuts down gracefully.
func (server *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logrus.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type moveRequest struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth,omitempty"`
}

type moveResponse struct {
	Move  string `json:"move"`
	UAI   string `json:"uai"`
	Pass  bool   `json:"pass"`
	Score int    `json:"score"`
	Nodes int    `json:"nodes"`
	Depth int    `json:"depth"`
}

func (server *Server) move(w http.ResponseWriter, r *http.Request) {
	var payload moveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if payload.FEN == "" {
		payload.FEN = ataxx.StartFEN
	}

	position, err := ataxx.New(payload.FEN)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, over := position.Winner(); over {
		writeError(w, http.StatusConflict, "game is over")
		return
	}

	config := server.config
	if payload.Depth != 0 {
		if payload.Depth < 1 || payload.Depth > MaxDepth {
			writeError(w, http.StatusBadRequest, "depth out of range")
			return
		}

		config.Depth = payload.Depth
	}

	e := engine.New[*ataxx.Position](config)
	result, err := e.Think(position, position.SideToMove())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, moveResponse{
		Move:  result.Move.String(),
		UAI:   result.Move.UAI(),
		Pass:  result.Move.IsPass(),
		Score: result.Score,
		Nodes: result.Nodes,
		Depth: e.Config().Depth,
	})
}

func (server *Server) requireArchive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if server.archive == nil {
			writeError(w, http.StatusServiceUnavailable, "archive disabled")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (server *Server) listGames(w http.ResponseWriter, r *http.Request) {
	records, err := server.archive.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if records == nil {
		records = []*archive.Record{}
	}

	writeJSON(w, http.StatusOK, records)
}

func (server *Server) getGame(w http.ResponseWriter, r *http.Request) {
	record, err := server.archive.Get(chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, archive.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, record)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logrus.WithFields(logrus.Fields{
			"request": middleware.GetReqID(r.Context()),
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  ww.Status(),
			"took":    time.Since(start),
		}).Debug("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
