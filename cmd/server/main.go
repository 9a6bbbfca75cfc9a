// Command server exposes the interpres translator as a JSON REST API.
//
// Endpoints:
//
//	GET /api/latin?text=<words>[&max=6][&tricks=true][&sort=true]
//	GET /api/english?text=<words>[&max=6][&sort=true]
//	GET /api/list?type=<type>[&pos=noun,verb][&min=][&max=][&exact=][&amount=][&random=true][&seed=]
//	GET /api/suggest?prefix=<letters>[&limit=10]
//	GET /api/stats
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/cours-de-latin/interpres"
	"github.com/cours-de-latin/interpres/internal/config"
)

// ---- JSON response types ------------------------------------------------

type translateResponse struct {
	Translations []interpres.Translation `json:"translations"`
}

type suggestResponse struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// intParam reads a non-negative integer query parameter.
func intParam(q url.Values, name string, def int) (int, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("'%s' must be a non-negative integer", name)
	}
	return n, nil
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("'%s' must be a boolean", name)
	}
	return b, nil
}

// ---- handlers -----------------------------------------------------------

func handleTranslate(tr *interpres.Translator, def config.Translate, latin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		text := q.Get("text")
		if strings.TrimSpace(text) == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		limit, err := intParam(q, "max", def.Max)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		sort, err := boolParam(q, "sort", def.Sort)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var out []interpres.Translation
		if latin {
			tricks, err := boolParam(q, "tricks", def.Tricks)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			out = tr.LatinToEnglish(text, limit, tricks, sort)
		} else {
			out = tr.EnglishToLatin(text, limit, sort)
		}
		writeJSON(w, http.StatusOK, translateResponse{Translations: out})
	}
}

func handleList(store *interpres.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		typ, err := interpres.ParseWordType(q.Get("type"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		query := interpres.ListQuery{Type: typ}
		if s := q.Get("pos"); s != "" {
			if query.POS, err = interpres.ParsePOSList(s); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		for _, p := range []struct {
			name string
			dst  *int
		}{
			{"min", &query.Min}, {"max", &query.Max}, {"exact", &query.Exact}, {"amount", &query.Amount},
		} {
			if *p.dst, err = intParam(q, p.name, 0); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		if query.Random, err = boolParam(q, "random", false); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if query.Random && query.Amount == 0 {
			writeError(w, http.StatusBadRequest, "'random' requires 'amount'")
			return
		}
		if s := q.Get("seed"); s != "" {
			seed, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "'seed' must be an unsigned integer")
				return
			}
			query.Rand = rand.New(rand.NewPCG(seed, seed))
		}

		res, err := store.List(query)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func handleSuggest(store *interpres.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		prefix := q.Get("prefix")
		if prefix == "" {
			writeError(w, http.StatusBadRequest, "missing 'prefix' query parameter")
			return
		}
		limit, err := intParam(q, "limit", 10)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		words, err := store.Suggest(prefix, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if words == nil {
			words = []string{}
		}
		writeJSON(w, http.StatusOK, suggestResponse{Prefix: prefix, Words: words})
	}
}

func handleStats(store *interpres.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, store.Stats())
	}
}

// ---- middleware ---------------------------------------------------------

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID tags every request with an X-Request-ID, reusing the
// client's when present, and logs the request once it is served.
func withRequestID(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed", time.Since(start),
		)
	})
}

// newHandler builds the routed, CORS-wrapped API handler.
func newHandler(tr *interpres.Translator, cfg config.Config, logger *slog.Logger) http.Handler {
	store := tr.Store()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/latin", handleTranslate(tr, cfg.Translate, true))
	mux.HandleFunc("/api/english", handleTranslate(tr, cfg.Translate, false))
	mux.HandleFunc("/api/list", handleList(store))
	mux.HandleFunc("/api/suggest", handleSuggest(store))
	mux.HandleFunc("/api/stats", handleStats(store))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return withRequestID(logger, c.Handler(mux))
}

// ---- main ---------------------------------------------------------------

func main() {
	cfgPath := flag.String("config", "", "path to a YAML configuration file")
	addr := flag.String("addr", "", "listen address (overrides server.addr)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	logger.Info("loading lexicon")
	store, err := interpres.Default()
	if err != nil {
		logger.Error("failed to load lexicon", "err", err)
		os.Exit(1)
	}
	tr, err := interpres.New(store, cfg.Options())
	if err != nil {
		logger.Error("failed to create translator", "err", err)
		os.Exit(1)
	}
	logger.Info("lexicon loaded", "stats", store.Stats())

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newHandler(tr, cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
