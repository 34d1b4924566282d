// Command goviet-httpd is a multi-session HTTP host: one engine.Engine
// per session (keyed by a UUID the client holds), JWT-gated session
// endpoints, and a per-session rate limit on every session operation.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/username/goviet-ime/internal/engine"
	"github.com/username/goviet-ime/internal/host"
)

func main() {
	secret := os.Getenv("GOVIET_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	logger := log.New(os.Stdout, "goviet-httpd ", log.LstdFlags)
	store := host.NewSessionStore(50, 10) // 50 req/s, burst 10, per session
	api := &apiServer{store: store, logger: logger}
	auth := newJWTAuth(secret)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", api.health)

	r.Route("/v1/sessions", func(r chi.Router) {
		r.Use(auth.middleware)
		r.Post("/", api.openSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Delete("/", api.closeSession)
			r.Get("/buffer", api.getBuffer)
			r.Post("/process_key", api.processKey)
			r.Post("/settings", api.setSettings)
			r.Post("/shortcuts", api.addShortcut)
			r.Delete("/shortcuts/{trigger}", api.removeShortcut)
		})
	})

	addr := os.Getenv("GOVIET_HTTPD_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logger.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal(err)
	}
}

type apiServer struct {
	store  *host.SessionStore
	logger *log.Logger
}

func (a *apiServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (a *apiServer) openSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Method string `json:"method"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	settings := engine.DefaultSettings()
	if body.Method == "vni" {
		settings.Method = engine.MethodVNI
	}
	id := a.store.Open(settings)
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id.String()})
}

func (a *apiServer) closeSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	a.store.Close(id)
	w.WriteHeader(http.StatusNoContent)
}

func (a *apiServer) getBuffer(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	res, err := a.store.Do(id, host.OpGetBuffer, host.Request{})
	if !a.handleErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"buffer": string(res.Buffer)})
}

func (a *apiServer) processKey(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var body struct {
		Key       int  `json:"key"`
		Uppercase bool `json:"uppercase"`
		Ctrl      bool `json:"ctrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ev := engine.KeyEvent{Key: engine.Key(body.Key), Uppercase: body.Uppercase, Ctrl: body.Ctrl}
	res, err := a.store.Do(id, host.OpProcessKey, host.Request{Key: ev})
	if !a.handleErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, resultJSON(res))
}

func (a *apiServer) setSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var body struct {
		Op    string `json:"op"`
		Value bool   `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	op, ok := settingsOp(body.Op)
	if !ok {
		http.Error(w, "unknown setting", http.StatusBadRequest)
		return
	}
	_, err := a.store.Do(id, op, host.Request{Bool: body.Value})
	if !a.handleErr(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *apiServer) addShortcut(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var body struct {
		Trigger   string `json:"trigger"`
		Expansion string `json:"expansion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	_, err := a.store.Do(id, host.OpAddShortcut, host.Request{Trigger: body.Trigger, Expansion: body.Expansion})
	if !a.handleErr(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *apiServer) removeShortcut(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	trigger := chi.URLParam(r, "trigger")
	_, err := a.store.Do(id, host.OpRemoveShortcut, host.Request{Trigger: trigger})
	if !a.handleErr(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *apiServer) handleErr(w http.ResponseWriter, err error) bool {
	switch err {
	case nil:
		return true
	case host.ErrUnknownSession:
		http.Error(w, err.Error(), http.StatusNotFound)
	case host.ErrRateLimited:
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	return false
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return uuid.UUID{}, false
	}
	return id, true
}

func settingsOp(name string) (host.Op, bool) {
	switch name {
	case "enabled":
		return host.OpSetEnabled, true
	case "modern_tone":
		return host.OpSetModernTone, true
	case "auto_capitalize":
		return host.OpSetAutoCapitalize, true
	case "english_auto_restore":
		return host.OpSetEnglishAutoRestore, true
	case "esc_restore":
		return host.OpSetEscRestore, true
	case "bracket_shortcut":
		return host.OpSetBracketShortcut, true
	case "skip_w_shortcut":
		return host.OpSetSkipWShortcut, true
	}
	return 0, false
}

func resultJSON(res engine.Result) map[string]any {
	return map[string]any{
		"action":     int(res.Action),
		"backspace":  res.Backspace,
		"codepoints": string(res.Codepoints),
		"buffer":     string(res.Buffer),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, "goviet-httpd: encode response:", err)
	}
}
