package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rook-computer/marquee/internal/render"
	"github.com/rook-computer/marquee/internal/state"
)

type StateSource interface {
	Snapshot() state.State
}

type FrameSource interface {
	PNG(scale float64) ([]byte, error)
}

type InstanceStopper interface {
	Stop(id string) bool
}

type APIV1Deps struct {
	State   StateSource
	Frames  FrameSource
	Stopper InstanceStopper

	// PublicURL is encoded by /qr.png; empty disables the route.
	PublicURL string
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type statusResponse struct {
	Phase     string               `json:"phase"`
	Source    string               `json:"source"`
	Frames    uint64               `json:"frames"`
	Instances []state.InstanceInfo `json:"instances"`
	Error     string               `json:"error,omitempty"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	mux.HandleFunc("GET /frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, deps) })
	mux.HandleFunc("GET /qr.png", func(w http.ResponseWriter, r *http.Request) { handleQR(w, r, deps) })
	mux.HandleFunc("POST /instances/{id}/stop", func(w http.ResponseWriter, r *http.Request) { handleStop(w, r, deps) })
	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.State == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "status not configured")
		return
	}
	snap := deps.State.Snapshot()
	instances := snap.Instances
	if instances == nil {
		instances = []state.InstanceInfo{}
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Phase:     snap.Phase.String(),
		Source:    snap.Source,
		Frames:    snap.Frames,
		Instances: instances,
		Error:     snap.Err,
	})
}

func handleFrame(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.Frames == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "frames not configured")
		return
	}
	scale := 1.0
	if raw := r.URL.Query().Get("scale"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 || parsed > 1 {
			writeAPIError(w, http.StatusBadRequest, "bad_scale", "scale must be in (0, 1]")
			return
		}
		scale = parsed
	}

	data, err := deps.Frames.PNG(scale)
	if errors.Is(err, render.ErrNoFrame) {
		writeAPIError(w, http.StatusServiceUnavailable, "no_frame", err.Error())
		return
	}
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	writePNG(w, data)
}

func handleQR(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.PublicURL == "" {
		writeAPIError(w, http.StatusNotFound, "no_url", "public url not configured")
		return
	}
	data, err := render.QRCodePNG(deps.PublicURL, 0)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	writePNG(w, data)
}

func handleStop(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.Stopper == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "stop not configured")
		return
	}
	id := r.PathValue("id")
	if !deps.Stopper.Stop(id) {
		writeAPIError(w, http.StatusNotFound, "unknown_instance", "no running instance "+strconv.Quote(id))
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func writePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
