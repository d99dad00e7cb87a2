// Package server serves rendered color quivers and legends over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"net"
	"net/http"
	_ "net/http/pprof"
	"strconv"
	"time"

	"github.com/earthlight/colorquiver/field"
	"github.com/earthlight/colorquiver/render"
)

// Server answers quiver, legend and probe requests for the analytic preset
// fields.
type Server struct {
	Listener net.Listener
	// Extent is the data rectangle the presets are sampled over.
	Extent field.Extent
	// Font is passed through to legend rendering.
	Font render.FontConfig
}

func queryInt(req *http.Request, name string, fallback int) (int, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q: %w", name, err)
	}
	return int(v), nil
}

func queryFloat(req *http.Request, name string, fallback float64) (float64, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q: %w", name, err)
	}
	return v, nil
}

func (srv *Server) requestToRenderer(req *http.Request) (render.Renderer, error) {
	preset := req.URL.Query().Get("preset")
	if preset == "" {
		preset = "vortex"
	}

	rows, err := queryInt(req, "rows", 100)
	if err != nil {
		return render.Renderer{}, err
	}
	cols, err := queryInt(req, "cols", 100)
	if err != nil {
		return render.Renderer{}, err
	}
	if rows < 1 || cols < 1 {
		return render.Renderer{}, fmt.Errorf("rows and cols must be positive, got %d and %d", rows, cols)
	}

	mode, err := queryInt(req, "mode", render.ModeLinear)
	if err != nil {
		return render.Renderer{}, err
	}

	f, err := field.FromPreset(preset, rows, cols, srv.Extent)
	if err != nil {
		return render.Renderer{}, err
	}

	return render.Renderer{
		Field: f,
		Rect: render.Rect{
			XMin: srv.Extent.XMin, XMax: srv.Extent.XMax,
			YMin: srv.Extent.YMin, YMax: srv.Extent.YMax,
		},
		Mode: mode,
	}, nil
}

func writeJSONResponse(w http.ResponseWriter, result interface{}, err error) {
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte(err.Error())); err != nil {
			slog.Error("failed to write HTTP 400 response", "error", err)
		}
		return
	}

	bytes, err := json.Marshal(result)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(err.Error())); err != nil {
			slog.Error("failed to write HTTP 500 response", "error", err)
		}
		return
	}

	w.Header().Add("Content-Type", "application/json")
	if _, err = w.Write(bytes); err != nil {
		slog.Error("failed to write HTTP response", "error", err)
	}
}

func (srv *Server) handleQuiverRequest(w http.ResponseWriter, req *http.Request) {
	renderer, err := srv.requestToRenderer(req)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}

	img, _, err := renderer.CreateImage()
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}

	w.Header().Add("Content-Type", "image/png")
	if err := (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, img); err != nil {
		slog.Error("failed during image encoding", "error", err)
	}
}

func (srv *Server) handleStatsRequest(w http.ResponseWriter, req *http.Request) {
	renderer, err := srv.requestToRenderer(req)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}

	_, stats, err := renderer.CreateImage()
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}
	writeJSONResponse(w, stats, nil)
}

func (srv *Server) handlePixelRequest(w http.ResponseWriter, req *http.Request) {
	renderer, err := srv.requestToRenderer(req)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}

	offsetX, err := queryInt(req, "offsetX", -1)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}
	offsetY, err := queryInt(req, "offsetY", -1)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}

	x, y, err := renderer.PixelToCoord(offsetX, offsetY)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}

	u := renderer.Field.U.At(offsetY, offsetX)
	v := renderer.Field.V.At(offsetY, offsetX)
	writeJSONResponse(w, map[string]interface{}{
		"x":    x,
		"y":    y,
		"u":    u,
		"v":    v,
		"norm": math.Hypot(u, v),
	}, nil)
}

func (srv *Server) handleLegendRequest(w http.ResponseWriter, req *http.Request) {
	mode, err := queryInt(req, "mode", render.ModeLinear)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}
	cells, err := queryInt(req, "cells", 64)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}
	side, err := queryInt(req, "side", 256)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}
	min, err := queryFloat(req, "min", 0)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}
	max, err := queryFloat(req, "max", 1)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}
	maxValue, err := queryFloat(req, "maxValue", 0)
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}

	img, err := (render.Legend{
		Cells:    cells,
		Side:     side,
		Mapping:  render.Mapping{Min: min, Max: max},
		Mode:     mode,
		MaxValue: maxValue,
		Font:     srv.Font,
	}).CreateImage()
	if err != nil {
		writeJSONResponse(w, nil, err)
		return
	}

	w.Header().Add("Content-Type", "image/png")
	if err := (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, img); err != nil {
		slog.Error("failed during image encoding", "error", err)
	}
}

// shutdownWhenDone invokes http.Server.Shutdown when the given context is
// cancelled. This function will block until context cancellation.
func shutdownWhenDone(ctx context.Context, server *http.Server) {
	slog.Info("server started")
	<-ctx.Done()

	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("terminating server")
	if err := server.Shutdown(c); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// Serve blocks serving HTTP until the listener fails or ctx is cancelled.
func (srv *Server) Serve(ctx context.Context) error {
	m := http.NewServeMux()
	m.HandleFunc("/quiver", srv.handleQuiverRequest)
	m.HandleFunc("/quiver/stats", srv.handleStatsRequest)
	m.HandleFunc("/quiver/pixel", srv.handlePixelRequest)
	m.HandleFunc("/legend", srv.handleLegendRequest)

	server := http.Server{
		Handler: m,
	}

	go shutdownWhenDone(ctx, &server)

	err := server.Serve(srv.Listener)
	if errors.Is(err, http.ErrServerClosed) {
		slog.Info("server stopped")
		return nil
	}
	return err
}
