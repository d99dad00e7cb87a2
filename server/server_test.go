package server

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earthlight/colorquiver/field"
	"github.com/earthlight/colorquiver/render"
)

var baseURL string

func TestMain(m *testing.M) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	baseURL = "http://" + listener.Addr().String()

	srv := &Server{
		Listener: listener,
		Extent:   field.Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
		Font:     render.DefaultFont,
	}
	go func() {
		if err := srv.Serve(context.Background()); err != nil {
			panic(err)
		}
	}()

	os.Exit(m.Run())
}

func TestQuiverEndpoint(t *testing.T) {
	resp, err := http.Get(baseURL + "/quiver?preset=vortex&mode=2&rows=20&cols=30")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestQuiverEndpointBadMode(t *testing.T) {
	resp, err := http.Get(baseURL + "/quiver?mode=4")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "unsupported color mode")
}

func TestQuiverEndpointBadParams(t *testing.T) {
	for _, query := range []string{
		"?rows=abc",
		"?rows=0",
		"?preset=nope",
		"?mode=oops",
	} {
		resp, err := http.Get(baseURL + "/quiver" + query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %s", query)
	}
}

func TestStatsEndpoint(t *testing.T) {
	resp, err := http.Get(baseURL + "/quiver/stats?preset=uniform&mode=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var stats render.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1.0, stats.Ma)
	assert.Equal(t, 0.0, stats.MaxValue)
}

func TestStatsEndpointModeClipped(t *testing.T) {
	resp, err := http.Get(baseURL + "/quiver/stats?preset=source&mode=3")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats render.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Greater(t, stats.MaxValue, stats.Ma)
}

func TestPixelEndpoint(t *testing.T) {
	resp, err := http.Get(baseURL + "/quiver/pixel?preset=uniform&rows=2&cols=2&offsetX=0&offsetY=0")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var probe map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&probe))
	assert.Equal(t, -0.5, probe["x"])
	assert.Equal(t, 0.5, probe["y"])
	assert.Equal(t, 1.0, probe["u"])
	assert.Equal(t, 0.0, probe["v"])
	assert.Equal(t, 1.0, probe["norm"])
}

func TestPixelEndpointOutOfRange(t *testing.T) {
	resp, err := http.Get(baseURL + "/quiver/pixel?rows=2&cols=2&offsetX=5&offsetY=0")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLegendEndpoint(t *testing.T) {
	resp, err := http.Get(baseURL + "/legend?mode=3&max=2.5&maxValue=4&side=64&cells=32")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestLegendEndpointBadMode(t *testing.T) {
	resp, err := http.Get(baseURL + "/legend?mode=9")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func BenchmarkQuiverEndpoint(b *testing.B) {
	for i := 0; i < b.N; i++ {
		resp, err := http.Get(baseURL + "/quiver?preset=vortex&mode=2")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			b.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b.Fatal(resp.Status)
		}
	}
}
