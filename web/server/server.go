// Package server provides a live preview of in-progress renders: a
// websocket endpoint accepts a render request and streams one PNG
// frame per progressive pass.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/renderer"
	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/scene"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server handles web requests for the raytracer preview
type Server struct {
	port int
}

// NewServer creates a new preview server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest is the first (and only) message a client sends on the
// render socket. Zero values take defaults; all fields are clamped to
// sane bounds before rendering.
type RenderRequest struct {
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	SamplesPerPixel int   `json:"samplesPerPixel"`
	RayBounceLimit  int   `json:"rayBounceLimit"`
	Passes          int   `json:"passes"`
	Seed            int64 `json:"seed"`
}

// ProgressUpdate is streamed to the client once per progressive pass
type ProgressUpdate struct {
	PassNumber  int    `json:"passNumber"`
	TotalPasses int    `json:"totalPasses"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats mirrors the renderer statistics for the client
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
}

// Handler returns the server's route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/render", s.handleRenderSocket)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start runs the preview server until the listener fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting preview server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRenderSocket upgrades the connection, reads one render
// request, and streams a frame per pass until the render finishes or
// the client goes away.
func (s *Server) handleRenderSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Println("read request:", err)
		return
	}
	clampRequest(&req)

	sc := scene.NewMetalScene(float64(req.Width) / float64(req.Height))
	rt := renderer.NewRaytracer(sc, req.Width, req.Height)
	rt.SetConfig(renderer.Config{
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.RayBounceLimit,
		Seed:            req.Seed,
	})

	startTime := time.Now()
	var streamErr error
	rt.RenderProgressive(req.Passes, func(pass, totalPasses int, buf *renderer.ImageBuffer, stats renderer.RenderStats) {
		if streamErr != nil {
			// Client is gone; finish the render loop silently.
			return
		}

		frame, err := encodeFrame(buf)
		if err != nil {
			streamErr = err
			return
		}

		streamErr = conn.WriteJSON(ProgressUpdate{
			PassNumber:  pass,
			TotalPasses: totalPasses,
			ImageData:   frame,
			Stats: Stats{
				TotalPixels:    stats.TotalPixels,
				TotalSamples:   stats.TotalSamples,
				AverageSamples: stats.AverageSamples,
			},
			IsComplete: pass == totalPasses,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		})
	})
	if streamErr != nil {
		log.Println("stream:", streamErr)
		return
	}

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// encodeFrame converts a snapshot to a base64 PNG for the client
func encodeFrame(buf *renderer.ImageBuffer) (string, error) {
	var out bytes.Buffer
	if err := png.Encode(&out, buf.ToRGBA()); err != nil {
		return "", fmt.Errorf("encode frame: %w", err)
	}
	return base64.StdEncoding.EncodeToString(out.Bytes()), nil
}

// clampRequest fills defaults and bounds the request so a client
// cannot ask for an unbounded amount of work.
func clampRequest(req *RenderRequest) {
	req.Width = clamp(req.Width, 1, 1920, 384)
	req.Height = clamp(req.Height, 1, 1080, 256)
	req.SamplesPerPixel = clamp(req.SamplesPerPixel, 1, 1000, 100)
	req.RayBounceLimit = clamp(req.RayBounceLimit, 1, 100, 50)
	req.Passes = clamp(req.Passes, 1, 50, 10)
	if req.Seed == 0 {
		req.Seed = 42
	}
}

func clamp(v, minVal, maxVal, def int) int {
	if v == 0 {
		return def
	}
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
