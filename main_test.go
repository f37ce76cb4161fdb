package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/olgasafonova/restoolbox-mcp-server/tracing"
)

// newTestLimiter returns a limiter on a clock the test advances by hand.
func newTestLimiter(t *testing.T, perInterval int, interval time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(perInterval, interval)
	rl.now = func() time.Time { return now }
	t.Cleanup(rl.Close)
	return rl, &now
}

func TestRateLimiterBurstAndRefill(t *testing.T) {
	rl, now := newTestLimiter(t, 3, 3*time.Second)

	for i := range 3 {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d within the burst was denied", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("request past the burst was allowed")
	}

	// One token per second comes back.
	*now = now.Add(time.Second)
	if !rl.Allow("10.0.0.1") {
		t.Error("request after one refill interval was denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("only one token should have been refilled")
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, time.Minute)

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		for i := range 2 {
			if !rl.Allow(ip) {
				t.Errorf("%s request %d denied", ip, i+1)
			}
		}
	}
	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		if rl.Allow(ip) {
			t.Errorf("%s should be limited", ip)
		}
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl, now := newTestLimiter(t, 1, time.Minute)

	rl.Allow("10.0.0.1")
	*now = now.Add(30 * time.Second)
	rl.Allow("10.0.0.2")

	*now = now.Add(45 * time.Second)
	rl.cleanup()

	rl.mu.Lock()
	_, first := rl.clients["10.0.0.1"]
	_, second := rl.clients["10.0.0.2"]
	rl.mu.Unlock()
	if first {
		t.Error("idle client should be dropped")
	}
	if !second {
		t.Error("recent client should be kept")
	}
}

func TestRateLimiterCloseTwice(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)
	rl.Close()
	rl.Close()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecoverPanic(t *testing.T) {
	func() {
		defer recoverPanic(quietLogger(), "serve")
		panic("boom")
	}()
}

func TestSecurityMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		config   SecurityConfig
		requests int
		body     string
		want     []int // status per request
	}{
		{
			name:     "no limits",
			requests: 20,
			want:     []int{http.StatusOK},
		},
		{
			name:     "rate limited after burst",
			config:   SecurityConfig{RateLimit: 2},
			requests: 3,
			want:     []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:     "body within limit",
			config:   SecurityConfig{MaxBodySize: 100},
			requests: 1,
			body:     `{"jsonrpc":"2.0"}`,
			want:     []int{http.StatusOK},
		},
		{
			name:     "body over limit",
			config:   SecurityConfig{MaxBodySize: 10},
			requests: 1,
			body:     strings.Repeat("x", 100),
			want:     []int{http.StatusRequestEntityTooLarge},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSecurityMiddleware(ok, quietLogger(), tt.config)
			defer sm.Close()
			if (sm.limiter != nil) != (tt.config.RateLimit > 0) {
				t.Fatalf("limiter present = %v with RateLimit %d", sm.limiter != nil, tt.config.RateLimit)
			}

			for i := range tt.requests {
				req := httptest.NewRequest("POST", "/mcp", strings.NewReader(tt.body))
				req.RemoteAddr = "192.168.1.1:12345"
				w := httptest.NewRecorder()
				sm.ServeHTTP(w, req)

				want := tt.want[min(i, len(tt.want)-1)]
				if w.Code != want {
					t.Fatalf("request %d: status %d, want %d", i+1, w.Code, want)
				}
				if w.Code == http.StatusTooManyRequests && w.Header().Get("Retry-After") == "" {
					t.Error("429 should carry Retry-After")
				}
			}
		})
	}
}

func TestSecurityMiddlewareHeaders(t *testing.T) {
	sm := NewSecurityMiddleware(http.NotFoundHandler(), quietLogger(), SecurityConfig{})
	defer sm.Close()

	w := httptest.NewRecorder()
	sm.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
		"Referrer-Policy":        "no-referrer",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"192.168.1.1:12345", "192.168.1.1"},
		{"[::1]:8080", "::1"},
		{"no-port", "no-port"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = tt.remote
		if got := clientIP(req); got != tt.want {
			t.Errorf("clientIP(%q) = %q, want %q", tt.remote, got, tt.want)
		}
	}
}

func TestRouteLabel(t *testing.T) {
	tests := map[string]string{
		"/mcp":      "/mcp",
		"/metrics":  "/metrics",
		"/health":   "/health",
		"/whatever": "other",
	}
	for path, want := range tests {
		if got := routeLabel(path); got != want {
			t.Errorf("routeLabel(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	w := httptest.NewRecorder()
	handleHealth(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), ServerName) {
		t.Errorf("body should name the server: %q", w.Body.String())
	}
}

func TestParseOptionsDefaults(t *testing.T) {
	for _, key := range []string{
		"RESTOOLBOX_TRANSPORT", "RESTOOLBOX_ADDR", "RESTOOLBOX_RATE_LIMIT", "RESTOOLBOX_MAX_BODY",
		"RESTOOLBOX_LOG_LEVEL", "RESTOOLBOX_CACHE_SIZE", "RESTOOLBOX_CACHE_TTL", "RESTOOLBOX_DATA_DIR",
		"RESTOOLBOX_WORKERS",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	opts, err := parseOptions(nil)
	if err != nil {
		t.Fatalf("parseOptions() error = %v", err)
	}
	if opts.Transport != "stdio" {
		t.Errorf("Transport = %q, want stdio", opts.Transport)
	}
	if opts.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", opts.Addr)
	}
	if opts.RateLimit != 120 {
		t.Errorf("RateLimit = %d, want 120", opts.RateLimit)
	}
	if opts.MaxBody != 1048576 {
		t.Errorf("MaxBody = %d, want 1048576", opts.MaxBody)
	}
	if opts.CacheSize != 1000 {
		t.Errorf("CacheSize = %d, want 1000", opts.CacheSize)
	}
	if opts.CacheTTL != 10*time.Minute {
		t.Errorf("CacheTTL = %v, want 10m", opts.CacheTTL)
	}
	if opts.Workers != 4 {
		t.Errorf("Workers = %d, want 4", opts.Workers)
	}
}

func TestParseOptionsEnvAndFlags(t *testing.T) {
	t.Setenv("RESTOOLBOX_TRANSPORT", "http")
	t.Setenv("RESTOOLBOX_WORKERS", "8")

	opts, err := parseOptions([]string{"--rate-limit", "0", "--cache-ttl", "30s"})
	if err != nil {
		t.Fatalf("parseOptions() error = %v", err)
	}
	if opts.Transport != "http" {
		t.Errorf("Transport = %q, want http from env", opts.Transport)
	}
	if opts.Workers != 8 {
		t.Errorf("Workers = %d, want 8 from env", opts.Workers)
	}
	if opts.RateLimit != 0 {
		t.Errorf("RateLimit = %d, want 0 from flag", opts.RateLimit)
	}
	if opts.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", opts.CacheTTL)
	}

	if _, err := parseOptions([]string{"--transport", "carrier-pigeon"}); err == nil {
		t.Error("unknown transport should be rejected")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTracingConfig(t *testing.T) {
	tests := []struct {
		name         string
		envEndpoint  string
		opts         Options
		wantExporter tracing.Exporter
		wantEndpoint string
	}{
		{"nothing set", "", Options{}, tracing.ExporterNone, ""},
		{"endpoint from env", "collector:4318", Options{}, tracing.ExporterOTLP, "collector:4318"},
		{"flag endpoint wins", "collector:4318", Options{TraceURL: "localhost:4318"}, tracing.ExporterOTLP, "localhost:4318"},
		{"flag exporter wins", "collector:4318", Options{Trace: "none"}, tracing.ExporterNone, "collector:4318"},
		{"stderr", "", Options{Trace: "stderr"}, tracing.ExporterStderr, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", tt.envEndpoint)
			t.Setenv("OTEL_ENABLED", "")

			cfg := tracingConfig(&tt.opts)
			if cfg.Exporter != tt.wantExporter {
				t.Errorf("Exporter = %q, want %q", cfg.Exporter, tt.wantExporter)
			}
			if cfg.Endpoint != tt.wantEndpoint {
				t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, tt.wantEndpoint)
			}
			if cfg.ServiceVersion != ServerVersion {
				t.Errorf("ServiceVersion = %q, want %q", cfg.ServiceVersion, ServerVersion)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	logger := quietLogger()
	opts := &Options{CacheSize: 10, CacheTTL: time.Minute, Workers: 2, DataDir: t.TempDir()}

	server, cleanup, err := newServer(opts, logger)
	if err != nil {
		t.Fatalf("newServer() error = %v", err)
	}
	defer cleanup()

	if server == nil {
		t.Fatal("expected a server")
	}

	w := httptest.NewRecorder()
	newMux(server).ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("/health status = %d", w.Code)
	}
}
