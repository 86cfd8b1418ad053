package main

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"horatime-api/internal/config"
	httpapi "horatime-api/internal/http"
	"horatime-api/internal/timezone"

	"go.uber.org/zap"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{AppName: "HoraTime", AppVersion: "1.0.0"}
	svc := timezone.NewService(timezone.NewResolver(timezone.DefaultAliases), zap.NewNop())
	srv := httptest.NewServer(httpapi.NewRouter(zap.NewNop(), cfg, svc, nil, nil))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"horatime"}, args...))
	return out.String(), err
}

func TestTimeCommand(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "--api-url", srv.URL, "time", "buenos", "aires")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"buenos aires", "America/Argentina/Buenos_Aires", "Time:", "UTC:       -03:00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTimeCommandNotFound(t *testing.T) {
	srv := newAPIServer(t)

	_, err := run(t, "--api-url", srv.URL, "time", "Nowhereland")
	if !errors.Is(err, errLookup) {
		t.Fatalf("expected lookup error, got %v", err)
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Fatalf("unexpected error %q", err.Error())
	}
}

func TestHealthAndInfoCommands(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "--api-url", srv.URL, "health")
	if err != nil || strings.TrimSpace(out) != "ok" {
		t.Fatalf("health: %q %v", out, err)
	}

	out, err = run(t, "--api-url", srv.URL, "info")
	if err != nil || strings.TrimSpace(out) != "HoraTime API v1.0.0 - Timezone lookup service" {
		t.Fatalf("info: %q %v", out, err)
	}
}
