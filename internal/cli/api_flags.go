package cli

import (
	"context"
	"os"
	"time"

	"carrozzeria/internal/apiclient"

	"github.com/spf13/pflag"
)

// apiFlags are the connection settings every API-backed command accepts.
type apiFlags struct {
	url     string
	token   string
	timeout time.Duration
}

func (a *apiFlags) bind(f *pflag.FlagSet) {
	f.StringVar(&a.url, "url", envDefault("SHOPCTL_URL", "http://localhost:8080"), "base URL of the labor API (env SHOPCTL_URL)")
	f.StringVar(&a.token, "token", os.Getenv("SHOPCTL_TOKEN"), "bearer token (env SHOPCTL_TOKEN)")
	f.DurationVar(&a.timeout, "timeout", 10*time.Second, "HTTP timeout per request")
}

func (a apiFlags) client(ctx context.Context) *apiclient.Client {
	return apiclient.NewClient(ctx, a.url, a.token, a.timeout)
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
