package cmd

import (
	"flag"
	"testing"
	"time"
)

func testFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("cmt", flag.ContinueOnError)
	fs.Int("limit", 20, "")
	fs.String("currency", "USD", "")
	fs.String("provider", "coinlore", "")
	fs.Duration("timeout", 0, "")
	fs.Bool("v", false, "")
	return fs
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want map[string]string
	}{
		{
			name: "defaults",
			want: map[string]string{"limit": "20", "currency": "USD", "provider": "coinlore", "timeout": "0s", "v": "false"},
		},
		{
			name: "env",
			env:  map[string]string{EnvLimit: "5", EnvCurrency: "EUR", EnvTimeout: "10s", EnvVerbose: "true"},
			want: map[string]string{"limit": "5", "currency": "EUR", "provider": "coinlore", "timeout": "10s", "v": "true"},
		},
		{
			name: "flags win",
			args: []string{"-limit", "3", "-currency", "JPY"},
			env:  map[string]string{EnvLimit: "5", EnvCurrency: "EUR", EnvProvider: "coinmarketcap"},
			want: map[string]string{"limit": "3", "currency": "JPY", "provider": "coinmarketcap"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testFlags()
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}
			lookup := func(k string) (string, bool) { v, ok := tt.env[k]; return v, ok }
			if err := applyEnv(fs, lookup); err != nil {
				t.Fatalf("applyEnv() unexpected error: %v", err)
			}
			for name, want := range tt.want {
				if got := fs.Lookup(name).Value.String(); got != want {
					t.Errorf("-%s = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	fs := testFlags()
	lookup := func(k string) (string, bool) {
		if k == EnvLimit {
			return "twenty", true
		}
		return "", false
	}
	if err := applyEnv(fs, lookup); err == nil {
		t.Error("applyEnv() expected an error for a non numeric limit")
	}
}

func TestWithTimeout(t *testing.T) {
	defer func(d time.Duration) { *timeout = d }(*timeout)

	*timeout = 0
	ctx, cancel := withTimeout(t.Context())
	if _, ok := ctx.Deadline(); ok {
		t.Error("withTimeout() set a deadline for a zero timeout")
	}
	cancel()

	*timeout = time.Minute
	ctx, cancel = withTimeout(t.Context())
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Error("withTimeout() did not set a deadline")
	}
}
