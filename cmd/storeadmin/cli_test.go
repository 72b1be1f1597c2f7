package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "storeadmin.yaml")
	yaml := `storage:
  backend: sqlite
  sqlite:
    path: ` + filepath.Join(dir, "cli.db") + `
catalog:
  name_mode: free
  seed_demo_data: true
auth:
  bcrypt_cost: 4
logging:
  level: error
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_CatalogCommands(t *testing.T) {
	cfg := writeConfig(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"list plans", []string{"plans", "list"}, []string{"Monthly", "3-Month", "25%"}},
		{"create plan", []string{"plans", "create", "--name=Quarterly", "--weekly=10", "--monthly=40", "--total=100"}, []string{"Plan created:", "Quarterly"}},
		{"assign plans", []string{"products", "assign", "3", "1"}, []string{"Plans assigned: 3", "Monthly"}},
		{"quote", []string{"quote", "3"}, []string{"2499.00", "624.75"}},
		{"filter products", []string{"products", "list", "--brand=Apple"}, []string{"iPhone 15 Pro Max", "MacBook"}},
		{"advance order", []string{"orders", "advance", "1", "--to="}, []string{"Order 1 is now processing"}},
		{"list processing", []string{"orders", "list", "--status=processing"}, []string{"john_doe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--config", cfg}, tt.args...)...)
			if err != nil {
				t.Fatalf("error: %v\n%s", err, out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestCLI_Errors(t *testing.T) {
	cfg := writeConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown plan", []string{"plans", "get", "missing"}, "not found"},
		{"invalid plan", []string{"plans", "create", "--name=Bad", "--weekly=-1", "--monthly=10", "--total=100"}, "weeklyPercentage"},
		{"bad status", []string{"orders", "list", "--status=shipped"}, "unknown order status"},
		{"invalid transition", []string{"orders", "advance", "1", "--to=completed"}, "invalid status transition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"--config", cfg}, tt.args...)...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
	orderStatus = ""
}

func TestCLI_Validate(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "--config", cfg, "validate", "--check-storage")
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	for _, w := range []string{"Config valid", "Storage: sqlite", "Plan names: any", "Storage reachable"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("storage:\n  backend: floppy\n"), 0644)
	if _, err := run(t, "--config", bad, "validate"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "storeadmin dev") {
		t.Errorf("output = %q", out)
	}
}
