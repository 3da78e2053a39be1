package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/pterm/pterm"

	"github.com/omeyang/ipcalc/pkg/cidr"
)

// runApp 以给定参数执行 CLI，捕获标准输出并返回 Action 的错误。
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableColor()

	app := createApp()
	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = io.Discard

	err := app.Run(context.Background(), append([]string{"ipcalc"}, args...))
	return buf.String(), err
}

func TestAppValidInput(t *testing.T) {
	out, err := runApp(t, "192.168.1.10/24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFragments := []string{
		"Address:",
		"192.168.1.10",
		"Netmask:\t255.255.255.0\t= 24",
		"Wildcard:\t0.0.0.255",
		"Network:\t192.168.1.0/24",
		"HostMin:\t192.168.1.1",
		"HostMax:\t192.168.1.254",
		"Broadcast:\t192.168.1.255",
		"Hosts/Net:\t254\tClass C, Private Internet",
		"11000000 10101000 00000001 00001010", // 地址的二进制列
	}
	for _, frag := range wantFragments {
		if !bytes.Contains([]byte(out), []byte(frag)) {
			t.Errorf("output missing %q\noutput:\n%s", frag, out)
		}
	}
}

func TestAppJSONOutput(t *testing.T) {
	out, err := runApp(t, "--json", "10.0.0.0/31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got cidr.WireReport
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput:\n%s", err, out)
	}
	want := cidr.WireReport{
		Address:   "10.0.0.0",
		Netmask:   "255.255.255.254",
		Prefix:    31,
		Wildcard:  "0.0.0.1",
		Network:   "10.0.0.0",
		HostMin:   "10.0.0.0",
		HostMax:   "10.0.0.1",
		Broadcast: "10.0.0.1",
		Hosts:     2,
		Class:     "Class A",
		Private:   true,
	}
	if got != want {
		t.Errorf("JSON report mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestAppValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"no_slash", "1.2.3.4", cidr.ErrInvalidFormat},
		{"prefix_out_of_range", "1.2.3.4/33", cidr.ErrInvalidPrefix},
		{"octet_out_of_range", "1.2.3.999/24", cidr.ErrInvalidAddress},
		{"negative_prefix", "1.2.3.4/-1", cidr.ErrInvalidPrefix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runApp(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if out != "" {
				t.Errorf("expected no partial output for %q, got:\n%s", tt.input, out)
			}
		})
	}
}

func TestAppArgumentCount(t *testing.T) {
	// 缺少和多余的位置参数都是 usageError
	for _, args := range [][]string{
		{},
		{"1.2.3.4/24", "5.6.7.8/16"},
	} {
		_, err := runApp(t, args...)
		var usageErr *usageError
		if !errors.As(err, &usageErr) {
			t.Errorf("runApp(%v) error = %T %v, want *usageError", args, err, err)
		}
	}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"valid", []string{"ipcalc", "--no-color", "--json", "192.168.1.10/24"}, 0},
		{"no_slash", []string{"ipcalc", "1.2.3.4"}, 1},
		{"bad_prefix", []string{"ipcalc", "1.2.3.4/33"}, 1},
		{"bad_octet", []string{"ipcalc", "1.2.3.999/24"}, 1},
		{"missing_arg", []string{"ipcalc"}, 2},
		{"unknown_flag", []string{"ipcalc", "--bogus", "1.2.3.4/24"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestUsageError(t *testing.T) {
	err := &usageError{msg: "test error"}
	if err.Error() != "test error" {
		t.Errorf("usageError.Error() = %q, want %q", err.Error(), "test error")
	}

	var target *usageError
	if !errors.As(error(err), &target) {
		t.Error("errors.As failed for *usageError")
	}
}

func TestIsCLIUsageError(t *testing.T) {
	if !isCLIUsageError(errors.New("flag provided but not defined: -bogus")) {
		t.Error("unknown flag error not recognized as usage error")
	}
	if isCLIUsageError(cidr.ErrInvalidFormat) {
		t.Error("validation error misclassified as usage error")
	}
}
