package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDescribe(t *testing.T) {
	out, _, err := run(t, newRootCmd(), "describe", "0x0502", "1285", "7")
	if err != nil {
		t.Fatal(err)
	}
	expected := "0x0502 Invalid operation\n0x0505 Out of memory\n0x0007 Unknown error\n"
	if out != expected {
		t.Errorf("expected: %q, got: %q", expected, out)
	}

	if _, _, err := run(t, newRootCmd(), "describe", "abc"); err == nil {
		t.Error("Expected error on invalid code")
	}
}

func TestFramebuffer(t *testing.T) {
	out, _, err := run(t, newRootCmd(), "framebuffer", "0x8cd6", "0x8CD5", "1")
	if err != nil {
		t.Fatal(err)
	}
	expected := "0x8CD6 GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT\n0x8CD5 GL_FRAMEBUFFER_COMPLETE\n0x0001 unknown error\n"
	if out != expected {
		t.Errorf("expected: %q, got: %q", expected, out)
	}
}

func TestList(t *testing.T) {
	out, _, err := run(t, newRootCmd(), "list")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains([]byte(out), []byte("  0x9242 Context lost WebGL\n")) {
		t.Errorf("List must contain CONTEXT_LOST_WEBGL, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("  0x8DA8 GL_FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS\n")) {
		t.Errorf("List must contain FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS, got:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		out, errOut, err := run(t, newRootCmd(), "check")
		if err != nil {
			t.Fatal(err)
		}
		if out != "ok\n" {
			t.Errorf("expected: %q, got: %q", "ok\n", out)
		}
		if errOut != "" {
			t.Errorf("Nothing should be logged, got: %q", errOut)
		}
	})
	t.Run("Fail", func(t *testing.T) {
		_, errOut, err := run(t, newRootCmd(), "check",
			"--error", "0x0500,0x0506",
			"--framebuffer", "0x8CDD",
			"--file", "render.go", "--line", "42",
		)
		if !errors.Is(err, errCheckFailed) {
			t.Fatalf("expected: %v, got: %v", errCheckFailed, err)
		}
		expected := "GL error in file 'render.go' @ line 42: Invalid enum\n" +
			"GL error in file 'render.go' @ line 42: Invalid framebuffer operation\n" +
			"framebuffer error in file 'render.go' @ line 42: GL_FRAMEBUFFER_UNSUPPORTED\n"
		if errOut != expected {
			t.Errorf("expected: %q, got: %q", expected, errOut)
		}
	})
	t.Run("Config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "glerror.yaml")
		if err := os.WriteFile(path, []byte("output: discard\n"), 0644); err != nil {
			t.Fatal(err)
		}
		_, errOut, err := run(t, newRootCmd(), "check", "--config", path, "--error", "0x0501")
		if !errors.Is(err, errCheckFailed) {
			t.Fatalf("expected: %v, got: %v", errCheckFailed, err)
		}
		if errOut != "" {
			t.Errorf("Output must be discarded, got: %q", errOut)
		}
	})
	t.Run("InvalidConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "glerror.yaml")
		if err := os.WriteFile(path, []byte("format: xml\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, _, err := run(t, newRootCmd(), "check", "--config", path); err == nil {
			t.Error("Expected error on invalid config")
		}
	})
}
