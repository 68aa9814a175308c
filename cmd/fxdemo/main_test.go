package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandReportsErrorsOnce(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"snapshot", "no-such-preset"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Execute() expected an error for an unknown preset")
	}
	if !strings.Contains(err.Error(), "no-such-preset") {
		t.Errorf("Execute() error = %q, expected it to name the preset", err)
	}
	if out.Len() != 0 {
		t.Errorf("cobra printed %q, expected nothing before main reports the error", out.String())
	}
}
