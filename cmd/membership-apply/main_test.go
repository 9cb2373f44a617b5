// cmd/membership-apply/main_test.go
package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	processsubmission "membership-portal/internal/membership/process-submission"
	validateform "membership-portal/internal/membership/validate-form"
	"membership-portal/internal/models"
)

func formArgs(overrides ...string) []string {
	args := []string{
		"--full-name", "Jane Barrister",
		"--email", "jane@chambers.co.uk",
		"--telephone", "020 7946 0000",
		"--postcode", "EC4Y 9AY",
		"--membership-type", "associate",
		"--laa",
	}
	return append(args, overrides...)
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app.Writer = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	metricsRegisterer = prometheus.NewRegistry()
	t.Cleanup(func() {
		app.Writer = os.Stdout
		app.ExitErrHandler = nil
		metricsRegisterer = prometheus.DefaultRegisterer
	})
	err := app.Run(append([]string{"membership-apply"}, args...))
	return out.String(), err
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "api:\n  base_url: " + baseURL + "\n  timeout: 2000\nlogging:\n  level: error\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestValidateCommand(t *testing.T) {
	out, err := runApp(t, append([]string{"validate"}, formArgs()...)...)
	require.NoError(t, err)
	assert.Equal(t, "Application is valid\n", out)

	_, err = runApp(t, "validate", "--full-name", "J", "--email", "nope")
	require.Error(t, err)
	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Equal(t, validateform.MsgInvalidFullName+"\n"+
		validateform.MsgInvalidEmail+"\n"+
		validateform.MsgInvalidTelephone+"\n"+
		validateform.MsgInvalidPostcode+"\n"+
		validateform.MsgMissingMembershipType, exitErr.Error())
}

func TestRun_SubmitsFlagsAsForm(t *testing.T) {
	var received models.ApplicationForm
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/membership/apply", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	out, err := runApp(t, append([]string{"--config", writeConfig(t, server.URL)}, formArgs()...)...)

	require.NoError(t, err)
	assert.Equal(t, processsubmission.SubmittedNotice+"\n", out)
	assert.Equal(t, models.ApplicationForm{
		FullName:       "Jane Barrister",
		Email:          "jane@chambers.co.uk",
		Telephone:      "020 7946 0000",
		Postcode:       "EC4Y 9AY",
		MembershipType: models.MembershipTypeAssociate,
		LAAStatus:      true,
	}, received)
}

func TestRun_EndpointFlagAndRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"An application for this email already exists"}`))
	}))
	defer server.Close()

	cfg := writeConfig(t, "https://unused.example.com")
	out, err := runApp(t, append([]string{"--config", cfg, "--endpoint", server.URL + "/"}, formArgs()...)...)

	require.Error(t, err)
	assert.Equal(t, "Failed to submit application: An application for this email already exists\n", out)
}

func TestRun_RepeatedSubmissionsInOneProcess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()
	cfg := writeConfig(t, server.URL)

	for i := 0; i < 2; i++ {
		out, err := runApp(t, append([]string{"--config", cfg}, formArgs()...)...)
		require.NoError(t, err, "run %d", i)
		assert.Equal(t, processsubmission.SubmittedNotice+"\n", out, "run %d", i)
	}
}

func TestVersionString(t *testing.T) {
	gitTag, gitCommit, gitDate = "v1.2.0", "0123456789abcdef", "2024-05-01"
	defer func() { gitTag, gitCommit, gitDate = "", "", "" }()

	assert.Equal(t, "v1.2.0-01234567 (2024-05-01)", versionString())
}
