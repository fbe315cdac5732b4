package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markbook/internal/client/config"
)

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{DataDir: t.TempDir(), LockTimeout: time.Second}
	app, err := NewApp(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	app.reader = bufio.NewReader(strings.NewReader(input))
	app.out = &out
	return app, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(fd int) ([]byte, error) { return []byte(pw), nil }
}

func TestApp_RegisterLoginMarksReport(t *testing.T) {
	stubPassword(t, "p1")
	ctx := context.Background()

	input := strings.Join([]string{
		"Alice",      // name
		"555-0100",   // phone
		"1990-05-01", // dob
		"a@x.com",    // email (register)
		"a@x.com",    // email (login)
		"80", "70", "90", "60", "75", "85", "65", // marks
	}, "\n") + "\n"
	app, out := newTestApp(t, input)

	require.NoError(t, app.Register(ctx))
	assert.Contains(t, out.String(), "registered successfully")

	require.NoError(t, app.Login(ctx))
	assert.Contains(t, out.String(), "Welcome Alice!")
	require.True(t, app.isLoggedIn())

	require.NoError(t, app.EnterMarks(ctx))
	assert.Contains(t, out.String(), "Marks saved successfully!")

	require.NoError(t, app.Report(ctx))
	assert.Contains(t, out.String(), "Math")
	assert.Contains(t, out.String(), "80")
}

func TestApp_MarksRequireLogin(t *testing.T) {
	app, out := newTestApp(t, "")

	err := app.EnterMarks(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Please log in first!")
}

func TestApp_ReportWithoutRecords(t *testing.T) {
	stubPassword(t, "p1")
	ctx := context.Background()

	input := strings.Join([]string{
		"Alice", "555-0100", "1990-05-01", "a@x.com", "a@x.com",
	}, "\n") + "\n"
	app, out := newTestApp(t, input)

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))

	err := app.Report(ctx)
	require.Error(t, err)
	assert.Contains(t, out.String(), "No marks submitted yet")
}

func TestApp_LogoutClearsSession(t *testing.T) {
	stubPassword(t, "p1")
	ctx := context.Background()

	input := strings.Join([]string{
		"Alice", "555-0100", "1990-05-01", "a@x.com", "a@x.com",
	}, "\n") + "\n"
	app, _ := newTestApp(t, input)

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())

	// Logging out twice is fine.
	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
}

func TestApp_LoginWithWrongPassword(t *testing.T) {
	stubPassword(t, "p1")
	ctx := context.Background()

	app, out := newTestApp(t, strings.Join([]string{
		"Alice", "555-0100", "1990-05-01", "a@x.com", "a@x.com",
	}, "\n")+"\n")

	require.NoError(t, app.Register(ctx))

	stubPassword(t, "wrong")
	err := app.Login(ctx)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Invalid email or password!")
	assert.False(t, app.isLoggedIn())
}
