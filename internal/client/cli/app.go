// Package cli implements the interactive terminal client. It is a thin
// presentation layer: all account and record access goes through the core
// services, gated by the process-local session.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"markbook/internal/client/config"
	"markbook/internal/server/repositories/repomanager"
	"markbook/internal/server/services"
	"markbook/internal/server/session"
)

type App struct {
	config  *config.Config
	auth    *services.AuthService
	records *services.RecordService
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	m, err := repomanager.NewFileManager(c.DataDir, c.LockTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		auth:    services.NewAuthService(m.Accounts()),
		records: services.NewRecordService(m.Records()),
		session: session.New(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) userName() string {
	if account := a.session.Current(); account != nil {
		return account.Name
	}
	return ""
}
