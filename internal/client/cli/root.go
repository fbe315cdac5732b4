package cli

import (
	"bufio"
	"context"
	"os"
)

// Root runs the REPL against stdin. The prompt shows the logged-in user's
// name so it is always clear whose records are being edited.
func (a *App) Root(ctx context.Context) {
	statusFn := func() string {
		if a.isLoggedIn() {
			return a.userName()
		}
		return "not logged in"
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, statusFn, scanner)
}
