package cli

import (
	"context"
	"errors"
	"fmt"

	"markbook/internal/common"
)

func (a *App) Report(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first!")
		return common.ErrNotLoggedIn
	}

	scores, err := a.records.FetchScores(ctx, a.userName())
	if err != nil {
		if errors.Is(err, common.ErrNoRecordsYet) {
			fmt.Fprintln(a.out, "No marks submitted yet. Use 'marks' first.")
		} else {
			fmt.Fprintf(a.out, "Loading report failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintln(a.out, RenderBarChart("Marks per Subject", scores))
	return nil
}
