package cli

import (
	"context"
	"fmt"

	"markbook/internal/common"
	"markbook/internal/server/models"
)

const defaultMarks = 50

func (a *App) EnterMarks(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first!")
		return common.ErrNotLoggedIn
	}

	scores := make([]models.SubjectScore, 0, len(models.Subjects))
	for _, subject := range models.Subjects {
		marks, err := GetMarks(a.reader, subject, models.MinMarks, models.MaxMarks, defaultMarks, a.out)
		if err != nil {
			return err
		}
		scores = append(scores, models.SubjectScore{Subject: subject, Marks: marks})
	}

	if err := a.records.SubmitScores(ctx, a.userName(), scores); err != nil {
		fmt.Fprintf(a.out, "Saving marks failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Marks saved successfully!")
	return nil
}
