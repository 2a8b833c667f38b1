// Package reports renders admin exports.
package reports

import (
	"fmt"
	"io"
	"strings"

	"careerconnect/internal/models"

	"github.com/xuri/excelize/v2"
)

const usersSheet = "Users"

var userColumns = []string{
	"ID", "Name", "Email", "Role", "Blocked", "Created At",
	"University", "Degree", "Graduation Year", "Skills",
	"Company", "Company Description", "Website", "Approved",
}

// WriteUsersXLSX writes the admin user listing as a single-sheet workbook, one row
// per user in the order given. Absent profile fields are left blank.
func WriteUsersXLSX(w io.Writer, users []models.UserListing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", usersSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(userColumns))
	for i, col := range userColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(usersSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, u := range users {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			u.ID.String(),
			u.Name,
			u.Email,
			string(u.Role),
			u.Blocked,
			u.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			deref(u.University),
			deref(u.Degree),
			derefInt(u.GraduationYear),
			strings.Join(u.Skills, ", "),
			deref(u.Company),
			deref(u.CompanyDescription),
			deref(u.Website),
			derefBool(u.Approved),
		}
		if err := f.SetSheetRow(usersSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for user %s: %w", u.ID, err)
		}
	}

	if err := f.SetPanes(usersSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func derefInt(n *int) interface{} {
	if n == nil {
		return nil
	}
	return *n
}

func derefBool(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return *b
}
