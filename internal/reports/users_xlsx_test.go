package reports

import (
	"bytes"
	"testing"
	"time"

	"careerconnect/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteUsersXLSX(t *testing.T) {
	university := "MIT"
	year := 2026
	company := "Acme"
	approved := false
	users := []models.UserListing{
		{
			ID: uuid.New(), Name: "Ada", Email: "ada@uni.edu", Role: models.RoleStudent,
			CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			University: &university, GraduationYear: &year, Skills: []string{"go", "sql"},
		},
		{
			ID: uuid.New(), Name: "Rita", Email: "rita@acme.com", Role: models.RoleRecruiter, Blocked: true,
			CreatedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
			Company: &company, Approved: &approved,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteUsersXLSX(&buf, users))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(usersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, userColumns, rows[0])
	assert.Equal(t, "Ada", rows[1][1])
	assert.Equal(t, "student", rows[1][3])
	assert.Equal(t, "2025-03-01 10:00:00", rows[1][5])
	assert.Equal(t, "MIT", rows[1][6])
	assert.Equal(t, "2026", rows[1][8])
	assert.Equal(t, "go, sql", rows[1][9])

	assert.Equal(t, "rita@acme.com", rows[2][2])
	assert.Equal(t, "TRUE", rows[2][4])
	assert.Equal(t, "", rows[2][6])
	assert.Equal(t, "Acme", rows[2][10])
	assert.Equal(t, "FALSE", rows[2][13])
}

func TestWriteUsersXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUsersXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(usersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{usersSheet}, f.GetSheetList())
}
