package export

import (
	"testing"
	"time"

	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_enums "jobtracker/internal/features/jobs/enums"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildRows_WhenRangeSpansDays_GroupsByDayWithSubtotals(t *testing.T) {
	march1 := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	march2 := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)

	// listing order is newest first
	jobs := []jobs_dto.JobDTO{
		exportJob(march2, "Poda", "3", "10", "200", jobs_enums.JobStatusCompleted),
		exportJob(march1, "Pintura", "2", "5", "100", jobs_enums.JobStatusPending),
		exportJob(march1, "Limpieza", "1.5", "0", "50.5", jobs_enums.JobStatusArchived),
	}

	rows := BuildRows(jobs, march1, march2)

	require.Len(t, rows, 8)
	assert.Equal(t, "01/03/2024", rows[0][0])
	assert.Equal(t, "Pintura", rows[0][2])
	assert.Equal(t, "Pendiente", rows[0][8])
	assert.Equal(t, "Limpieza", rows[1][2])
	assert.Equal(t, "Archivado", rows[1][8])
	assert.Equal(t, []any{"TOTAL 01/03/2024", "", "", "", "", 3.5, 5.0, 150.5, ""}, rows[2])
	assert.Nil(t, rows[3])
	assert.Equal(t, "02/03/2024", rows[4][0])
	assert.Equal(t, "Completado", rows[4][8])
	assert.Equal(t, "TOTAL 02/03/2024", rows[5][0])
	assert.Nil(t, rows[6])
	assert.Equal(t, []any{"TOTAL PERÍODO", "", "", "", "", 6.5, 15.0, 350.5, ""}, rows[7])
}

func Test_BuildRows_WhenSingleDay_EndsWithGeneralTotal(t *testing.T) {
	day := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	jobs := []jobs_dto.JobDTO{
		exportJob(day, "Poda", "2", "10", "40", jobs_enums.JobStatusPending),
		exportJob(day, "Riego", "1", "0", "20", jobs_enums.JobStatusPending),
	}

	rows := BuildRows(jobs, day, day)

	require.Len(t, rows, 4)
	assert.Equal(t, "Poda", rows[0][2])
	assert.Equal(t, "Riego", rows[1][2])
	assert.Nil(t, rows[2])
	assert.Equal(t, []any{"TOTAL GENERAL", "", "", "", "", 3.0, 10.0, 60.0, ""}, rows[3])
}

func Test_BuildRows_WhenGroupOrWorkerMissing_UsesDash(t *testing.T) {
	day := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	withNames := exportJob(day, "Poda", "1", "0", "0", jobs_enums.JobStatusPending)
	withNames.GroupName = "Cuadrilla Norte"
	withNames.WorkerAlias = "Tito"

	rows := BuildRows([]jobs_dto.JobDTO{
		exportJob(day, "Riego", "1", "0", "0", jobs_enums.JobStatusPending),
		withNames,
	}, day, day)

	assert.Equal(t, "-", rows[0][3])
	assert.Equal(t, "-", rows[0][4])
	assert.Equal(t, "Cuadrilla Norte", rows[1][3])
	assert.Equal(t, "Tito", rows[1][4])
}

func Test_FileName(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "trabajos_2024-03-01_a_2024-03-31.xlsx", FileName(start, end))
	assert.Equal(t, "trabajos_2024-03-01.xlsx", FileName(start, start))
}

func Test_WriteWorkbook_WritesHeaderAndSkipsBlankRows(t *testing.T) {
	day := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	rows := BuildRows([]jobs_dto.JobDTO{exportJob(day, "Poda", "2", "10", "40", jobs_enums.JobStatusPending)}, day, day)

	content, err := WriteWorkbook(rows)
	require.NoError(t, err)

	sheet := readSheet(t, content)

	assert.Equal(t, headers, sheet[0])
	assert.Equal(t, "Poda", sheet[1][2])
	assert.Equal(t, "TOTAL GENERAL", sheet[len(sheet)-1][0])
}

func exportJob(
	date time.Time,
	description string,
	hours string,
	cost string,
	amount string,
	status jobs_enums.JobStatus,
) jobs_dto.JobDTO {
	return jobs_dto.JobDTO{
		Date:           date,
		Description:    description,
		Location:       "Centro",
		Status:         status,
		HoursWorked:    decimal.RequireFromString(hours),
		CostSpent:      decimal.RequireFromString(cost),
		AmountToCharge: decimal.RequireFromString(amount),
	}
}
