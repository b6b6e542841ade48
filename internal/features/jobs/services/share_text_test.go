package jobs_services

import (
	"strings"
	"testing"
	"time"

	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_enums "jobtracker/internal/features/jobs/enums"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_FormatShareText_WhenNoJobs_ReturnsEmptyString(t *testing.T) {
	assert.Equal(t, "", FormatShareText("Hoy", nil))
}

func Test_FormatShareText_WithJobs_EntriesNumberedWithSpanishLabels(t *testing.T) {
	jobs := []jobs_dto.JobDTO{
		{
			Date:           time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Description:    "Techo",
			Location:       "Calle 12",
			Status:         jobs_enums.JobStatusCompleted,
			HoursWorked:    decimal.RequireFromString("8.5"),
			CostSpent:      decimal.RequireFromString("150"),
			AmountToCharge: decimal.RequireFromString("12345.5"),
			GroupName:      "Cuadrilla",
			WorkerAlias:    "Pepe",
		},
		{
			Date:   time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Status: jobs_enums.JobStatusPending,
		},
	}

	text := FormatShareText("", jobs)
	lines := strings.Split(text, "\n")

	assert.Equal(t, "Trabajos", lines[0])
	assert.Equal(t, "Total: 2", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "#1 | 05/03/2024 - Techo", lines[3])
	assert.Equal(t, "Lugar: Calle 12", lines[4])
	assert.Equal(t, "Trabajador: Pepe", lines[5])
	assert.Equal(t, "Grupo: Cuadrilla", lines[6])
	assert.Equal(t, "Estado: Completado", lines[7])
	assert.Equal(t, "Horas: 8.5 | Costo: $ 150,00 | Cobrar: $ 12.345,50", lines[8])

	assert.Contains(t, text, "#2 | 04/03/2024 - Sin descripción")
	assert.Contains(t, text, "Estado: Pendiente")
	assert.Contains(t, text, "Trabajador: -")
}
