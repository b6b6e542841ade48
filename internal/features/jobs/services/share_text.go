package jobs_services

import (
	"fmt"
	"strings"

	jobs_dto "jobtracker/internal/features/jobs/dto"
	"jobtracker/internal/util/dates"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultShareTitle = "Trabajos"

var currencyPrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatShareText renders jobs as a plain-text summary for messaging apps.
// No jobs yields an empty string.
func FormatShareText(title string, jobs []jobs_dto.JobDTO) string {
	if len(jobs) == 0 {
		return ""
	}

	if strings.TrimSpace(title) == "" {
		title = DefaultShareTitle
	}

	entries := make([]string, 0, len(jobs))
	for idx, job := range jobs {
		entries = append(entries, strings.Join([]string{
			fmt.Sprintf("#%d | %s - %s", idx+1, dates.FormatDisplay(job.Date), orDefault(job.Description, "Sin descripción")),
			"Lugar: " + orDefault(job.Location, "-"),
			"Trabajador: " + orDefault(job.WorkerLabel(), "-"),
			"Grupo: " + orDefault(job.GroupName, "-"),
			"Estado: " + job.Status.Label(),
			fmt.Sprintf(
				"Horas: %s | Costo: %s | Cobrar: %s",
				job.HoursWorked.String(),
				FormatCurrency(job.CostSpent),
				FormatCurrency(job.AmountToCharge),
			),
		}, "\n"))
	}

	return fmt.Sprintf("%s\nTotal: %d\n\n%s", title, len(jobs), strings.Join(entries, "\n\n"))
}

// FormatCurrency formats an amount in pesos with Argentine separators.
func FormatCurrency(amount decimal.Decimal) string {
	return currencyPrinter.Sprintf("$ %.2f", amount.InexactFloat64())
}

func orDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
