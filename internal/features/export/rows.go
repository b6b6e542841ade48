package export

import (
	"slices"
	"time"

	jobs_dto "jobtracker/internal/features/jobs/dto"
	"jobtracker/internal/util/dates"

	"github.com/shopspring/decimal"
)

const (
	sheetName = "Trabajos"
	noValue   = "-"
)

var (
	headers      = []string{"Fecha", "Ubicación", "Descripción", "Grupo", "Trabajador", "Horas", "Costo", "Monto", "Estado"}
	columnWidths = []float64{12, 25, 40, 15, 25, 10, 12, 12, 15}
)

type totals struct {
	hours  decimal.Decimal
	cost   decimal.Decimal
	amount decimal.Decimal
}

func (t *totals) add(job jobs_dto.JobDTO) {
	t.hours = t.hours.Add(job.HoursWorked)
	t.cost = t.cost.Add(job.CostSpent)
	t.amount = t.amount.Add(job.AmountToCharge)
}

// BuildRows lays out the sheet body, header excluded. A nil row is a blank
// separator. Jobs spanning several days are grouped by date ascending with
// a subtotal after each day; a single day gets one general total.
func BuildRows(jobs []jobs_dto.JobDTO, startDate, endDate time.Time) [][]any {
	if !startDate.Before(endDate) {
		return buildSingleDayRows(jobs)
	}

	days, jobsByDay := groupByDay(jobs)

	rows := make([][]any, 0, len(jobs)+len(days)*2+1)
	var period totals

	for _, day := range days {
		var daily totals

		for _, job := range jobsByDay[day] {
			rows = append(rows, jobRow(job))
			daily.add(job)
			period.add(job)
		}

		rows = append(rows, totalRow("TOTAL "+day.Format(dates.DisplayDateLayout), daily), nil)
	}

	return append(rows, totalRow("TOTAL PERÍODO", period))
}

// FileName follows trabajos_<start>_a_<end>.xlsx, or trabajos_<date>.xlsx
// when the range is one day.
func FileName(startDate, endDate time.Time) string {
	start := startDate.Format(dates.ISODateLayout)
	if !startDate.Before(endDate) {
		return "trabajos_" + start + ".xlsx"
	}

	return "trabajos_" + start + "_a_" + endDate.Format(dates.ISODateLayout) + ".xlsx"
}

func buildSingleDayRows(jobs []jobs_dto.JobDTO) [][]any {
	rows := make([][]any, 0, len(jobs)+2)
	var general totals

	for _, job := range jobs {
		rows = append(rows, jobRow(job))
		general.add(job)
	}

	return append(rows, nil, totalRow("TOTAL GENERAL", general))
}

// groupByDay keeps the listing order inside a day.
func groupByDay(jobs []jobs_dto.JobDTO) ([]time.Time, map[time.Time][]jobs_dto.JobDTO) {
	jobsByDay := make(map[time.Time][]jobs_dto.JobDTO)
	days := make([]time.Time, 0)

	for _, job := range jobs {
		day := dates.StartOfDay(job.Date)
		if _, ok := jobsByDay[day]; !ok {
			days = append(days, day)
		}
		jobsByDay[day] = append(jobsByDay[day], job)
	}

	slices.SortFunc(days, func(a, b time.Time) int {
		return a.Compare(b)
	})

	return days, jobsByDay
}

func jobRow(job jobs_dto.JobDTO) []any {
	return []any{
		job.Date.Format(dates.DisplayDateLayout),
		job.Location,
		job.Description,
		orNoValue(job.GroupName),
		orNoValue(job.WorkerLabel()),
		job.HoursWorked.InexactFloat64(),
		job.CostSpent.InexactFloat64(),
		job.AmountToCharge.InexactFloat64(),
		job.Status.Label(),
	}
}

func totalRow(label string, t totals) []any {
	return []any{
		label, "", "", "", "",
		t.hours.InexactFloat64(),
		t.cost.InexactFloat64(),
		t.amount.InexactFloat64(),
		"",
	}
}

func orNoValue(value string) string {
	if value == "" {
		return noValue
	}

	return value
}
