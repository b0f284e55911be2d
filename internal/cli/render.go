package cli

import (
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/hms/hms/internal/validate"
)

func renderTable(out io.Writer, headers []string, rows [][]string) {
	t := tablewriter.NewWriter(out)
	t.SetHeader(headers)
	t.AppendBulk(rows)
	t.Render()
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtDate(t time.Time) string {
	return t.Format(validate.DateLayout)
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(validate.DateLayout)
}

func fmtDateTime(t time.Time) string {
	return t.Format(validate.DateTimeLayout)
}

func fmtDays(d *int) string {
	if d == nil {
		return ""
	}
	return strconv.Itoa(*d)
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtID(id int64) string {
	return strconv.FormatInt(id, 10)
}
