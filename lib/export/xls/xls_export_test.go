package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	timesheetapimodels "bygg-tools-backend/models/api/timesheet"
)

func TestExportTimeEntries(t *testing.T) {
	entries := []timesheetapimodels.TimeEntryView{
		{
			ID:          "t-1",
			ProjectName: "Byggetrinn 2",
			TaskTitle:   "Forskaling",
			Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Hours:       7.5,
			Description: "Forskaling akse 4-6",
		},
		{
			ID:          "t-2",
			ProjectName: "Byggetrinn 2",
			Date:        time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			Hours:       8,
		},
	}

	buf, err := impl{}.ExportTimeEntries(entries)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timeføringer")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Dato", "Prosjekt", "Oppgave", "Timer", "Beskrivelse"}, rows[0])
	require.Equal(t, "02.03.2026", rows[1][0])
	require.Equal(t, "Byggetrinn 2", rows[1][1])
}

func TestExportProjectTotals(t *testing.T) {
	t.Run("empty list still produces a sheet", func(t *testing.T) {
		buf, err := impl{}.ExportProjectTotals(nil)
		require.NoError(t, err)
		require.NotZero(t, buf.Len())

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Prosjekttimer")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})

	t.Run("totals per project", func(t *testing.T) {
		buf, err := impl{}.ExportProjectTotals([]timesheetapimodels.ProjectHours{
			{ProjectID: "p-1", ProjectName: "Byggetrinn 2", TotalHours: 120.5},
		})
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Prosjekttimer")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Byggetrinn 2", rows[1][0])
		require.Equal(t, "120.5", rows[1][1])
	})
}
