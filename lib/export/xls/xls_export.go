package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	timesheetapimodels "bygg-tools-backend/models/api/timesheet"
)

type Provider interface {
	ExportTimeEntries(list []timesheetapimodels.TimeEntryView) (*bytes.Buffer, error)
	ExportProjectTotals(list []timesheetapimodels.ProjectHours) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var timeEntryHeaders = []string{"Dato", "Prosjekt", "Oppgave", "Timer", "Beskrivelse"}
var projectTotalHeaders = []string{"Prosjekt", "Timer totalt"}

func (i impl) ExportTimeEntries(list []timesheetapimodels.TimeEntryView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, timeEntryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(timeEntryHeaders), len(list)+1); err != nil {
			return nil, err
		}
		for _, item := range list {
			row++
			col := 1
			if err = writeColumn(f, sheet, col, row, item.Date.Format("02.01.2006")); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.ProjectName); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.TaskTitle); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.Hours); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.Description); err != nil {
				return nil, err
			}
		}
	}
	f.SetSheetName(sheet, "Timeføringer")
	return f.WriteToBuffer()
}

func (i impl) ExportProjectTotals(list []timesheetapimodels.ProjectHours) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, projectTotalHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(projectTotalHeaders), len(list)+1); err != nil {
			return nil, err
		}
		for _, item := range list {
			row++
			if err = writeColumn(f, sheet, 1, row, item.ProjectName); err != nil {
				return nil, err
			}
			if err = writeColumn(f, sheet, 2, row, item.TotalHours); err != nil {
				return nil, err
			}
		}
	}
	f.SetSheetName(sheet, "Prosjekttimer")
	return f.WriteToBuffer()
}
