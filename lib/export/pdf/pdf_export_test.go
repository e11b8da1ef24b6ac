package pdfexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bygg-tools-backend/models"
	formapimodels "bygg-tools-backend/models/api/form"
)

func TestGenerateFormPdf(t *testing.T) {
	t.Run("deviation form", func(t *testing.T) {
		form := formapimodels.FormSummary{
			ID:         "f-1",
			FormType:   models.FormTypeDeviation,
			Number:     "AV00012",
			Title:      "Manglende rekkverk i trapp",
			Status:     models.FormStatusDone,
			StatusName: "Ferdig behandlet",
			CreatedAt:  time.Date(2026, 2, 14, 11, 30, 0, 0, time.UTC),
			CreatedBy:  &formapimodels.UserRef{ID: "u-1", FirstName: "Kari", LastName: "Nordmann"},
			Handler:    &formapimodels.UserRef{ID: "u-2", FirstName: "Ola", LastName: "Hansen"},
			Solution:   "Rekkverk montert og kontrollert",
			Notes:      "Befaring utført 20.02",
			Content: map[string]interface{}{
				"Sted":             "Bygg A, 3. etasje",
				"Alvorlighetsgrad": "Høy",
			},
		}

		pdfFile, err := GenerateFormPdf(form)
		require.NoError(t, err)
		require.NotEmpty(t, pdfFile)
		require.Equal(t, "%PDF", string(pdfFile[:4]))
	})

	t.Run("minimal sja form", func(t *testing.T) {
		form := formapimodels.FormSummary{
			ID:         "f-2",
			FormType:   models.FormTypeSJA,
			Title:      "Varmt arbeid på tak",
			Status:     models.FormStatusUnprocessed,
			StatusName: "Ubehandlet",
			CreatedAt:  time.Date(2026, 2, 14, 11, 30, 0, 0, time.UTC),
		}

		pdfFile, err := GenerateFormPdf(form)
		require.NoError(t, err)
		require.Equal(t, "%PDF", string(pdfFile[:4]))
	})
}
