package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httpresp"
	ucLoyalty "github.com/BruksfildServices01/restaurant-loyalty/internal/usecase/loyalty"
)

type ImportHandler struct {
	importUC *ucLoyalty.ImportReservations
}

func NewImportHandler(importUC *ucLoyalty.ImportReservations) *ImportHandler {
	return &ImportHandler{importUC: importUC}
}

// ======================================================
// IMPORT CSV (multipart, campo "file")
// ======================================================

func (h *ImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Falta el archivo CSV (campo 'file').")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_open_file", "No se pudo leer el archivo.")
		return
	}
	defer f.Close()

	summary, err := h.importUC.Execute(c.Request.Context(), f)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCSVHeader) {
			httperr.BadRequest(c, httperr.CodeInvalidCSVHeader,
				"Faltan columnas en la cabecera del CSV.")
			return
		}
		httperr.Internal(c, "failed_to_import", "Error al importar reservas.")
		return
	}

	httpresp.OK(c, summary)
}
