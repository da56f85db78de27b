package menu

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
	"github.com/CiaoGab/Restaurant-Order-App/internal/menu/repository"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Controller struct {
	menu   domain.Menu
	logger *zap.Logger
}

func NewController(menu domain.Menu, logger *zap.Logger) *Controller {
	return &Controller{
		menu:   menu,
		logger: logger,
	}
}

// HandleExport serves the loaded menu as a workbook that the xlsx source can read back.
func (c *Controller) HandleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := repository.WriteXLSX(&buf, c.menu); err != nil {
		c.logger.Error("exporting menu failed", zap.Error(err))
		http.Error(w, "an unexpected error occurred", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="menu.xlsx"`)
	if _, err := buf.WriteTo(w); err != nil {
		c.logger.Error("writing menu export", zap.Error(err))
	}
}
