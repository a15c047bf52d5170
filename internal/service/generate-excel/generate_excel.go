package generate_excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"opergest/internal/service/nomina"
	"opergest/internal/storage"
)

type ExportStorage interface {
	ClearHoras(ctx context.Context, empleadoID int64) error
}

type ExportService struct {
	nomina  *nomina.NominaService
	storage ExportStorage
	dir     string
}

func NewExportService(nominaService *nomina.NominaService, storage ExportStorage, dir string) *ExportService {
	return &ExportService{nomina: nominaService, storage: storage, dir: dir}
}

// ExportarNomina corre el reporte quincenal y lo escribe como planilla en el
// directorio de exportación, nombrada por empleado y fecha. Devuelve la ruta.
func (g *ExportService) ExportarNomina(ctx context.Context, empleadoID int64, ref time.Time) (string, error) {
	const op = "service.generate-excel.ExportarNomina"

	reporte, err := g.nomina.ReportePara(ctx, empleadoID, ref)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path, err := g.escribir(reporte, ref)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return path, nil
}

func (g *ExportService) escribir(reporte *nomina.ReporteNomina, ref time.Time) (string, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Nómina"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	var headers []string
	if reporte.Area == storage.AreaCostura {
		headers = []string{"Fecha", "Operación", "Talla", "Bandos", "Precio", "Total"}
	} else {
		headers = []string{"Fecha", "Concepto", "Horas", "Total", "Observación"}
	}

	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, l := range reporte.Lineas {
		rowNum := rowIdx + 2

		if reporte.Area == storage.AreaCostura {
			f.SetCellValue(sheet, cellName(1, rowNum), l.Fecha.Format("2006-01-02"))
			f.SetCellValue(sheet, cellName(2, rowNum), l.Concepto)
			f.SetCellValue(sheet, cellName(3, rowNum), l.Talla)
			f.SetCellValue(sheet, cellName(4, rowNum), l.Bandos)
			f.SetCellValue(sheet, cellName(5, rowNum), l.Precio)
			f.SetCellValue(sheet, cellName(6, rowNum), l.Total)
		} else {
			f.SetCellValue(sheet, cellName(1, rowNum), l.Fecha.Format("2006-01-02"))
			f.SetCellValue(sheet, cellName(2, rowNum), l.Concepto)
			f.SetCellValue(sheet, cellName(3, rowNum), l.Horas)
			f.SetCellValue(sheet, cellName(4, rowNum), l.Total)
			if l.Incompleta {
				f.SetCellValue(sheet, cellName(5, rowNum), "sin salida marcada")
			}
		}
	}

	totalRow := len(reporte.Lineas) + 2
	f.SetCellValue(sheet, cellName(len(headers)-1, totalRow), "TOTAL")
	f.SetCellValue(sheet, cellName(len(headers), totalRow), reporte.Total)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "A", "F", 15)

	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("nomina_%d_%s.xlsx", reporte.Empleado, ref.Format("2006-01-02"))
	path := filepath.Join(g.dir, fileName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("error escribiendo la planilla: %w", err)
	}

	return path, nil
}

// CerrarNomina exporta la planilla y recién después, con el archivo ya en
// disco, limpia los registros de reloj del empleado por horas para que la
// quincena no se pague dos veces.
func (g *ExportService) CerrarNomina(ctx context.Context, empleadoID int64, ref time.Time) (string, error) {
	const op = "service.generate-excel.CerrarNomina"

	reporte, err := g.nomina.ReportePara(ctx, empleadoID, ref)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path, err := g.escribir(reporte, ref)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if reporte.Area == storage.AreaHoras {
		if err := g.storage.ClearHoras(ctx, empleadoID); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	return path, nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
