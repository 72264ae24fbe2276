package infra

// excel.go — spreadsheet export of sales data. The workbook is generated on
// demand from current rows and never persisted.

import (
	"bytes"
	"fmt"
	"strings"

	"saborpos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// FilaResumen is one row of a summarized (weekly/monthly/yearly) export.
type FilaResumen struct {
	Etiqueta string
	Total    decimal.Decimal
}

// ExcelVentas builds a workbook with one row per sale: ticket, timestamp,
// cashier, payment method, total and a product summary ("2x Salchipapa, ...").
func ExcelVentas(hoja string, ventas []model.Venta) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, err
	}

	headers := []string{"Ticket", "Fecha y Hora", "Cajero", "Método Pago", "Total", "Productos"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(hoja, cell, h); err != nil {
			return nil, err
		}
	}
	if err := boldHeader(f, hoja, len(headers)); err != nil {
		return nil, err
	}

	for row, v := range ventas {
		cajero := "N/A"
		if v.Usuario != nil {
			cajero = v.Usuario.Nombre
		}
		metodo := "Sin Pago"
		if v.Pago != nil {
			metodo = v.Pago.TipoPago
		}

		resumen := make([]string, 0, len(v.Detalles))
		for _, d := range v.Detalles {
			nombre := "Borrado"
			if d.Producto != nil {
				nombre = d.Producto.Nombre
			}
			resumen = append(resumen, fmt.Sprintf("%dx %s", d.Cantidad, nombre))
		}

		total, _ := v.Total.Float64()
		values := []interface{}{
			v.NumeroTicket,
			v.FechaVenta.Format("02/01/2006 15:04"),
			cajero,
			metodo,
			total,
			strings.Join(resumen, ", "),
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(hoja, cell, val); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(hoja, "A", "D", 18)
	_ = f.SetColWidth(hoja, "F", "F", 48)

	return f.WriteToBuffer()
}

// ExcelResumen builds a two-column workbook (bucket label, total) for the
// weekly/monthly/yearly summarized exports.
func ExcelResumen(hoja, etiqueta string, filas []FilaResumen) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(hoja, "A1", etiqueta); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(hoja, "B1", "Total Ventas"); err != nil {
		return nil, err
	}
	if err := boldHeader(f, hoja, 2); err != nil {
		return nil, err
	}

	for i, fila := range filas {
		total, _ := fila.Total.Float64()
		if err := f.SetCellValue(hoja, fmt.Sprintf("A%d", i+2), fila.Etiqueta); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(hoja, fmt.Sprintf("B%d", i+2), total); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(hoja, "A", "B", 22)

	return f.WriteToBuffer()
}

func boldHeader(f *excelize.File, hoja string, cols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
	})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(cols, 1)
	return f.SetCellStyle(hoja, "A1", last, style)
}
