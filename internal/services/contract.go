package services

import (
	"bytes"
	"fmt"
	"strconv"

	"car-rental-backend/internal/models"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// Разметка страницы A4 в миллиметрах
const (
	contractMarginLeft = 20.0
	contractTop        = 20.0
	contractLineStep   = 10.0
	contractSectionGap = 5.0
	contractPageBottom = 280.0

	contractTitleSize = 18.0
	contractTextSize  = 12.0
)

// ContractLine - строка договора с координатами на странице
type ContractLine struct {
	Page     int     `json:"page"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
	Text     string  `json:"text"`
}

type ContractLayout struct {
	FileName string         `json:"file_name"`
	Pages    int            `json:"pages"`
	Lines    []ContractLine `json:"lines"`
}

type contractCursor struct {
	page  int
	y     float64
	lines []ContractLine
}

func (c *contractCursor) write(text string, size float64) {
	if c.y > contractPageBottom {
		c.page++
		c.y = contractTop
	}
	c.lines = append(c.lines, ContractLine{Page: c.page, X: contractMarginLeft, Y: c.y, FontSize: size, Text: text})
	c.y += contractLineStep
}

// BuildContract раскладывает договор аренды по строкам.
// Booking должен быть загружен вместе с User и Car. Секции водителей выводятся только если указано имя.
func BuildContract(b *models.Booking) ContractLayout {
	c := &contractCursor{page: 1, y: contractTop}

	c.write("Contrat de Location", contractTitleSize)
	c.y += contractSectionGap
	c.write(fmt.Sprintf("Réservation ID: %d", b.ID), contractTextSize)
	c.write(fmt.Sprintf("Statut: %s", b.Status), contractTextSize)
	c.y += contractSectionGap

	c.write("--- Informations Utilisateur (compte) ---", contractTextSize)
	c.write("Nom: "+b.User.Name, contractTextSize)
	c.write("Email: "+b.User.Email, contractTextSize)
	c.write("Téléphone: "+b.User.Phone, contractTextSize)

	drivers := b.Drivers()
	for i, title := range []string{"--- Locataire ---", "--- Autre Conducteur ---"} {
		d := drivers[i]
		if d == nil {
			continue
		}
		c.write(title, contractTextSize)
		c.write("Nom: "+d.Name, contractTextSize)
		if d.Address != "" {
			c.write("Adresse: "+d.Address, contractTextSize)
		}
		if d.IDNumber != "" {
			c.write("CIN: "+d.IDNumber, contractTextSize)
		}
		if d.License != "" {
			c.write("Permis: "+d.License, contractTextSize)
		}
	}

	c.y += contractSectionGap
	c.write("--- Informations Voiture ---", contractTextSize)
	c.write("Nom: "+b.Car.Name, contractTextSize)
	c.write("Modèle: "+b.Car.Model, contractTextSize)
	c.write("Matricule: "+b.Car.Plate, contractTextSize)

	c.y += contractSectionGap
	c.write("--- Détails Réservation ---", contractTextSize)
	c.write("Début: "+contractDate(b.StartDate.IsZero(), b.StartDate.Format("02/01/2006")), contractTextSize)
	c.write("Fin: "+contractDate(b.EndDate.IsZero(), b.EndDate.Format("02/01/2006")), contractTextSize)
	c.write("Prix total: "+strconv.FormatFloat(b.TotalPrice, 'f', 2, 64)+" MAD", contractTextSize)

	return ContractLayout{
		FileName: ContractFileName(b.ID),
		Pages:    c.page,
		Lines:    c.lines,
	}
}

func contractDate(zero bool, formatted string) string {
	if zero {
		return ""
	}
	return formatted
}

func ContractFileName(bookingID uint) string {
	return fmt.Sprintf("contract_booking_%d.pdf", bookingID)
}

// RenderContractPDF отрисовывает разметку в PDF.
func RenderContractPDF(layout ContractLayout) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(layout.FileName, true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	page := 0
	for _, line := range layout.Lines {
		for page < line.Page {
			pdf.AddPage()
			page++
		}
		style := ""
		if line.FontSize > contractTextSize {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, line.FontSize)
		pdf.Text(line.X, line.Y, tr(line.Text))
	}
	if page == 0 {
		pdf.AddPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render contract pdf")
	}
	return buf.Bytes(), nil
}
