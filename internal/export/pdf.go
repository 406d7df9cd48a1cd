package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"roadworks-backend/internal/database/models"
	"roadworks-backend/internal/store"

	"github.com/go-pdf/fpdf"
)

// WritePDF renders the request collection as a printable report, one
// section per request. Before/after photos are embedded when present;
// a photo that fails to decode is skipped, never fatal.
func WritePDF(w io.Writer, snap store.Snapshot) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Relatório de Solicitações de Reparo"), false)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de Solicitações de Reparo"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%d solicitações", len(snap.Requests))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i, req := range snap.Requests {
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Protocolo %s", req.Protocol)), "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		writeField(pdf, tr, "Status", req.Status.Label())
		writeField(pdf, tr, "Zonal", zonalName(snap, req.Zonal))
		writeField(pdf, tr, "Técnico", userName(snap, req.TechnicianID))
		if req.SEINumber != "" {
			writeField(pdf, tr, "SEI", req.SEINumber)
		}
		if req.Contract != "" {
			writeField(pdf, tr, "Contrato", req.Contract)
		}
		if req.VisitDate != "" {
			writeField(pdf, tr, "Data da visita", req.VisitDate)
		}
		if req.Location.Address != "" {
			writeField(pdf, tr, "Endereço", req.Location.Address)
		}
		if req.Description != "" {
			pdf.MultiCell(0, 5, tr(req.Description), "", "L", false)
		}

		embedPhoto(pdf, fmt.Sprintf("before_%d", i), "Antes", req.PhotoBefore, tr)
		embedPhoto(pdf, fmt.Sprintf("after_%d", i), "Depois", req.PhotoAfter, tr)
		pdf.Ln(6)
	}

	return pdf.Output(w)
}

func writeField(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(32, 5, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(value), "", 1, "L", false, 0, "")
}

// embedPhoto decodes a data-URL photo and places it in the flow
func embedPhoto(pdf *fpdf.Fpdf, name, caption string, dataURL *string, tr func(string) string) {
	if dataURL == nil {
		return
	}
	imageType, payload, ok := decodeDataURL(*dataURL)
	if !ok {
		return
	}

	opts := fpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(payload))
	if pdf.Err() {
		// bad image data; clear the error so the rest of the report
		// still renders
		pdf.ClearError()
		return
	}

	if pdf.GetY() > 200 {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, tr(caption), "", 1, "L", false, 0, "")
	pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), 60, 0, true, opts, 0, "")
}

// decodeDataURL splits "data:image/png;base64,..." into its image type
// and decoded payload.
func decodeDataURL(s string) (string, []byte, bool) {
	if !strings.HasPrefix(s, "data:image/") {
		return "", nil, false
	}
	rest := strings.TrimPrefix(s, "data:image/")
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return "", nil, false
	}
	imageType := strings.ToUpper(rest[:semi])
	payload, err := base64.StdEncoding.DecodeString(rest[semi+len(";base64,"):])
	if err != nil {
		return "", nil, false
	}
	return imageType, payload, true
}

func zonalName(snap store.Snapshot, zone models.Zone) string {
	for _, zonal := range snap.Zonals {
		if zonal.ID == zone {
			return zonal.Name
		}
	}
	return string(zone)
}

func userName(snap store.Snapshot, id string) string {
	for _, user := range snap.Users {
		if user.ID == id {
			return user.Name
		}
	}
	return store.UnresolvedName
}
