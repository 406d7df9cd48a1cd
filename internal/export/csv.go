// Package export renders the request collection to downloadable report
// formats. Exports are built from a snapshot, so a report is internally
// consistent even while mutations continue.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"roadworks-backend/internal/store"
)

var csvHeader = []string{
	"id",
	"protocolo",
	"sei",
	"contrato",
	"descricao",
	"endereco",
	"latitude",
	"longitude",
	"data_visita",
	"status",
	"tecnico",
	"zonal",
	"criado_em",
}

// WriteCSV writes one row per repair request, newest first, with
// technician, status and zone references resolved to display names.
func WriteCSV(w io.Writer, snap store.Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, req := range snap.Requests {
		row := []string{
			req.ID,
			req.Protocol,
			req.SEINumber,
			req.Contract,
			req.Description,
			req.Location.Address,
			strconv.FormatFloat(req.Location.Latitude, 'f', -1, 64),
			strconv.FormatFloat(req.Location.Longitude, 'f', -1, 64),
			req.VisitDate,
			req.Status.Label(),
			userName(snap, req.TechnicianID),
			zonalName(snap, req.Zonal),
			req.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", req.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
