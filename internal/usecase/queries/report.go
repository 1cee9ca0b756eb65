package queries

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/pkg/errs"
)

//go:generate mockgen -source=report.go -destination=../../../tests/mock/queries/mock_report.go -package=queries

var reportHeader = []string{"reservation_id", "hotel", "room", "username", "check_in", "check_out", "days", "created_at"}

type ReportQueries interface {
	// WriteReservationsCSV streams every reservation, oldest first.
	WriteReservationsCSV(ctx context.Context, w io.Writer) error
}

type ReportReadStore interface {
	ListForReport(ctx context.Context) ([]*ReservationReportRow, error)
}

type reportQueriesImpl struct {
	store     ReportReadStore
	formatter *datefmt.Formatter
}

func NewReportQueries(store ReportReadStore, formatter *datefmt.Formatter) ReportQueries {
	return &reportQueriesImpl{store: store, formatter: formatter}
}

func (q *reportQueriesImpl) WriteReservationsCSV(ctx context.Context, w io.Writer) error {
	rows, err := q.store.ListForReport(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return errs.Wrap(err, "write report header")
	}
	for _, r := range rows {
		stay, err := calendar.NewStay(r.CheckIn, r.CheckOut)
		if err != nil {
			return errs.Mark(err, errs.ErrInconsistentState)
		}
		record := []string{
			r.ID.String(),
			r.HotelName,
			r.RoomName,
			r.Username,
			q.formatter.Format(r.CheckIn),
			q.formatter.Format(r.CheckOut),
			strconv.Itoa(stay.Days()),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return errs.Wrap(err, "write report row")
		}
	}
	cw.Flush()
	return errs.Wrap(cw.Error(), "flush report")
}
