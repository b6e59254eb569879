package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"travely/internal/domain"
	"travely/internal/domain/models"
	"travely/internal/repositories"
	"travely/internal/utils"
)

// DocsService renders e-ticket and receipt PDFs for a booking. Only the owner
// can fetch them; a wrong owner gets the same not-found as a missing booking.
type DocsService struct {
	Store     *repositories.Store
	RequestID string
	Loader    func(bookingID, userID string) (models.Booking, error)
}

func (s DocsService) GenerateETicket(bookingID, userID string) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID, userID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+booking.ID)
	return buildETicketPDF(booking)
}

func (s DocsService) GenerateReceipt(bookingID, userID string) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID, userID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", "booking_id="+booking.ID)
	return buildReceiptPDF(booking)
}

func (s DocsService) loadBooking(bookingID, userID string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID, userID)
	}
	booking, err := s.Store.GetBooking(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.UserID != userID {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return booking, nil
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	opt := b.TravelOption

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Code   : %s", b.ID),
		fmt.Sprintf("Passenger      : %s", b.UserID),
		fmt.Sprintf("Trip           : %s %s", opt.Type, opt.ID),
		fmt.Sprintf("Operator       : %s", opt.Operator),
		fmt.Sprintf("Route          : %s -> %s", opt.Source, opt.Destination),
		fmt.Sprintf("Departure      : %s", utils.FormatDateTime(opt.DepartureTime)),
		fmt.Sprintf("Arrival        : %s", utils.FormatDateTime(opt.ArrivalTime)),
		fmt.Sprintf("Seats          : %d (%s)", b.Seats, opt.SeatType),
		fmt.Sprintf("Baggage        : %s", opt.BaggageAllowance),
		fmt.Sprintf("Status         : %s", b.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Cancellation policy: "+opt.CancellationPolicy, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(b models.Booking) ([]byte, string, error) {
	opt := b.TravelOption

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No    : RCP-%s", b.ID),
		fmt.Sprintf("Issued        : %s", utils.FormatDateTime(time.Now().UTC())),
		fmt.Sprintf("Booking Code  : %s", b.ID),
		fmt.Sprintf("Booked On     : %s", utils.FormatDateTime(b.BookingTime)),
		fmt.Sprintf("Trip          : %s, %s -> %s", opt.Operator, opt.Source, opt.Destination),
		fmt.Sprintf("Price         : %d x %s", b.Seats, utils.FormatMoney(opt.Price)),
		fmt.Sprintf("Total         : %s", utils.FormatMoney(b.TotalPrice)),
		fmt.Sprintf("Status        : %s", b.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteRune('_')
		}
	}
	return out.String()
}
