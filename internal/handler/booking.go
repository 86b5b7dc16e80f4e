package handler

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/ventureline/backend/internal/domain"
	"github.com/pkordes/ventureline/backend/internal/handler/gen"
	"github.com/pkordes/ventureline/backend/internal/service"
)

// defaultStayNights prices a booking that arrives without a total.
const defaultStayNights = 2

var validateBooking = newRequestValidator()

// newRequestValidator reports field errors under their JSON names.
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ListBookings handles GET /bookings. Most recent first.
func (s *Server) ListBookings(ctx context.Context, _ gen.ListBookingsRequestObject) (gen.ListBookingsResponseObject, error) {
	bookings, err := s.bookings.GetBookings(ctx)
	if err != nil {
		return nil, err
	}
	out := make(gen.ListBookings200JSONResponse, len(bookings))
	for i, b := range bookings {
		out[i] = bookingToResponse(b)
	}
	return out, nil
}

// CreateBooking handles POST /bookings.
// The call blocks for the store's simulated processing delay.
func (s *Server) CreateBooking(ctx context.Context, req gen.CreateBookingRequestObject) (gen.CreateBookingResponseObject, error) {
	details, err := s.requestToBooking(req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateBooking422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	created, err := s.bookings.CreateBooking(ctx, details)
	if err != nil {
		return nil, err
	}
	return gen.CreateBooking201JSONResponse(bookingToResponse(created)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToBooking checks the body shape and fills snapshot fields the client
// left out from the catalog entry, when there is one.
func (s *Server) requestToBooking(body *gen.CreateBookingRequest) (domain.BookingRequest, error) {
	if body == nil {
		return domain.BookingRequest{}, fmt.Errorf("handler.CreateBooking: %w: request body is required", domain.ErrValidation)
	}
	if err := validateBooking.Struct(body); err != nil {
		return domain.BookingRequest{}, fmt.Errorf("handler.CreateBooking: %w: %s", domain.ErrValidation, describe(err))
	}

	details := domain.BookingRequest{
		CampsiteID: body.CampsiteId,
		Dates:      body.Dates,
		Guests:     body.Guests,
	}
	site, known := s.catalog.GetCampsiteByID(body.CampsiteId)
	details.CampsiteName = orDefault(body.CampsiteName, site.Name)
	details.CampsiteImage = orDefault(body.CampsiteImage, site.Image)
	details.CampsiteLocation = orDefault(body.CampsiteLocation, site.Location)

	switch {
	case body.TotalPrice != nil:
		details.TotalPrice = *body.TotalPrice
	case known:
		details.TotalPrice = service.QuoteTotal(site, defaultStayNights)
	}
	return details, nil
}

// describe flattens validator errors into one line.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func orDefault(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}

func bookingToResponse(b domain.Booking) gen.Booking {
	return gen.Booking{
		Id:               b.ID,
		CampsiteId:       b.CampsiteID,
		CampsiteName:     b.CampsiteName,
		CampsiteImage:    b.CampsiteImage,
		CampsiteLocation: b.CampsiteLocation,
		Dates:            b.Dates,
		Guests:           b.Guests,
		TotalPrice:       b.TotalPrice,
		Status:           gen.BookingStatus(b.Status),
		BookedAt:         b.BookedAt,
	}
}
